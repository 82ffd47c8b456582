package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"
)

// NewMockRepeater creates a new instance of MockRepeater. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockRepeater(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRepeater {
	m := &MockRepeater{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockRepeater is an autogenerated mock type for the Repeater type
type MockRepeater struct {
	mock.Mock
}

type MockRepeater_Expecter struct {
	mock *mock.Mock
}

func (_m *MockRepeater) EXPECT() *MockRepeater_Expecter {
	return &MockRepeater_Expecter{mock: &_m.Mock}
}

// Repeat provides a mock function for the type MockRepeater
func (_mock *MockRepeater) Repeat(ctx context.Context, text string, times int) (string, error) {
	ret := _mock.Called(ctx, text, times)

	if len(ret) == 0 {
		panic("no return value specified for Repeat")
	}

	var r0 string
	var r1 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, string, int) (string, error)); ok {
		return returnFunc(ctx, text, times)
	}
	if returnFunc, ok := ret.Get(0).(func(context.Context, string, int) string); ok {
		r0 = returnFunc(ctx, text, times)
	} else {
		r0 = ret.Get(0).(string)
	}
	if returnFunc, ok := ret.Get(1).(func(context.Context, string, int) error); ok {
		r1 = returnFunc(ctx, text, times)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

// MockRepeater_Repeat_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Repeat'
type MockRepeater_Repeat_Call struct {
	*mock.Call
}

// Repeat is a helper method to define mock.On call
//   - ctx context.Context
//   - text string
//   - times int
func (_e *MockRepeater_Expecter) Repeat(ctx interface{}, text interface{}, times interface{}) *MockRepeater_Repeat_Call {
	return &MockRepeater_Repeat_Call{Call: _e.mock.On("Repeat", ctx, text, times)}
}

func (_c *MockRepeater_Repeat_Call) Run(run func(ctx context.Context, text string, times int)) *MockRepeater_Repeat_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(int))
	})
	return _c
}

func (_c *MockRepeater_Repeat_Call) Return(result string, err error) *MockRepeater_Repeat_Call {
	_c.Call.Return(result, err)
	return _c
}

func (_c *MockRepeater_Repeat_Call) RunAndReturn(run func(ctx context.Context, text string, times int) (string, error)) *MockRepeater_Repeat_Call {
	_c.Call.Return(run)
	return _c
}
