package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"
)

// NewMockOutput creates a new instance of MockOutput. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockOutput(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockOutput {
	m := &MockOutput{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockOutput is an autogenerated mock type for the Output type
type MockOutput struct {
	mock.Mock
}

type MockOutput_Expecter struct {
	mock *mock.Mock
}

func (_m *MockOutput) EXPECT() *MockOutput_Expecter {
	return &MockOutput_Expecter{mock: &_m.Mock}
}

// WriteLine provides a mock function for the type MockOutput
func (_mock *MockOutput) WriteLine(ctx context.Context, line string) error {
	ret := _mock.Called(ctx, line)

	if len(ret) == 0 {
		panic("no return value specified for WriteLine")
	}

	var r0 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, string) error); ok {
		r0 = returnFunc(ctx, line)
	} else {
		r0 = ret.Error(0)
	}
	return r0
}

// MockOutput_WriteLine_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'WriteLine'
type MockOutput_WriteLine_Call struct {
	*mock.Call
}

// WriteLine is a helper method to define mock.On call
//   - ctx context.Context
//   - line string
func (_e *MockOutput_Expecter) WriteLine(ctx interface{}, line interface{}) *MockOutput_WriteLine_Call {
	return &MockOutput_WriteLine_Call{Call: _e.mock.On("WriteLine", ctx, line)}
}

func (_c *MockOutput_WriteLine_Call) Run(run func(ctx context.Context, line string)) *MockOutput_WriteLine_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockOutput_WriteLine_Call) Return(err error) *MockOutput_WriteLine_Call {
	_c.Call.Return(err)
	return _c
}

func (_c *MockOutput_WriteLine_Call) RunAndReturn(run func(ctx context.Context, line string) error) *MockOutput_WriteLine_Call {
	_c.Call.Return(run)
	return _c
}
