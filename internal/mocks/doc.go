// Package mocks holds testify mocks of the ports, written in the mockery
// expecter style (NewMockX(t), m.EXPECT().Method(...).Return(...)).
package mocks
