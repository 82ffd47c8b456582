// Package ports defines the interfaces the application layer depends on.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always)
//   - Return plain values, never infrastructure types
//   - Error returns use domain error types (ErrValidation)
//   - Keep interfaces small and focused
package ports

import (
	"context"
)

// Repeater produces a text concatenated with itself a number of times.
//
// Example usage in application layer:
//
//	type Program struct {
//	    repeater ports.Repeater
//	}
type Repeater interface {
	// Repeat returns text repeated times times with no separator.
	// Returns domain.ErrValidation if times is negative.
	Repeat(ctx context.Context, text string, times int) (string, error)
}

// Output receives the lines a program produces.
// Adapters implement this for stdout, buffers, and so on.
type Output interface {
	// WriteLine writes a single line. The implementation appends the newline.
	WriteLine(ctx context.Context, line string) error
}

// RepeaterFunc adapts an ordinary function to the Repeater interface.
type RepeaterFunc func(ctx context.Context, text string, times int) (string, error)

// Repeat calls f(ctx, text, times).
func (f RepeaterFunc) Repeat(ctx context.Context, text string, times int) (string, error) {
	return f(ctx, text, times)
}
