package ports

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRepeaterFunc_Delegates verifies that RepeaterFunc forwards its arguments.
func TestRepeaterFunc_Delegates(t *testing.T) {
	var gotText string
	var gotTimes int

	var r Repeater = RepeaterFunc(func(_ context.Context, text string, times int) (string, error) {
		gotText, gotTimes = text, times
		return strings.Repeat(text, times), nil
	})

	result, err := r.Repeat(context.Background(), "ab", 3)

	require.NoError(t, err)
	assert.Equal(t, "ababab", result)
	assert.Equal(t, "ab", gotText)
	assert.Equal(t, 3, gotTimes)
}

// TestRepeaterFunc_PropagatesError verifies that errors are returned unchanged.
func TestRepeaterFunc_PropagatesError(t *testing.T) {
	sentinel := errors.New("boom")

	r := RepeaterFunc(func(context.Context, string, int) (string, error) {
		return "", sentinel
	})

	_, err := r.Repeat(context.Background(), "x", 1)

	require.ErrorIs(t, err, sentinel)
}
