package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/repeater/internal/domain"
	"github.com/jsamuelsen/repeater/internal/mocks"
	"github.com/jsamuelsen/repeater/internal/platform/logging"
)

func TestNewProgram_RequiresDependencies(t *testing.T) {
	tests := []struct {
		name  string
		cfg   ProgramConfig
		field string
	}{
		{
			name:  "missing repeater",
			cfg:   ProgramConfig{Output: mocks.NewMockOutput(t)},
			field: "repeater",
		},
		{
			name:  "missing output",
			cfg:   ProgramConfig{Repeater: mocks.NewMockRepeater(t)},
			field: "output",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProgram(tt.cfg)

			require.Error(t, err)
			assert.Nil(t, p)
			assert.True(t, domain.IsValidation(err))

			var valErr *domain.ValidationError
			require.ErrorAs(t, err, &valErr)
			assert.Equal(t, tt.field, valErr.Field)
		})
	}
}

func TestProgram_Run_WritesBannerThenResult(t *testing.T) {
	repeater := mocks.NewMockRepeater(t)
	output := mocks.NewMockOutput(t)

	var lines []string
	record := func(_ context.Context, line string) error {
		lines = append(lines, line)
		return nil
	}

	output.EXPECT().WriteLine(mock.Anything, "banner").RunAndReturn(record).Once()
	repeater.EXPECT().Repeat(mock.Anything, "X", 5).Return("XXXXX", nil).Once()
	output.EXPECT().WriteLine(mock.Anything, "XXXXX").RunAndReturn(record).Once()

	p, err := NewProgram(ProgramConfig{
		Repeater: repeater,
		Output:   output,
		Banner:   "banner",
		Text:     "X",
		Count:    5,
	})
	require.NoError(t, err)

	ctx := logging.WithContext(context.Background(), discardLogger())
	require.NoError(t, p.Run(ctx))

	assert.Equal(t, []string{"banner", "XXXXX"}, lines)
}

func TestProgram_Run_RepeatErrorStopsAfterBanner(t *testing.T) {
	repeater := mocks.NewMockRepeater(t)
	output := mocks.NewMockOutput(t)

	output.EXPECT().WriteLine(mock.Anything, "banner").Return(nil).Once()
	repeater.EXPECT().Repeat(mock.Anything, "X", -1).
		Return("", domain.NewValidationError("times", "must not be negative")).Once()

	p, err := NewProgram(ProgramConfig{
		Repeater: repeater,
		Output:   output,
		Banner:   "banner",
		Text:     "X",
		Count:    -1,
	})
	require.NoError(t, err)

	err = p.Run(context.Background())

	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.Contains(t, err.Error(), "repeating text")
	output.AssertNumberOfCalls(t, "WriteLine", 1)
}

func TestProgram_Run_OutputErrors(t *testing.T) {
	writeErr := errors.New("broken pipe")

	t.Run("banner write fails", func(t *testing.T) {
		repeater := mocks.NewMockRepeater(t)
		output := mocks.NewMockOutput(t)

		output.EXPECT().WriteLine(mock.Anything, "banner").Return(writeErr).Once()

		p, err := NewProgram(ProgramConfig{Repeater: repeater, Output: output, Banner: "banner", Text: "X", Count: 1})
		require.NoError(t, err)

		err = p.Run(context.Background())
		require.ErrorIs(t, err, writeErr)
		assert.Contains(t, err.Error(), "writing banner")
		repeater.AssertNotCalled(t, "Repeat", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("result write fails", func(t *testing.T) {
		repeater := mocks.NewMockRepeater(t)
		output := mocks.NewMockOutput(t)

		output.EXPECT().WriteLine(mock.Anything, "banner").Return(nil).Once()
		repeater.EXPECT().Repeat(mock.Anything, "X", 1).Return("X", nil).Once()
		output.EXPECT().WriteLine(mock.Anything, "X").Return(writeErr).Once()

		p, err := NewProgram(ProgramConfig{Repeater: repeater, Output: output, Banner: "banner", Text: "X", Count: 1})
		require.NoError(t, err)

		err = p.Run(context.Background())
		require.ErrorIs(t, err, writeErr)
		assert.Contains(t, err.Error(), "writing result")
	})
}
