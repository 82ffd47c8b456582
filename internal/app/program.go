package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen/repeater/internal/domain"
	"github.com/jsamuelsen/repeater/internal/platform/logging"
	"github.com/jsamuelsen/repeater/internal/ports"
)

// Program is the single use case of the binary: print a banner, then print
// the configured text repeated the configured number of times.
type Program struct {
	repeater ports.Repeater
	output   ports.Output
	banner   string
	text     string
	count    int
}

// ProgramConfig contains the dependencies and literal inputs of a Program.
type ProgramConfig struct {
	Repeater ports.Repeater
	Output   ports.Output
	Banner   string
	Text     string
	Count    int
}

// NewProgram creates a Program. Repeater and Output are required.
func NewProgram(cfg ProgramConfig) (*Program, error) {
	if cfg.Repeater == nil {
		return nil, domain.NewValidationError("repeater", "is required")
	}

	if cfg.Output == nil {
		return nil, domain.NewValidationError("output", "is required")
	}

	return &Program{
		repeater: cfg.Repeater,
		output:   cfg.Output,
		banner:   cfg.Banner,
		text:     cfg.Text,
		count:    cfg.Count,
	}, nil
}

// Run writes exactly two lines: the banner and the repeated text.
// If repeating fails only the banner has been written.
func (p *Program) Run(ctx context.Context) error {
	logger := logging.FromContext(ctx)

	if err := p.output.WriteLine(ctx, p.banner); err != nil {
		return fmt.Errorf("writing banner: %w", err)
	}

	result, err := p.repeater.Repeat(ctx, p.text, p.count)
	if err != nil {
		return fmt.Errorf("repeating text: %w", err)
	}

	if err := p.output.WriteLine(ctx, result); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}

	logger.InfoContext(ctx, "program finished",
		slog.Int("count", p.count),
		slog.Int("result_len", len(result)),
	)

	return nil
}
