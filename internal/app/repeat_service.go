// Package app contains application services that orchestrate use cases.
// This is the application layer - it coordinates domain logic and
// infrastructure through ports.
package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen/repeater/internal/domain"
	"github.com/jsamuelsen/repeater/internal/platform/logging"
	"github.com/jsamuelsen/repeater/internal/ports"
)

// Compile-time check that RepeatService satisfies the port.
var _ ports.Repeater = (*RepeatService)(nil)

// RepeatService exposes domain.Repeat through the ports.Repeater contract,
// adding structured logging around each call.
type RepeatService struct {
	logger *slog.Logger
}

// RepeatServiceConfig contains configuration for the repeat service.
type RepeatServiceConfig struct {
	Logger *slog.Logger
}

// NewRepeatService creates a new repeat service.
// A nil config or logger falls back to slog.Default().
func NewRepeatService(cfg *RepeatServiceConfig) *RepeatService {
	logger := slog.Default()
	if cfg != nil && cfg.Logger != nil {
		logger = cfg.Logger
	}

	return &RepeatService{
		logger: logger.With(slog.String("component", "app.RepeatService")),
	}
}

// Repeat returns text repeated times times.
// Domain errors are returned unwrapped so callers can use errors.Is.
func (s *RepeatService) Repeat(ctx context.Context, text string, times int) (string, error) {
	logger := s.loggerFor(ctx).With(
		slog.String("method", "Repeat"),
		slog.Int("text_len", len(text)),
		slog.Int("times", times),
	)

	logger.DebugContext(ctx, "repeating text")

	result, err := domain.Repeat(text, times)
	if err != nil {
		logger.WarnContext(ctx, "repeat rejected", slog.Any("error", err))
		return "", err
	}

	logger.DebugContext(ctx, "repeated text", slog.Int("result_len", len(result)))

	return result, nil
}

// loggerFor prefers a logger carried in ctx (which holds the run ID) and
// falls back to the service logger.
func (s *RepeatService) loggerFor(ctx context.Context) *slog.Logger {
	if logger, ok := logging.LoggerFromContext(ctx); ok {
		return logger.With(slog.String("component", "app.RepeatService"))
	}

	return s.logger
}
