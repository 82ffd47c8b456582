package logging

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type ctxKey struct{}

var defaultLogger = slog.Default()

// FromContext extracts the logger from context.
// Returns the default logger if no logger is found or ctx is nil.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := LoggerFromContext(ctx); ok {
		return logger
	}

	return defaultLogger
}

// LoggerFromContext returns the logger stored in ctx and whether one was found.
func LoggerFromContext(ctx context.Context) (*slog.Logger, bool) {
	if ctx == nil {
		return nil, false
	}

	logger, ok := ctx.Value(ctxKey{}).(*slog.Logger)

	return logger, ok && logger != nil
}

// WithContext stores a logger in the context.
func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// NewRunID returns a fresh identifier for one program execution.
func NewRunID() string {
	return uuid.New().String()
}

// WithRunID adds a run ID to the logger in context.
// Returns a new context with the enriched logger.
func WithRunID(ctx context.Context, runID string) context.Context {
	logger := FromContext(ctx).With(slog.String("run_id", runID))
	return WithContext(ctx, logger)
}

// SetDefault sets the default logger used when no logger is in context.
func SetDefault(logger *slog.Logger) {
	defaultLogger = logger
	slog.SetDefault(logger)
}
