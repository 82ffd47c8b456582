// Package main is the entry point for the repeater program.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jsamuelsen/repeater/internal/adapters/console"
	"github.com/jsamuelsen/repeater/internal/app"
	"github.com/jsamuelsen/repeater/internal/platform/config"
	"github.com/jsamuelsen/repeater/internal/platform/logging"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the program.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildTime is the timestamp when the binary was built.
	BuildTime = "unknown"
)

func main() {
	if err := run(context.Background(), os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run prints the banner and the repeated text to stdout.
// Logs go to stderr so stdout carries exactly the program output.
func run(ctx context.Context, stdout, stderr io.Writer) error {
	// 1. Load and validate the compiled-in configuration (fail fast)
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// 2. Initialize logging
	version := resolveVersion(cfg.App.Version)

	logger := logging.NewWithWriter(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	}, stderr)
	logging.SetDefault(logger)

	ctx = logging.WithContext(ctx, logger)
	ctx = logging.WithRunID(ctx, logging.NewRunID())

	logging.FromContext(ctx).DebugContext(ctx, "starting",
		slog.String("version", version),
		slog.String("commit", Commit),
		slog.String("build_time", BuildTime),
		slog.String("environment", cfg.App.Environment),
	)

	// 3. Wire the program
	program, err := app.NewProgram(app.ProgramConfig{
		Repeater: app.NewRepeatService(&app.RepeatServiceConfig{Logger: logger}),
		Output:   console.NewPrinter(stdout),
		Banner:   cfg.Program.Banner,
		Text:     cfg.Program.Text,
		Count:    cfg.Program.Count,
	})
	if err != nil {
		return fmt.Errorf("creating program: %w", err)
	}

	// 4. Run once
	if err := program.Run(ctx); err != nil {
		return fmt.Errorf("running program: %w", err)
	}

	return nil
}

// resolveVersion prefers the ldflags Version over the configured one.
func resolveVersion(configured string) string {
	if Version != "dev" {
		return Version
	}

	return configured
}
