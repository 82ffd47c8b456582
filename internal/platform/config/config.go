// Package config provides configuration loading and management using koanf.
//
// All configuration is compiled into the binary: hardcoded defaults are
// overlaid with the embedded program.yaml. Nothing is read from the
// environment or the filesystem at runtime.
package config

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	kfs "github.com/knadh/koanf/providers/fs"
	"github.com/knadh/koanf/v2"
)

// Default configuration values.
const (
	// DefaultBanner is the first line the program prints.
	DefaultBanner = "repeater - repeat test"

	// DefaultText is the text the program repeats.
	DefaultText = "X"

	// DefaultCount is the number of repetitions the program prints.
	DefaultCount = 5

	// DefaultLogFileMaxSizeMB is the default max log file size in megabytes.
	DefaultLogFileMaxSizeMB = 100

	// DefaultLogFileMaxBackups is the default number of old log files to retain.
	DefaultLogFileMaxBackups = 3

	// DefaultLogFileMaxAgeDays is the default max days to retain old log files.
	DefaultLogFileMaxAgeDays = 28
)

// programFile is the embedded overlay applied on top of defaults().
const programFile = "program.yaml"

//go:embed program.yaml
var embedded embed.FS

// Config is the root configuration structure.
type Config struct {
	App     AppConfig     `koanf:"app"     validate:"required"`
	Program ProgramConfig `koanf:"program" validate:"required"`
	Log     LogConfig     `koanf:"log"     validate:"required"`
}

// AppConfig contains application-level settings.
type AppConfig struct {
	Name        string `koanf:"name"        validate:"required"`
	Version     string `koanf:"version"     validate:"required"`
	Environment string `koanf:"environment" validate:"required,oneof=local dev qa prod test"`
}

// ProgramConfig contains the literal inputs of the program.
// Text may be empty; Count must not be negative.
type ProgramConfig struct {
	Banner string `koanf:"banner" validate:"required"`
	Text   string `koanf:"text"`
	Count  int    `koanf:"count"  validate:"min=0"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string        `koanf:"level"  validate:"required,oneof=trace debug info warn error"`
	Format string        `koanf:"format" validate:"required,oneof=json text pretty"`
	File   LogFileConfig `koanf:"file"`
}

// LogFileConfig contains rolling log file settings.
type LogFileConfig struct {
	Enabled    bool   `koanf:"enabled"`
	Path       string `koanf:"path"        validate:"required_if=Enabled true"`
	MaxSizeMB  int    `koanf:"max_size"    validate:"omitempty,min=1,max=1024"`
	MaxBackups int    `koanf:"max_backups" validate:"omitempty,min=0,max=100"`
	MaxAgeDays int    `koanf:"max_age"     validate:"omitempty,min=0,max=365"`
	Compress   bool   `koanf:"compress"`
}

// defaults returns the default configuration values.
func defaults() map[string]any {
	return map[string]any{
		"app.name":        "repeater",
		"app.version":     "dev",
		"app.environment": "local",

		"program.banner": DefaultBanner,
		"program.text":   DefaultText,
		"program.count":  DefaultCount,

		"log.level":            "info",
		"log.format":           "pretty",
		"log.file.enabled":     false,
		"log.file.path":        "./logs/repeater.log",
		"log.file.max_size":    DefaultLogFileMaxSizeMB,
		"log.file.max_backups": DefaultLogFileMaxBackups,
		"log.file.max_age":     DefaultLogFileMaxAgeDays,
		"log.file.compress":    true,
	}
}

// Load loads configuration with the following precedence (highest to lowest):
//  1. Embedded program.yaml
//  2. Default values
func Load() (*Config, error) {
	return loadFrom(embedded, programFile)
}

// loadFrom layers the YAML document at path in fsys over the defaults.
// A missing document is not an error.
func loadFrom(fsys fs.FS, path string) (*Config, error) {
	k := koanf.New(".")

	// 1. Load defaults
	err := k.Load(confmap.Provider(defaults(), "."), nil)
	if err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	// 2. Load the overlay document if present
	if fsys != nil {
		if _, statErr := fs.Stat(fsys, path); statErr == nil {
			err = k.Load(kfs.Provider(fsys, path), yaml.Parser())
			if err != nil {
				return nil, fmt.Errorf("loading %s: %w", path, err)
			}
		}
	}

	// Unmarshal into Config struct
	var cfg Config

	err = k.Unmarshal("", &cfg)
	if err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return &cfg, nil
}
