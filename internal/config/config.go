// Package config manages imgrename settings.
//
// There is no config file. Defaults can be overridden with environment
// variables, and command-line flags override both:
//   - IMGRENAME_LOG_LEVEL: debug, info, warn (default) or error
//   - IMGRENAME_PREVIEW_LIMIT: rows shown by preview (default 200, 0 = all)
//   - IMGRENAME_START_INDEX: first sequence number (default 1, at most 9999)
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/danieljhkim/imgrename/internal/logging"
	"github.com/danieljhkim/imgrename/internal/planner"
)

// Environment variable names.
const (
	EnvLogLevel     = "IMGRENAME_LOG_LEVEL"
	EnvPreviewLimit = "IMGRENAME_PREVIEW_LIMIT"
	EnvStartIndex   = "IMGRENAME_START_INDEX"
)

// Defaults.
const (
	DefaultPreviewLimit = 200
	DefaultStartIndex   = 1
)

// Config contains the settings used by the CLI.
type Config struct {
	// LogLevel is the minimum level written to stderr
	LogLevel string

	// PreviewLimit caps the number of rows printed by preview (0 = no cap)
	PreviewLimit int

	// StartIndex is the default first sequence number
	StartIndex int
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel:     logging.DefaultLevel,
		PreviewLimit: DefaultPreviewLimit,
		StartIndex:   DefaultStartIndex,
	}
}

// Load returns the default configuration with environment overrides applied.
func Load() (*Config, error) {
	cfg := Default()

	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		if _, err := logging.ParseLevel(v); err != nil {
			return nil, fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
		cfg.LogLevel = v
	}

	if v := strings.TrimSpace(os.Getenv(EnvPreviewLimit)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%s: expected a non-negative integer, got %q", EnvPreviewLimit, v)
		}
		cfg.PreviewLimit = n
	}

	if v := strings.TrimSpace(os.Getenv(EnvStartIndex)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > planner.MaxStartIndex {
			return nil, fmt.Errorf("%s: expected an integer between 1 and %d, got %q", EnvStartIndex, planner.MaxStartIndex, v)
		}
		cfg.StartIndex = n
	}

	return cfg, nil
}
