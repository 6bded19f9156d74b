package app

import (
	"errors"
	"fmt"
)

// Output formats understood by the report writer.
const (
	FormatTable = "table"
	FormatYAML  = "yaml"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	DevicePaths []string // hcl files or directories
	Only        []string // device names to keep, all when empty
	Format      string

	LogFormat   string
	LogLevel    string
	WorkerCount int
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	var errs []error
	if len(cfg.DevicePaths) == 0 {
		errs = append(errs, errors.New("DevicePaths is a required configuration field and cannot be empty"))
	}
	if cfg.Format == "" {
		cfg.Format = FormatTable
	}
	if cfg.Format != FormatTable && cfg.Format != FormatYAML {
		errs = append(errs, fmt.Errorf("unknown output format %q, expected %q or %q", cfg.Format, FormatTable, FormatYAML))
	}
	if cfg.WorkerCount < 1 {
		errs = append(errs, fmt.Errorf("worker count must be at least 1, got %d", cfg.WorkerCount))
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return &cfg, nil
}
