package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a configuration file.
func Load(_ context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for structural errors. Pattern
// compile failures are deliberately not errors here: they fall back to
// the built-in defaults at analysis time.
func Validate(cfg *Config) error {
	if len(cfg.Sources) == 0 {
		return errors.New("sources: at least one log source is required")
	}

	if cfg.Mode == "" {
		cfg.Mode = ModeFilter
	}
	switch cfg.Mode {
	case ModeFilter, ModeHighlight:
	default:
		return fmt.Errorf("mode: invalid mode %q (must be filter or highlight)", cfg.Mode)
	}

	if cfg.TimeRange != nil {
		start, end, err := cfg.TimeRange.Bounds()
		if err != nil {
			return fmt.Errorf("time_range: %w", err)
		}
		if start != nil && end != nil && end.Before(*start) {
			return errors.New("time_range: end is before start")
		}
	}

	if cfg.Export != nil && strings.TrimSpace(cfg.Export.Path) == "" {
		return errors.New("export: path is required")
	}

	return nil
}

// Bounds parses the configured range into optional time bounds.
func (r *TimeRange) Bounds() (start, end *time.Time, err error) {
	if r == nil {
		return nil, nil, nil
	}
	if start, err = parseBound(r.Start); err != nil {
		return nil, nil, fmt.Errorf("start: %w", err)
	}
	if end, err = parseBound(r.End); err != nil {
		return nil, nil, fmt.Errorf("end: %w", err)
	}
	return start, end, nil
}

func parseBound(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("cannot parse time %q", value)
}
