package config

import "os"

// Environment variable names.
const (
	EnvFramePattern = "LOGSIEVE_FRAME_PATTERN"
	EnvTimePattern  = "LOGSIEVE_TIME_PATTERN"
)

// Accepted time range layouts, tried in order.
var timeLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Sources: []string{},
		Mode:    ModeFilter,
	}
}

// applyEnvironmentOverrides applies environment variable overrides.
func (c *Config) applyEnvironmentOverrides() {
	if p := os.Getenv(EnvFramePattern); p != "" {
		c.FramePattern = p
	}
	if p := os.Getenv(EnvTimePattern); p != "" {
		c.TimePattern = p
	}
}
