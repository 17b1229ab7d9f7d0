// Package config provides configuration loading and validation for logsieve.
package config

import (
	"regexp"

	"github.com/logsieve/logsieve/pkg/parser"
)

// Mode selects how keywords are applied to the working set.
type Mode string

const (
	// ModeFilter removes entries that match no keyword.
	ModeFilter Mode = "filter"

	// ModeHighlight keeps every entry and computes highlight spans
	// for keyword occurrences.
	ModeHighlight Mode = "highlight"
)

// Config is the root configuration structure loaded from YAML.
type Config struct {
	// Sources lists log file paths or glob patterns.
	Sources []string `yaml:"sources"`

	// FramePattern overrides the built-in frame pattern. Blank or
	// invalid values fall back to the default at analysis time.
	FramePattern string `yaml:"frame_pattern,omitempty"`

	// TimePattern overrides the built-in time pattern. Blank or
	// invalid values fall back to the default at analysis time.
	TimePattern string `yaml:"time_pattern,omitempty"`

	// TimeRange optionally restricts entries to an inclusive window.
	TimeRange *TimeRange `yaml:"time_range,omitempty"`

	// Keywords are free-text terms (literal or regex) combined with
	// OR semantics.
	Keywords []string `yaml:"keywords,omitempty"`

	// Mode is filter or highlight. Defaults to filter.
	Mode Mode `yaml:"mode,omitempty"`

	// Export optionally writes the final entry set to a file.
	Export *ExportConfig `yaml:"export,omitempty"`
}

// TimeRange is an inclusive timestamp window. Either bound may be
// blank, imposing no constraint on that side. Accepted layouts:
// RFC3339 or "2006-01-02 15:04:05".
type TimeRange struct {
	Start string `yaml:"start,omitempty"`
	End   string `yaml:"end,omitempty"`
}

// ExportConfig controls the export surface.
type ExportConfig struct {
	// Path is the output file path.
	Path string `yaml:"path"`

	// IncludeSource prepends a "Source: <file>" line to each entry.
	IncludeSource bool `yaml:"include_source,omitempty"`
}

// FramePatternValid reports whether the configured frame pattern would
// be used as-is rather than replaced by the built-in default.
func (c *Config) FramePatternValid() bool {
	if c.FramePattern == "" {
		return true // blank means "use default", not a fallback
	}
	_, err := regexp.Compile("(?s)" + c.FramePattern)
	return err == nil
}

// TimePatternValid reports whether the configured time pattern would
// be used as-is rather than replaced by the built-in default.
func (c *Config) TimePatternValid() bool {
	if c.TimePattern == "" {
		return true
	}
	re, err := regexp.Compile(c.TimePattern)
	return err == nil && re.NumSubexp() == parser.TimeGroupCount
}
