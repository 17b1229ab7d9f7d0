package parser

import (
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// DefaultFramePattern is the built-in frame pattern. It has no capture
// group, so it acts as an entry delimiter: entries are the text runs
// between consecutive `%@<digits>%` markers (see Segmenter).
const DefaultFramePattern = `%@\d+%`

// DefaultTimePattern is the built-in time pattern with the seven
// required capture groups: month name, day, hour, minute, second,
// millisecond, year.
const DefaultTimePattern = `(\w+)\s+(\d{1,2})\s+(\d{1,2}):(\d{1,2}):(\d{1,2}):(\d{1,3})\s+(\d{4})`

// TimeGroupCount is the number of capture groups a time pattern must have.
const TimeGroupCount = 7

// EffectivePattern compiles candidate and returns it, or falls back to
// the built-in fallback when candidate is blank or fails to compile.
// An invalid user pattern is a recoverable condition: the substitution
// is logged, never returned as an error. dotAll compiles the pattern
// in a mode where `.` matches newlines.
func EffectivePattern(candidate, fallback string, dotAll bool, logger *zap.Logger) *regexp.Regexp {
	prefix := ""
	if dotAll {
		prefix = "(?s)"
	}

	candidate = strings.TrimSpace(candidate)
	if candidate != "" {
		re, err := regexp.Compile(prefix + candidate)
		if err == nil {
			return re
		}
		logger.Warn("invalid pattern, using built-in default",
			zap.String("pattern", candidate),
			zap.Error(err))
	}

	return regexp.MustCompile(prefix + fallback)
}
