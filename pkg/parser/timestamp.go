package parser

import (
	"regexp"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// monthsByName maps three-letter month abbreviations to months.
// Unknown names default to January rather than failing.
var monthsByName = map[string]time.Month{
	"Jan": time.January, "Feb": time.February, "Mar": time.March,
	"Apr": time.April, "May": time.May, "Jun": time.June,
	"Jul": time.July, "Aug": time.August, "Sep": time.September,
	"Oct": time.October, "Nov": time.November, "Dec": time.December,
}

// TimeExtractor locates and parses timestamps inside entry text using
// a time pattern with seven capture groups: month name, day, hour,
// minute, second, millisecond, year.
type TimeExtractor struct {
	pattern *regexp.Regexp
}

// NewTimeExtractor compiles the time pattern, substituting the
// built-in default when pattern is blank, invalid, or does not have
// exactly seven capture groups.
func NewTimeExtractor(pattern string, logger *zap.Logger) *TimeExtractor {
	re := EffectivePattern(pattern, DefaultTimePattern, false, logger)
	if re.NumSubexp() != TimeGroupCount {
		logger.Warn("time pattern must have exactly seven capture groups, using built-in default",
			zap.String("pattern", pattern),
			zap.Int("groups", re.NumSubexp()))
		re = regexp.MustCompile(DefaultTimePattern)
	}
	return &TimeExtractor{pattern: re}
}

// Extract searches entry for the time pattern and parses the match
// into a timestamp with millisecond precision. A missing match or a
// malformed date (e.g. day 32) yields ok=false; this is expected and
// non-fatal, many real-world entries carry no timestamp. The raw
// matched text is returned even when parsing fails.
func (e *TimeExtractor) Extract(entry string) (ts time.Time, raw string, ok bool) {
	m := e.pattern.FindStringSubmatch(entry)
	if m == nil {
		return time.Time{}, "", false
	}
	raw = m[0]

	month, found := monthsByName[m[1]]
	if !found {
		month = time.January
	}

	fields := make([]int, 6)
	for i, g := range []string{m[2], m[3], m[4], m[5], m[6], m[7]} {
		n, err := strconv.Atoi(g)
		if err != nil {
			return time.Time{}, raw, false
		}
		fields[i] = n
	}
	day, hour, minute, sec, milli, year := fields[0], fields[1], fields[2], fields[3], fields[4], fields[5]

	ts = time.Date(year, month, day, hour, minute, sec, milli*int(time.Millisecond), time.UTC)

	// time.Date normalizes out-of-range fields (day 32 rolls into the
	// next month). Reject anything that did not round-trip.
	if ts.Year() != year || ts.Month() != month || ts.Day() != day ||
		ts.Hour() != hour || ts.Minute() != minute || ts.Second() != sec {
		return time.Time{}, raw, false
	}

	return ts, raw, true
}
