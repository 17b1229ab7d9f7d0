// Package parser provides log entry segmentation and timestamp extraction.
package parser

import (
	"slices"
	"time"
)

// Entry is one logical unit of log text, possibly spanning multiple
// lines. Entries are immutable once created; filtering only adds or
// removes entries from collections.
type Entry struct {
	// Content is the full original text of the entry. Never empty.
	Content string `json:"content"`

	// Timestamp is the extracted timestamp. Only meaningful when
	// HasTime is true.
	Timestamp time.Time `json:"timestamp"`

	// HasTime reports whether a timestamp was extracted.
	HasTime bool `json:"has_time"`

	// Source is the display name of the originating file.
	Source string `json:"source"`

	// TimeText is the raw substring matched as the timestamp, or
	// empty when no match was found.
	TimeText string `json:"time_text,omitempty"`
}

// SortEntries orders entries ascending by timestamp. Entries without a
// timestamp sort before all timestamped entries. The sort is stable, so
// arrival order is preserved among equal keys and the result is
// deterministic across runs.
func SortEntries(entries []Entry) {
	slices.SortStableFunc(entries, func(a, b Entry) int {
		switch {
		case !a.HasTime && !b.HasTime:
			return 0
		case !a.HasTime:
			return -1
		case !b.HasTime:
			return 1
		default:
			return a.Timestamp.Compare(b.Timestamp)
		}
	})
}
