// Package filter narrows an entry collection by time range or
// keywords, and computes keyword highlight spans. All functions are
// pure and order-preserving.
package filter

import (
	"time"

	"github.com/logsieve/logsieve/pkg/parser"
)

// ByTime keeps entries whose timestamp lies within the inclusive
// [start, end] range. A nil bound imposes no constraint on that side.
// Entries without a timestamp are always excluded when this filter is
// applied, even when both bounds are nil.
func ByTime(entries []parser.Entry, start, end *time.Time) []parser.Entry {
	result := make([]parser.Entry, 0, len(entries))
	for _, e := range entries {
		if !e.HasTime {
			continue
		}
		if start != nil && e.Timestamp.Before(*start) {
			continue
		}
		if end != nil && e.Timestamp.After(*end) {
			continue
		}
		result = append(result, e)
	}
	return result
}
