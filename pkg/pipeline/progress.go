package pipeline

import "sync"

// Progress checkpoint values reported after each pipeline stage.
// Per-file ingestion progress covers 0..50; the remaining checkpoints
// are fixed.
const (
	ProgressIngestSpan      = 50
	ProgressSorted          = 60
	ProgressTimeFiltered    = 80
	ProgressKeywordFiltered = 90
	ProgressDone            = 100
)

// ProgressFunc receives advisory progress values in [0, 100]. It may
// be called from multiple goroutines; the pipeline serializes calls.
type ProgressFunc func(percent int)

// reporter serializes progress callbacks across worker goroutines and
// enforces monotonically non-decreasing values.
type reporter struct {
	mu   sync.Mutex
	fn   ProgressFunc
	last int
}

func newReporter(fn ProgressFunc) *reporter {
	return &reporter{fn: fn}
}

func (r *reporter) report(percent int) {
	if r == nil || r.fn == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if percent <= r.last {
		return
	}
	r.last = percent
	r.fn(percent)
}
