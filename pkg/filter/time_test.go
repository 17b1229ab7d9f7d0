package filter

import (
	"testing"
	"time"

	"github.com/logsieve/logsieve/pkg/parser"
)

func TestByTime(t *testing.T) {
	base := time.Date(2025, time.May, 3, 10, 0, 0, 0, time.UTC)
	ts := func(offset time.Duration) time.Time { return base.Add(offset) }
	entries := []parser.Entry{
		{Content: "untimed"},
		{Content: "early", Timestamp: ts(-time.Hour), HasTime: true},
		{Content: "mid", Timestamp: ts(0), HasTime: true},
		{Content: "late", Timestamp: ts(time.Hour), HasTime: true},
	}

	tests := []struct {
		name  string
		start *time.Time
		end   *time.Time
		want  []string
	}{
		{
			name: "no bounds drops only untimed entries",
			want: []string{"early", "mid", "late"},
		},
		{
			name:  "start bound",
			start: ptr(ts(0)),
			want:  []string{"mid", "late"},
		},
		{
			name: "end bound",
			end:  ptr(ts(0)),
			want: []string{"early", "mid"},
		},
		{
			name:  "both bounds",
			start: ptr(ts(-time.Minute)),
			end:   ptr(ts(time.Minute)),
			want:  []string{"mid"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ByTime(entries, tt.start, tt.end)
			assertContents(t, got, tt.want)
		})
	}
}

func TestByTime_InclusiveUpperBound(t *testing.T) {
	end := time.Date(2025, time.May, 3, 10, 0, 0, 0, time.UTC)
	entries := []parser.Entry{
		{Content: "at-end", Timestamp: end, HasTime: true},
		{Content: "past-end", Timestamp: end.Add(time.Millisecond), HasTime: true},
	}

	got := ByTime(entries, nil, &end)
	assertContents(t, got, []string{"at-end"})
}

func ptr(t time.Time) *time.Time { return &t }

func assertContents(t *testing.T, got []parser.Entry, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d entries, want %d (%v)", len(got), len(want), want)
	}
	for i, w := range want {
		if got[i].Content != w {
			t.Errorf("entry[%d] = %q, want %q", i, got[i].Content, w)
		}
	}
}
