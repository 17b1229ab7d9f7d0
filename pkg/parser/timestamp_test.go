package parser

import (
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestTimeExtractor_Extract(t *testing.T) {
	e := NewTimeExtractor("", zap.NewNop())

	tests := []struct {
		name    string
		entry   string
		want    time.Time
		wantRaw string
		wantOK  bool
	}{
		{
			name:    "timestamp inside entry",
			entry:   "prefix May 3 10:20:30:123 2025 suffix",
			want:    time.Date(2025, time.May, 3, 10, 20, 30, 123*int(time.Millisecond), time.UTC),
			wantRaw: "May 3 10:20:30:123 2025",
			wantOK:  true,
		},
		{
			name:   "no match",
			entry:  "nothing that looks like a timestamp",
			wantOK: false,
		},
		{
			name:    "unknown month defaults to January",
			entry:   "Xyz 3 10:20:30:123 2025",
			want:    time.Date(2025, time.January, 3, 10, 20, 30, 123*int(time.Millisecond), time.UTC),
			wantRaw: "Xyz 3 10:20:30:123 2025",
			wantOK:  true,
		},
		{
			name:    "day out of range rejected",
			entry:   "May 32 10:20:30:123 2025",
			wantRaw: "May 32 10:20:30:123 2025",
			wantOK:  false,
		},
		{
			name:    "hour out of range rejected",
			entry:   "May 3 25:20:30:123 2025",
			wantRaw: "May 3 25:20:30:123 2025",
			wantOK:  false,
		},
		{
			name:   "empty entry",
			entry:  "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, raw, ok := e.Extract(tt.entry)
			if ok != tt.wantOK {
				t.Fatalf("Extract() ok = %v, want %v", ok, tt.wantOK)
			}
			if raw != tt.wantRaw {
				t.Errorf("Extract() raw = %q, want %q", raw, tt.wantRaw)
			}
			if tt.wantOK && !got.Equal(tt.want) {
				t.Errorf("Extract() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewTimeExtractor_WrongGroupCountFallsBack(t *testing.T) {
	// Two groups instead of seven: the default pattern takes over.
	e := NewTimeExtractor(`(\w+) (\d+)`, zap.NewNop())

	got, _, ok := e.Extract("May 3 10:20:30:123 2025")
	if !ok {
		t.Fatal("Extract() ok = false, want true after fallback")
	}
	want := time.Date(2025, time.May, 3, 10, 20, 30, 123*int(time.Millisecond), time.UTC)
	if !got.Equal(want) {
		t.Errorf("Extract() = %v, want %v", got, want)
	}
}

func TestSortEntries(t *testing.T) {
	ts := func(sec int) time.Time {
		return time.Date(2025, time.May, 3, 10, 0, sec, 0, time.UTC)
	}
	entries := []Entry{
		{Content: "c", Timestamp: ts(30), HasTime: true},
		{Content: "n1"},
		{Content: "a", Timestamp: ts(10), HasTime: true},
		{Content: "n2"},
		{Content: "b", Timestamp: ts(20), HasTime: true},
	}

	SortEntries(entries)

	want := []string{"n1", "n2", "a", "b", "c"}
	for i, w := range want {
		if entries[i].Content != w {
			t.Fatalf("entries[%d] = %q, want %q (full order %+v)", i, entries[i].Content, w, entries)
		}
	}

	// Idempotent: sorting again yields the same sequence.
	before := make([]Entry, len(entries))
	copy(before, entries)
	SortEntries(entries)
	for i := range entries {
		if entries[i].Content != before[i].Content {
			t.Fatalf("re-sort changed order at %d: %q != %q", i, entries[i].Content, before[i].Content)
		}
	}
}
