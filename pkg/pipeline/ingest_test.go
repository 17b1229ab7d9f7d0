package pipeline

import (
	"fmt"
	"slices"
	"sync"
	"testing"

	"go.uber.org/zap"
)

func TestIngest_SingleFile(t *testing.T) {
	in := NewIngestor("", "", zap.NewNop())
	files := []File{
		{Name: "a.log", Data: []byte("%@1%May 3 10:20:30:123 2025 started\n%@2%no timestamp here\n")},
	}

	entries, failed := in.Ingest(files, nil)
	if len(failed) != 0 {
		t.Fatalf("failed = %v, want none", failed)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}

	// Untimed entry sorts first.
	if entries[0].HasTime {
		t.Errorf("entries[0] = %+v, want the untimed entry first", entries[0])
	}
	if !entries[1].HasTime || entries[1].TimeText != "May 3 10:20:30:123 2025" {
		t.Errorf("entries[1] = %+v, want extracted timestamp", entries[1])
	}
	if entries[1].Source != "a.log" {
		t.Errorf("Source = %q, want %q", entries[1].Source, "a.log")
	}
}

func TestIngest_PartialFailureIsolation(t *testing.T) {
	in := NewIngestor("", "", zap.NewNop())
	files := []File{
		{Name: "good1.log", Data: []byte("%@1%May 3 10:20:30:100 2025 one\n")},
		{Name: "bad.log", Data: nil}, // empty bytes: DecodeError
		{Name: "good2.log", Data: []byte("%@1%May 3 10:20:31:100 2025 two\n")},
	}

	entries, failed := in.Ingest(files, nil)

	if !slices.Equal(failed, []string{"bad.log"}) {
		t.Errorf("failed = %v, want [bad.log]", failed)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	for _, e := range entries {
		if e.Source == "bad.log" {
			t.Errorf("entry from failed file leaked: %+v", e)
		}
	}
}

func TestIngest_FileWithNoEntriesIsFailed(t *testing.T) {
	in := NewIngestor("", "", zap.NewNop())
	files := []File{
		{Name: "markerless.log", Data: []byte("plain text without any frame markers\n")},
	}

	entries, failed := in.Ingest(files, nil)
	if len(entries) != 0 {
		t.Errorf("got %d entries, want 0", len(entries))
	}
	if !slices.Equal(failed, []string{"markerless.log"}) {
		t.Errorf("failed = %v, want [markerless.log]", failed)
	}
}

func TestIngest_SortedAcrossFiles(t *testing.T) {
	in := NewIngestor("", "", zap.NewNop())

	// Later timestamps deliberately placed in the first file.
	files := []File{
		{Name: "b.log", Data: []byte("%@1%May 3 10:20:32:000 2025 third\n%@2%May 3 10:20:34:000 2025 fifth\n")},
		{Name: "a.log", Data: []byte("%@1%May 3 10:20:31:000 2025 second\n%@2%May 3 10:20:33:000 2025 fourth\n%@3%May 3 10:20:30:000 2025 first\n")},
	}

	entries, failed := in.Ingest(files, nil)
	if len(failed) != 0 {
		t.Fatalf("failed = %v, want none", failed)
	}

	var got []string
	for _, e := range entries {
		got = append(got, e.Content[len(e.TimeText)+1:])
	}
	want := []string{"first", "second", "third", "fourth", "fifth"}
	if !slices.Equal(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestIngest_DeterministicAcrossRuns(t *testing.T) {
	in := NewIngestor("", "", zap.NewNop())

	var files []File
	for i := 0; i < 8; i++ {
		// Same timestamp everywhere: order must fall back to stable
		// input order, regardless of which worker finishes first.
		files = append(files, File{
			Name: fmt.Sprintf("f%d.log", i),
			Data: []byte(fmt.Sprintf("%%@1%%May 3 10:20:30:000 2025 from-%d\n", i)),
		})
	}

	first, _ := in.Ingest(files, nil)
	for run := 0; run < 5; run++ {
		again, _ := in.Ingest(files, nil)
		for i := range first {
			if again[i].Content != first[i].Content {
				t.Fatalf("run %d: entry[%d] = %q, want %q", run, i, again[i].Content, first[i].Content)
			}
		}
	}
}

func TestIngest_ProgressMonotonicWithSortCheckpoint(t *testing.T) {
	in := NewIngestor("", "", zap.NewNop())

	var files []File
	for i := 0; i < 6; i++ {
		files = append(files, File{
			Name: fmt.Sprintf("f%d.log", i),
			Data: []byte("%@1%May 3 10:20:30:000 2025 x\n"),
		})
	}

	var mu sync.Mutex
	var seen []int
	_, _ = in.Ingest(files, func(p int) {
		mu.Lock()
		seen = append(seen, p)
		mu.Unlock()
	})

	if len(seen) == 0 {
		t.Fatal("no progress reported")
	}
	for i := 1; i < len(seen); i++ {
		if seen[i] <= seen[i-1] {
			t.Fatalf("progress not strictly increasing: %v", seen)
		}
	}
	if seen[len(seen)-1] != ProgressSorted {
		t.Errorf("final progress = %d, want %d", seen[len(seen)-1], ProgressSorted)
	}
	for _, p := range seen[:len(seen)-1] {
		if p > ProgressIngestSpan {
			t.Errorf("per-file progress %d exceeds %d", p, ProgressIngestSpan)
		}
	}
}

func TestIngest_NoFiles(t *testing.T) {
	in := NewIngestor("", "", zap.NewNop())

	entries, failed := in.Ingest(nil, nil)
	if entries != nil || failed != nil {
		t.Errorf("Ingest(nil) = (%v, %v), want (nil, nil)", entries, failed)
	}
}
