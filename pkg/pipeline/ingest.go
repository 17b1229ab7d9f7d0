// Package pipeline orchestrates multi-file log ingestion: encoding
// resolution, entry segmentation, and timestamp extraction across a
// bounded worker pool, with per-file failure isolation.
package pipeline

import (
	"runtime"
	"sync"

	"go.uber.org/zap"

	"github.com/logsieve/logsieve/pkg/charset"
	"github.com/logsieve/logsieve/pkg/parser"
)

// File is the raw content of one log file plus its display name. The
// pipeline does not retain files after processing.
type File struct {
	Name string
	Data []byte
}

// Ingestor runs the ingestion pipeline with a fixed pattern
// configuration. Pattern fallback for invalid user patterns happens at
// construction time.
type Ingestor struct {
	segmenter *parser.Segmenter
	extractor *parser.TimeExtractor
	logger    *zap.Logger
}

// NewIngestor builds an Ingestor. Blank or invalid patterns fall back
// to the built-in defaults.
func NewIngestor(framePattern, timePattern string, logger *zap.Logger) *Ingestor {
	return &Ingestor{
		segmenter: parser.NewSegmenter(framePattern, logger),
		extractor: parser.NewTimeExtractor(timePattern, logger),
		logger:    logger,
	}
}

// fileResult is the shared-nothing output of one per-file task.
type fileResult struct {
	entries []parser.Entry
	failed  bool
}

// Ingest processes files in parallel and returns the union of their
// entries, sorted ascending by timestamp with untimed entries first,
// plus the names of files that failed (undecodable or yielded zero
// entries). A failing file never aborts its siblings.
//
// onProgress, if non-nil, receives values in [0, 50] as files complete
// and ProgressSorted once aggregation finishes. It is serialized and
// monotonically non-decreasing.
func (in *Ingestor) Ingest(files []File, onProgress ProgressFunc) ([]parser.Entry, []string) {
	if len(files) == 0 {
		return nil, nil
	}

	progress := newReporter(onProgress)
	results := make([]fileResult, len(files))

	workers := min(runtime.NumCPU(), len(files))
	jobs := make(chan int)
	var wg sync.WaitGroup
	var completed int64

	var mu sync.Mutex // guards completed
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = in.processFile(files[i])

				mu.Lock()
				completed++
				done := completed
				mu.Unlock()
				progress.report(int(done) * ProgressIngestSpan / len(files))
			}
		}()
	}
	for i := range files {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	var all []parser.Entry
	var failed []string
	for i, r := range results {
		if r.failed {
			failed = append(failed, files[i].Name)
			continue
		}
		all = append(all, r.entries...)
	}

	parser.SortEntries(all)
	progress.report(ProgressSorted)

	return all, failed
}

// processFile runs the full per-file pipeline: decode, segment,
// extract. Per-entry failures are logged and skipped without failing
// the file.
func (in *Ingestor) processFile(file File) fileResult {
	text, err := charset.Resolve(file.Data, file.Name)
	if err != nil {
		in.logger.Error("cannot decode file", zap.String("file", file.Name), zap.Error(err))
		return fileResult{failed: true}
	}

	var entries []parser.Entry
	for segment := range in.segmenter.Entries(text) {
		entry, ok := in.buildEntry(segment, file.Name)
		if !ok {
			continue
		}
		entries = append(entries, entry)
	}

	if len(entries) == 0 {
		in.logger.Warn("file yielded no entries", zap.String("file", file.Name))
		return fileResult{failed: true}
	}

	in.logger.Info("file ingested",
		zap.String("file", file.Name),
		zap.Int("entries", len(entries)))
	return fileResult{entries: entries}
}

// buildEntry constructs one Entry from a segment. A panic while
// extracting is recovered here so a single pathological entry cannot
// take down its file.
func (in *Ingestor) buildEntry(segment, source string) (entry parser.Entry, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			in.logger.Error("skipping entry after extraction panic",
				zap.String("file", source),
				zap.Any("panic", r))
			ok = false
		}
	}()

	ts, raw, hasTime := in.extractor.Extract(segment)
	return parser.Entry{
		Content:   segment,
		Timestamp: ts,
		HasTime:   hasTime,
		Source:    source,
		TimeText:  raw,
	}, true
}
