package output

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"
)

// TextFormatter formats reports as human-readable text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if f.opts.Quiet {
		return f.formatQuiet(report, w)
	}
	return f.formatFull(report, w)
}

func (f *TextFormatter) formatQuiet(report *Report, w io.Writer) error {
	fmt.Fprintf(w, "logsieve: %d entries from %d file(s), %d failed\n",
		report.Summary.TotalEntries,
		report.Summary.FilesProcessed,
		report.Summary.FilesFailed)
	return nil
}

func (f *TextFormatter) formatFull(report *Report, w io.Writer) error {
	for i, e := range report.Entries {
		if f.opts.Verbose {
			fmt.Fprintf(w, "[%s", filepath.Base(e.Source))
			if e.HasTime {
				fmt.Fprintf(w, " %s", e.Timestamp.Format("2006-01-02 15:04:05.000"))
			}
			fmt.Fprintln(w, "]")
		}
		fmt.Fprintln(w, e.Content)

		if spans, ok := report.Highlights[i]; ok && len(spans) > 0 {
			fmt.Fprint(w, "highlights:")
			for _, s := range spans {
				fmt.Fprintf(w, " [%d:%d]", s.Start, s.End)
			}
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w)
	}

	if len(report.FailedFiles) > 0 {
		fmt.Fprintln(w, "Failed files:")
		for _, name := range report.FailedFiles {
			fmt.Fprintf(w, "  - %s\n", name)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "---\nSummary: %d entries (%d with timestamps) from %d file(s), %d failed\n",
		report.Summary.TotalEntries,
		report.Summary.TimedEntries,
		report.Summary.FilesProcessed,
		report.Summary.FilesFailed)

	if f.opts.Verbose {
		fmt.Fprintf(w, "Duration: %s\n", report.Metadata.Duration.Round(time.Millisecond))
	}

	return nil
}
