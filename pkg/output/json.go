package output

import (
	"context"
	"encoding/json"
	"io"

	"github.com/logsieve/logsieve/pkg/filter"
	"github.com/logsieve/logsieve/pkg/parser"
)

// JSONFormatter renders reports as indented JSON for machine consumers.
type JSONFormatter struct {
	opts FormatOptions
}

// NewJSONFormatter creates a new JSON formatter with the given options.
func NewJSONFormatter(opts FormatOptions) *JSONFormatter {
	return &JSONFormatter{opts: opts}
}

// Name returns the format name.
func (f *JSONFormatter) Name() string {
	return "json"
}

// resultView is the default JSON shape: the entry set, highlights, and
// aggregates without run metadata.
type resultView struct {
	Entries     []parser.Entry        `json:"entries"`
	Highlights  map[int][]filter.Span `json:"highlights,omitempty"`
	FailedFiles []string              `json:"failed_files,omitempty"`
	Summary     Summary               `json:"summary"`
}

// Format renders the report as JSON. Quiet mode emits the summary
// object alone; verbose mode emits the full report including run
// metadata (config file, sources, timing).
func (f *JSONFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	switch {
	case f.opts.Quiet:
		return encoder.Encode(report.Summary)
	case f.opts.Verbose:
		return encoder.Encode(report)
	default:
		return encoder.Encode(resultView{
			Entries:     report.Entries,
			Highlights:  report.Highlights,
			FailedFiles: report.FailedFiles,
			Summary:     report.Summary,
		})
	}
}
