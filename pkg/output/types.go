// Package output provides formatting for analysis results.
package output

import (
	"time"

	"github.com/logsieve/logsieve/pkg/filter"
	"github.com/logsieve/logsieve/pkg/parser"
)

// Report is the complete analysis output handed to a formatter.
type Report struct {
	// Entries is the final ordered entry set.
	Entries []parser.Entry `json:"entries"`

	// Highlights maps entry index to keyword spans. Populated only in
	// highlight mode.
	Highlights map[int][]filter.Span `json:"highlights,omitempty"`

	// FailedFiles lists files excluded from the working set.
	FailedFiles []string `json:"failed_files,omitempty"`

	// Summary provides aggregate statistics.
	Summary Summary `json:"summary"`

	// Metadata provides context about the analysis run.
	Metadata Metadata `json:"metadata"`
}

// Summary provides aggregate statistics.
type Summary struct {
	// TotalEntries is the size of the final entry set.
	TotalEntries int `json:"total_entries"`

	// TimedEntries is how many final entries carry a timestamp.
	TimedEntries int `json:"timed_entries"`

	// FilesProcessed is the number of input files.
	FilesProcessed int `json:"files_processed"`

	// FilesFailed is the number of files excluded from the set.
	FilesFailed int `json:"files_failed"`
}

// Metadata provides context about the analysis run.
type Metadata struct {
	// ConfigFile is the configuration file path used.
	ConfigFile string `json:"config_file,omitempty"`

	// Sources lists the files that were ingested.
	Sources []string `json:"sources"`

	// Mode is the keyword mode that was applied (filter or highlight).
	Mode string `json:"mode"`

	// AnalyzedAt is when the analysis was performed.
	AnalyzedAt time.Time `json:"analyzed_at"`

	// Duration is how long the analysis took.
	Duration time.Duration `json:"duration"`
}

// NewReport assembles a Report from the final entry set.
func NewReport(entries []parser.Entry, failed []string, sources []string, mode string) *Report {
	timed := 0
	for _, e := range entries {
		if e.HasTime {
			timed++
		}
	}
	return &Report{
		Entries:     entries,
		FailedFiles: failed,
		Summary: Summary{
			TotalEntries:   len(entries),
			TimedEntries:   timed,
			FilesProcessed: len(sources),
			FilesFailed:    len(failed),
		},
		Metadata: Metadata{
			Sources:    sources,
			Mode:       mode,
			AnalyzedAt: time.Now(),
		},
	}
}
