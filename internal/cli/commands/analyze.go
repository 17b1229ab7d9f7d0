package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/logsieve/logsieve/pkg/config"
	"github.com/logsieve/logsieve/pkg/export"
	"github.com/logsieve/logsieve/pkg/filter"
	"github.com/logsieve/logsieve/pkg/output"
	"github.com/logsieve/logsieve/pkg/parser"
	"github.com/logsieve/logsieve/pkg/pipeline"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// AnalyzeOptions holds command-line options for the analyze command.
type AnalyzeOptions struct {
	Output   string
	Mode     string
	Keywords []string
	Verbose  bool
	Quiet    bool

	// Export options
	ExportPath string
	WithSource bool
}

// NewAnalyzeCommand creates the analyze command.
func NewAnalyzeCommand() *cobra.Command {
	opts := &AnalyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze <config-file>",
		Short: "Ingest, sort, and filter log files",
		Long: `Ingest the log files named in the configuration, merge their entries
into one timestamp-ordered collection, then filter by time range and
keywords (filter mode) or compute keyword highlight spans (highlight
mode).

Files that cannot be decoded or yield no entries are reported and
excluded without aborting the rest.

Exit codes:
  0 - All files ingested
  1 - One or more files failed ingestion
  2 - Configuration or runtime error`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, args, opts)
		},
	}

	// Flags
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().StringVar(&opts.Mode, "mode", "", "Keyword mode (filter|highlight), overrides config")
	cmd.Flags().StringSliceVar(&opts.Keywords, "keyword", nil, "Keyword to match (can be repeated), overrides config")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show per-entry source and timestamp details")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Summary only, no entries")

	// Export flags
	cmd.Flags().StringVar(&opts.ExportPath, "export", "", "Write the final entry set to this file")
	cmd.Flags().BoolVar(&opts.WithSource, "with-source", false, "Prefix exported entries with their source file")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string, opts *AnalyzeOptions) error {
	configPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Load configuration
	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := applyAnalyzeOverrides(cfg, opts); err != nil {
		return err
	}

	logger := newLogger(opts.Verbose)
	defer logger.Sync() //nolint:errcheck

	// Expand log source globs
	paths, err := parser.ExpandGlobs(cfg.Sources)
	if err != nil {
		return fmt.Errorf("expanding log sources: %w", err)
	}
	if len(paths) == 0 {
		return fmt.Errorf("no log files matched patterns: %v", cfg.Sources)
	}

	started := time.Now()

	// Read files up front; the pipeline works on in-memory content.
	// Unreadable files are failed files, not fatal errors.
	var files []pipeline.File
	var failed []string
	for _, path := range paths {
		data, err := os.ReadFile(path) // #nosec G304 -- user-provided log paths are expected
		if err != nil {
			logger.Error("cannot read file", zap.String("file", path), zap.Error(err))
			failed = append(failed, path)
			continue
		}
		files = append(files, pipeline.File{Name: path, Data: data})
	}

	progress := newProgress(opts)

	// Ingest: decode, segment, extract, sort. Progress 0..50 then 60.
	ingestor := pipeline.NewIngestor(cfg.FramePattern, cfg.TimePattern, logger)
	entries, ingestFailed := ingestor.Ingest(files, progress)
	failed = append(failed, ingestFailed...)

	// Time-range filter. Applied only when a range is configured:
	// without one, untimed entries stay in the working set.
	if cfg.TimeRange != nil {
		start, end, err := cfg.TimeRange.Bounds()
		if err != nil {
			return fmt.Errorf("time range: %w", err)
		}
		entries = filter.ByTime(entries, start, end)
	}
	progress(pipeline.ProgressTimeFiltered)

	// Keyword stage: filter removes non-matching entries, highlight
	// keeps everything and records match spans.
	var highlights map[int][]filter.Span
	switch cfg.Mode {
	case config.ModeHighlight:
		highlights = buildHighlights(entries, cfg.Keywords)
	default:
		entries = filter.ByKeywords(entries, cfg.Keywords)
		progress(pipeline.ProgressKeywordFiltered)
	}

	// Assemble and render the report.
	report := output.NewReport(entries, failed, paths, string(cfg.Mode))
	report.Highlights = highlights
	report.Metadata.ConfigFile = configPath
	report.Metadata.Duration = time.Since(started)

	formatter, err := newFormatter(opts)
	if err != nil {
		return err
	}
	if err := formatter.Format(ctx, report, os.Stdout); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	if cfg.Export != nil {
		if err := export.WriteFile(cfg.Export.Path, entries, cfg.Export.IncludeSource); err != nil {
			return fmt.Errorf("exporting entries: %w", err)
		}
		logger.Info("entries exported",
			zap.String("path", cfg.Export.Path),
			zap.Int("entries", len(entries)))
	}
	progress(pipeline.ProgressDone)

	if len(failed) > 0 {
		ExitCode = 1
	} else {
		ExitCode = 0
	}
	return nil
}

// applyAnalyzeOverrides layers command-line flags over the loaded config.
func applyAnalyzeOverrides(cfg *config.Config, opts *AnalyzeOptions) error {
	if opts.Mode != "" {
		switch config.Mode(opts.Mode) {
		case config.ModeFilter, config.ModeHighlight:
			cfg.Mode = config.Mode(opts.Mode)
		default:
			return fmt.Errorf("invalid mode %q (must be filter or highlight)", opts.Mode)
		}
	}
	if len(opts.Keywords) > 0 {
		cfg.Keywords = opts.Keywords
	}
	if opts.ExportPath != "" {
		cfg.Export = &config.ExportConfig{
			Path:          opts.ExportPath,
			IncludeSource: opts.WithSource,
		}
	}
	return nil
}

// newProgress returns the pipeline progress callback. The bar writes
// to stderr so formatted results on stdout stay clean; quiet mode and
// json output disable it.
func newProgress(opts *AnalyzeOptions) pipeline.ProgressFunc {
	if opts.Quiet || opts.Output == "json" {
		return func(int) {}
	}
	bar := progressbar.NewOptions(100,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("analyzing"),
		progressbar.OptionClearOnFinish(),
	)
	return func(percent int) {
		_ = bar.Set(percent)
	}
}

// buildHighlights computes keyword spans per entry index. Entries
// without matches get no map slot.
func buildHighlights(entries []parser.Entry, keywords []string) map[int][]filter.Span {
	highlights := make(map[int][]filter.Span)
	for i, e := range entries {
		if spans := filter.Spans(e.Content, keywords); len(spans) > 0 {
			highlights[i] = spans
		}
	}
	return highlights
}

func newFormatter(opts *AnalyzeOptions) (output.Formatter, error) {
	formatOpts := output.FormatOptions{Verbose: opts.Verbose, Quiet: opts.Quiet}
	switch opts.Output {
	case "text":
		return output.NewTextFormatter(formatOpts), nil
	case "json":
		return output.NewJSONFormatter(formatOpts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (must be text or json)", opts.Output)
	}
}
