package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/logsieve/logsieve/pkg/charset"
	"github.com/logsieve/logsieve/pkg/parser"
)

// NewDetectCommand creates the detect command.
func NewDetectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "detect <log-file>...",
		Short: "Inspect files before analysis",
		Long: `Inspect log files and report, per file:
  - the detected character encoding
  - how many entries the default frame pattern finds
  - how many of those entries carry a parseable timestamp

Useful for checking whether the built-in patterns fit a file before
writing a configuration.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runDetect,
	}
}

func runDetect(cmd *cobra.Command, args []string) error {
	segmenter := parser.NewSegmenter("", zap.NewNop())
	extractor := parser.NewTimeExtractor("", zap.NewNop())

	anyFailed := false
	for _, path := range args {
		data, err := os.ReadFile(path) // #nosec G304 -- user-provided log paths are expected
		if err != nil {
			fmt.Printf("%s:\n  error: %v\n\n", path, err)
			anyFailed = true
			continue
		}

		fmt.Printf("%s:\n", path)

		if name, ok := charset.Detect(data); ok {
			fmt.Printf("  encoding:   %s (detected)\n", name)
		} else {
			fmt.Printf("  encoding:   unknown (fallback list will apply)\n")
		}

		text, err := charset.Resolve(data, path)
		if err != nil {
			fmt.Printf("  error: %v\n\n", err)
			anyFailed = true
			continue
		}

		entries, timed := 0, 0
		for entry := range segmenter.Entries(text) {
			entries++
			if _, _, ok := extractor.Extract(entry); ok {
				timed++
			}
		}

		fmt.Printf("  entries:    %d\n", entries)
		if entries > 0 {
			fmt.Printf("  timestamps: %d/%d (%.0f%%)\n", timed, entries, float64(timed)/float64(entries)*100)
		} else {
			fmt.Printf("  timestamps: n/a (no entries matched the default frame pattern)\n")
			anyFailed = true
		}
		fmt.Println()
	}

	if anyFailed {
		ExitCode = 1
	} else {
		ExitCode = 0
	}
	return nil
}
