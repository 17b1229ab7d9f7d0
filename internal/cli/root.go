// Package cli provides the command-line interface for logsieve.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/logsieve/logsieve/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2 // Configuration or runtime error
	}
	return commands.ExitCode
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "logsieve",
		Short: "Merge, sort, and filter multi-file logs",
		Long: `Logsieve ingests arbitrarily-encoded log files, splits them into
entries using a configurable frame pattern, extracts timestamps with a
configurable time pattern, and produces one time-ordered, filterable
collection.

It handles:
  - Encoding detection (statistical detectors plus a fixed fallback list)
  - Entry segmentation across multi-line entries
  - Parallel multi-file ingestion with per-file failure isolation
  - Time-range and keyword filtering, or keyword highlighting
  - Plain text export with optional source attribution`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add subcommands
	rootCmd.AddCommand(commands.NewAnalyzeCommand())
	rootCmd.AddCommand(commands.NewDetectCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
