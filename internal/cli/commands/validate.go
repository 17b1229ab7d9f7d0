package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/logsieve/logsieve/pkg/config"
	"github.com/logsieve/logsieve/pkg/parser"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Validate a logsieve configuration file without running analysis.

Checks:
  - YAML syntax
  - Required fields
  - Time range parseability and ordering
  - Whether custom patterns compile (fallback warning only)
  - Log source file existence (warning only)`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	fmt.Printf("Validating %s...\n", configPath)

	// Load and validate config
	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	// Report what we found
	fmt.Printf("\nConfiguration valid!\n")
	fmt.Printf("  Log sources: %d pattern(s)\n", len(cfg.Sources))
	fmt.Printf("  Mode:        %s\n", cfg.Mode)
	fmt.Printf("  Keywords:    %d\n", len(cfg.Keywords))

	// Custom patterns fall back silently at analysis time; surface
	// that here so the user is not surprised.
	if !cfg.FramePatternValid() {
		fmt.Printf("\nWarning: frame_pattern does not compile; the built-in default will be used:\n  %s\n", parser.DefaultFramePattern)
	}
	if !cfg.TimePatternValid() {
		fmt.Printf("\nWarning: time_pattern is invalid or lacks seven capture groups; the built-in default will be used:\n  %s\n", parser.DefaultTimePattern)
	}

	// Check if log sources exist (warnings only)
	files, err := parser.ExpandGlobs(cfg.Sources)
	if err != nil {
		fmt.Printf("\nWarning: Error expanding log source patterns: %v\n", err)
	} else if len(files) == 0 {
		fmt.Printf("\nWarning: No files match log source patterns\n")
	} else {
		fmt.Printf("\nLog files matched: %d\n", len(files))
		for _, f := range files {
			fmt.Printf("  - %s\n", f)
		}
	}

	return nil
}
