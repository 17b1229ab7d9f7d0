// Package export writes an ordered entry set to a plain text file.
package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/logsieve/logsieve/pkg/parser"
)

// Write renders entries to w in the order given, never re-sorting.
// Each entry is followed by a blank line. When includeSource is true,
// each entry is preceded by a "Source: <file-base-name>" line.
func Write(w io.Writer, entries []parser.Entry, includeSource bool) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		if includeSource {
			if _, err := fmt.Fprintf(bw, "Source: %s\n", filepath.Base(e.Source)); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString(e.Content); err != nil {
			return err
		}
		if _, err := bw.WriteString("\n\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile writes entries to the file at path, creating or
// truncating it.
func WriteFile(path string, entries []parser.Entry, includeSource bool) error {
	f, err := os.Create(path) // #nosec G304 -- user-provided export path is expected
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}

	if err := Write(f, entries, includeSource); err != nil {
		f.Close()
		return fmt.Errorf("writing export file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing export file: %w", err)
	}
	return nil
}
