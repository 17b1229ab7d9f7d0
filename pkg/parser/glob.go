package parser

import (
	"fmt"
	"path/filepath"
	"slices"
)

// ExpandGlobs resolves configured log sources, which may be literal
// file paths or glob patterns, into a sorted, deduplicated path list.
// A pattern that matches nothing is kept as a literal path so the
// ingestion stage reports it as a failed file instead of silently
// narrowing the working set.
func ExpandGlobs(sources []string) ([]string, error) {
	seen := make(map[string]struct{})
	var paths []string
	add := func(path string) {
		if _, dup := seen[path]; dup {
			return
		}
		seen[path] = struct{}{}
		paths = append(paths, path)
	}

	for _, source := range sources {
		matches, err := filepath.Glob(source)
		if err != nil {
			return nil, fmt.Errorf("invalid log source pattern %q: %w", source, err)
		}
		if len(matches) == 0 {
			add(source)
			continue
		}
		for _, match := range matches {
			add(match)
		}
	}

	slices.Sort(paths)
	return paths, nil
}
