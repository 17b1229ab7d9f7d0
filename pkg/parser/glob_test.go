package parser

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func touchLog(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("%@1%entry\n"), 0644); err != nil {
		t.Fatalf("Failed to create %s: %v", name, err)
	}
	return path
}

func TestExpandGlobs(t *testing.T) {
	dir := t.TempDir()
	app := touchLog(t, dir, "app.log")
	web := touchLog(t, dir, "web.log")
	touchLog(t, dir, "notes.txt")
	absent := filepath.Join(dir, "absent.log")

	tests := []struct {
		name    string
		sources []string
		want    []string
	}{
		{
			name:    "literal path passes through",
			sources: []string{app},
			want:    []string{app},
		},
		{
			name:    "glob matches only log files, sorted",
			sources: []string{filepath.Join(dir, "*.log")},
			want:    []string{app, web},
		},
		{
			name:    "missing file kept for failed-file reporting",
			sources: []string{absent},
			want:    []string{absent},
		},
		{
			name:    "duplicate across glob and literal collapsed",
			sources: []string{filepath.Join(dir, "*.log"), app},
			want:    []string{app, web},
		},
		{
			name:    "multiple sources merged",
			sources: []string{web, app},
			want:    []string{app, web},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandGlobs(tt.sources)
			if err != nil {
				t.Fatalf("ExpandGlobs() error = %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("ExpandGlobs() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExpandGlobs_InvalidPattern(t *testing.T) {
	if _, err := ExpandGlobs([]string{"["}); err == nil {
		t.Error("Expected error for malformed glob pattern")
	}
}
