package filter

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Span marks one keyword occurrence as a half-open [Start, End) byte
// range in the entry content.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Spans computes highlight ranges for every non-blank keyword in
// content. Matching is case-insensitive rune by rune, so offsets always
// index the original content even where lowercasing changes a
// character's byte length (U+0130 lowercases to two runes). Each
// keyword is scanned for all non-overlapping occurrences; scanning
// resumes immediately after each match. Spans are returned sorted by
// start offset. Overlapping spans from different keywords are kept
// as-is, not merged or deduplicated.
func Spans(content string, keywords []string) []Span {
	var spans []Span

	for _, k := range keywords {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}

		pos := 0
		for pos < len(content) {
			n, ok := foldPrefix(content[pos:], k)
			if !ok {
				_, size := utf8.DecodeRuneInString(content[pos:])
				pos += size
				continue
			}
			spans = append(spans, Span{Start: pos, End: pos + n})
			pos += n
		}
	}

	slices.SortStableFunc(spans, func(a, b Span) int {
		return a.Start - b.Start
	})
	return spans
}

// foldPrefix reports whether s starts with a case-insensitive match of
// needle, and returns the byte length of the matched prefix in s.
func foldPrefix(s, needle string) (int, bool) {
	n := 0
	for _, kr := range needle {
		sr, size := utf8.DecodeRuneInString(s[n:])
		if size == 0 {
			return 0, false
		}
		if sr != kr && unicode.ToLower(sr) != unicode.ToLower(kr) {
			return 0, false
		}
		n += size
	}
	return n, true
}
