package parser

import (
	"iter"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// Segmenter splits decoded log text into discrete entry strings using
// a frame pattern.
//
// Two pattern shapes are supported. A pattern containing a capture
// group yields the trimmed first group of each non-overlapping match.
// A pattern with no capture group is treated as an entry delimiter:
// entries are the trimmed runs of text between consecutive matches,
// and text before the first match is discarded. The default pattern
// uses the delimiter shape because RE2 has no lookahead, so
// "everything up to the next marker" cannot be captured directly.
type Segmenter struct {
	pattern *regexp.Regexp
}

// NewSegmenter compiles the frame pattern, substituting the built-in
// default when pattern is blank or invalid.
func NewSegmenter(pattern string, logger *zap.Logger) *Segmenter {
	return &Segmenter{
		pattern: EffectivePattern(pattern, DefaultFramePattern, true, logger),
	}
}

// Entries returns a lazy, restartable sequence over the entries in
// text. Line terminators are normalized before matching. Empty
// segments are discarded, so yielded entries are never empty.
func (s *Segmenter) Entries(text string) iter.Seq[string] {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	if s.pattern.NumSubexp() >= 1 {
		return s.captureEntries(text)
	}
	return s.delimitedEntries(text)
}

// captureEntries yields trimmed group 1 of each non-overlapping match.
func (s *Segmenter) captureEntries(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		pos := 0
		for pos <= len(text) {
			loc := s.pattern.FindStringSubmatchIndex(text[pos:])
			if loc == nil {
				return
			}
			if loc[2] >= 0 {
				entry := strings.TrimSpace(text[pos+loc[2] : pos+loc[3]])
				if entry != "" && !yield(entry) {
					return
				}
			}
			// Guard against zero-width matches.
			adv := loc[1]
			if adv == loc[0] {
				adv++
			}
			pos += adv
		}
	}
}

// delimitedEntries yields the trimmed text between consecutive matches
// of the delimiter pattern and after the final match.
func (s *Segmenter) delimitedEntries(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		prev := -1
		pos := 0
		for pos <= len(text) {
			loc := s.pattern.FindStringIndex(text[pos:])
			if loc == nil {
				break
			}
			start, end := pos+loc[0], pos+loc[1]
			if prev >= 0 {
				entry := strings.TrimSpace(text[prev:start])
				if entry != "" && !yield(entry) {
					return
				}
			}
			prev = end
			pos = end
			if end == start {
				pos++
			}
		}
		if prev >= 0 {
			entry := strings.TrimSpace(text[prev:])
			if entry != "" {
				yield(entry)
			}
		}
	}
}
