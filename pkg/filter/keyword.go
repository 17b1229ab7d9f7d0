package filter

import (
	"regexp"
	"strings"

	"github.com/logsieve/logsieve/pkg/parser"
)

// batchSize bounds the working set while accumulating matches from
// very large inputs. Matched entries are flushed to the result in
// batches instead of growing one unbounded buffer.
const batchSize = 10000

// metaChars detects regex metacharacters in a keyword.
var metaChars = regexp.MustCompile(`[.*+?^${}()|[\]\\]`)

// ByKeywords keeps entries whose content matches at least one keyword.
// Keywords are trimmed; an empty or all-blank list is a no-op that
// returns a copy of the input. When any keyword contains a regex
// metacharacter all keywords are treated as case-insensitive regexes,
// combined into one alternation where possible; otherwise plain
// case-insensitive substring containment is used.
func ByKeywords(entries []parser.Entry, keywords []string) []parser.Entry {
	valid := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k = strings.TrimSpace(k); k != "" {
			valid = append(valid, k)
		}
	}
	if len(valid) == 0 {
		out := make([]parser.Entry, len(entries))
		copy(out, entries)
		return out
	}

	match := substringMatcher(valid)
	for _, k := range valid {
		if metaChars.MatchString(k) {
			match = regexMatcher(valid)
			break
		}
	}

	var result []parser.Entry
	batch := make([]parser.Entry, 0, batchSize)
	for _, e := range entries {
		if !match(e.Content) {
			continue
		}
		batch = append(batch, e)
		if len(batch) >= batchSize {
			result = append(result, batch...)
			batch = batch[:0]
		}
	}
	return append(result, batch...)
}

// substringMatcher matches content containing any keyword,
// case-insensitively.
func substringMatcher(keywords []string) func(string) bool {
	lowered := make([]string, len(keywords))
	for i, k := range keywords {
		lowered[i] = strings.ToLower(k)
	}
	return func(content string) bool {
		content = strings.ToLower(content)
		for _, k := range lowered {
			if strings.Contains(content, k) {
				return true
			}
		}
		return false
	}
}

// regexMatcher compiles keywords into a single case-insensitive
// alternation. If the combined pattern fails to compile, each keyword
// is compiled independently and tested in turn; keywords that still
// fail to compile are dropped.
func regexMatcher(keywords []string) func(string) bool {
	combined, err := regexp.Compile("(?i)" + strings.Join(keywords, "|"))
	if err == nil {
		return combined.MatchString
	}

	var patterns []*regexp.Regexp
	for _, k := range keywords {
		if re, err := regexp.Compile("(?i)" + k); err == nil {
			patterns = append(patterns, re)
		}
	}
	return func(content string) bool {
		for _, re := range patterns {
			if re.MatchString(content) {
				return true
			}
		}
		return false
	}
}
