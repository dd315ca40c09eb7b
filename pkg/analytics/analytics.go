package analytics

import "strings"

// WordCount returns the number of whitespace-delimited tokens across all
// text fragments of a question, joined with a single space. Joining first
// means a word is never split (or double counted) at a fragment boundary,
// and runs of whitespace inside a fragment collapse the same way
// strings.Fields always collapses them. Tokens are taken verbatim; no
// casing, trimming, or punctuation handling is applied.
func WordCount(texts []string) int {
	return len(strings.Fields(strings.Join(texts, " ")))
}
