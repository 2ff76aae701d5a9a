// Package wordlist extracts, validates and persists word lists.
package wordlist

import (
	"sort"
	"strings"
)

// MinWordLength is the shortest token kept by Extract.
const MinWordLength = 3

// Extract returns the sorted, deduplicated, uppercased runs of ASCII letters
// in text that are at least MinWordLength long. Any other byte ends a run.
func Extract(text string) []string {
	seen := make(map[string]struct{})
	start := -1
	flush := func(end int) {
		if start >= 0 && end-start >= MinWordLength {
			seen[strings.ToUpper(text[start:end])] = struct{}{}
		}
		start = -1
	}
	for i := 0; i < len(text); i++ {
		if isASCIILetter(text[i]) {
			if start < 0 {
				start = i
			}
			continue
		}
		flush(i)
	}
	flush(len(text))
	return sortedKeys(seen)
}

// JoinWords renders words in the canonical persisted form.
func JoinWords(words []string) string {
	return strings.Join(words, " ")
}

// Normalize trims and uppercases a single user-entered word.
func Normalize(word string) string {
	return strings.ToUpper(strings.TrimSpace(word))
}

// IsWord reports whether word is uppercase A-Z only and at least MinWordLength long.
func IsWord(word string) bool {
	if len(word) < MinWordLength {
		return false
	}
	for i := 0; i < len(word); i++ {
		ch := word[i]
		if ch < 'A' || ch > 'Z' {
			return false
		}
	}
	return true
}

func isASCIILetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for w := range set {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
