// Package filter implements the candidate predicates used to narrow a word list.
//
// Every function is pure: it reads the source slice and returns a new one.
package filter

import (
	"errors"
	"strconv"
	"strings"
)

var (
	// ErrInvalidLength is returned when the length text is not a positive integer.
	ErrInvalidLength = errors.New("invalid length")
	// ErrNoMatches is returned when a valid length filter leaves no candidates.
	ErrNoMatches = errors.New("no matches found")
)

// ParseLength converts user input into a word length.
func ParseLength(text string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || n <= 0 {
		return 0, ErrInvalidLength
	}
	return n, nil
}

// ByLength keeps words exactly length letters long. An empty result is ErrNoMatches.
func ByLength(source []string, length int) ([]string, error) {
	if length <= 0 {
		return nil, ErrInvalidLength
	}
	out := keep(source, func(w string) bool { return len(w) == length })
	if len(out) == 0 {
		return nil, ErrNoMatches
	}
	return out, nil
}

// ByExclusion drops words containing any of the characters in exclude, ignoring case.
func ByExclusion(source []string, exclude string) []string {
	exclude = strings.ToUpper(exclude)
	if exclude == "" {
		return keep(source, func(string) bool { return true })
	}
	return keep(source, func(w string) bool { return !strings.ContainsAny(w, exclude) })
}

// ByPrefix keeps words starting with prefix, ignoring case. An empty prefix keeps everything.
func ByPrefix(source []string, prefix string) []string {
	prefix = strings.ToUpper(prefix)
	return keep(source, func(w string) bool { return strings.HasPrefix(w, prefix) })
}

func keep(source []string, pred func(string) bool) []string {
	out := make([]string, 0, len(source))
	for _, w := range source {
		if pred(w) {
			out = append(out, w)
		}
	}
	return out
}
