package filter

import (
	"errors"
	"fmt"
	"strings"
)

// Symbol is one position of game feedback.
type Symbol byte

const (
	// Match means the letter is at this exact position.
	Match Symbol = '+'
	// Elsewhere means the letter is in the word but not at this position.
	Elsewhere Symbol = '.'
	// Absent means the letter does not occur anywhere in the word.
	Absent Symbol = '-'
)

var (
	// ErrPatternLengthMismatch is returned when the pattern and reference differ in length.
	ErrPatternLengthMismatch = errors.New("pattern length does not match the selected word")
	// ErrInvalidPatternSymbol is returned for characters other than '+', '.' and '-'.
	ErrInvalidPatternSymbol = errors.New("invalid pattern symbol, only '+', '-', '.' are allowed")
)

// Pattern is per-position feedback for a reference word.
type Pattern []Symbol

// String renders the pattern in its textual form.
func (p Pattern) String() string {
	var b strings.Builder
	b.Grow(len(p))
	for _, s := range p {
		b.WriteByte(byte(s))
	}
	return b.String()
}

// ParsePattern validates text against reference and returns the parsed pattern.
// The length check runs before the symbol check.
func ParsePattern(text, reference string) (Pattern, error) {
	if len(text) != len(reference) {
		return nil, fmt.Errorf("%w: got %d symbols for %d letters", ErrPatternLengthMismatch, len(text), len(reference))
	}
	p := make(Pattern, len(text))
	for i := 0; i < len(text); i++ {
		switch s := Symbol(text[i]); s {
		case Match, Elsewhere, Absent:
			p[i] = s
		default:
			return nil, fmt.Errorf("%w: %q at position %d", ErrInvalidPatternSymbol, text[i], i+1)
		}
	}
	return p, nil
}

// ByPattern keeps the words of source consistent with pattern feedback for reference.
//
// Absent is global: a candidate containing the reference letter anywhere is
// rejected, even when the same letter is marked Match or Elsewhere at another
// position. Words of a different length never match.
func ByPattern(source []string, reference, text string) ([]string, error) {
	reference = strings.ToUpper(reference)
	p, err := ParsePattern(text, reference)
	if err != nil {
		return nil, err
	}
	return keep(source, func(w string) bool { return Matches(w, reference, p) }), nil
}

// Matches reports whether word is consistent with pattern for reference.
func Matches(word, reference string, p Pattern) bool {
	if len(word) != len(reference) || len(p) != len(reference) {
		return false
	}
	for i, s := range p {
		ref := reference[i]
		switch s {
		case Match:
			if word[i] != ref {
				return false
			}
		case Elsewhere:
			if word[i] == ref || strings.IndexByte(word, ref) < 0 {
				return false
			}
		case Absent:
			if strings.IndexByte(word, ref) >= 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
