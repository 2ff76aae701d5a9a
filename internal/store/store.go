// Package store holds the master word set and the working set derived from it.
package store

import (
	"errors"
	"slices"
	"sort"

	"github.com/verte-zerg/wodl/internal/wordlist"
)

var (
	// ErrDuplicateOrEmptyWord is returned when an added word is blank or already present.
	ErrDuplicateOrEmptyWord = errors.New("the new word is empty or already exists")
	// ErrInvalidWord is returned when an added word is not at least three ASCII letters.
	ErrInvalidWord = errors.New("a word must be at least three letters A-Z")
)

// Store owns the master and working word sets. Both are only ever replaced,
// never modified in place, so slices handed out stay valid snapshots.
type Store struct {
	master  []string
	working []string
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// Load replaces the master set and resets the working set to it.
// words must already be normalized; duplicates are dropped and order is restored.
func (s *Store) Load(words []string) {
	master := slices.Clone(words)
	sort.Strings(master)
	s.master = slices.Compact(master)
	s.working = s.master
}

// AddWord normalizes word, inserts it into the master set and resets the working set.
func (s *Store) AddWord(word string) ([]string, error) {
	word = wordlist.Normalize(word)
	if word == "" {
		return nil, ErrDuplicateOrEmptyWord
	}
	idx, found := slices.BinarySearch(s.master, word)
	if found {
		return nil, ErrDuplicateOrEmptyWord
	}
	if !wordlist.IsWord(word) {
		return nil, ErrInvalidWord
	}
	s.master = slices.Insert(slices.Clone(s.master), idx, word)
	s.working = s.master
	return s.master, nil
}

// Reset sets the working set back to the master set.
func (s *Store) Reset() {
	s.working = s.master
}

// Replace installs a new working set.
func (s *Store) Replace(words []string) {
	s.working = words
}

// Master returns the master set in lexicographic order. Callers must not modify it.
func (s *Store) Master() []string {
	return s.master
}

// Working returns the current working set. Callers must not modify it.
func (s *Store) Working() []string {
	return s.working
}

// Contains reports whether word is in the master set.
func (s *Store) Contains(word string) bool {
	_, found := slices.BinarySearch(s.master, word)
	return found
}
