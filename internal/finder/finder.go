// Package finder turns user input events into word store operations.
//
// Length, exclusion and search changes recompute the working set from the
// master set using every field currently entered. A submitted pattern instead
// narrows whatever is currently displayed, so several guesses can be applied
// in a row.
package finder

import (
	"errors"
	"strings"

	"github.com/verte-zerg/wodl/internal/filter"
	"github.com/verte-zerg/wodl/internal/model"
	"github.com/verte-zerg/wodl/internal/store"
	"github.com/verte-zerg/wodl/internal/wordlist"
)

// ErrNoSelectedWord is returned when a pattern is submitted before a word is selected.
var ErrNoSelectedWord = errors.New("select a word first")

// Sink durably stores the master word set.
type Sink interface {
	Save(words []string) error
}

// Finder owns the store, the selection and the entered filter fields.
type Finder struct {
	store     *store.Store
	selection store.Selection
	criteria  model.FilterCriteria
	sink      Sink
}

// New returns a Finder over st. sink may be nil.
func New(st *store.Store, sink Sink) *Finder {
	return &Finder{store: st, sink: sink}
}

// Working returns the currently displayed words.
func (f *Finder) Working() []string {
	return f.store.Working()
}

// Master returns every known word.
func (f *Finder) Master() []string {
	return f.store.Master()
}

// Criteria returns the field values last seen.
func (f *Finder) Criteria() model.FilterCriteria {
	return f.criteria
}

// Selected returns the reference word, if any.
func (f *Finder) Selected() (string, bool) {
	return f.selection.Current()
}

// LoadText normalizes raw text into the master set and persists it.
func (f *Finder) LoadText(text string) error {
	return f.Load(wordlist.Extract(text))
}

// Load installs already-normalized words as the master set and persists it.
func (f *Finder) Load(words []string) error {
	f.store.Load(words)
	return f.save()
}

// LengthChanged applies a new length field value.
func (f *Finder) LengthChanged(text string) error {
	next := f.criteria
	next.Length = text
	return f.apply(next)
}

// ExcludeCharsChanged applies a new exclusion field value.
func (f *Finder) ExcludeCharsChanged(text string) error {
	next := f.criteria
	next.Exclude = text
	return f.apply(next)
}

// SearchTermChanged applies a new search prefix.
func (f *Finder) SearchTermChanged(text string) error {
	next := f.criteria
	next.Prefix = text
	return f.apply(next)
}

// PatternSubmitted narrows the working set with feedback for the selected word.
func (f *Finder) PatternSubmitted(text string) error {
	ref, ok := f.selection.Current()
	if !ok {
		return ErrNoSelectedWord
	}
	words, err := filter.ByPattern(f.store.Working(), ref, strings.TrimSpace(text))
	if err != nil {
		return err
	}
	f.store.Replace(words)
	return nil
}

// WordSelected records the reference word and returns the length suggestion.
// Words that are not at least three letters A-Z are rejected with store.ErrInvalidWord.
func (f *Finder) WordSelected(word string) (model.Event, error) {
	word = wordlist.Normalize(word)
	if !wordlist.IsWord(word) {
		return model.Event{}, store.ErrInvalidWord
	}
	return f.selection.Select(word), nil
}

// NewWordSubmitted adds a word to the master set and persists it.
func (f *Finder) NewWordSubmitted(text string) error {
	if _, err := f.store.AddWord(text); err != nil {
		return err
	}
	return f.save()
}

// Confirm returns the final answer, if a word was selected.
func (f *Finder) Confirm() (string, bool) {
	return f.selection.Current()
}

// apply records c and recomputes the working set for it. On error the
// working set is left untouched, but c stays recorded so later changes keep
// honoring every entered field.
func (f *Finder) apply(c model.FilterCriteria) error {
	f.criteria = c
	words, err := Compute(f.store.Master(), c)
	if err != nil {
		return err
	}
	f.store.Replace(words)
	return nil
}

// Compute derives a working set from master for the given criteria.
func Compute(master []string, c model.FilterCriteria) ([]string, error) {
	words := master
	hasLength := strings.TrimSpace(c.Length) != ""
	if hasLength {
		n, err := filter.ParseLength(c.Length)
		if err != nil {
			return nil, err
		}
		if words, err = filter.ByLength(words, n); err != nil {
			return nil, err
		}
	}
	words = filter.ByExclusion(words, c.Exclude)
	if hasLength && len(words) == 0 {
		return nil, filter.ErrNoMatches
	}
	return filter.ByPrefix(words, strings.TrimSpace(c.Prefix)), nil
}

func (f *Finder) save() error {
	if f.sink == nil {
		return nil
	}
	return f.sink.Save(f.store.Master())
}
