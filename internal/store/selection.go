package store

import "github.com/verte-zerg/wodl/internal/model"

// Selection tracks the reference word used for pattern evaluation.
type Selection struct {
	word string
	set  bool
}

// Select records word and suggests its length to the host.
func (s *Selection) Select(word string) model.Event {
	s.word = word
	s.set = true
	return model.Event{Kind: model.EventLengthSuggested, Value: len(word)}
}

// Current returns the selected word, if any.
func (s *Selection) Current() (string, bool) {
	return s.word, s.set
}
