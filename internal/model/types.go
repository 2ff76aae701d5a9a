// Package model defines shared data structures.
package model

// Config defines finder settings.
type Config struct {
	WordListPath string
	Columns      int
}

// EventKind identifies an output event emitted by the core for the presentation layer.
type EventKind int

const (
	// EventNone is the zero value and carries no suggestion.
	EventNone EventKind = iota
	// EventLengthSuggested asks the host to pre-fill the length field.
	EventLengthSuggested
)

// Event is an output of a core operation the host may apply.
type Event struct {
	Kind  EventKind
	Value int
}

// FilterCriteria holds the raw text of the composable filter fields.
type FilterCriteria struct {
	Length  string
	Exclude string
	Prefix  string
}
