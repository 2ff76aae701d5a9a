package finder

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/wodl/internal/filter"
	"github.com/verte-zerg/wodl/internal/model"
	"github.com/verte-zerg/wodl/internal/store"
)

type memorySink struct {
	saves [][]string
	err   error
}

func (s *memorySink) Save(words []string) error {
	s.saves = append(s.saves, append([]string(nil), words...))
	return s.err
}

func newFinder(t *testing.T, words ...string) (*Finder, *memorySink) {
	t.Helper()
	sink := &memorySink{}
	f := New(store.New(), sink)
	require.NoError(t, f.Load(words))
	return f, sink
}

func TestLoadTextPersists(t *testing.T) {
	sink := &memorySink{}
	f := New(store.New(), sink)
	require.NoError(t, f.LoadText("The cat sat on a mat, and ran fast."))
	want := []string{"AND", "CAT", "FAST", "MAT", "RAN", "SAT", "THE"}
	require.Equal(t, want, f.Working())
	require.Equal(t, [][]string{want}, sink.saves)
}

func TestLengthChanged(t *testing.T) {
	f, _ := newFinder(t, "CAT", "CRANE", "GRAPE", "TRAIN")

	require.NoError(t, f.LengthChanged("5"))
	require.Equal(t, []string{"CRANE", "GRAPE", "TRAIN"}, f.Working())

	require.ErrorIs(t, f.LengthChanged("five"), filter.ErrInvalidLength)
	require.Equal(t, []string{"CRANE", "GRAPE", "TRAIN"}, f.Working())

	require.ErrorIs(t, f.LengthChanged("7"), filter.ErrNoMatches)
	require.Equal(t, []string{"CRANE", "GRAPE", "TRAIN"}, f.Working())
	require.Equal(t, "7", f.Criteria().Length)

	require.NoError(t, f.LengthChanged(""))
	require.Equal(t, []string{"CAT", "CRANE", "GRAPE", "TRAIN"}, f.Working())
}

func TestFieldsCompose(t *testing.T) {
	f, _ := newFinder(t, "CAT", "CRANE", "GRAPE", "PLANE", "TRAIN")

	require.NoError(t, f.ExcludeCharsChanged("p"))
	require.Equal(t, []string{"CAT", "CRANE", "TRAIN"}, f.Working())

	require.NoError(t, f.LengthChanged("5"))
	require.Equal(t, []string{"CRANE", "TRAIN"}, f.Working())

	require.NoError(t, f.SearchTermChanged("t"))
	require.Equal(t, []string{"TRAIN"}, f.Working())

	// widening the search recomputes from the master set
	require.NoError(t, f.SearchTermChanged(""))
	require.Equal(t, []string{"CRANE", "TRAIN"}, f.Working())

	require.NoError(t, f.SearchTermChanged("zz"))
	require.Empty(t, f.Working())
}

func TestExclusionEmptiesLengthIsNoMatches(t *testing.T) {
	f, _ := newFinder(t, "CRANE", "GRAPE")
	require.NoError(t, f.LengthChanged("5"))
	require.ErrorIs(t, f.ExcludeCharsChanged("e"), filter.ErrNoMatches)
	require.Equal(t, []string{"CRANE", "GRAPE"}, f.Working())
}

func TestRejectedFieldStaysInEffect(t *testing.T) {
	f, _ := newFinder(t, "CAT", "CHOSE", "CRANE", "GRAPE")
	require.NoError(t, f.LengthChanged("5"))
	require.ErrorIs(t, f.ExcludeCharsChanged("e"), filter.ErrNoMatches)
	require.Equal(t, []string{"CHOSE", "CRANE", "GRAPE"}, f.Working())

	require.ErrorIs(t, f.SearchTermChanged("c"), filter.ErrNoMatches)
	require.Equal(t, []string{"CHOSE", "CRANE", "GRAPE"}, f.Working())
	require.Equal(t, model.FilterCriteria{Length: "5", Exclude: "e", Prefix: "c"}, f.Criteria())

	require.NoError(t, f.ExcludeCharsChanged(""))
	require.Equal(t, []string{"CHOSE", "CRANE"}, f.Working())
}

func TestRejectedLengthStaysInEffect(t *testing.T) {
	f, _ := newFinder(t, "CAT", "CRANE")
	require.NoError(t, f.LengthChanged("3"))
	require.ErrorIs(t, f.LengthChanged("9"), filter.ErrNoMatches)
	require.ErrorIs(t, f.SearchTermChanged(""), filter.ErrNoMatches)
	require.Equal(t, []string{"CAT"}, f.Working())

	require.ErrorIs(t, f.LengthChanged("x"), filter.ErrInvalidLength)
	require.ErrorIs(t, f.SearchTermChanged("c"), filter.ErrInvalidLength)
}

func TestWordSelectedRejectsNonWords(t *testing.T) {
	f, _ := newFinder(t, "CRANE")
	for _, w := range []string{"", "  ", "CR4NE", "AB"} {
		_, err := f.WordSelected(w)
		require.ErrorIs(t, err, store.ErrInvalidWord, "word %q", w)
	}
	_, ok := f.Selected()
	require.False(t, ok)
}

func TestPatternRequiresSelection(t *testing.T) {
	f, _ := newFinder(t, "CRANE", "GRAPE")
	require.ErrorIs(t, f.PatternSubmitted("+++++"), ErrNoSelectedWord)
}

func TestPatternNarrowsWorkingSet(t *testing.T) {
	f, _ := newFinder(t, "CHOSE", "CRANE", "GRAPE", "PLANE", "SHARE", "STOMP", "TRAIN")

	ev, err := f.WordSelected("crane")
	require.NoError(t, err)
	require.Equal(t, model.Event{Kind: model.EventLengthSuggested, Value: 5}, ev)
	word, ok := f.Selected()
	require.True(t, ok)
	require.Equal(t, "CRANE", word)

	require.ErrorIs(t, f.PatternSubmitted("+--."), filter.ErrPatternLengthMismatch)
	require.ErrorIs(t, f.PatternSubmitted("+-?-+"), filter.ErrInvalidPatternSymbol)
	require.Len(t, f.Working(), 7)

	require.NoError(t, f.PatternSubmitted("+---+"))
	require.Equal(t, []string{"CHOSE"}, f.Working())
}

func TestPatternsApplyIncrementally(t *testing.T) {
	f, _ := newFinder(t, "SPOTS", "STOMP", "STOPS", "TULIP")

	_, err := f.WordSelected("TULIP")
	require.NoError(t, err)
	require.NoError(t, f.PatternSubmitted(".---."))
	require.Equal(t, []string{"SPOTS", "STOPS"}, f.Working())

	_, err = f.WordSelected("STOPS")
	require.NoError(t, err)
	require.NoError(t, f.PatternSubmitted("+.+.+"))
	require.Equal(t, []string{"SPOTS"}, f.Working())
}

func TestNewWordSubmitted(t *testing.T) {
	f, sink := newFinder(t, "CAT")
	require.NoError(t, f.NewWordSubmitted("mat"))
	require.Equal(t, []string{"CAT", "MAT"}, f.Master())
	require.Equal(t, []string{"CAT", "MAT"}, f.Working())
	require.Len(t, sink.saves, 2)

	require.ErrorIs(t, f.NewWordSubmitted("cat"), store.ErrDuplicateOrEmptyWord)
	require.Len(t, sink.saves, 2)
	require.Equal(t, []string{"CAT", "MAT"}, f.Master())
}

func TestSinkErrorSurfaces(t *testing.T) {
	sink := &memorySink{err: errors.New("disk full")}
	f := New(store.New(), sink)
	require.EqualError(t, f.Load([]string{"CAT"}), "disk full")
	assert.Equal(t, []string{"CAT"}, f.Master())
}

func TestConfirm(t *testing.T) {
	f, _ := newFinder(t, "CRANE")
	_, ok := f.Confirm()
	require.False(t, ok)

	_, err := f.WordSelected("CRANE")
	require.NoError(t, err)
	answer, ok := f.Confirm()
	require.True(t, ok)
	require.Equal(t, "CRANE", answer)
}

func TestNilSink(t *testing.T) {
	f := New(store.New(), nil)
	require.NoError(t, f.Load([]string{"CAT"}))
	require.NoError(t, f.NewWordSubmitted("BAT"))
}
