package wordlist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSentence(t *testing.T) {
	got := Extract("The cat sat on a mat, and ran fast.")
	require.Equal(t, []string{"AND", "CAT", "FAST", "MAT", "RAN", "SAT", "THE"}, got)
}

func TestExtractBoundaries(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "empty", text: "", want: []string{}},
		{name: "short only", text: "a an on", want: []string{}},
		{name: "digits split", text: "abc1defg", want: []string{"ABC", "DEFG"}},
		{name: "dedup mixed case", text: "Crane CRANE crane", want: []string{"CRANE"}},
		{name: "non ascii split", text: "café naïve", want: []string{"CAF"}},
		{name: "newlines", text: "grape\nplane\r\nshare", want: []string{"GRAPE", "PLANE", "SHARE"}},
		{name: "underscore", text: "foo_bar", want: []string{"BAR", "FOO"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extract(tt.text))
		})
	}
}

func TestExtractIdempotent(t *testing.T) {
	for _, text := range []string{
		"The cat sat on a mat, and ran fast.",
		"zz top-40 hits: ABBA, abba; QUEEN!",
		"",
	} {
		once := Extract(text)
		assert.Equal(t, once, Extract(JoinWords(once)), "text %q", text)
	}
}

func TestIsWord(t *testing.T) {
	assert.True(t, IsWord("CAT"))
	for _, w := range []string{"", "AT", "cat", "CA T", "CAT1", "ÉTÉ"} {
		assert.False(t, IsWord(w), "word %q", w)
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "CAT", Normalize("  cat\t"))
	assert.Equal(t, "", Normalize("   "))
}

func TestFileSinkRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "wodl.txt")
	sink := NewFileSink(path)
	require.NoError(t, sink.Save([]string{"CRANE", "GRAPE"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "CRANE GRAPE\n", string(data))

	words, err := LoadWords(path)
	require.NoError(t, err)
	require.Equal(t, []string{"CRANE", "GRAPE"}, words)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp file left behind")
}

func TestFileSinkSkipsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wodl.txt")
	require.NoError(t, NewFileSink(path).Save(nil))
	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err))
}

func TestLoadWordsMissingFile(t *testing.T) {
	words, err := LoadWords(filepath.Join(t.TempDir(), "missing.txt"))
	require.NoError(t, err)
	require.Empty(t, words)
}
