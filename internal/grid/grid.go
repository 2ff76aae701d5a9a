// Package grid lays out word lists in fixed-width columns.
package grid

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	shortWordColumns = 6
	longWordColumns  = 5
	shortWordLimit   = 6
	cellPadding      = 2
)

// Layout describes how a word list is split into rows.
type Layout struct {
	Columns   int
	CellWidth int
}

// NewLayout picks the column count for words. columns > 0 overrides the
// default of six per row for short words and five otherwise. width > 0 caps
// the column count so that a row fits.
func NewLayout(words []string, columns, width int) Layout {
	cellWidth := 0
	allShort := true
	for _, w := range words {
		if cw := runewidth.StringWidth(w); cw > cellWidth {
			cellWidth = cw
		}
		if len(w) >= shortWordLimit {
			allShort = false
		}
	}
	cellWidth += cellPadding

	if columns <= 0 {
		columns = longWordColumns
		if allShort {
			columns = shortWordColumns
		}
	}
	if width > 0 {
		if fit := width / cellWidth; fit < columns {
			columns = fit
		}
	}
	if columns < 1 {
		columns = 1
	}
	return Layout{Columns: columns, CellWidth: cellWidth}
}

// RowCount returns the number of rows needed for n words.
func (l Layout) RowCount(n int) int {
	if n == 0 {
		return 0
	}
	return (n + l.Columns - 1) / l.Columns
}

// Position returns the row and column of the word at index i.
func (l Layout) Position(i int) (row, col int) {
	return i / l.Columns, i % l.Columns
}

// Index returns the word index at row and col, clamped to [0, n).
func (l Layout) Index(row, col, n int) int {
	if n == 0 {
		return 0
	}
	i := row*l.Columns + col
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// Render draws words row by row. style, when non-nil, decorates each padded cell.
func Render(words []string, l Layout, style func(i int, cell string) string) string {
	if len(words) == 0 {
		return ""
	}
	var b strings.Builder
	for i, w := range words {
		if i > 0 && i%l.Columns == 0 {
			b.WriteByte('\n')
		}
		cell := w
		if (i+1)%l.Columns != 0 && i != len(words)-1 {
			cell = runewidth.FillRight(w, l.CellWidth)
		}
		if style != nil {
			cell = style(i, cell)
		}
		b.WriteString(cell)
	}
	return b.String()
}
