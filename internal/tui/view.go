package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/wodl/internal/grid"
)

const inputLines = focusGrid

var (
	wordStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#111111")).Background(lipgloss.Color("#C89A3A"))
	headerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	chosenStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	infoStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	gridStyle     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	gridFocusStyle = gridStyle.BorderForeground(lipgloss.Color("#C89A3A"))
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.picking {
		title := chosenStyle.Render("Browse for a word list (.txt)")
		help := headerStyle.Render("enter: open/select  h/backspace: up  esc: cancel")
		return strings.Join([]string{title, m.picker.View(), help}, "\n")
	}

	lines := []string{m.renderHeader()}
	for _, input := range m.inputs {
		lines = append(lines, input.View())
	}
	box := gridStyle
	if m.focus == focusGrid {
		box = gridFocusStyle
	}
	body := m.grid.View()
	if len(m.finder.Working()) == 0 {
		body = infoStyle.Render("No words to show.")
	}
	if m.width > 2 {
		box = box.Width(m.width - 2)
	}
	lines = append(lines, box.Render(body), m.renderFooter())
	return strings.Join(lines, "\n")
}

func (m *Model) renderHeader() string {
	chosen := "-"
	if word, ok := m.finder.Selected(); ok {
		chosen = word
	}
	return fmt.Sprintf("%s %s  %s %s  %s",
		headerStyle.Render("Loaded file:"), m.wordListPath,
		headerStyle.Render("Chosen word:"), chosenStyle.Render(chosen),
		headerStyle.Render(fmt.Sprintf("%d of %d words", len(m.finder.Working()), len(m.finder.Master()))),
	)
}

func (m *Model) renderFooter() string {
	help := headerStyle.Render("tab: next field  enter: apply/select  ctrl+o: browse  ctrl+s: solution  ctrl+c: quit")
	if m.status == "" {
		return help
	}
	if m.statusIsErr {
		return help + "\n" + errorStyle.Render(m.status)
	}
	return help + "\n" + infoStyle.Render(m.status)
}

// gridHeight is the number of word rows the viewport can show.
func (m *Model) gridHeight() int {
	// header, inputs, two border lines, help and status
	h := m.height - 1 - inputLines - 2 - 2
	if h < 1 {
		h = 1
	}
	return h
}

func (m *Model) updateLayout() {
	for i := range m.inputs {
		m.inputs[i].Width = maxInt(10, m.width-lipgloss.Width(m.inputs[i].Prompt)-2)
	}
	m.grid.Width = maxInt(1, m.width-2)
	m.grid.Height = m.gridHeight()
	m.refreshGrid()
}

// refreshGrid re-renders the working set and keeps the cursor row visible.
func (m *Model) refreshGrid() {
	words := m.finder.Working()
	if m.cursor >= len(words) {
		m.cursor = maxInt(0, len(words)-1)
	}
	m.layout = grid.NewLayout(words, m.config.Columns, m.grid.Width)
	selected, _ := m.finder.Selected()
	gridFocused := m.focus == focusGrid
	m.grid.SetContent(grid.Render(words, m.layout, func(i int, cell string) string {
		switch {
		case gridFocused && i == m.cursor:
			return cursorStyle.Render(cell)
		case words[i] == selected:
			return selectedStyle.Render(cell)
		default:
			return wordStyle.Render(cell)
		}
	}))
	row, _ := m.layout.Position(m.cursor)
	if m.grid.Height > 0 {
		if row < m.grid.YOffset {
			m.grid.SetYOffset(row)
		} else if row >= m.grid.YOffset+m.grid.Height {
			m.grid.SetYOffset(row - m.grid.Height + 1)
		}
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
