// Package tui provides the Bubble Tea word finder interface.
package tui

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/wodl/internal/filter"
	"github.com/verte-zerg/wodl/internal/finder"
	"github.com/verte-zerg/wodl/internal/grid"
	"github.com/verte-zerg/wodl/internal/model"
	"github.com/verte-zerg/wodl/internal/store"
	"github.com/verte-zerg/wodl/internal/wordlist"
)

const (
	focusSearch = iota
	focusExclude
	focusLength
	focusPattern
	focusAdd
	focusGrid
	focusCount
)

// Model implements the Bubble Tea finder UI.
type Model struct {
	config       model.Config
	finder       *finder.Finder
	wordListPath string

	width  int
	height int

	inputs []textinput.Model
	focus  int
	cursor int
	grid   viewport.Model
	layout grid.Layout

	picker  filepicker.Model
	picking bool

	status      string
	statusIsErr bool

	answer    string
	hasAnswer bool
}

// NewModel constructs a finder TUI model over f.
func NewModel(cfg model.Config, f *finder.Finder) *Model {
	m := &Model{
		config:       cfg,
		finder:       f,
		wordListPath: cfg.WordListPath,
		grid:         viewport.New(0, 0),
	}
	m.inputs = []textinput.Model{
		newInput("Search: ", ""),
		newInput("Exclude characters: ", ""),
		newInput("Word length: ", ""),
		newInput("Pattern (+ - .): ", "+-.-+"),
		newInput("Add new word: ", ""),
	}
	m.picker = filepicker.New()
	m.picker.AllowedTypes = []string{".txt"}
	if cwd, err := os.Getwd(); err == nil {
		m.picker.CurrentDirectory = cwd
	}
	m.setFocus(focusSearch)
	m.refreshGrid()
	return m
}

func newInput(prompt, placeholder string) textinput.Model {
	input := textinput.New()
	input.Prompt = prompt
	input.Placeholder = placeholder
	input.CharLimit = 0
	input.Cursor.SetMode(cursor.CursorBlink)
	return input
}

// Answer returns the word confirmed as the solution, if any.
func (m *Model) Answer() (string, bool) {
	return m.answer, m.hasAnswer
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyCtrlS:
			m.answer, m.hasAnswer = m.finder.Confirm()
			return m, tea.Quit
		}
		if m.picking {
			return m.updatePicker(msg)
		}
		return m.updateKey(msg)
	}
	if m.picking {
		return m.updatePicker(msg)
	}
	if m.focus < len(m.inputs) {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlO:
		m.picking = true
		return m, m.picker.Init()
	case tea.KeyTab:
		return m, m.setFocus(m.focus + 1)
	case tea.KeyShiftTab:
		return m, m.setFocus(m.focus - 1)
	case tea.KeyEnter:
		return m, m.submit()
	}
	if m.focus == focusGrid {
		m.moveCursor(msg.String())
		return m, nil
	}

	before := m.inputs[m.focus].Value()
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	after := m.inputs[m.focus].Value()
	if after == before {
		return m, cmd
	}
	switch m.focus {
	case focusSearch:
		m.report(m.finder.SearchTermChanged(after), false)
	case focusExclude:
		m.report(m.finder.ExcludeCharsChanged(after), false)
	}
	return m, cmd
}

func (m *Model) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEsc {
		m.picking = false
		return m, nil
	}
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	if ok, path := m.picker.DidSelectFile(msg); ok {
		m.picking = false
		m.loadFile(path)
		return m, cmd
	}
	if ok, path := m.picker.DidSelectDisabledFile(msg); ok {
		m.setStatus(fmt.Sprintf("%s is not a .txt file", path), true)
	}
	return m, cmd
}

// submit handles enter for the focused field.
func (m *Model) submit() tea.Cmd {
	switch m.focus {
	case focusSearch:
		m.report(m.finder.SearchTermChanged(m.inputs[focusSearch].Value()), false)
	case focusExclude:
		m.report(m.finder.ExcludeCharsChanged(m.inputs[focusExclude].Value()), false)
	case focusLength:
		if m.report(m.finder.LengthChanged(m.inputs[focusLength].Value()), true) {
			return m.setFocus(focusPattern)
		}
	case focusPattern:
		m.report(m.finder.PatternSubmitted(m.inputs[focusPattern].Value()), true)
	case focusAdd:
		word := wordlist.Normalize(m.inputs[focusAdd].Value())
		if m.report(m.finder.NewWordSubmitted(word), true) {
			m.inputs[focusAdd].SetValue("")
			m.setStatus(fmt.Sprintf("Added %s.", word), false)
		}
	case focusGrid:
		m.selectWord()
	}
	return m.focusCmd()
}

func (m *Model) selectWord() {
	words := m.finder.Working()
	if len(words) == 0 {
		return
	}
	ev, err := m.finder.WordSelected(words[m.cursor])
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	if ev.Kind == model.EventLengthSuggested {
		m.inputs[focusLength].SetValue(strconv.Itoa(ev.Value))
	}
	m.refreshGrid()
}

func (m *Model) loadFile(path string) {
	text, err := wordlist.LoadText(path)
	if err != nil {
		m.setStatus(fmt.Sprintf("failed to read %s: %v", path, err), true)
		return
	}
	if !m.report(m.finder.LoadText(text), false) {
		return
	}
	m.cursor = 0
	m.setStatus(fmt.Sprintf("Loaded %d words from %s.", len(m.finder.Master()), path), false)
}

// report shows err in the footer and moves focus to the field that caused it
// when moveFocus is set. It returns true when err is nil.
func (m *Model) report(err error, moveFocus bool) bool {
	m.refreshGrid()
	if err == nil {
		m.setStatus("", false)
		return true
	}
	target := -1
	switch {
	case errors.Is(err, filter.ErrNoMatches):
		m.setStatus("No matches found.", false)
		target = focusLength
	case errors.Is(err, filter.ErrInvalidLength):
		m.setStatus("Invalid length!", true)
		target = focusLength
	case errors.Is(err, finder.ErrNoSelectedWord):
		m.setStatus("Select a word first!", true)
		target = focusGrid
	case errors.Is(err, filter.ErrPatternLengthMismatch), errors.Is(err, filter.ErrInvalidPatternSymbol):
		m.setStatus("Invalid pattern: "+err.Error(), true)
		target = focusPattern
	case errors.Is(err, store.ErrDuplicateOrEmptyWord), errors.Is(err, store.ErrInvalidWord):
		m.setStatus(err.Error(), true)
		target = focusAdd
	default:
		logErrf("failed to save word list: %v\n", err)
		m.setStatus(fmt.Sprintf("failed to save word list: %v", err), true)
	}
	if moveFocus && target >= 0 {
		m.setFocus(target)
	}
	return false
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.status = msg
	m.statusIsErr = isErr
}

func (m *Model) setFocus(idx int) tea.Cmd {
	if idx < 0 {
		idx = focusCount - 1
	}
	if idx >= focusCount {
		idx = 0
	}
	m.focus = idx
	for i := range m.inputs {
		if i != idx {
			m.inputs[i].Blur()
		}
	}
	m.refreshGrid()
	return m.focusCmd()
}

func (m *Model) focusCmd() tea.Cmd {
	if m.focus < len(m.inputs) {
		return m.inputs[m.focus].Focus()
	}
	return nil
}

func (m *Model) moveCursor(key string) {
	n := len(m.finder.Working())
	if n == 0 {
		return
	}
	row, col := m.layout.Position(m.cursor)
	switch key {
	case "up", "k":
		row--
	case "down", "j":
		row++
	case "left", "h":
		col--
	case "right", "l":
		col++
	case "home", "g":
		row, col = 0, 0
	case "end", "G":
		row, col = n, 0
	default:
		return
	}
	if col < 0 {
		col = 0
	}
	if col >= m.layout.Columns {
		col = m.layout.Columns - 1
	}
	m.cursor = m.layout.Index(row, col, n)
	m.refreshGrid()
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
