// Package ui is the interactive generator screen: a length slider, three
// inclusion switches, a generate button and a copy action with a toast.
package ui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vaultpass/passgen-go/internal/clipboard"
	"github.com/vaultpass/passgen-go/internal/generator"
)

type field int

const (
	fieldLength field = iota
	fieldDigits
	fieldUppercase
	fieldSymbols
	fieldGenerate
	fieldCount
)

// toastExpiredMsg clears the toast it was scheduled for.
type toastExpiredMsg struct {
	id int
}

// Model owns the screen state. Option changes never regenerate; only an
// explicit generate request replaces the password.
type Model struct {
	gen  *generator.Generator
	clip clipboard.Writer

	opts     generator.Options
	password string
	focus    field

	toast   *clipboard.Notification
	toastID int

	keys keyMap
	help help.Model
}

// New creates the screen with lowercase-only options at the given length,
// clamped into the slider range.
func New(gen *generator.Generator, clip clipboard.Writer, length int) Model {
	if gen == nil {
		gen = generator.New(nil)
	}
	if clip == nil {
		clip = clipboard.System()
	}
	return Model{
		gen:  gen,
		clip: clip,
		opts: generator.Options{Length: generator.ClampLength(length)},
		keys: defaultKeyMap,
		help: help.New(),
	}
}

// Options returns the options the next generate request will use.
func (m Model) Options() generator.Options { return m.opts }

// Password returns the last generated password, or "" before the first one.
func (m Model) Password() string { return m.password }

// Toast returns the visible notification, if any.
func (m Model) Toast() (clipboard.Notification, bool) {
	if m.toast == nil {
		return clipboard.Notification{}, false
	}
	return *m.toast, true
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case toastExpiredMsg:
		if msg.id == m.toastID {
			m.toast = nil
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Generate):
		m.generate()

	case key.Matches(msg, m.keys.Copy):
		return m, m.copy()

	case key.Matches(msg, m.keys.Up):
		m.focus = (m.focus + fieldCount - 1) % fieldCount

	case key.Matches(msg, m.keys.Down):
		m.focus = (m.focus + 1) % fieldCount

	case key.Matches(msg, m.keys.Left):
		if m.focus == fieldLength {
			m.setLength(m.opts.Length - 1)
		}

	case key.Matches(msg, m.keys.Right):
		if m.focus == fieldLength {
			m.setLength(m.opts.Length + 1)
		}

	case key.Matches(msg, m.keys.Toggle):
		m.activate()
	}

	return m, nil
}

func (m *Model) setLength(n int) {
	m.opts.Length = generator.ClampLength(n)
}

// activate handles space/enter on the focused field.
func (m *Model) activate() {
	switch m.focus {
	case fieldDigits:
		m.opts.Digits = !m.opts.Digits
	case fieldUppercase:
		m.opts.Uppercase = !m.opts.Uppercase
	case fieldSymbols:
		m.opts.Symbols = !m.opts.Symbols
	case fieldGenerate:
		m.generate()
	}
}

func (m *Model) generate() {
	password, err := m.gen.Generate(m.opts)
	if err != nil {
		slog.Error("generating password", "error", err)
		return
	}
	m.password = password
}

func (m *Model) copy() tea.Cmd {
	n := clipboard.Copy(m.clip, m.password)
	m.toast = &n
	m.toastID++

	id := m.toastID
	return tea.Tick(clipboard.ToastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

// Run shows the screen until the user quits.
func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
