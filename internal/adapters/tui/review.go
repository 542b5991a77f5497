// Package tui implements the interactive review mode: plan a dry run,
// show every proposed move, and let the user accept or skip each one
// before anything is touched.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"ordina/internal/adapters/tui/styles"
	"ordina/internal/domain"
	"ordina/internal/ports"
	"ordina/internal/sorter"
)

// KeyMap defines the review key bindings.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Accept key.Binding
	Skip   key.Binding
	CopyID key.Binding
	Quit   key.Binding
}

// DefaultKeys are the default review key bindings.
var DefaultKeys = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j", "down"),
	),
	Accept: key.NewBinding(
		key.WithKeys("y", "enter"),
		key.WithHelp("y", "move"),
	),
	Skip: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "skip"),
	),
	CopyID: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy id"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

type rowState int

const (
	rowPending rowState = iota
	rowMoved
	rowSkipped
	rowFailed
)

type planMsg struct {
	report *domain.SortReport
	err    error
}

type moveDoneMsg struct {
	index int
	err   error
}

// Model is the bubbletea model for the review view.
type Model struct {
	pipeline *sorter.Pipeline // configured with DryRun
	storage  ports.Storage
	parentID string
	keys     KeyMap

	spinner  spinner.Model
	loading  bool
	err      error
	proposed []domain.MoveRecord
	skipped  []domain.SkipRecord
	states   []rowState
	cursor   int
	quitting bool
}

// NewModel creates the review model. pipeline must be a dry-run
// pipeline; storage performs the accepted moves.
func NewModel(pipeline *sorter.Pipeline, storage ports.Storage, parentID string) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return Model{
		pipeline: pipeline,
		storage:  storage,
		parentID: parentID,
		keys:     DefaultKeys,
		spinner:  sp,
		loading:  true,
	}
}

// Init starts the planning run.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.plan())
}

func (m Model) plan() tea.Cmd {
	return func() tea.Msg {
		report, err := m.pipeline.Route(context.Background(), m.parentID)
		return planMsg{report: report, err: err}
	}
}

func (m Model) move(index int) tea.Cmd {
	rec := m.proposed[index]
	return func() tea.Msg {
		_, err := m.storage.Move(context.Background(), rec.FileID, rec.DestID)
		return moveDoneMsg{index: index, err: err}
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case planMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.proposed = msg.report.Moved
		m.skipped = msg.report.Skipped
		m.states = make([]rowState, len(m.proposed))
		return m, nil

	case moveDoneMsg:
		if msg.err != nil {
			m.states[msg.index] = rowFailed
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.proposed)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Accept):
		if m.cursorPending() {
			// Mark optimistically so a repeated keypress cannot fire a
			// second move; moveDoneMsg downgrades on failure.
			m.states[m.cursor] = rowMoved
			cmd := m.move(m.cursor)
			m.advance()
			return m, cmd
		}

	case key.Matches(msg, m.keys.Skip):
		if m.cursorPending() {
			m.states[m.cursor] = rowSkipped
			m.advance()
		}

	case key.Matches(msg, m.keys.CopyID):
		if m.cursor < len(m.proposed) {
			// Best effort; no clipboard is not an error worth showing.
			_ = clipboard.WriteAll(m.proposed[m.cursor].FileID)
		}
	}
	return m, nil
}

func (m Model) cursorPending() bool {
	return m.cursor < len(m.proposed) && m.states[m.cursor] == rowPending
}

func (m *Model) advance() {
	if m.cursor < len(m.proposed)-1 {
		m.cursor++
	}
}

// View renders the review screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render("Review proposed moves"))
	b.WriteString("\n")

	switch {
	case m.loading:
		b.WriteString(m.spinner.View())
		b.WriteString(" classifying files...\n")

	case m.err != nil:
		b.WriteString(styles.ErrorText.Render("Error: " + m.err.Error()))
		b.WriteString("\n")

	case len(m.proposed) == 0:
		b.WriteString(styles.Subtitle.Render("Nothing to move."))
		b.WriteString("\n")

	default:
		for i, rec := range m.proposed {
			b.WriteString(m.renderRow(i, rec))
			b.WriteString("\n")
		}
	}

	if !m.loading && len(m.skipped) > 0 {
		b.WriteString("\n")
		b.WriteString(styles.Subtitle.Render(fmt.Sprintf("%d skipped:", len(m.skipped))))
		b.WriteString("\n")
		for _, s := range m.skipped {
			b.WriteString(styles.RowSkipped.Render(fmt.Sprintf("  %s (%s)", s.Name, s.Reason)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelp())
	return styles.App.Render(b.String())
}

func (m Model) renderRow(i int, rec domain.MoveRecord) string {
	marker := "  "
	line := fmt.Sprintf("%s -> %s %s", rec.Name, rec.DestName, styles.MethodTag.Render("("+string(rec.Method)+")"))

	var style = styles.RowPending
	switch m.states[i] {
	case rowMoved:
		style = styles.RowAccepted
		marker = "✓ "
	case rowSkipped:
		style = styles.RowSkipped
		marker = "- "
	case rowFailed:
		style = styles.RowFailed
		marker = "✗ "
	}
	if i == m.cursor && m.states[i] == rowPending {
		style = styles.RowSelected
		marker = "> "
	}
	return style.Render(marker + line)
}

func (m Model) renderHelp() string {
	parts := []struct{ k, d string }{
		{"j/k", "navigate"},
		{"y", "move"},
		{"n", "skip"},
		{"c", "copy id"},
		{"q", "quit"},
	}
	var b strings.Builder
	for i, p := range parts {
		if i > 0 {
			b.WriteString(styles.HelpDesc.Render("  "))
		}
		b.WriteString(styles.HelpKey.Render(p.k))
		b.WriteString(styles.HelpDesc.Render(" " + p.d))
	}
	return b.String()
}
