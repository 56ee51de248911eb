// Package prompt implements the interactive large-file deciders: a
// bubbletea list for terminals and a y/n line prompt for everything else.
package prompt

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"repoextract/pkg/combine"
)

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Accept  key.Binding
	Reject  key.Binding
	Toggle  key.Binding
	Confirm key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Accept:  key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "include")),
		Reject:  key.NewBinding(key.WithKeys("n", "N"), key.WithHelp("n", "exclude")),
		Toggle:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "done")),
	}
}

func (k keyMap) help() string {
	parts := make([]string, 0, 6)
	for _, b := range []key.Binding{k.Up, k.Down, k.Accept, k.Reject, k.Toggle, k.Confirm} {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	acceptedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	rejectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// model is the selection screen. Only the confirm key ends it.
type model struct {
	entries  []combine.OversizedFile
	selected []bool
	cursor   int
	done     bool
	keys     keyMap
}

func newModel(entries []combine.OversizedFile) model {
	return model{
		entries:  entries,
		selected: combine.DefaultDecisions(len(entries)),
		keys:     defaultKeyMap(),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.done {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Confirm):
		m.done = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Accept):
		m.setCurrent(true)
	case key.Matches(keyMsg, m.keys.Reject):
		m.setCurrent(false)
	case key.Matches(keyMsg, m.keys.Toggle):
		m.selected = append([]bool(nil), m.selected...)
		m.selected[m.cursor] = !m.selected[m.cursor]
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	}
	return m, nil
}

// setCurrent records a decision for the entry under the cursor and moves to
// the next entry.
func (m *model) setCurrent(accept bool) {
	m.selected = append([]bool(nil), m.selected...)
	m.selected[m.cursor] = accept
	if m.cursor < len(m.entries)-1 {
		m.cursor++
	}
}

func (m model) View() string {
	var builder strings.Builder

	builder.WriteString(titleStyle.Render(fmt.Sprintf("Found %d large files (>1MB). Select files to include:", len(m.entries))))
	builder.WriteString("\n\n")

	for i, entry := range m.entries {
		prefix := "  "
		if i == m.cursor {
			prefix = cursorStyle.Render("> ")
		}
		status := acceptedStyle.Render("[Y]")
		if !m.selected[i] {
			status = rejectedStyle.Render("[N]")
		}
		builder.WriteString(fmt.Sprintf("%s%s %s (%.2fMB)\n", prefix, status, entry.Path, entry.SizeMB()))
	}

	builder.WriteString("\n")
	builder.WriteString(dimStyle.Render(m.keys.help()))
	builder.WriteString("\n")
	return builder.String()
}

// TUI asks about oversized files with a full-screen bubbletea list.
type TUI struct {
	In  io.Reader // nil means the program's default (stdin)
	Out io.Writer // nil means the program's default (stdout)
}

// Decide runs the list until the user confirms and returns the selection.
func (t TUI) Decide(ctx context.Context, entries []combine.OversizedFile) ([]bool, error) {
	if len(entries) == 0 {
		return nil, nil
	}

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if t.In != nil {
		opts = append(opts, tea.WithInput(t.In))
	}
	if t.Out != nil {
		opts = append(opts, tea.WithOutput(t.Out))
	}

	final, err := tea.NewProgram(newModel(entries), opts...).Run()
	if err != nil {
		return nil, fmt.Errorf("large file selection failed: %w", err)
	}
	m, ok := final.(model)
	if !ok {
		return nil, fmt.Errorf("large file selection returned %T", final)
	}
	return m.selected, nil
}
