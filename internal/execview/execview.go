// Package execview is a Bubble Tea model showing a command running in the
// background: a spinner, the command line, and how much output it produced.
package execview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"mosstui/internal/ui"
)

// Lines is the viewport height the model renders into.
const Lines = 2

// OutputMsg reports that the command wrote n more lines.
type OutputMsg struct {
	Lines int
}

// ExitMsg reports that the command exited.
type ExitMsg struct {
	Code int
	Err  error
}

// Model is the Bubble Tea model for a running command.
type Model struct {
	command string
	spinner spinner.Model
	output  int
	exited  bool
	code    int
	err     error
}

// Compile-time interface compliance check
var _ tea.Model = Model{}

// New creates a model for the given command line.
func New(argv []string) Model {
	s := spinner.New(spinner.WithSpinner(spinner.MiniDot))
	s.Style = ui.Styles.Muted
	return Model{
		command: strings.Join(argv, " "),
		spinner: s,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case OutputMsg:
		m.output += msg.Lines
	case ExitMsg:
		m.exited = true
		m.code = msg.Code
		m.err = msg.Err
	case spinner.TickMsg:
		if m.exited {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	switch {
	case !m.exited:
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
	case m.err != nil || m.code != 0:
		b.WriteString(ui.Styles.Error.Render(ui.IconFailed))
		b.WriteString(" ")
	default:
		b.WriteString(ui.Styles.Success.Render(ui.IconSuccess))
		b.WriteString(" ")
	}
	b.WriteString(ui.Styles.Title.Render(m.command))
	b.WriteString("\n")

	status := fmt.Sprintf("%d lines of output", m.output)
	switch {
	case m.err != nil:
		status += ", " + m.err.Error()
	case m.exited:
		status += fmt.Sprintf(", exit status %d", m.code)
	}
	b.WriteString(ui.Styles.Muted.Render(status))
	return b.String()
}

// Output returns the number of output lines seen so far.
func (m Model) Output() int { return m.output }

// Exited reports whether the command has exited, and its status.
func (m Model) Exited() (bool, int) { return m.exited, m.code }
