package execview

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"mosstui/internal/ui"
)

func TestModel_CountsOutput(t *testing.T) {
	m := New([]string{"ls", "-l"})
	next, _ := m.Update(OutputMsg{Lines: 2})
	next, _ = next.Update(OutputMsg{Lines: 3})

	got := next.(Model)
	if got.Output() != 5 {
		t.Errorf("Output() = %d, want 5", got.Output())
	}
	view := ansi.Strip(got.View())
	if !strings.Contains(view, "ls -l") || !strings.Contains(view, "5 lines of output") {
		t.Errorf("view = %q", view)
	}
}

func TestModel_Exit(t *testing.T) {
	m := New([]string{"false"})
	next, _ := m.Update(ExitMsg{Code: 1})
	got := next.(Model)

	exited, code := got.Exited()
	if !exited || code != 1 {
		t.Errorf("Exited() = %v, %d", exited, code)
	}
	view := ansi.Strip(got.View())
	if !strings.HasPrefix(view, "✗") || !strings.Contains(view, "exit status 1") {
		t.Errorf("view = %q", view)
	}
}

func TestModel_ExitError(t *testing.T) {
	m := New([]string{"nope"})
	next, _ := m.Update(ExitMsg{Code: -1, Err: errors.New("not found")})

	if view := ansi.Strip(next.View()); !strings.Contains(view, "not found") {
		t.Errorf("view = %q", view)
	}
}

func TestModel_SpinnerStopsAfterExit(t *testing.T) {
	m := New([]string{"true"})
	if m.Init() == nil {
		t.Fatal("Init should start the spinner")
	}

	running, cmd := m.Update(spinner.TickMsg{})
	if cmd == nil {
		t.Error("spinner should keep ticking while the command runs")
	}

	exited, _ := running.Update(ExitMsg{})
	if _, cmd := exited.Update(spinner.TickMsg{}); cmd != nil {
		t.Error("spinner should stop once the command exited")
	}
}

func TestModel_ViewIsStable(t *testing.T) {
	m := New([]string{"echo", "hi"})
	if m.View() != m.View() {
		t.Error("View should be deterministic")
	}
}

func TestModel_UsesSharedPalette(t *testing.T) {
	m := New([]string{"true"})
	if got := m.spinner.Style.GetForeground(); got != lipgloss.Color(ui.ColorMuted) {
		t.Errorf("spinner foreground = %v, want %v", got, ui.ColorMuted)
	}

	next, _ := m.Update(ExitMsg{Code: 0})
	if view := ansi.Strip(next.View()); !strings.HasPrefix(view, ui.IconSuccess) {
		t.Errorf("view = %q, want %s prefix", view, ui.IconSuccess)
	}
}
