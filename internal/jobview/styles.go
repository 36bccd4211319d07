package jobview

import (
	"github.com/charmbracelet/lipgloss"

	"mosstui/internal/ui"
)

// Styles contains all styles for the job view
type Styles struct {
	Title   lipgloss.Style
	Spinner lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
}

// DefaultStyles returns the default job view styles
func DefaultStyles() Styles {
	return Styles{
		Title:   ui.Styles.Title,
		Spinner: ui.Styles.Accent,
		Success: ui.Styles.Success,
		Error:   ui.Styles.Error,
		Muted:   ui.Styles.Muted,
	}
}
