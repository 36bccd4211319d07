// Package ui holds the palette and styles shared by the viewport programs.
package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent  = "86"  // Cyan/green - for titles, command lines
	ColorSuccess = "42"  // Green - for completed work
	ColorDanger  = "196" // Red - for failures
	ColorMuted   = "241" // Gray - for counters, hints
)

// Status icons
const (
	IconSuccess = "✓"
	IconFailed  = "✗"
)

// Styles contains shared style definitions used across views.
var Styles = struct {
	Title   lipgloss.Style // Bold accent color - for titles and commands
	Accent  lipgloss.Style // Accent color - for spinners
	Success lipgloss.Style // Success color - for done markers
	Error   lipgloss.Style // Danger color - for failure markers
	Muted   lipgloss.Style // Dimmed text - for counters and status
}{
	Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccent)),
	Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent)),
	Success: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess)),
	Error:   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDanger)),
	Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted)),
}
