package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestStyles_UsePalette(t *testing.T) {
	tests := []struct {
		name  string
		style lipgloss.Style
		want  string
	}{
		{"title", Styles.Title, ColorAccent},
		{"accent", Styles.Accent, ColorAccent},
		{"success", Styles.Success, ColorSuccess},
		{"error", Styles.Error, ColorDanger},
		{"muted", Styles.Muted, ColorMuted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.style.GetForeground(); got != lipgloss.Color(tt.want) {
				t.Errorf("foreground = %v, want %v", got, tt.want)
			}
		})
	}
	if !Styles.Title.GetBold() {
		t.Error("title should be bold")
	}
}
