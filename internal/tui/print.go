package tui

import (
	"fmt"
	"strings"

	"mosstui/internal/terminal"
)

// splitLines breaks text into display lines. A trailing newline does not
// start another line and a carriage return before each newline is dropped,
// so "" yields no lines and "a\n" yields one.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// insert places lines into the scrollback directly above the viewport.
func (d *driver[M, T]) insert(lines []string) error {
	if len(lines) == 0 {
		return nil
	}
	err := d.surface.InsertBefore(len(lines), func(f *terminal.Frame) {
		for i, line := range lines {
			f.SetLine(i, line)
		}
	})
	if err != nil {
		return fmt.Errorf("tui: insert %d lines: %w", len(lines), err)
	}
	return nil
}
