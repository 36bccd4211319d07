// Package terminal provides the render surfaces a tui driver draws into.
//
// A Frame is the line buffer handed to draw callbacks. Inline is the real
// backend: an inline viewport of fixed height at the bottom of the normal
// terminal flow, with scrollback inserted above it. Virtual records what a
// driver did to it and is meant for tests.
package terminal

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Frame is a fixed-size grid of display lines.
type Frame struct {
	width  int
	height int
	lines  []string
}

// NewFrame returns a blank frame of the given size.
func NewFrame(width, height int) *Frame {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Frame{
		width:  width,
		height: height,
		lines:  make([]string, height),
	}
}

// Width returns the frame width in cells.
func (f *Frame) Width() int { return f.width }

// Height returns the number of lines in the frame.
func (f *Frame) Height() int { return f.height }

// SetLine replaces row with s, truncated to the frame width.
// Rows outside the frame are ignored.
func (f *Frame) SetLine(row int, s string) {
	if row < 0 || row >= f.height {
		return
	}
	// A single row never carries a line break.
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		s = s[:i]
	}
	if ansi.StringWidth(s) > f.width {
		s = ansi.Truncate(s, f.width, "")
	}
	f.lines[row] = s
}

// Render writes a multi-line block starting at row and returns the number
// of rows it occupied inside the frame.
func (f *Frame) Render(row int, block string) int {
	n := 0
	for i, line := range strings.Split(block, "\n") {
		r := row + i
		if r >= f.height {
			break
		}
		if r < 0 {
			continue
		}
		f.SetLine(r, strings.TrimSuffix(line, "\r"))
		n++
	}
	return n
}

// Line returns the content of row, or "" when row is out of range.
func (f *Frame) Line(row int) string {
	if row < 0 || row >= f.height {
		return ""
	}
	return f.lines[row]
}

// Lines returns a copy of every row.
func (f *Frame) Lines() []string {
	out := make([]string, len(f.lines))
	copy(out, f.lines)
	return out
}

// String joins the rows with newlines.
func (f *Frame) String() string {
	return strings.Join(f.lines, "\n")
}
