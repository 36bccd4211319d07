package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"
)

// DefaultWidth is used when the output is not a terminal and no width was given.
const DefaultWidth = 80

// CSI 2026 synchronized output.
const (
	syncBegin = "\x1b[?2026h"
	syncEnd   = "\x1b[?2026l"
)

// Inline is an inline viewport of fixed height.
//
// Between operations the cursor sits at column 0 of the viewport's first
// row, so every operation can address rows with relative movement only.
type Inline struct {
	out    io.Writer
	width  int
	height int

	// previous frame, nil when the viewport must be fully repainted
	prev []string
}

// InlineOption configures an Inline viewport.
type InlineOption func(*Inline)

// WithWidth fixes the viewport width instead of querying the terminal.
func WithWidth(width int) InlineOption {
	return func(v *Inline) {
		v.width = width
	}
}

// NewInline reserves height lines on out and hides the cursor.
func NewInline(out io.Writer, height int, opts ...InlineOption) (*Inline, error) {
	if height <= 0 {
		return nil, fmt.Errorf("terminal: invalid viewport height %d", height)
	}
	v := &Inline{out: out, height: height}
	for _, opt := range opts {
		opt(v)
	}
	if v.width <= 0 {
		v.width = detectWidth(out)
	}

	if err := v.write(ansi.HideCursor + v.reserve()); err != nil {
		return nil, fmt.Errorf("terminal: reserving viewport: %w", err)
	}
	return v, nil
}

// NewStdout opens an inline viewport on the process's standard output.
func NewStdout(height int) (*Inline, error) {
	return NewInline(os.Stdout, height)
}

func detectWidth(out io.Writer) int {
	f, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return DefaultWidth
	}
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 {
		return DefaultWidth
	}
	return w
}

// Size returns the viewport dimensions.
func (v *Inline) Size() (width, height int) {
	return v.width, v.height
}

// Draw renders a frame and writes only the rows that changed since the
// previous draw.
func (v *Inline) Draw(render func(*Frame)) error {
	frame := NewFrame(v.width, v.height)
	render(frame)
	lines := frame.Lines()

	var b strings.Builder
	row := 0
	for i, line := range lines {
		if v.prev != nil && v.prev[i] == line {
			continue
		}
		if i > row {
			b.WriteString(ansi.CursorDown(i - row))
			row = i
		}
		b.WriteString("\r")
		b.WriteString(ansi.EraseEntireLine)
		b.WriteString(line)
	}
	if b.Len() == 0 {
		return nil
	}
	b.WriteString("\r")
	if row > 0 {
		b.WriteString(ansi.CursorUp(row))
	}

	if err := v.write(syncBegin + b.String() + syncEnd); err != nil {
		return fmt.Errorf("terminal: draw: %w", err)
	}
	v.prev = lines
	return nil
}

// InsertBefore renders n lines and places them directly above the viewport.
// They become ordinary scrollback. The viewport is left blank and must be
// drawn again.
func (v *Inline) InsertBefore(n int, render func(*Frame)) error {
	if n <= 0 {
		return nil
	}
	frame := NewFrame(v.width, n)
	render(frame)

	var b strings.Builder
	b.WriteString(syncBegin)
	b.WriteString("\r")
	b.WriteString(ansi.EraseScreenBelow)
	for _, line := range frame.Lines() {
		b.WriteString(line)
		b.WriteString("\r\n")
	}
	b.WriteString(v.reserve())
	b.WriteString(syncEnd)

	if err := v.write(b.String()); err != nil {
		return fmt.Errorf("terminal: insert %d lines: %w", n, err)
	}
	v.prev = nil
	return nil
}

// ShowCursor makes the terminal cursor visible again.
func (v *Inline) ShowCursor() error {
	if err := v.write(ansi.ShowCursor); err != nil {
		return fmt.Errorf("terminal: show cursor: %w", err)
	}
	return nil
}

// Clear erases the viewport region and leaves the cursor at its first row.
func (v *Inline) Clear() error {
	if err := v.write("\r" + ansi.EraseScreenBelow); err != nil {
		return fmt.Errorf("terminal: clear: %w", err)
	}
	v.prev = nil
	return nil
}

// reserve scrolls enough blank lines into view for the viewport and moves
// back to its first row.
func (v *Inline) reserve() string {
	if v.height == 1 {
		return "\r"
	}
	return strings.Repeat("\r\n", v.height-1) + ansi.CursorUp(v.height-1) + "\r"
}

func (v *Inline) write(s string) error {
	_, err := io.WriteString(v.out, s)
	return err
}
