package terminal

import (
	"sync"
)

// Virtual is a render surface that keeps everything in memory.
// It records the viewport, the scrollback and cursor state for tests.
type Virtual struct {
	mu sync.Mutex

	width  int
	height int

	viewport   []string
	scrollback []string
	history    [][]string

	cursorVisible bool
	cleared       bool
	drawErr       error
}

// NewVirtual returns a Virtual surface with the given dimensions.
// The cursor starts hidden, as it does on Inline.
func NewVirtual(width, height int) *Virtual {
	return &Virtual{
		width:    width,
		height:   height,
		viewport: make([]string, height),
	}
}

// Draw renders into a fresh frame and records it as the viewport.
func (v *Virtual) Draw(render func(*Frame)) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.drawErr != nil {
		return v.drawErr
	}
	frame := NewFrame(v.width, v.height)
	render(frame)
	v.viewport = frame.Lines()
	v.history = append(v.history, frame.Lines())
	v.cleared = false
	return nil
}

// InsertBefore appends n rendered lines to the scrollback.
func (v *Virtual) InsertBefore(n int, render func(*Frame)) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if n <= 0 {
		return nil
	}
	frame := NewFrame(v.width, n)
	render(frame)
	v.scrollback = append(v.scrollback, frame.Lines()...)
	return nil
}

// ShowCursor records that the cursor was made visible.
func (v *Virtual) ShowCursor() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.cursorVisible = true
	return nil
}

// Clear blanks the viewport.
func (v *Virtual) Clear() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.viewport = make([]string, v.height)
	v.cleared = true
	return nil
}

// --- Test helpers (not part of the surface contract) ---

// FailDraws makes every subsequent Draw return err. Pass nil to stop.
func (v *Virtual) FailDraws(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.drawErr = err
}

// Viewport returns the lines of the most recent draw.
func (v *Virtual) Viewport() []string {
	v.mu.Lock()
	defer v.mu.Unlock()

	out := make([]string, len(v.viewport))
	copy(out, v.viewport)
	return out
}

// Scrollback returns every line inserted above the viewport.
func (v *Virtual) Scrollback() []string {
	v.mu.Lock()
	defer v.mu.Unlock()

	out := make([]string, len(v.scrollback))
	copy(out, v.scrollback)
	return out
}

// Draws returns the number of successful draws.
func (v *Virtual) Draws() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return len(v.history)
}

// History returns every drawn frame, oldest first.
func (v *Virtual) History() [][]string {
	v.mu.Lock()
	defer v.mu.Unlock()

	out := make([][]string, len(v.history))
	copy(out, v.history)
	return out
}

// CursorVisible reports whether ShowCursor was called.
func (v *Virtual) CursorVisible() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.cursorVisible
}

// Cleared reports whether the viewport was cleared after the last draw.
func (v *Virtual) Cleared() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.cleared
}
