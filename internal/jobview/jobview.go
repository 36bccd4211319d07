// Package jobview is a three line progress display for a batch of named
// steps: a spinner with the current step, a progress bar, and counters.
package jobview

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"

	"mosstui/internal/terminal"
	"mosstui/internal/tui"
	"mosstui/internal/ui"
)

// Lines is the viewport height of a View.
const Lines = 3

// Msg is implemented by every message a View accepts.
type Msg interface {
	isMsg()
}

// Started reports that work on a step began.
type Started struct {
	Name string
}

// Finished reports that a step ended. Err is nil on success.
type Finished struct {
	Name     string
	Err      error
	Duration time.Duration
}

// Tick advances the spinner by one frame.
type Tick struct{}

func (Started) isMsg()  {}
func (Finished) isMsg() {}
func (Tick) isMsg()     {}

// View is a tui.Program tracking a fixed number of steps.
type View struct {
	title  string
	total  int
	styles Styles
	bar    progress.Model
	frames []string

	frame     int
	running   []string
	succeeded int
	failed    int
	elapsed   time.Duration
}

// Compile-time interface compliance check
var _ tui.Program[Msg] = (*View)(nil)

// New creates a view for total steps.
func New(title string, total int) *View {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	return &View{
		title:  title,
		total:  total,
		styles: DefaultStyles(),
		bar:    bar,
		frames: spinner.Dot.Frames,
	}
}

// Lines implements tui.Program.
func (v *View) Lines() int { return Lines }

// Update implements tui.Program.
func (v *View) Update(msg Msg) {
	switch msg := msg.(type) {
	case Started:
		v.running = append(v.running, msg.Name)
	case Finished:
		v.remove(msg.Name)
		if msg.Err != nil {
			v.failed++
		} else {
			v.succeeded++
		}
		v.elapsed += msg.Duration
	case Tick:
		v.frame = (v.frame + 1) % len(v.frames)
	}
}

func (v *View) remove(name string) {
	for i, n := range v.running {
		if n == name {
			v.running = append(v.running[:i], v.running[i+1:]...)
			return
		}
	}
}

// Done returns the number of finished steps.
func (v *View) Done() int { return v.succeeded + v.failed }

// Failed returns the number of failed steps.
func (v *View) Failed() int { return v.failed }

// Draw implements tui.Program.
func (v *View) Draw(f *terminal.Frame) {
	header := v.styles.Title.Render(v.title)
	switch {
	case v.Done() == v.total:
		icon := v.styles.Success.Render(ui.IconSuccess)
		if v.failed > 0 {
			icon = v.styles.Error.Render(ui.IconFailed)
		}
		header = icon + " " + header
	case len(v.running) > 0:
		header = v.styles.Spinner.Render(v.frames[v.frame]) + header + " " + v.styles.Muted.Render(v.running[0])
		if more := len(v.running) - 1; more > 0 {
			header += v.styles.Muted.Render(fmt.Sprintf(" +%d", more))
		}
	default:
		header = v.styles.Spinner.Render(v.frames[v.frame]) + header
	}
	f.SetLine(0, header)

	bar := v.bar
	if w := f.Width(); w > 0 && w < bar.Width {
		bar.Width = w
	}
	f.SetLine(1, bar.ViewAs(v.percent()))

	counts := fmt.Sprintf("%d/%d done", v.Done(), v.total)
	if v.failed > 0 {
		counts += ", " + v.styles.Error.Render(fmt.Sprintf("%d failed", v.failed))
	}
	if v.elapsed > 0 {
		counts += v.styles.Muted.Render(fmt.Sprintf(" · %s busy", v.elapsed.Round(time.Millisecond)))
	}
	f.SetLine(2, counts)
}

func (v *View) percent() float64 {
	if v.total <= 0 {
		return 1
	}
	return float64(v.Done()) / float64(v.total)
}
