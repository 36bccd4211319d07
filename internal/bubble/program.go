// Package bubble runs Bubble Tea models under the tui driver.
//
// The driver only knows Update and Draw. Commands a model returns are run
// here, each on its own goroutine, and their messages are fed back through
// the Handle passed to Bind.
package bubble

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"mosstui/internal/terminal"
	"mosstui/internal/tui"
)

// Program adapts a tea.Model to tui.Program[tea.Msg].
type Program struct {
	model   tea.Model
	lines   int
	initCmd tea.Cmd

	mu     sync.Mutex
	ctx    context.Context
	handle tui.Handle[tea.Msg]
	bound  bool
}

// Compile-time interface compliance check
var _ tui.Program[tea.Msg] = (*Program)(nil)

// New wraps model in a viewport lines tall. The model's Init command is
// taken here and started by Bind.
func New(model tea.Model, lines int) *Program {
	return &Program{model: model, lines: lines, initCmd: model.Init()}
}

// Bind attaches the run's handle and starts the model's Init command.
// Call it first thing in the task. Commands returned before Bind are dropped.
// Bind never touches the model, which belongs to the driver goroutine.
func (p *Program) Bind(ctx context.Context, h tui.Handle[tea.Msg]) {
	p.mu.Lock()
	p.ctx = ctx
	p.handle = h
	p.bound = true
	p.mu.Unlock()

	p.exec(p.initCmd)
}

// Model returns the current model.
func (p *Program) Model() tea.Model {
	return p.model
}

// Lines implements tui.Program.
func (p *Program) Lines() int {
	return p.lines
}

// Update implements tui.Program.
func (p *Program) Update(msg tea.Msg) {
	var cmd tea.Cmd
	p.model, cmd = p.model.Update(msg)
	p.exec(cmd)
}

// Draw implements tui.Program.
func (p *Program) Draw(f *terminal.Frame) {
	f.Render(0, p.model.View())
}

// exec runs cmd in the background and sends its message to the driver.
func (p *Program) exec(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	p.mu.Lock()
	ctx, h, bound := p.ctx, p.handle, p.bound
	p.mu.Unlock()
	if !bound {
		return
	}

	go func() {
		p.deliver(ctx, h, cmd())
	}()
}

func (p *Program) deliver(ctx context.Context, h tui.Handle[tea.Msg], msg tea.Msg) {
	switch msg := msg.(type) {
	case nil:
	case tea.QuitMsg:
		// The run ends when the task returns, not when the model asks.
	case tea.BatchMsg:
		for _, cmd := range msg {
			p.exec(cmd)
		}
	default:
		h.Update(ctx, msg)
	}
}
