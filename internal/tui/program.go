// Package tui drives a Model-View-Update program inside an inline terminal
// viewport.
//
// Run owns the render surface for the whole run. It redraws the Program in
// response to events from three sources: messages and print requests sent
// through a Handle, the completion of the caller's task, and the interrupt
// signal.
//
// # Basic Usage
//
//	result, err := tui.Run(ctx, newModel(), func(ctx context.Context, h tui.Handle[Msg]) int {
//	    h.Print(ctx, "starting")
//	    h.Update(ctx, Progress{Done: 1})
//	    return 0
//	})
//
// Interrupt (Ctrl-C) restores the terminal and exits the process with status 0.
package tui

import (
	"context"

	"mosstui/internal/terminal"
)

// Program is the state machine a caller hands to Run.
//
// Lines is read once before the surface is created and must not change
// during the run. Update mutates state and has no other effect. Draw renders
// the current state without mutating it; two draws with no Update in between
// must produce the same frame.
type Program[M any] interface {
	Lines() int
	Update(msg M)
	Draw(f *terminal.Frame)
}

// Task is the caller's work. It runs on its own goroutine and its return
// value becomes the result of Run. ctx is cancelled when Run returns.
type Task[M, T any] func(ctx context.Context, h Handle[M]) T
