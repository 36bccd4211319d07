package tui

import (
	"errors"
)

// ErrInterrupted is returned by Run when the interrupt path ran but the exit
// hook returned. With the default hook the process is gone before that.
var ErrInterrupted = errors.New("tui: interrupted")

// SetupError reports a failure before the first event was processed.
// Stage names the step that failed.
type SetupError struct {
	Stage string
	Err   error
}

func (e *SetupError) Error() string {
	return "tui: setup " + e.Stage + ": " + e.Err.Error()
}

func (e *SetupError) Unwrap() error { return e.Err }

// Setup stages.
const (
	StageInterrupts = "interrupts"
	StageViewport   = "viewport"
	StageSurface    = "surface"
	StageDraw       = "initial draw"
)
