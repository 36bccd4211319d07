package tui

import (
	"os"
	"os/signal"
)

// InterruptSource delivers interrupt notifications. Watch starts watching and
// returns the notification channel and a function that stops the watch.
type InterruptSource interface {
	Watch() (<-chan struct{}, func(), error)
}

// SignalInterrupts watches the process for os.Interrupt.
type SignalInterrupts struct{}

// Ensure SignalInterrupts implements InterruptSource.
var _ InterruptSource = SignalInterrupts{}

// Watch implements InterruptSource.
func (SignalInterrupts) Watch() (<-chan struct{}, func(), error) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)

	out := make(chan struct{}, 1)
	quit := make(chan struct{})
	go func() {
		for {
			select {
			case <-sigCh:
				select {
				case out <- struct{}{}:
				default: // already pending
				}
			case <-quit:
				return
			}
		}
	}()

	stop := func() {
		signal.Stop(sigCh)
		close(quit)
	}
	return out, stop, nil
}

// ChanInterrupts adapts a channel into an InterruptSource. Every value
// received on the channel is one interrupt.
type ChanInterrupts <-chan struct{}

// Watch implements InterruptSource.
func (c ChanInterrupts) Watch() (<-chan struct{}, func(), error) {
	return c, func() {}, nil
}
