package tui

import "context"

// DefaultQueueSize is the capacity of the event queue shared by all handles
// of a run.
const DefaultQueueSize = 10

// Handle pushes events into a running driver from outside its loop.
//
// A Handle is a small value; copies share the same queue. Sends block while
// the queue is full and are silently dropped once the run has ended, so a
// Handle may safely outlive Run. The zero Handle drops everything.
type Handle[M any] struct {
	queue chan<- Event[M]
	done  <-chan struct{}
}

func newHandle[M any](queue chan<- Event[M], done <-chan struct{}) Handle[M] {
	return Handle[M]{queue: queue, done: done}
}

// Clone returns a handle sharing this handle's queue.
func (h Handle[M]) Clone() Handle[M] {
	return h
}

// Print asks the driver to insert text above the viewport.
func (h Handle[M]) Print(ctx context.Context, text string) {
	h.send(ctx, PrintEvent[M](text))
}

// Update asks the driver to apply msg to the Program and redraw.
func (h Handle[M]) Update(ctx context.Context, msg M) {
	h.send(ctx, MessageEvent(msg))
}

// send enqueues ev, waiting for space. It gives up without error when the
// run has ended or ctx is done.
func (h Handle[M]) send(ctx context.Context, ev Event[M]) {
	if h.queue == nil {
		return
	}
	// A finished run must not accept events even if the buffer has room.
	select {
	case <-h.done:
		return
	default:
	}
	select {
	case h.queue <- ev:
	case <-h.done:
	case <-ctx.Done():
	}
}
