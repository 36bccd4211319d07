package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Run draws p, starts task and applies events until the task completes.
//
// The returned value is the task's result. Setup, redraw and restore
// failures are returned as errors. An interrupt restores the surface and
// exits the process with status 0; Run only returns ErrInterrupted when the
// exit hook set with WithExit returns.
//
// Events are merged as follows: an interrupt is checked before every event
// and wins as soon as it is seen. When the task completes, events already
// queued are applied before the surface is restored. Sends after that are
// dropped.
func Run[M, T any](ctx context.Context, p Program[M], task Task[M, T], opts ...Option) (T, error) {
	var zero T
	cfg := resolveOptions(opts...)

	ctx, span := cfg.tracer.Start(ctx, "tui.run")
	defer span.End()

	d, stop, err := setup[M, T](cfg, p)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "setup failed")
		return zero, err
	}
	defer stop()

	done := make(chan struct{})
	defer close(done)

	taskCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go d.runTask(taskCtx, task, newHandle[M](d.queue, done))

	res, err := d.loop(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return res, err
}

// driver is the state of one run. Only the goroutine calling Run touches
// the program and the surface.
type driver[M, T any] struct {
	program Program[M]
	surface Surface

	interrupts <-chan struct{}
	queue      chan Event[M]
	finished   chan T
	panics     chan any

	exit   func(code int)
	log    logrus.FieldLogger
	tracer trace.Tracer
}

func setup[M, T any](cfg config, p Program[M]) (*driver[M, T], func(), error) {
	interrupts, stop, err := cfg.interrupts.Watch()
	if err != nil {
		return nil, nil, &SetupError{Stage: StageInterrupts, Err: err}
	}

	lines := p.Lines()
	if lines <= 0 {
		stop()
		return nil, nil, &SetupError{Stage: StageViewport, Err: fmt.Errorf("program requested %d lines", lines)}
	}

	surface, err := cfg.surface(lines)
	if err != nil {
		stop()
		return nil, nil, &SetupError{Stage: StageSurface, Err: err}
	}

	d := &driver[M, T]{
		program:    p,
		surface:    surface,
		interrupts: interrupts,
		queue:      make(chan Event[M], cfg.queueSize),
		finished:   make(chan T, 1),
		panics:     make(chan any, 1),
		exit:       cfg.exit,
		log:        cfg.logger.WithField("component", "tui"),
		tracer:     cfg.tracer,
	}

	if err := d.draw(); err != nil {
		_ = d.restore()
		stop()
		return nil, nil, &SetupError{Stage: StageDraw, Err: err}
	}
	d.log.WithField("lines", lines).Debug("viewport ready")
	return d, stop, nil
}

// runTask runs the caller's task and reports its result, or its panic, to
// the loop.
func (d *driver[M, T]) runTask(ctx context.Context, task Task[M, T], h Handle[M]) {
	defer func() {
		if r := recover(); r != nil {
			d.panics <- r
		}
	}()
	d.finished <- task(ctx, h)
}

func (d *driver[M, T]) loop(ctx context.Context) (T, error) {
	var zero T

	defer func() {
		if r := recover(); r != nil {
			if err := d.restore(); err != nil {
				d.log.WithError(err).Warn("restore after panic failed")
			}
			panic(r)
		}
	}()

	for {
		in := d.next(ctx)
		switch in.kind {
		case inputEvent:
			if err := d.apply(ctx, in.event); err != nil {
				if rerr := d.restore(); rerr != nil {
					d.log.WithError(rerr).Warn("restore after failed redraw")
				}
				return zero, err
			}

		case inputFinished:
			interrupted, err := d.drain(ctx, len(d.queue))
			if interrupted {
				return zero, d.terminate()
			}
			if err != nil {
				_ = d.restore()
				return zero, err
			}
			if err := d.restore(); err != nil {
				return zero, err
			}
			d.log.Debug("task finished")
			return in.result, nil

		case inputTerm:
			return zero, d.terminate()

		case inputCancelled:
			if err := d.restore(); err != nil {
				return zero, errors.Join(ctx.Err(), err)
			}
			return zero, ctx.Err()

		case inputPanic:
			panic(in.panic)
		}
	}
}

// next waits for the next item from any source. A pending interrupt is
// always taken first.
func (d *driver[M, T]) next(ctx context.Context) input[M, T] {
	select {
	case <-d.interrupts:
		return input[M, T]{kind: inputTerm}
	default:
	}

	select {
	case <-d.interrupts:
		return input[M, T]{kind: inputTerm}
	case ev := <-d.queue:
		return input[M, T]{kind: inputEvent, event: ev}
	case res := <-d.finished:
		return input[M, T]{kind: inputFinished, result: res}
	case p := <-d.panics:
		return input[M, T]{kind: inputPanic, panic: p}
	case <-ctx.Done():
		return input[M, T]{kind: inputCancelled}
	}
}

// drain applies at most n events, the ones queued when the task finished.
// Clones still sending after that are not waited for.
func (d *driver[M, T]) drain(ctx context.Context, n int) (interrupted bool, err error) {
	for range n {
		select {
		case <-d.interrupts:
			return true, nil
		default:
		}
		select {
		case ev := <-d.queue:
			if err := d.apply(ctx, ev); err != nil {
				return false, err
			}
		default:
			return false, nil
		}
	}
	return false, nil
}

// apply handles one event and redraws.
func (d *driver[M, T]) apply(ctx context.Context, ev Event[M]) error {
	_, span := d.tracer.Start(ctx, "tui."+ev.Kind.String(),
		trace.WithAttributes(attribute.Int("tui.queue.depth", len(d.queue))))
	defer span.End()

	switch ev.Kind {
	case EventMessage:
		d.log.Debug("update")
		d.program.Update(ev.Message)
	case EventPrint:
		lines := splitLines(ev.Text)
		span.SetAttributes(attribute.Int("tui.print.lines", len(lines)))
		d.log.WithField("lines", len(lines)).Debug("print")
		if err := d.insert(lines); err != nil {
			span.RecordError(err)
			return err
		}
	}

	if err := d.draw(); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

func (d *driver[M, T]) draw() error {
	if err := d.surface.Draw(d.program.Draw); err != nil {
		return fmt.Errorf("tui: redraw: %w", err)
	}
	return nil
}

// restore leaves the terminal usable: cursor visible, viewport cleared.
func (d *driver[M, T]) restore() error {
	err := errors.Join(d.surface.ShowCursor(), d.surface.Clear())
	if err != nil {
		return fmt.Errorf("tui: restore terminal: %w", err)
	}
	return nil
}

// terminate is the interrupt path: restore, then exit the process.
func (d *driver[M, T]) terminate() error {
	d.log.Debug("interrupt received")
	if err := d.restore(); err != nil {
		d.log.WithError(err).Warn("restore on interrupt failed")
	}
	d.exit(0)
	return ErrInterrupted
}
