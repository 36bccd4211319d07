package tui

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"mosstui/internal/terminal"
)

// Surface is the render surface the driver owns for a run.
type Surface interface {
	Draw(render func(*terminal.Frame)) error
	InsertBefore(lines int, render func(*terminal.Frame)) error
	ShowCursor() error
	Clear() error
}

// Ensure the terminal backends implement Surface.
var (
	_ Surface = (*terminal.Inline)(nil)
	_ Surface = (*terminal.Virtual)(nil)
)

// SurfaceFactory acquires a surface whose viewport is lines tall.
type SurfaceFactory func(lines int) (Surface, error)

// StdoutSurface opens an inline viewport on standard output.
func StdoutSurface(lines int) (Surface, error) {
	v, err := terminal.NewStdout(lines)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// config holds resolved Run options.
type config struct {
	surface    SurfaceFactory
	interrupts InterruptSource
	exit       func(code int)
	queueSize  int
	logger     logrus.FieldLogger
	tracer     trace.Tracer
}

// Option configures Run.
type Option func(*config)

func resolveOptions(opts ...Option) config {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	cfg := config{
		surface:    StdoutSurface,
		interrupts: SignalInterrupts{},
		exit:       os.Exit,
		queueSize:  DefaultQueueSize,
		logger:     discard,
		tracer:     otel.Tracer("mosstui/tui"),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.queueSize <= 0 {
		cfg.queueSize = DefaultQueueSize
	}
	return cfg
}

// WithSurface replaces the render surface backend.
func WithSurface(f SurfaceFactory) Option {
	return func(c *config) {
		c.surface = f
	}
}

// WithInterrupts replaces the interrupt watcher.
func WithInterrupts(src InterruptSource) Option {
	return func(c *config) {
		c.interrupts = src
	}
}

// WithExit replaces the process exit used on interrupt.
func WithExit(exit func(code int)) Option {
	return func(c *config) {
		c.exit = exit
	}
}

// WithQueueSize sets the event queue capacity. Values below 1 select
// DefaultQueueSize.
func WithQueueSize(n int) Option {
	return func(c *config) {
		c.queueSize = n
	}
}

// WithLogger sets the logger for loop diagnostics. Nothing is logged to the
// terminal by default since the surface owns it.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithTracer sets the tracer used for run and event spans.
func WithTracer(t trace.Tracer) Option {
	return func(c *config) {
		c.tracer = t
	}
}
