package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"mosstui/internal/config"
	"mosstui/internal/logging"
	"mosstui/internal/telemetry"
	"mosstui/internal/tui"
)

// options holds the parsed command line.
type options struct {
	configPath string
	command    string
	args       []string
}

func parseFlags() options {
	var opts options

	flag.StringVar(&opts.configPath, "config", "", "path to a YAML config file (default ./mosstui.yaml if present)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: mosstui [flags] <command> [args]\n\n")
		fmt.Fprintf(os.Stderr, "Commands:\n")
		fmt.Fprintf(os.Stderr, "  fetch              fetch the configured packages with a live progress view\n")
		fmt.Fprintf(os.Stderr, "  exec -- cmd args   run a command, streaming its output above a status view\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}
	opts.command = flag.Arg(0)
	opts.args = flag.Args()[1:]
	if len(opts.args) > 0 && opts.args[0] == "--" {
		opts.args = opts.args[1:]
	}
	return opts
}

func run(opts options) (int, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return 1, err
	}

	logger, logFile, err := logging.New(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		return 1, err
	}
	defer logFile.Close()

	ctx := context.Background()
	provider, err := telemetry.Setup(ctx, cfg.Telemetry.Endpoint, cfg.Telemetry.ServiceName)
	if err != nil {
		return 1, fmt.Errorf("telemetry: %w", err)
	}
	flush := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := provider.Shutdown(ctx); err != nil {
			logger.WithError(err).Warn("telemetry shutdown failed")
		}
	}
	defer flush()

	driverOpts := []tui.Option{
		tui.WithLogger(logger),
		tui.WithTracer(provider.Tracer()),
		tui.WithQueueSize(cfg.Driver.QueueSize),
		// Interrupt skips deferred calls; flush what we can first.
		tui.WithExit(func(code int) {
			logger.Info("interrupted")
			flush()
			_ = logFile.Close()
			os.Exit(code)
		}),
	}

	logger.WithField("command", opts.command).Info("starting")
	switch opts.command {
	case "fetch":
		return runFetch(ctx, cfg.Fetch, driverOpts)
	case "exec":
		if len(opts.args) == 0 {
			return 2, fmt.Errorf("exec: missing command")
		}
		return runExec(ctx, opts.args, driverOpts)
	default:
		flag.Usage()
		return 2, fmt.Errorf("unknown command %q", opts.command)
	}
}

func main() {
	opts := parseFlags()
	code, err := run(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mosstui: %v\n", err)
		if code == 0 {
			code = 1
		}
	}
	os.Exit(code)
}
