// Package logging sets up the logrus logger used by the CLI.
package logging

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	log "github.com/sirupsen/logrus"
)

// SimpleTextFormatter formats in the form 2026-10-15T15:03:55+0200 INFO message key=value
type SimpleTextFormatter struct{}

// Format implements logrus.Formatter.
func (f *SimpleTextFormatter) Format(entry *log.Entry) ([]byte, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "%v %v %v",
		entry.Time.Format("2006-01-02T15:04:05-0700"),
		strings.ToUpper(entry.Level.String()),
		entry.Message,
	)
	for _, k := range slices.Sorted(maps.Keys(entry.Data)) {
		fmt.Fprintf(&b, " %s=%v", k, entry.Data[k])
	}
	b.WriteString("\n")
	return []byte(b.String()), nil
}

// New returns a logger at level writing to file, or discarding output when
// file is empty. The returned closer releases the file.
func New(level, file string) (*log.Logger, io.Closer, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: %w", err)
	}

	logger := log.New()
	logger.SetFormatter(new(SimpleTextFormatter))
	logger.SetLevel(lvl)

	if file == "" {
		logger.SetOutput(io.Discard)
		return logger, nopCloser{}, nil
	}

	f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: open %s: %w", file, err)
	}
	logger.SetOutput(f)
	return logger, f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
