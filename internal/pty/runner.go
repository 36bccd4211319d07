// Package pty runs commands in a pseudo-terminal and streams their output
// line by line.
package pty

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"syscall"

	"github.com/creack/pty"
)

// Size represents terminal dimensions in rows and columns.
type Size struct {
	Rows uint16
	Cols uint16
}

// Runner is the interface for spawning and controlling a PTY.
// Implementations can be swapped (e.g. creack/pty, or a mock for tests).
type Runner interface {
	Start(ctx context.Context, cmd *exec.Cmd, size Size) (io.ReadWriteCloser, error)
	Resize(rwc io.ReadWriteCloser, size Size) error
}

// CreackPTY implements Runner using github.com/creack/pty.
type CreackPTY struct{}

// Ensure CreackPTY implements Runner.
var _ Runner = (*CreackPTY)(nil)

// Start implements Runner. Spawns cmd in a PTY with the given size.
func (c *CreackPTY) Start(ctx context.Context, cmd *exec.Cmd, size Size) (io.ReadWriteCloser, error) {
	f, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: size.Rows, Cols: size.Cols})
	if err != nil {
		return nil, err
	}
	// Context cancellation is handled by exec.CommandContext on the caller's side.
	return f, nil
}

// Resize implements Runner. The rwc must be the *os.File returned by Start;
// other types are no-op.
func (c *CreackPTY) Resize(rwc io.ReadWriteCloser, size Size) error {
	f, ok := rwc.(*os.File)
	if !ok {
		return nil
	}
	return pty.Setsize(f, &pty.Winsize{Rows: size.Rows, Cols: size.Cols})
}

// ScanLines calls fn for every line read from r. Line endings are stripped.
// Reading a PTY master fails with EIO once the child has exited; that is
// treated as the end of output.
func ScanLines(r io.Reader, fn func(line string)) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		fn(strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil && !errors.Is(err, syscall.EIO) {
		return err
	}
	return nil
}

// Exec runs argv in a PTY from runner, calls onLine for each output line and
// returns the exit code. A command killed by a signal reports -1.
func Exec(ctx context.Context, runner Runner, argv []string, size Size, onLine func(string)) (int, error) {
	if len(argv) == 0 {
		return -1, errors.New("pty: empty command")
	}
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	rwc, err := runner.Start(ctx, cmd, size)
	if err != nil {
		return -1, fmt.Errorf("pty: start %s: %w", argv[0], err)
	}
	defer rwc.Close()

	scanErr := ScanLines(rwc, onLine)
	waitErr := cmd.Wait()

	var exitErr *exec.ExitError
	switch {
	case waitErr == nil:
	case errors.As(waitErr, &exitErr):
		return exitErr.ExitCode(), nil
	default:
		return -1, fmt.Errorf("pty: wait %s: %w", argv[0], waitErr)
	}
	if scanErr != nil {
		return 0, fmt.Errorf("pty: read output: %w", scanErr)
	}
	return 0, nil
}
