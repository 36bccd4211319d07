package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"mosstui/internal/bubble"
	"mosstui/internal/execview"
	"mosstui/internal/pty"
	"mosstui/internal/tui"
)

// execResult is what the exec task hands back to main.
type execResult struct {
	code int
	err  error
}

func runExec(ctx context.Context, argv []string, opts []tui.Option) (int, error) {
	prog := bubble.New(execview.New(argv), execview.Lines)

	res, err := tui.Run(ctx, prog, func(ctx context.Context, h tui.Handle[tea.Msg]) execResult {
		prog.Bind(ctx, h)
		code, err := pty.Exec(ctx, &pty.CreackPTY{}, argv, ptySize(), func(line string) {
			h.Print(ctx, line)
			h.Update(ctx, execview.OutputMsg{Lines: 1})
		})
		h.Update(ctx, execview.ExitMsg{Code: code, Err: err})
		return execResult{code: code, err: err}
	}, opts...)
	if err != nil {
		return 1, err
	}
	if res.err != nil {
		return 1, res.err
	}

	fmt.Fprintf(os.Stderr, "%s exited with status %d\n", argv[0], res.code)
	return res.code, nil
}

// ptySize matches the child's terminal to ours so its line wrapping agrees.
func ptySize() pty.Size {
	size := pty.Size{Rows: 24, Cols: 80}
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return size
	}
	if w, h, err := term.GetSize(fd); err == nil && w > 0 && h > 0 {
		size.Cols, size.Rows = uint16(w), uint16(h)
	}
	return size
}
