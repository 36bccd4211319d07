package main

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mosstui/internal/config"
	"mosstui/internal/jobview"
	"mosstui/internal/terminal"
	"mosstui/internal/tui"
)

func TestFetchAll_PrintsEveryPackage(t *testing.T) {
	cfg := config.FetchConfig{
		Packages: []string{"glibc", "zlib", "xz", "bash", "curl"},
		Workers:  2,
		Delay:    time.Millisecond,
	}
	view := jobview.New("Fetching packages", len(cfg.Packages))
	surface := terminal.NewVirtual(80, jobview.Lines)

	res, err := tui.Run(context.Background(), view, func(ctx context.Context, h tui.Handle[jobview.Msg]) fetchResult {
		return fetchAll(ctx, h, cfg)
	},
		tui.WithSurface(func(int) (tui.Surface, error) { return surface, nil }),
		tui.WithInterrupts(tui.ChanInterrupts(make(chan struct{}))),
	)
	require.NoError(t, err)

	assert.Equal(t, fetchResult{fetched: 5}, res)
	assert.Equal(t, 5, view.Done())
	assert.Zero(t, view.Failed())

	printed := surface.Scrollback()
	sort.Strings(printed)
	assert.Equal(t, []string{
		"fetched bash", "fetched curl", "fetched glibc", "fetched xz", "fetched zlib",
	}, printed)
	assert.True(t, surface.CursorVisible())
}

func TestFetchPackage_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := fetchPackage(ctx, 0, time.Hour)
	assert.ErrorIs(t, err, context.Canceled)
}
