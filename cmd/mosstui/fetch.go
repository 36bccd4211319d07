package main

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"mosstui/internal/config"
	"mosstui/internal/jobview"
	"mosstui/internal/tui"
)

// spinnerInterval is how often the fetch view's spinner advances.
const spinnerInterval = 100 * time.Millisecond

// fetchResult is what the fetch task hands back to main.
type fetchResult struct {
	fetched int
	failed  int
}

func runFetch(ctx context.Context, cfg config.FetchConfig, opts []tui.Option) (int, error) {
	view := jobview.New("Fetching packages", len(cfg.Packages))

	res, err := tui.Run(ctx, view, func(ctx context.Context, h tui.Handle[jobview.Msg]) fetchResult {
		return fetchAll(ctx, h, cfg)
	}, opts...)
	if err != nil {
		return 1, err
	}

	fmt.Printf("fetched %d packages", res.fetched)
	if res.failed > 0 {
		fmt.Printf(", %d failed\n", res.failed)
		return 1, nil
	}
	fmt.Println()
	return 0, nil
}

// fetchAll fans the package list out to cfg.Workers workers, each with its
// own clone of the handle.
func fetchAll(ctx context.Context, h tui.Handle[jobview.Msg], cfg config.FetchConfig) fetchResult {
	tickCtx, stopTicks := context.WithCancel(ctx)
	defer stopTicks()
	go tick(tickCtx, h.Clone())

	var fetched, failed atomic.Int32
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)

	for i, name := range cfg.Packages {
		w := h.Clone()
		g.Go(func() error {
			w.Update(gctx, jobview.Started{Name: name})
			start := time.Now()
			err := fetchPackage(gctx, i, cfg.Delay)
			w.Update(gctx, jobview.Finished{Name: name, Err: err, Duration: time.Since(start)})
			if err != nil {
				failed.Add(1)
				w.Print(gctx, fmt.Sprintf("✗ %s: %v", name, err))
				return nil
			}
			fetched.Add(1)
			w.Print(gctx, "fetched "+name)
			return nil
		})
	}
	_ = g.Wait()

	return fetchResult{fetched: int(fetched.Load()), failed: int(failed.Load())}
}

func tick(ctx context.Context, h tui.Handle[jobview.Msg]) {
	t := time.NewTicker(spinnerInterval)
	defer t.Stop()
	for {
		select {
		case <-t.C:
			h.Update(ctx, jobview.Tick{})
		case <-ctx.Done():
			return
		}
	}
}

// fetchPackage stands in for a download. Sizes vary so workers finish out of
// order.
func fetchPackage(ctx context.Context, index int, delay time.Duration) error {
	timer := time.NewTimer(delay * time.Duration(1+index%3))
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
