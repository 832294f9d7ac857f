package worker

import (
	"context"
	"log/slog"
	"time"

	"trendfeed/internal/source"
)

// CacheWarmer periodically fetches every subject through the caching
// adapter so page views rarely wait on the upstream.
type CacheWarmer struct {
	Source   source.Adapter
	Slugs    []string
	Interval time.Duration
}

func (w *CacheWarmer) Start(ctx context.Context) error {
	if w.Interval <= 0 {
		w.Interval = 5 * time.Minute
	}
	t := time.NewTicker(w.Interval)
	defer t.Stop()

	w.runOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			w.runOnce(ctx)
		}
	}
}

func (w *CacheWarmer) runOnce(ctx context.Context) {
	warmed := 0
	for _, slug := range w.Slugs {
		if ctx.Err() != nil {
			return
		}
		if _, err := w.Source.FetchRawItems(ctx, slug); err != nil {
			slog.Warn("warmer: fetch stories failed", "subject", slug, "error", err)
			continue
		}
		if _, err := w.Source.FetchActivity(ctx, slug); err != nil {
			slog.Warn("warmer: fetch activity failed", "subject", slug, "error", err)
			continue
		}
		warmed++
	}
	slog.Debug("warmer: pass complete", "warmed", warmed, "subjects", len(w.Slugs))
}
