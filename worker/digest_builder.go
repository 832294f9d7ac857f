package worker

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"trendfeed/internal/cache"
	"trendfeed/internal/digest"
)

// DigestBuilder writes one digest per subject per UTC day. Days already
// written are remembered in Marks. With the memory backend the marks die with
// the process, so a restart may rewrite today's file; use Redis to keep them.
type DigestBuilder struct {
	Builder  *digest.Builder
	Slugs    []string
	Marks    cache.Cache
	Interval time.Duration
	Now      func() time.Time
}

func (w *DigestBuilder) Start(ctx context.Context) error {
	if w.Interval <= 0 {
		w.Interval = 30 * time.Minute
	}
	if w.Now == nil {
		w.Now = time.Now
	}
	// run immediately then on interval
	w.runOnce(ctx)

	t := time.NewTicker(w.Interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			w.runOnce(ctx)
		}
	}
}

func markKey(slug string, now time.Time) string {
	return "digest:" + slug + ":" + now.UTC().Format("20060102")
}

func (w *DigestBuilder) runOnce(ctx context.Context) {
	now := w.Now()
	for _, slug := range w.Slugs {
		if ctx.Err() != nil {
			return
		}
		key := markKey(slug, now)
		if _, done, err := w.Marks.Get(ctx, key); err != nil {
			slog.Error("digest builder: check mark failed", "subject", slug, "error", err)
			continue
		} else if done {
			continue
		}
		path, err := w.Builder.Build(ctx, slug, now)
		if errors.Is(err, digest.ErrEmptyFeed) {
			slog.Info("digest builder: nothing to write", "subject", slug)
			continue
		}
		if err != nil {
			slog.Error("digest builder: build failed", "subject", slug, "error", err)
			continue
		}
		if err := w.Marks.Set(ctx, key, []byte(path), 48*time.Hour); err != nil {
			slog.Error("digest builder: mark failed", "subject", slug, "error", err)
		}
	}
}
