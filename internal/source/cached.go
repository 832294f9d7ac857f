package source

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"trendfeed/internal/cache"
	"trendfeed/internal/metrics"
	"trendfeed/internal/model"
)

// Cached serves adapter results from a time-windowed cache. Only successful
// fetches are stored. Cache failures are logged and fall through to the adapter;
// there is no way for callers to bypass a fresh entry.
type Cached struct {
	inner      Adapter
	cache      cache.Cache
	storiesTTL time.Duration
	countsTTL  time.Duration
}

func NewCached(inner Adapter, c cache.Cache, storiesTTL, countsTTL time.Duration) *Cached {
	return &Cached{inner: inner, cache: c, storiesTTL: storiesTTL, countsTTL: countsTTL}
}

func storiesKey(slug string) string { return "stories:" + slug }
func countsKey(slug string) string  { return "counts:" + slug }

func (c *Cached) FetchRawItems(ctx context.Context, slug string) ([]model.RawItem, error) {
	if b, ok := c.lookup(ctx, "stories", storiesKey(slug)); ok {
		var items []model.RawItem
		if err := json.Unmarshal(b, &items); err == nil {
			return items, nil
		}
		slog.Warn("cache: dropping undecodable stories entry", "slug", slug)
	}
	items, err := c.inner.FetchRawItems(ctx, slug)
	observe("stories", err)
	if err != nil {
		return nil, err
	}
	if b, err := json.Marshal(items); err == nil {
		c.store(ctx, storiesKey(slug), b, c.storiesTTL)
	}
	return items, nil
}

func (c *Cached) FetchActivity(ctx context.Context, slug string) (int, error) {
	if b, ok := c.lookup(ctx, "counts", countsKey(slug)); ok {
		if n, err := strconv.Atoi(string(b)); err == nil {
			return n, nil
		}
	}
	n, err := c.inner.FetchActivity(ctx, slug)
	observe("counts", err)
	if err != nil {
		return 0, err
	}
	c.store(ctx, countsKey(slug), []byte(strconv.Itoa(n)), c.countsTTL)
	return n, nil
}

func (c *Cached) lookup(ctx context.Context, kind, key string) ([]byte, bool) {
	b, ok, err := c.cache.Get(ctx, key)
	if err != nil {
		slog.Warn("cache: get failed", "key", key, "error", err)
		metrics.CacheLookupsTotal.WithLabelValues(kind, "error").Inc()
		return nil, false
	}
	if !ok {
		metrics.CacheLookupsTotal.WithLabelValues(kind, "miss").Inc()
		return nil, false
	}
	metrics.CacheLookupsTotal.WithLabelValues(kind, "hit").Inc()
	return b, true
}

func (c *Cached) store(ctx context.Context, key string, b []byte, ttl time.Duration) {
	if err := c.cache.Set(ctx, key, b, ttl); err != nil {
		slog.Warn("cache: set failed", "key", key, "error", err)
	}
}

// observe records the outcome of one upstream fetch.
func observe(kind string, err error) {
	metrics.SourceFetchesTotal.WithLabelValues(kind, Outcome(err)).Inc()
}

// Outcome names the error class of a fetch result.
func Outcome(err error) string {
	var (
		ue *UpstreamError
		te *TransportError
		me *MalformedResponseError
	)
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrInvalidSubject):
		return "invalid"
	case errors.As(err, &ue):
		return "upstream"
	case errors.As(err, &te):
		return "transport"
	case errors.As(err, &me):
		return "malformed"
	default:
		return "error"
	}
}
