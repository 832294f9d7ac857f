package source

import (
	"context"
	"errors"
	"log/slog"

	"trendfeed/internal/model"
	"trendfeed/internal/reddit"
	"trendfeed/internal/subject"
)

// RedditAdapter is the live-fetch adapter backed by subreddit listings.
type RedditAdapter struct {
	client      *reddit.Client
	limit       int
	communities map[string]string
}

// NewRedditAdapter maps every reddit subject of the registry to its subreddit.
// The mapping is fixed for the adapter's lifetime.
func NewRedditAdapter(client *reddit.Client, registry *subject.Registry, limit int) *RedditAdapter {
	return &RedditAdapter{
		client:      client,
		limit:       limit,
		communities: communities(registry, subject.SourceReddit),
	}
}

func (a *RedditAdapter) FetchRawItems(ctx context.Context, slug string) ([]model.RawItem, error) {
	community, ok := a.communities[slug]
	if !ok {
		return nil, ErrInvalidSubject
	}
	items, err := a.client.Hot(ctx, community, a.limit)
	if err != nil {
		err = classify(community, err)
		slog.Error("reddit adapter: fetch failed", "slug", slug, "community", community, "error", err)
		return nil, err
	}
	for i := range items {
		if items[i].Community == "" {
			items[i].Community = community
		}
	}
	slog.Info("reddit adapter: fetched posts", "slug", slug, "community", community, "count", len(items))
	return items, nil
}

func (a *RedditAdapter) FetchActivity(ctx context.Context, slug string) (int, error) {
	community, ok := a.communities[slug]
	if !ok {
		return 0, ErrInvalidSubject
	}
	n, err := a.client.Activity(ctx, community)
	if err != nil {
		return 0, classify(community, err)
	}
	return n, nil
}

// classify maps reddit client errors onto the fetch error taxonomy.
func classify(community string, err error) error {
	var se *reddit.StatusError
	switch {
	case errors.As(err, &se):
		return &UpstreamError{Community: community, StatusCode: se.StatusCode}
	case errors.Is(err, reddit.ErrMalformed):
		return &MalformedResponseError{Community: community, Err: err}
	default:
		return &TransportError{Community: community, Err: err}
	}
}
