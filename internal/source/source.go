package source

import (
	"context"

	"trendfeed/internal/model"
	"trendfeed/internal/subject"
)

// Adapter fetches raw items for a subject from one source type.
type Adapter interface {
	// FetchRawItems returns the subject's current items in source order.
	FetchRawItems(ctx context.Context, slug string) ([]model.RawItem, error)
	// FetchActivity returns an activity count for the subject's community.
	FetchActivity(ctx context.Context, slug string) (int, error)
}

// Router dispatches to the adapter registered for each subject's source type.
type Router struct {
	registry *subject.Registry
	adapters map[string]Adapter
}

// NewRouter builds a Router. adapters is keyed by source type (subject.SourceReddit, ...).
func NewRouter(registry *subject.Registry, adapters map[string]Adapter) *Router {
	return &Router{registry: registry, adapters: adapters}
}

func (r *Router) adapterFor(slug string) (Adapter, error) {
	s, ok := r.registry.BySlug(slug)
	if !ok {
		return nil, ErrInvalidSubject
	}
	a, ok := r.adapters[s.Source]
	if !ok {
		return nil, ErrInvalidSubject
	}
	return a, nil
}

func (r *Router) FetchRawItems(ctx context.Context, slug string) ([]model.RawItem, error) {
	a, err := r.adapterFor(slug)
	if err != nil {
		return nil, err
	}
	return a.FetchRawItems(ctx, slug)
}

func (r *Router) FetchActivity(ctx context.Context, slug string) (int, error) {
	a, err := r.adapterFor(slug)
	if err != nil {
		return 0, err
	}
	return a.FetchActivity(ctx, slug)
}

// communities builds the fixed slug → community table for one source type.
func communities(registry *subject.Registry, sourceType string) map[string]string {
	out := map[string]string{}
	for _, s := range registry.List() {
		if s.Source == sourceType {
			out[s.Slug] = s.Community
		}
	}
	return out
}
