package cmd

import (
	"fmt"
	"time"

	"trendfeed/internal/aggregator"
	"trendfeed/internal/ai"
	"trendfeed/internal/cache"
	"trendfeed/internal/config"
	"trendfeed/internal/digest"
	"trendfeed/internal/reddit"
	"trendfeed/internal/source"
	"trendfeed/internal/subject"
)

// app is the object graph shared by the commands.
type app struct {
	cfg       config.Config
	durations config.Durations
	registry  *subject.Registry
	cache     cache.Cache
	source    source.Adapter
	service   *aggregator.Service
}

func newApp(cfg config.Config) (*app, error) {
	d, err := cfg.ParseDurations()
	if err != nil {
		return nil, err
	}
	registry, err := subject.FromConfig(cfg.Subjects)
	if err != nil {
		return nil, fmt.Errorf("subjects: %w", err)
	}
	c, err := cache.New(cfg)
	if err != nil {
		return nil, err
	}

	client := reddit.NewClient(cfg.Sources.Reddit.BaseURL, cfg.Sources.Reddit.UserAgent, d.RedditTimeout)
	router := source.NewRouter(registry, map[string]source.Adapter{
		subject.SourceReddit: source.NewRedditAdapter(client, registry, cfg.Sources.Reddit.Limit),
		subject.SourceMock:   source.NewMockAdapter(registry, source.DefaultTweets()),
	})
	cached := source.NewCached(router, c, d.StoriesTTL, d.CountsTTL)

	svc := aggregator.New(registry, cached, aggregator.Options{
		MaxStories: cfg.Feed.MaxStories,
		PageSize:   cfg.Feed.PageSize,
		Headline:   cfg.Feed.HeadlineSize,
		Timeout:    d.RequestTimeout,
	})
	return &app{cfg: cfg, durations: d, registry: registry, cache: c, source: cached, service: svc}, nil
}

func (a *app) Close() error {
	return a.cache.Close()
}

func (a *app) slugs() []string {
	list := a.registry.List()
	out := make([]string, 0, len(list))
	for _, s := range list {
		out = append(out, s.Slug)
	}
	return out
}

func (a *app) digestBuilder() (*digest.Builder, error) {
	var summarizer ai.Summarizer
	if a.cfg.OpenAI.APIKey != "" {
		c, err := ai.NewOpenAI(ai.Config{APIKey: a.cfg.OpenAI.APIKey, Model: a.cfg.OpenAI.Model, BaseURL: a.cfg.OpenAI.BaseURL})
		if err != nil {
			return nil, err
		}
		summarizer = c
	}
	return &digest.Builder{
		Feeds:         a.service,
		Summarizer:    summarizer,
		OutputDir:     a.cfg.Digest.OutputDir,
		Language:      a.cfg.Digest.Language,
		HeadlineSize:  a.cfg.Feed.HeadlineSize,
		TitleTemplate: a.cfg.Digest.Title,
		Preface:       a.cfg.Digest.Preface,
		Postscript:    a.cfg.Digest.Postscript,
	}, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04")
}
