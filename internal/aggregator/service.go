package aggregator

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/sourcegraph/conc"
	"github.com/sourcegraph/conc/iter"

	"trendfeed/internal/feed"
	"trendfeed/internal/metrics"
	"trendfeed/internal/model"
	"trendfeed/internal/source"
	"trendfeed/internal/subject"
)

// Messages shown in place of a feed.
const (
	MessageFetchFailed = "Unable to load posts right now. Please try again later."
	MessageNoPosts     = "No posts found for this subject yet."
)

const compareCount = 2

// Options tunes the service. Zero values take defaults.
type Options struct {
	MaxStories int           // default 30
	PageSize   int           // default feed.DefaultPageSize
	Headline   int           // posts the summary averages over, default feed.HeadlineSize
	Timeout    time.Duration // per request fan-out, default 15s
}

func (o *Options) fillDefaults() {
	if o.MaxStories <= 0 {
		o.MaxStories = 30
	}
	if o.PageSize <= 0 {
		o.PageSize = feed.DefaultPageSize
	}
	if o.Headline <= 0 {
		o.Headline = feed.HeadlineSize
	}
	if o.Timeout <= 0 {
		o.Timeout = 15 * time.Second
	}
}

// Service composes the registry and a source adapter into the read models
// served over HTTP and the CLI.
type Service struct {
	registry *subject.Registry
	src      source.Adapter
	opts     Options
}

func New(registry *subject.Registry, src source.Adapter, opts Options) *Service {
	opts.fillDefaults()
	return &Service{registry: registry, src: src, opts: opts}
}

func (s *Service) Registry() *subject.Registry { return s.registry }

// Stories returns the subject's stories by score, at most MaxStories.
// Unknown slugs fail with source.ErrInvalidSubject before any fetch.
func (s *Service) Stories(ctx context.Context, slug string) ([]model.Story, error) {
	if _, ok := s.registry.BySlug(slug); !ok {
		return nil, source.ErrInvalidSubject
	}
	ctx, cancel := context.WithTimeout(ctx, s.opts.Timeout)
	defer cancel()
	items, err := s.src.FetchRawItems(ctx, slug)
	if err != nil {
		return nil, err
	}
	stories := make([]model.Story, 0, len(items))
	for _, it := range items {
		stories = append(stories, source.ToStory(it))
	}
	return feed.TopStories(stories, s.opts.MaxStories), nil
}

// Counts returns an activity count for every subject. A failed lookup
// reports 0 for that subject only.
func (s *Service) Counts(ctx context.Context) map[string]int {
	ctx, cancel := context.WithTimeout(ctx, s.opts.Timeout)
	defer cancel()
	subjects := s.registry.List()
	counts := iter.Map(subjects, func(sub *subject.Subject) int {
		n, err := s.src.FetchActivity(ctx, sub.Slug)
		if err != nil {
			slog.Warn("aggregator: activity lookup failed", "subject", sub.Slug, "error", err)
			return 0
		}
		return n
	})
	out := make(map[string]int, len(subjects))
	for i, sub := range subjects {
		out[sub.Slug] = counts[i]
	}
	return out
}

// View is the feed page for one subject.
type View struct {
	Subject       subject.Subject    `json:"subject"`
	Level         subject.Level      `json:"level"`
	ActivityCount int                `json:"activity_count"`
	Page          feed.Page          `json:"page"`
	Links         []feed.Link        `json:"links"`
	Posts         []model.Post       `json:"posts"`
	Summary       *feed.TrendSummary `json:"summary"`
	Empty         bool               `json:"empty"`
	Message       string             `json:"message,omitempty"`
	Compare       []subject.Subject  `json:"compare"`
	Ranked        []model.Post       `json:"-"`
}

// View builds the feed page. Posts and the activity count are fetched
// concurrently; a failure of either degrades only its own field.
func (s *Service) View(ctx context.Context, slug string, page int) (View, error) {
	sub, ok := s.registry.BySlug(slug)
	if !ok {
		return View{}, source.ErrInvalidSubject
	}
	ctx, cancel := context.WithTimeout(ctx, s.opts.Timeout)
	defer cancel()

	var (
		items    []model.RawItem
		itemsErr error
		count    int
		countErr error
		wg       conc.WaitGroup
	)
	wg.Go(func() { items, itemsErr = s.src.FetchRawItems(ctx, slug) })
	wg.Go(func() { count, countErr = s.src.FetchActivity(ctx, slug) })
	wg.Wait()

	v := View{
		Subject: sub,
		Level:   sub.Level(),
		Compare: s.registry.Others(slug, compareCount),
	}
	v.TrendsURL = TrendsURL(sub, v.Compare)
	if countErr != nil {
		slog.Warn("aggregator: activity lookup failed", "subject", slug, "error", countErr)
	} else {
		v.ActivityCount = count
	}
	if itemsErr != nil {
		slog.Error("aggregator: fetch posts failed", "subject", slug, "error", itemsErr)
		items = nil
	}

	top := feed.TopBy(items, func(it model.RawItem) int { return it.Likes }, s.opts.MaxStories)
	v.Ranked = feed.Rank(source.ToPosts(top))

	pager := feed.NewPager(len(v.Ranked), s.opts.PageSize)
	pager.GoTo(page)
	v.Page = pager.Page()
	v.Links = pager.Links()
	v.Posts = feed.Slice(v.Ranked, v.Page)

	if summary, ok := feed.SummarizeTop(v.Ranked, s.opts.Headline); ok {
		v.Summary = &summary
	} else {
		v.Empty = true
		v.Message = MessageNoPosts
		if itemsErr != nil {
			v.Message = MessageFetchFailed
		}
	}
	metrics.FeedPostsServed.WithLabelValues(slug).Add(float64(len(v.Posts)))
	return v, nil
}

// TrendsURL links to Google Trends search interest over the past 7 days for
// the subject, compared with the given subjects.
func TrendsURL(sub subject.Subject, compare []subject.Subject) string {
	terms := make([]string, 0, len(compare)+1)
	terms = append(terms, trendsTerm(sub.Name))
	for _, c := range compare {
		terms = append(terms, trendsTerm(c.Name))
	}
	return "https://trends.google.com/trends/explore?date=now%207-d&q=" + strings.Join(terms, ",") + "&hl=en-US"
}

// trendsTerm escapes one search term; spaces become %20 rather than '+'.
func trendsTerm(name string) string {
	return strings.ReplaceAll(url.QueryEscape(name), "+", "%20")
}
