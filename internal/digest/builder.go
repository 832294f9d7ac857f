package digest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"trendfeed/internal/aggregator"
	"trendfeed/internal/ai"
	"trendfeed/internal/feed"
	"trendfeed/internal/model"
)

// ErrEmptyFeed means the subject had no posts to write about.
var ErrEmptyFeed = errors.New("digest: subject has no posts")

// Viewer builds a subject's feed view; *aggregator.Service implements it.
type Viewer interface {
	View(ctx context.Context, slug string, page int) (aggregator.View, error)
}

// Builder renders a subject's ranked feed into a Markdown digest on disk.
type Builder struct {
	Feeds         Viewer
	Summarizer    ai.Summarizer // optional
	OutputDir     string
	Language      string
	HeadlineSize  int
	TitleTemplate string // supports {.CurrentDate} and {.Subject}
	Preface       string
	Postscript    string
}

// Filename is the digest file name for a day.
func Filename(now time.Time) string {
	return fmt.Sprintf("digest-%s.md", now.UTC().Format("20060102"))
}

// Build writes {OutputDir}/{slug}/digest-YYYYMMDD.md and returns its path.
func (b *Builder) Build(ctx context.Context, slug string, now time.Time) (string, error) {
	v, err := b.Feeds.View(ctx, slug, 1)
	if err != nil {
		return "", err
	}
	if v.Summary == nil {
		return "", fmt.Errorf("%w: %s (%s)", ErrEmptyFeed, slug, v.Message)
	}

	md, err := b.render(ctx, v, now)
	if err != nil {
		return "", err
	}
	dir := filepath.Join(b.OutputDir, slug)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, Filename(now))
	if err := os.WriteFile(path, []byte(md), 0o644); err != nil {
		return "", err
	}
	slog.Info("digest: written", "subject", slug, "path", path, "posts", len(v.Ranked))
	return path, nil
}

func (b *Builder) render(ctx context.Context, v aggregator.View, now time.Time) (string, error) {
	n := b.HeadlineSize
	if n <= 0 {
		n = feed.HeadlineSize
	}
	top := v.Ranked[:min(n, len(v.Ranked))]

	title := ExpandVars(strings.TrimSpace(b.TitleTemplate), now, v.Subject.Name)
	if title == "" {
		title = fmt.Sprintf("%s digest %s", v.Subject.Name, now.UTC().Format("2006-01-02"))
	}
	data := Data{
		Title:        title,
		Slug:         fmt.Sprintf("%s-%s", v.Subject.Slug, strings.TrimSuffix(Filename(now), ".md")),
		Datetime:     now.UTC().Format("2006-01-02 15:04"),
		Subject:      v.Subject.Name,
		Trend:        trendLabel(*v.Summary),
		Summary:      b.summary(ctx, v.Subject.Name, top),
		Preface:      ExpandVars(b.Preface, now, v.Subject.Name),
		Postscript:   ExpandVars(b.Postscript, now, v.Subject.Name),
		PostCount:    v.Summary.PostCount,
		AverageScore: v.Summary.AverageScore,
		Items:        make([]Item, 0, len(top)),
	}
	for _, p := range top {
		data.Items = append(data.Items, Item{
			Title:     p.Content,
			URL:       p.SourceURL,
			Author:    p.AuthorHandle,
			Community: p.CommunityTag,
			Likes:     p.LikeCount,
			Comments:  p.CommentCount,
			Created:   p.CreatedAt.UTC().Format("2006-01-02 15:04"),
			Preview:   strings.Join(strings.Fields(p.BodyPreview), " "),
		})
	}
	return Render(data)
}

// summary prefers the model's narrative and falls back to the leading titles.
func (b *Builder) summary(ctx context.Context, subjectName string, posts []model.Post) string {
	if b.Summarizer != nil {
		s, err := b.Summarizer.SummarizeFeed(ctx, subjectName, posts, b.Language)
		if err != nil {
			slog.Warn("digest: ai summary failed, using highlights", "subject", subjectName, "error", err)
		} else if s = strings.TrimSpace(s); s != "" {
			return s
		}
	}
	titles := make([]string, 0, 3)
	for _, p := range posts[:min(3, len(posts))] {
		titles = append(titles, p.Content)
	}
	return fmt.Sprintf("Top highlights: %s.", strings.Join(titles, ", "))
}

func trendLabel(s feed.TrendSummary) string {
	if s.Trend.Direction == feed.DirectionStable {
		return string(feed.DirectionStable)
	}
	return fmt.Sprintf("%s %.1f%%", s.Trend.Direction, s.Trend.MagnitudePercent)
}
