package digest

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"trendfeed/internal/aggregator"
	"trendfeed/internal/feed"
	"trendfeed/internal/model"
	"trendfeed/internal/subject"
)

func TestParseWithFrontmatter(t *testing.T) {
	content := "" +
		"---\n" +
		"title: \"React digest 2025-03-05\"\n" +
		"slug: react-digest-20250305\n" +
		"datetime: 2025-03-05 00:30\n" +
		"summary: |-\n" +
		"  Some summary here.\n" +
		"---\n\n" +
		"## [A Title](https://example.com)\n\nBody paragraph here.\n"
	doc, err := Parse([]byte(content))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	for _, k := range []string{"title", "slug", "datetime", "summary"} {
		if _, ok := doc.Frontmatter[k]; !ok {
			t.Errorf("missing %s in frontmatter", k)
		}
	}
	if doc.Frontmatter["summary"] != "Some summary here." {
		t.Errorf("summary = %q", doc.Frontmatter["summary"])
	}
	if want := "## [A Title](https://example.com)"; !strings.Contains(doc.Body, want) {
		t.Errorf("body missing %q; got: %q", want, doc.Body)
	}
}

func TestParseWithoutFrontmatter(t *testing.T) {
	body := "# Hello\n\nNo frontmatter here.\n"
	doc, err := Parse([]byte(body))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(doc.Frontmatter) != 0 {
		t.Fatalf("expected empty frontmatter, got: %+v", doc.Frontmatter)
	}
	if doc.Body != body {
		t.Errorf("body mismatch.\nwant: %q\n got: %q", body, doc.Body)
	}
}

func TestParseUnterminated(t *testing.T) {
	if _, err := Parse([]byte("---\ntitle: x\nno closing fence\n")); err == nil {
		t.Fatal("expected error for unterminated frontmatter")
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "post.md")
	if err := os.WriteFile(path, []byte("---\ntitle: x\n---\nbody\n"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	doc, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if doc.Frontmatter["title"] != "x" || doc.Body != "body\n" {
		t.Errorf("doc = %+v", doc)
	}
}

func TestExpandVars(t *testing.T) {
	now := time.Date(2025, 3, 5, 23, 0, 0, 0, time.FixedZone("x", -3*3600))
	got := ExpandVars("{.Subject} weekly {.CurrentDate}", now, "React")
	if got != "React weekly 2025-03-06" {
		t.Errorf("ExpandVars = %q", got)
	}
	if ExpandVars("  ", now, "React") != "  " {
		t.Errorf("blank input should be returned unchanged")
	}
}

type fakeViewer struct {
	view aggregator.View
	err  error
}

func (f fakeViewer) View(context.Context, string, int) (aggregator.View, error) {
	return f.view, f.err
}

type fakeSummarizer struct {
	out string
	err error
}

func (f fakeSummarizer) SummarizeFeed(context.Context, string, []model.Post, string) (string, error) {
	return f.out, f.err
}

func sampleView() aggregator.View {
	posts := []model.Post{
		{ID: "1", Content: "Server components: title: with colon", AuthorHandle: "dan", SourceURL: "https://reddit.com/r/reactjs/comments/1/", LikeCount: 40, CommentCount: 10, CommunityTag: "reactjs", BodyPreview: "multi\nline preview"},
		{ID: "2", Content: "Hooks FAQ", AuthorHandle: "sophie", SourceURL: "https://example.com/hooks", LikeCount: 20, CommentCount: 5, CommunityTag: "reactjs"},
		{ID: "3", Content: "Suspense in practice", AuthorHandle: "andrew", SourceURL: "https://example.com/suspense", LikeCount: 5, CommentCount: 1, CommunityTag: "reactjs"},
	}
	ranked := feed.Rank(posts)
	summary, _ := feed.Summarize(ranked)
	return aggregator.View{
		Subject: subject.Subject{Slug: "react", Name: "React"},
		Ranked:  ranked,
		Summary: &summary,
	}
}

func TestBuildWritesDigest(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2025, 3, 5, 8, 30, 0, 0, time.UTC)
	b := &Builder{Feeds: fakeViewer{view: sampleView()}, OutputDir: dir, HeadlineSize: 2}

	path, err := b.Build(context.Background(), "react", now)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if want := filepath.Join(dir, "react", "digest-20250305.md"); path != want {
		t.Fatalf("path = %s, want %s", path, want)
	}
	doc, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	for _, k := range []string{"title", "slug", "datetime", "subject", "trend", "summary"} {
		if _, ok := doc.Frontmatter[k]; !ok {
			t.Errorf("missing %s in frontmatter", k)
		}
	}
	if doc.Frontmatter["title"] != "React digest 2025-03-05" {
		t.Errorf("title = %v", doc.Frontmatter["title"])
	}
	if doc.Frontmatter["slug"] != "react-digest-20250305" {
		t.Errorf("slug = %v", doc.Frontmatter["slug"])
	}
	if s, _ := doc.Frontmatter["summary"].(string); !strings.HasPrefix(s, "Top highlights: Server components") {
		t.Errorf("summary = %q", s)
	}
	if !strings.Contains(doc.Body, "[Hooks FAQ](https://example.com/hooks)") {
		t.Errorf("body missing second post:\n%s", doc.Body)
	}
	if strings.Contains(doc.Body, "Suspense in practice") {
		t.Errorf("body holds more than the headline size:\n%s", doc.Body)
	}
}

func TestBuildUsesSummarizer(t *testing.T) {
	now := time.Date(2025, 3, 5, 8, 30, 0, 0, time.UTC)
	b := &Builder{
		Feeds:         fakeViewer{view: sampleView()},
		Summarizer:    fakeSummarizer{out: "Line one.\nLine two."},
		OutputDir:     t.TempDir(),
		TitleTemplate: "{.Subject} weekly {.CurrentDate}",
	}
	path, err := b.Build(context.Background(), "react", now)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	doc, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if doc.Frontmatter["summary"] != "Line one.\nLine two." {
		t.Errorf("summary = %q", doc.Frontmatter["summary"])
	}
	if doc.Frontmatter["title"] != "React weekly 2025-03-05" {
		t.Errorf("title = %v", doc.Frontmatter["title"])
	}

	b.Summarizer = fakeSummarizer{err: errors.New("quota")}
	path, err = b.Build(context.Background(), "react", now)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	doc, _ = ParseFile(path)
	if s, _ := doc.Frontmatter["summary"].(string); !strings.HasPrefix(s, "Top highlights:") {
		t.Errorf("expected highlight fallback, got %q", s)
	}
}

func TestBuildEmptyFeed(t *testing.T) {
	dir := t.TempDir()
	v := aggregator.View{Subject: subject.Subject{Slug: "react", Name: "React"}, Empty: true, Message: aggregator.MessageNoPosts}
	b := &Builder{Feeds: fakeViewer{view: v}, OutputDir: dir}

	_, err := b.Build(context.Background(), "react", time.Now())
	if !errors.Is(err, ErrEmptyFeed) {
		t.Fatalf("err = %v", err)
	}
	if entries, _ := os.ReadDir(dir); len(entries) != 0 {
		t.Fatalf("no files expected, found %d", len(entries))
	}
}
