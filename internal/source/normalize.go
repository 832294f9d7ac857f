package source

import (
	"fmt"
	"strings"

	"trendfeed/internal/model"
)

// ToPost converts a raw item into the canonical Post. It is total: every raw
// item maps to a post, and counts are clamped at zero.
func ToPost(it model.RawItem) model.Post {
	handle := it.Handle
	if handle == "" {
		handle = it.Author
	}
	return model.Post{
		ID:             it.ID,
		AuthorName:     it.Author,
		AuthorHandle:   handle,
		Content:        it.Title,
		CreatedAt:      it.CreatedAt,
		SourceURL:      SourceURL(it),
		LikeCount:      nonNegative(it.Likes),
		CommentCount:   nonNegative(it.Replies),
		BodyPreview:    preview(it.Body),
		CommunityTag:   it.Community,
		ExternalDomain: externalDomain(it),
		CategoryTag:    it.Flair,
	}
}

// ToPosts converts a batch, keeping order.
func ToPosts(items []model.RawItem) []model.Post {
	posts := make([]model.Post, 0, len(items))
	for _, it := range items {
		posts = append(posts, ToPost(it))
	}
	return posts
}

// ToStory converts a raw item into the /api/stories wire object.
func ToStory(it model.RawItem) model.Story {
	return model.Story{
		ID:          it.ID,
		Title:       it.Title,
		URL:         SourceURL(it),
		By:          it.Author,
		Time:        it.CreatedAt.Unix(),
		Score:       it.Likes,
		Descendants: nonNegative(it.Replies),
		Selftext:    it.Body,
		Subreddit:   it.Community,
		Domain:      it.Domain,
		Flair:       it.Flair,
	}
}

// SourceURL returns the item's permalink: its absolute link when present, the
// site permalink otherwise, and a URL synthesized from community and id as the
// last resort.
func SourceURL(it model.RawItem) string {
	u := strings.TrimSpace(it.URL)
	if strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") {
		return u
	}
	if p := strings.TrimSpace(it.Permalink); p != "" {
		return "https://reddit.com" + p
	}
	return fmt.Sprintf("https://www.reddit.com/r/%s/comments/%s", it.Community, it.ID)
}

// externalDomain hides reddit's self-post pseudo domain.
func externalDomain(it model.RawItem) string {
	if it.Domain == "" || it.Domain == "self."+it.Community {
		return ""
	}
	return it.Domain
}

const previewLimit = 280

func preview(body string) string {
	body = strings.TrimSpace(body)
	r := []rune(body)
	if len(r) <= previewLimit {
		return body
	}
	return strings.TrimSpace(string(r[:previewLimit])) + "…"
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
