package feed

import (
	"sort"

	"trendfeed/internal/model"
)

// Rank returns posts ordered by engagement (likes + comments), highest first.
// Ties keep their input order. The input slice is not modified.
func Rank(posts []model.Post) []model.Post {
	out := make([]model.Post, len(posts))
	copy(out, posts)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Engagement() > out[j].Engagement()
	})
	return out
}

// TopStories orders stories by score, highest first, and keeps at most limit.
// Ties keep their input order. limit <= 0 keeps everything.
func TopStories(stories []model.Story, limit int) []model.Story {
	return TopBy(stories, func(s model.Story) int { return s.Score }, limit)
}

// TopBy is the generic form of TopStories.
func TopBy[T any](items []T, score func(T) int, limit int) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return score(out[i]) > score(out[j])
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
