package feed

import (
	"math"

	"trendfeed/internal/model"
)

// HeadlineSize is the default number of leading posts the summary averages over.
const HeadlineSize = 10

// Direction of the engagement trend.
type Direction string

const (
	DirectionUp     Direction = "up"
	DirectionDown   Direction = "down"
	DirectionStable Direction = "stable"
)

// Trend compares the mean like count of the second half of the ranked list
// against the first half.
type Trend struct {
	Direction        Direction `json:"direction"`
	MagnitudePercent float64   `json:"magnitude_percent"`
	FirstHalfMean    float64   `json:"first_half_mean"`
	SecondHalfMean   float64   `json:"second_half_mean"`
}

// TrendSummary is the aggregate view over a ranked post list.
type TrendSummary struct {
	PostCount    int        `json:"post_count"`
	HeadlineSize int        `json:"headline_size"` // posts AverageScore covers
	AverageScore float64    `json:"average_score"`
	TopPost      model.Post `json:"top_post"`
	Trend        Trend      `json:"trend"`
}

// Summarize computes aggregate metrics over posts already ordered by Rank,
// averaging over the first HeadlineSize posts. It reports false for an empty
// list; there is no meaningful summary then.
func Summarize(ranked []model.Post) (TrendSummary, bool) {
	return SummarizeTop(ranked, HeadlineSize)
}

// SummarizeTop is Summarize with the average taken over the first headline
// posts. headline < 1 means HeadlineSize.
func SummarizeTop(ranked []model.Post, headline int) (TrendSummary, bool) {
	if len(ranked) == 0 {
		return TrendSummary{}, false
	}
	if headline < 1 {
		headline = HeadlineSize
	}
	head := ranked[:min(headline, len(ranked))]
	return TrendSummary{
		PostCount:    len(ranked),
		HeadlineSize: len(head),
		AverageScore: meanEngagement(head),
		TopPost:      topByLikes(ranked),
		Trend:        trend(ranked),
	}, true
}

// topByLikes returns the first post holding the maximum like count.
func topByLikes(posts []model.Post) model.Post {
	top := posts[0]
	for _, p := range posts[1:] {
		if p.LikeCount > top.LikeCount {
			top = p
		}
	}
	return top
}

// trend splits by rank position, not time: the first n/2 posts against the rest.
func trend(posts []model.Post) Trend {
	mid := len(posts) / 2
	first := meanLikes(posts[:mid])
	second := meanLikes(posts[mid:])
	t := Trend{Direction: DirectionStable, FirstHalfMean: first, SecondHalfMean: second}
	if first == 0 {
		return t
	}
	change := (second - first) / first * 100
	switch {
	case change > 0:
		t.Direction = DirectionUp
	case change < 0:
		t.Direction = DirectionDown
	}
	t.MagnitudePercent = math.Abs(change)
	return t
}

func meanEngagement(posts []model.Post) float64 {
	if len(posts) == 0 {
		return 0
	}
	total := 0
	for _, p := range posts {
		total += p.Engagement()
	}
	return float64(total) / float64(len(posts))
}

func meanLikes(posts []model.Post) float64 {
	if len(posts) == 0 {
		return 0
	}
	total := 0
	for _, p := range posts {
		total += p.LikeCount
	}
	return float64(total) / float64(len(posts))
}
