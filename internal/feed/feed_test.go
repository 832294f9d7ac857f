package feed

import (
	"fmt"
	"math"
	"reflect"
	"testing"

	"trendfeed/internal/model"
)

func post(id string, likes, comments int) model.Post {
	return model.Post{ID: id, LikeCount: likes, CommentCount: comments}
}

func ids(posts []model.Post) []string {
	out := make([]string, len(posts))
	for i, p := range posts {
		out[i] = p.ID
	}
	return out
}

func TestRankScenario(t *testing.T) {
	in := []model.Post{post("item1", 10, 5), post("item2", 3, 1), post("item3", 10, 0)}
	ranked := Rank(in)
	var scores []int
	for _, p := range ranked {
		scores = append(scores, p.Engagement())
	}
	if !reflect.DeepEqual(scores, []int{15, 10, 4}) {
		t.Fatalf("scores = %v", scores)
	}
	if !reflect.DeepEqual(ids(in), []string{"item1", "item2", "item3"}) {
		t.Fatalf("input was modified: %v", ids(in))
	}
}

func TestRankStableAndOrdered(t *testing.T) {
	in := []model.Post{post("a", 2, 0), post("b", 1, 1), post("c", 5, 0), post("d", 0, 2), post("e", 0, 0)}
	ranked := Rank(in)
	want := []string{"c", "a", "b", "d", "e"}
	if got := ids(ranked); !reflect.DeepEqual(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i-1].Engagement() < ranked[i].Engagement() {
			t.Fatalf("not descending at %d", i)
		}
	}
}

func TestRankEdgeCases(t *testing.T) {
	if got := Rank(nil); len(got) != 0 {
		t.Fatalf("Rank(nil) = %v", got)
	}
	zeros := []model.Post{post("x", 0, 0), post("y", 0, 0), post("z", 0, 0)}
	if got := ids(Rank(zeros)); !reflect.DeepEqual(got, []string{"x", "y", "z"}) {
		t.Fatalf("all-zero order = %v", got)
	}
}

func TestTopStories(t *testing.T) {
	var in []model.Story
	for i := 0; i < 40; i++ {
		in = append(in, model.Story{ID: fmt.Sprint(i), Score: i % 7})
	}
	out := TopStories(in, 30)
	if len(out) != 30 {
		t.Fatalf("len = %d", len(out))
	}
	for i := 1; i < len(out); i++ {
		if out[i-1].Score < out[i].Score {
			t.Fatalf("not descending at %d", i)
		}
	}
	// score 6 appears at ids 6, 13, 20, 27, 34 and must keep that order
	want := []string{"6", "13", "20", "27", "34"}
	for i, id := range want {
		if out[i].ID != id {
			t.Fatalf("position %d = %s, want %s", i, out[i].ID, id)
		}
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if _, ok := Summarize(nil); ok {
		t.Fatalf("empty feed must report no summary")
	}
}

func TestSummarizeTopPostAndAverage(t *testing.T) {
	var posts []model.Post
	for i := 0; i < 12; i++ {
		posts = append(posts, post(fmt.Sprint(i), 20-i, 0))
	}
	// a later post ties the max like count; the earlier one wins
	posts[5].LikeCount = 20
	ranked := Rank(posts)
	s, ok := Summarize(ranked)
	if !ok {
		t.Fatal("expected summary")
	}
	if s.PostCount != 12 {
		t.Errorf("post count = %d", s.PostCount)
	}
	if s.TopPost.ID != "0" {
		t.Errorf("top post = %s", s.TopPost.ID)
	}
	for _, p := range ranked {
		if p.LikeCount > s.TopPost.LikeCount {
			t.Errorf("post %s has more likes than the top post", p.ID)
		}
	}
	total := 0
	for _, p := range ranked[:10] {
		total += p.Engagement()
	}
	if s.AverageScore != float64(total)/10 {
		t.Errorf("average = %v, want mean of first 10", s.AverageScore)
	}
}

func TestSummarizeTrendByIndex(t *testing.T) {
	cases := []struct {
		name      string
		likes     []int
		direction Direction
		magnitude float64
	}{
		{"single post", []int{9}, DirectionStable, 0},
		{"zero first half", []int{0, 0, 4, 4}, DirectionStable, 0},
		{"ranked lists trend down", []int{10, 10, 5, 5}, DirectionDown, 50},
		{"equal halves", []int{3, 3}, DirectionStable, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var posts []model.Post
			for i, l := range tc.likes {
				posts = append(posts, post(fmt.Sprint(i), l, 0))
			}
			s, ok := Summarize(posts)
			if !ok {
				t.Fatal("expected summary")
			}
			if s.Trend.Direction != tc.direction {
				t.Errorf("direction = %s, want %s", s.Trend.Direction, tc.direction)
			}
			if s.Trend.MagnitudePercent != tc.magnitude {
				t.Errorf("magnitude = %v, want %v", s.Trend.MagnitudePercent, tc.magnitude)
			}
		})
	}

	// [4] vs [2, 6]: means 4 and 4, so stable despite the odd split
	s, _ := Summarize([]model.Post{post("a", 4, 0), post("b", 2, 0), post("c", 6, 0)})
	if s.Trend.Direction != DirectionStable || s.Trend.FirstHalfMean != 4 || s.Trend.SecondHalfMean != 4 {
		t.Errorf("odd split trend = %+v", s.Trend)
	}

	// likes rise in the bottom cohort: 2 -> 3 is +50%
	s, _ = Summarize([]model.Post{post("a", 2, 9), post("b", 3, 0)})
	if s.Trend.Direction != DirectionUp || math.Abs(s.Trend.MagnitudePercent-50) > 1e-9 {
		t.Errorf("up trend = %+v", s.Trend)
	}
}

func TestPagerScenario(t *testing.T) {
	p := NewPager(12, 5)
	if p.Total() != 3 {
		t.Fatalf("total = %d", p.Total())
	}
	pg := p.Page()
	if pg.Start != 0 || pg.End != 5 || pg.HasPrevious || !pg.HasNext {
		t.Fatalf("page 1 = %+v", pg)
	}
	p.GoTo(3)
	pg = p.Page()
	if pg.Start != 10 || pg.End != 12 {
		t.Fatalf("page 3 = %+v", pg)
	}
	p.Next()
	if p.Current() != 3 {
		t.Fatalf("Next at last page moved to %d", p.Current())
	}
	p.GoTo(1)
	p.Previous()
	if p.Current() != 1 {
		t.Fatalf("Previous at first page moved to %d", p.Current())
	}
}

func TestPagerGoToClamps(t *testing.T) {
	p := NewPager(12, 5)
	for _, n := range []int{math.MinInt, -5, 0, 1, 2, 3, 4, 99, math.MaxInt} {
		p.GoTo(n)
		if c := p.Current(); c < 1 || c > p.Total() {
			t.Fatalf("GoTo(%d) left current at %d", n, c)
		}
	}
	p.GoTo(-1)
	if p.Current() != 1 {
		t.Errorf("GoTo(-1) = %d", p.Current())
	}
	p.GoTo(99)
	if p.Current() != 3 {
		t.Errorf("GoTo(99) = %d", p.Current())
	}
}

func TestPagerEmptyAndDefaults(t *testing.T) {
	p := NewPager(0, 0)
	pg := p.Page()
	if pg.Total != 1 || pg.Current != 1 || pg.Size != DefaultPageSize || pg.Start != 0 || pg.End != 0 {
		t.Fatalf("empty page = %+v", pg)
	}
	if got := Slice([]int{}, pg); len(got) != 0 {
		t.Fatalf("slice = %v", got)
	}
}

func TestPagerResizeClamps(t *testing.T) {
	p := NewPager(30, 5)
	p.GoTo(6)
	p.Resize(12)
	if p.Current() != 3 || p.Total() != 3 {
		t.Fatalf("after resize current=%d total=%d", p.Current(), p.Total())
	}
	p.Resize(0)
	if p.Current() != 1 || p.Total() != 1 {
		t.Fatalf("after resize to empty current=%d total=%d", p.Current(), p.Total())
	}
}

func TestSliceConcatenationReproducesFeed(t *testing.T) {
	for n := 0; n <= 23; n++ {
		for size := 1; size <= 7; size++ {
			items := make([]int, n)
			for i := range items {
				items[i] = i
			}
			p := NewPager(n, size)
			var got []int
			for page := 1; page <= p.Total(); page++ {
				p.GoTo(page)
				got = append(got, Slice(items, p.Page())...)
			}
			if len(got) != n {
				t.Fatalf("n=%d size=%d: concatenated %d items", n, size, len(got))
			}
			for i := range got {
				if got[i] != i {
					t.Fatalf("n=%d size=%d: item %d = %d", n, size, i, got[i])
				}
			}
		}
	}
}

func TestLinks(t *testing.T) {
	render := func(links []Link) string {
		s := ""
		for _, l := range links {
			switch {
			case l.Gap:
				s += "… "
			case l.Current:
				s += fmt.Sprintf("[%d] ", l.Page)
			default:
				s += fmt.Sprintf("%d ", l.Page)
			}
		}
		return s
	}
	cases := []struct {
		items, page int
		want        string
	}{
		{12, 2, "1 [2] 3 "},
		{35, 7, "1 2 3 4 5 6 [7] "},
		{50, 1, "[1] 2 … 10 "},
		{50, 5, "1 … 4 [5] 6 … 10 "},
		{50, 3, "1 2 [3] 4 … 10 "},
		{50, 10, "1 … 9 [10] "},
	}
	for _, tc := range cases {
		p := NewPager(tc.items, 5)
		p.GoTo(tc.page)
		if got := render(p.Links()); got != tc.want {
			t.Errorf("items=%d page=%d: %q, want %q", tc.items, tc.page, got, tc.want)
		}
	}
}

func TestSummarizeTopHeadline(t *testing.T) {
	posts := []model.Post{post("a", 9, 0), post("b", 6, 0), post("c", 3, 0), post("d", 0, 0)}

	s, ok := SummarizeTop(posts, 2)
	if !ok {
		t.Fatal("expected summary")
	}
	if s.HeadlineSize != 2 || s.AverageScore != 7.5 {
		t.Errorf("headline 2: size=%d average=%v", s.HeadlineSize, s.AverageScore)
	}

	s, _ = SummarizeTop(posts, 0)
	if s.HeadlineSize != 4 || s.AverageScore != 4.5 {
		t.Errorf("default headline: size=%d average=%v", s.HeadlineSize, s.AverageScore)
	}
}
