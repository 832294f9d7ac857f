package source

import (
	"context"
	"fmt"
	"time"

	"trendfeed/internal/model"
	"trendfeed/internal/subject"
)

// Tweet is a static mock post. Retweets are this source's reply-ish count.
type Tweet struct {
	ID        string
	Author    string
	Handle    string
	Text      string
	CreatedAt time.Time
	Likes     int
	Retweets  int
}

// MockAdapter serves static tweets; it never touches the network.
type MockAdapter struct {
	communities map[string]string
	tweets      map[string][]Tweet
}

// NewMockAdapter maps every mock subject to its community (or its slug when
// no community is configured) and serves tweets keyed by that community.
func NewMockAdapter(registry *subject.Registry, tweets map[string][]Tweet) *MockAdapter {
	comm := communities(registry, subject.SourceMock)
	for slug, c := range comm {
		if c == "" {
			comm[slug] = slug
		}
	}
	return &MockAdapter{communities: comm, tweets: tweets}
}

func (a *MockAdapter) FetchRawItems(_ context.Context, slug string) ([]model.RawItem, error) {
	community, ok := a.communities[slug]
	if !ok {
		return nil, ErrInvalidSubject
	}
	tweets := a.tweets[community]
	items := make([]model.RawItem, 0, len(tweets))
	for _, tw := range tweets {
		items = append(items, model.RawItem{
			ID:        tw.ID,
			Title:     tw.Text,
			Author:    tw.Author,
			Handle:    tw.Handle,
			URL:       fmt.Sprintf("https://x.com/%s/status/%s", tw.Handle, tw.ID),
			CreatedAt: tw.CreatedAt,
			Likes:     tw.Likes,
			Replies:   tw.Retweets,
			Community: community,
		})
	}
	return items, nil
}

func (a *MockAdapter) FetchActivity(_ context.Context, slug string) (int, error) {
	community, ok := a.communities[slug]
	if !ok {
		return 0, ErrInvalidSubject
	}
	return len(a.tweets[community]), nil
}

// DefaultTweets is the static dataset for the regulatory mock subjects.
func DefaultTweets() map[string][]Tweet {
	at := func(day, hour int) time.Time {
		return time.Date(2025, time.March, day, hour, 0, 0, 0, time.UTC)
	}
	return map[string][]Tweet{
		"ai-act": {
			{ID: "1890001", Author: "Lena Hoffmann", Handle: "lenah_policy", Text: "The AI Act's GPAI code of practice draft is out. Transparency chapter is tighter than expected.", CreatedAt: at(3, 9), Likes: 412, Retweets: 97},
			{ID: "1890002", Author: "Marco Bianchi", Handle: "mbianchi_eu", Text: "High-risk classification guidance still missing. Providers are planning on assumptions.", CreatedAt: at(3, 14), Likes: 158, Retweets: 41},
			{ID: "1890003", Author: "Tech Policy Desk", Handle: "techpolicydesk", Text: "Thread: what the AI Act's prohibited practices ban actually covers from February.", CreatedAt: at(4, 8), Likes: 930, Retweets: 305},
			{ID: "1890004", Author: "Sofia Nilsson", Handle: "sofianilsson", Text: "National market surveillance authorities: who has been designated so far?", CreatedAt: at(4, 16), Likes: 77, Retweets: 12},
			{ID: "1890005", Author: "Open Source Alliance", Handle: "osalliance", Text: "Open-source exemptions in the AI Act are narrower than many assume.", CreatedAt: at(5, 10), Likes: 264, Retweets: 88},
			{ID: "1890006", Author: "Julien Moreau", Handle: "jmoreau_law", Text: "Sandboxes are the sleeper provision of the AI Act.", CreatedAt: at(5, 19), Likes: 45, Retweets: 6},
		},
		"data-act": {
			{ID: "1891001", Author: "IoT Europe", Handle: "iot_europe", Text: "Data Act access rights for connected products apply from September 2025.", CreatedAt: at(2, 11), Likes: 189, Retweets: 52},
			{ID: "1891002", Author: "Anna Kowalska", Handle: "akowalska", Text: "Cloud switching charges under the Data Act: a quick explainer.", CreatedAt: at(3, 15), Likes: 96, Retweets: 30},
			{ID: "1891003", Author: "Cloud Buyers Forum", Handle: "cloudbuyers", Text: "Egress fees are on their way out. Plan your migrations accordingly.", CreatedAt: at(4, 9), Likes: 301, Retweets: 120},
			{ID: "1891004", Author: "Pieter de Vries", Handle: "pdevries", Text: "Smart contract kill-switch requirement is going to be interesting to implement.", CreatedAt: at(6, 13), Likes: 58, Retweets: 9},
		},
		"dma": {
			{ID: "1892001", Author: "Competition Watch", Handle: "compwatch", Text: "Gatekeeper compliance reports are in. Interoperability sections vary wildly.", CreatedAt: at(1, 10), Likes: 520, Retweets: 140},
			{ID: "1892002", Author: "Clara Jensen", Handle: "clarajensen", Text: "Browser choice screens: early numbers show real movement.", CreatedAt: at(2, 12), Likes: 220, Retweets: 61},
			{ID: "1892003", Author: "App Devs United", Handle: "appdevsunited", Text: "Alternative app store fees are the DMA fight of the year.", CreatedAt: at(3, 18), Likes: 610, Retweets: 233},
			{ID: "1892004", Author: "Tomas Novak", Handle: "tnovak", Text: "Non-compliance proceedings opened against two gatekeepers.", CreatedAt: at(5, 9), Likes: 340, Retweets: 98},
			{ID: "1892005", Author: "EU Digest", Handle: "eudigest", Text: "Messaging interoperability: the first requests have been filed.", CreatedAt: at(6, 7), Likes: 84, Retweets: 17},
		},
	}
}
