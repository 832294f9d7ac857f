package model

import "time"

// RawItem is a source-shaped record as returned by a source client.
// Likes and Replies carry the source's positive-reaction and reply-ish counts
// (Reddit score and comments, tweet likes and retweets).
type RawItem struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Handle    string    `json:"handle,omitempty"`
	URL       string    `json:"url,omitempty"`
	Permalink string    `json:"permalink,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	Likes     int       `json:"likes"`
	Replies   int       `json:"replies"`
	Body      string    `json:"body,omitempty"`
	Community string    `json:"community,omitempty"`
	Domain    string    `json:"domain,omitempty"`
	Flair     string    `json:"flair,omitempty"`
}

// Post is the canonical, source-agnostic item shown in a subject feed.
type Post struct {
	ID             string    `json:"id"`
	AuthorName     string    `json:"author_name"`
	AuthorHandle   string    `json:"author_handle"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"created_at"`
	SourceURL      string    `json:"source_url"`
	LikeCount      int       `json:"like_count"`
	CommentCount   int       `json:"comment_count"`
	BodyPreview    string    `json:"body_preview,omitempty"`
	CommunityTag   string    `json:"community_tag,omitempty"`
	ExternalDomain string    `json:"external_domain,omitempty"`
	CategoryTag    string    `json:"category_tag,omitempty"`
}

// Engagement is the ranking key. It is always derived, never stored.
func (p Post) Engagement() int {
	return p.LikeCount + p.CommentCount
}

// Story is the wire object served by /api/stories.
type Story struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	By          string `json:"by"`
	Time        int64  `json:"time"`
	Score       int    `json:"score"`
	Descendants int    `json:"descendants"`
	Selftext    string `json:"selftext,omitempty"`
	Subreddit   string `json:"subreddit,omitempty"`
	Domain      string `json:"domain,omitempty"`
	Flair       string `json:"flair,omitempty"`
}
