package reddit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"trendfeed/internal/model"
)

// ErrMalformed reports a payload that does not have the listing/about shape.
var ErrMalformed = errors.New("reddit: malformed response")

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Path       string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("reddit: %s status %d", e.Path, e.StatusCode)
}

// Client is a minimal client for Reddit's public JSON endpoints.
type Client struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

// NewClient creates a new Reddit client. baseURL defaults to https://www.reddit.com.
// Every request carries userAgent; Reddit rejects anonymous default agents.
func NewClient(baseURL, userAgent string, timeout time.Duration) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = "https://www.reddit.com"
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		client:    &http.Client{Timeout: timeout},
	}
}

// listing mirrors the subset of a Reddit listing we care about.
// Children and Data are pointers so a missing key can be told apart from an empty list.
type listing struct {
	Data *struct {
		Children *[]struct {
			Data *link `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

type link struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Author        string  `json:"author"`
	URL           string  `json:"url"`
	Permalink     string  `json:"permalink"`
	CreatedUTC    float64 `json:"created_utc"`
	Score         int     `json:"score"`
	NumComments   int     `json:"num_comments"`
	Selftext      string  `json:"selftext"`
	Subreddit     string  `json:"subreddit"`
	Domain        string  `json:"domain"`
	LinkFlairText string  `json:"link_flair_text"`
}

type about struct {
	Data *struct {
		Subscribers     int `json:"subscribers"`
		ActiveUserCount int `json:"active_user_count"`
	} `json:"data"`
}

// Hot returns the hot posts of a subreddit (up to limit).
func (c *Client) Hot(ctx context.Context, subreddit string, limit int) ([]model.RawItem, error) {
	path := fmt.Sprintf("/r/%s/hot.json", url.PathEscape(subreddit))
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", fmt.Sprintf("%d", limit))
	}
	var l listing
	if err := c.getJSON(ctx, path, q, &l); err != nil {
		return nil, err
	}
	if l.Data == nil || l.Data.Children == nil {
		return nil, fmt.Errorf("%w: %s has no data.children", ErrMalformed, path)
	}
	children := *l.Data.Children
	items := make([]model.RawItem, 0, len(children))
	for _, ch := range children {
		if ch.Data == nil || ch.Data.ID == "" {
			continue
		}
		items = append(items, convertLink(*ch.Data))
	}
	slog.Debug("reddit: fetched hot posts", "subreddit", subreddit, "count", len(items))
	return items, nil
}

// Activity returns the active user count of a subreddit, falling back to subscribers.
func (c *Client) Activity(ctx context.Context, subreddit string) (int, error) {
	path := fmt.Sprintf("/r/%s/about.json", url.PathEscape(subreddit))
	var a about
	if err := c.getJSON(ctx, path, nil, &a); err != nil {
		return 0, err
	}
	if a.Data == nil {
		return 0, fmt.Errorf("%w: %s has no data", ErrMalformed, path)
	}
	if a.Data.ActiveUserCount > 0 {
		return a.Data.ActiveUserCount, nil
	}
	return a.Data.Subscribers, nil
}

func (c *Client) getJSON(ctx context.Context, path string, q url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(q) > 0 {
		endpoint += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{Path: path, StatusCode: resp.StatusCode}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}
	return nil
}

// convertLink maps a listing child to a RawItem.
func convertLink(l link) model.RawItem {
	created := time.Unix(int64(l.CreatedUTC), 0).UTC()
	return model.RawItem{
		ID:        l.ID,
		Title:     l.Title,
		Author:    l.Author,
		Handle:    l.Author,
		URL:       strings.TrimSpace(l.URL),
		Permalink: strings.TrimSpace(l.Permalink),
		CreatedAt: created,
		Likes:     l.Score,
		Replies:   l.NumComments,
		Body:      l.Selftext,
		Community: l.Subreddit,
		Domain:    l.Domain,
		Flair:     l.LinkFlairText,
	}
}
