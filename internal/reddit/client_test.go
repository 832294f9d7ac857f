package reddit

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const hotPayload = `{"data":{"children":[
 {"data":{"id":"a1","title":"Hooks deep dive","author":"dan","url":"https://example.com/hooks","permalink":"/r/reactjs/comments/a1/hooks/","created_utc":1700000000,"score":120,"num_comments":30,"subreddit":"reactjs","domain":"example.com","link_flair_text":"Resource"}},
 {"data":{"id":"a2","title":"Ask: state libs?","author":"sam","url":"/r/reactjs/comments/a2/ask/","permalink":"/r/reactjs/comments/a2/ask/","created_utc":1700000100,"score":5,"num_comments":12,"selftext":"Which one?","subreddit":"reactjs","domain":"self.reactjs"}}
]}}`

func TestHot(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/r/reactjs/hot.json" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("limit"); got != "50" {
			t.Errorf("limit = %s", got)
		}
		if got := r.Header.Get("User-Agent"); got != "TechTrendsFeed/1.0" {
			t.Errorf("user agent = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(hotPayload))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "TechTrendsFeed/1.0", time.Second)
	items, err := c.Hot(context.Background(), "reactjs", 50)
	if err != nil {
		t.Fatalf("Hot: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	first := items[0]
	if first.ID != "a1" || first.Likes != 120 || first.Replies != 30 || first.Flair != "Resource" {
		t.Errorf("unexpected first item: %+v", first)
	}
	if !first.CreatedAt.Equal(time.Unix(1700000000, 0)) {
		t.Errorf("created = %v", first.CreatedAt)
	}
	if items[1].Body != "Which one?" || items[1].URL != "/r/reactjs/comments/a2/ask/" {
		t.Errorf("unexpected second item: %+v", items[1])
	}
}

func TestHotErrors(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		check  func(error) bool
	}{
		{"status", http.StatusServiceUnavailable, "", func(err error) bool {
			var se *StatusError
			return errors.As(err, &se) && se.StatusCode == http.StatusServiceUnavailable
		}},
		{"not json", http.StatusOK, "<html>", func(err error) bool { return errors.Is(err, ErrMalformed) }},
		{"missing children", http.StatusOK, `{"data":{}}`, func(err error) bool { return errors.Is(err, ErrMalformed) }},
		{"wrong shape", http.StatusOK, `[1,2,3]`, func(err error) bool { return errors.Is(err, ErrMalformed) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			_, err := NewClient(srv.URL, "ua", time.Second).Hot(context.Background(), "golang", 10)
			if err == nil || !tc.check(err) {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestHotEmptyListing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"children":[]}}`))
	}))
	defer srv.Close()

	items, err := NewClient(srv.URL, "ua", time.Second).Hot(context.Background(), "golang", 10)
	if err != nil {
		t.Fatalf("Hot: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected no items, got %d", len(items))
	}
}

func TestActivity(t *testing.T) {
	cases := []struct {
		body string
		want int
	}{
		{`{"data":{"subscribers":428000,"active_user_count":912}}`, 912},
		{`{"data":{"subscribers":428000}}`, 428000},
	}
	for _, tc := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/r/reactjs/about.json" {
				t.Errorf("path = %s", r.URL.Path)
			}
			_, _ = w.Write([]byte(tc.body))
		}))
		got, err := NewClient(srv.URL, "ua", time.Second).Activity(context.Background(), "reactjs")
		srv.Close()
		if err != nil {
			t.Fatalf("Activity: %v", err)
		}
		if got != tc.want {
			t.Errorf("Activity = %d, want %d", got, tc.want)
		}
	}
}
