package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trendfeed_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "trendfeed_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// Upstream fetches by source and outcome (ok, upstream, transport, malformed, invalid).
	SourceFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trendfeed_source_fetches_total",
			Help: "Total number of source fetches",
		},
		[]string{"kind", "outcome"},
	)

	CacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trendfeed_cache_lookups_total",
			Help: "Response cache lookups by kind and result",
		},
		[]string{"kind", "result"},
	)

	FeedPostsServed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trendfeed_feed_posts_served_total",
			Help: "Total number of ranked posts served per subject",
		},
		[]string{"subject"},
	)
)
