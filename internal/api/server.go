package api

import (
	"context"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"trendfeed/internal/aggregator"
	"trendfeed/internal/model"
	"trendfeed/internal/subject"
)

// Feeds is the read side the handlers depend on; *aggregator.Service implements it.
type Feeds interface {
	Stories(ctx context.Context, slug string) ([]model.Story, error)
	Counts(ctx context.Context) map[string]int
	View(ctx context.Context, slug string, page int) (aggregator.View, error)
}

// Options configures the router.
type Options struct {
	RateLimit int // requests per minute per client IP, 0 disables
}

// NewRouter wires middleware and routes onto a fresh gin engine.
func NewRouter(registry *subject.Registry, feeds Feeds, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(), prometheusMiddleware())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowMethods = []string{http.MethodGet, http.MethodOptions}
	r.Use(cors.New(corsCfg))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/api/subjects")
	})

	h := &Handler{registry: registry, feeds: feeds}
	api := r.Group("/api")
	if opts.RateLimit > 0 {
		api.Use(newRateLimiter(opts.RateLimit).middleware())
	}
	{
		api.GET("/stories", h.Stories)
		api.GET("/counts", h.Counts)
		api.GET("/subjects", h.Subjects)
		api.GET("/feed/:slug", h.Feed)
	}
	return r
}
