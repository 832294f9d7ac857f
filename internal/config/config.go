package config

import (
	"time"

	"github.com/spf13/viper"
)

// AppConfig holds application-level settings.
type AppConfig struct {
	LogLevel string `mapstructure:"log_level"`
}

// ServerConfig controls the HTTP API.
type ServerConfig struct {
	Addr           string `mapstructure:"addr"`
	RequestTimeout string `mapstructure:"request_timeout"` // duration string, e.g., "15s"
	RateLimit      int    `mapstructure:"rate_limit"`      // requests per minute per client, 0 disables
}

// CacheConfig selects the response cache backend and its freshness windows.
type CacheConfig struct {
	Backend    string `mapstructure:"backend"`     // memory or redis
	StoriesTTL string `mapstructure:"stories_ttl"` // e.g., "5m"
	CountsTTL  string `mapstructure:"counts_ttl"`  // e.g., "1h"
	// WarmInterval makes `serve` refetch every subject on this interval; empty disables.
	WarmInterval string `mapstructure:"warm_interval"`
}

// RedisConfig holds redis connection settings.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// RedditConfig controls the Reddit data source.
type RedditConfig struct {
	BaseURL   string `mapstructure:"base_url"`
	UserAgent string `mapstructure:"user_agent"`
	Limit     int    `mapstructure:"limit"`
	Timeout   string `mapstructure:"timeout"`
}

// DataSources groups available sources.
type DataSources struct {
	Reddit RedditConfig `mapstructure:"reddit"`
}

// FeedConfig controls ranking output and paging.
type FeedConfig struct {
	PageSize     int `mapstructure:"page_size"`
	MaxStories   int `mapstructure:"max_stories"`
	HeadlineSize int `mapstructure:"headline_size"`
}

// SubjectConfig defines one catalogue entry.
type SubjectConfig struct {
	ID            string `mapstructure:"id"`
	Slug          string `mapstructure:"slug"`
	Name          string `mapstructure:"name"`
	Description   string `mapstructure:"description"`
	PostCount     int    `mapstructure:"post_count"`
	CommunitySize int    `mapstructure:"community_size"`
	Source        string `mapstructure:"source"`    // reddit or mock
	Community     string `mapstructure:"community"` // e.g., subreddit name
}

// OpenAIConfig enables AI-written digest summaries.
type OpenAIConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"`
}

// DigestConfig controls markdown digest export.
type DigestConfig struct {
	OutputDir  string `mapstructure:"output_dir"`
	Language   string `mapstructure:"language"`
	Title      string `mapstructure:"title"` // supports {.CurrentDate} and {.Subject}
	Preface    string `mapstructure:"preface"`
	Postscript string `mapstructure:"postscript"`
	// Interval makes `serve` write daily digests, checking on this interval; empty disables.
	Interval string `mapstructure:"interval"`
}

// Config is the top-level configuration structure.
type Config struct {
	App      AppConfig       `mapstructure:"app"`
	Server   ServerConfig    `mapstructure:"server"`
	Cache    CacheConfig     `mapstructure:"cache"`
	Redis    RedisConfig     `mapstructure:"redis"`
	Sources  DataSources     `mapstructure:"sources"`
	Feed     FeedConfig      `mapstructure:"feed"`
	Subjects []SubjectConfig `mapstructure:"subjects"`
	OpenAI   OpenAIConfig    `mapstructure:"openai"`
	Digest   DigestConfig    `mapstructure:"digest"`
}

// DefaultRateLimit is the per-client request budget per minute when the
// config file does not set server.rate_limit.
const DefaultRateLimit = 120

// RegisterDefaults sets defaults for keys whose zero value is meaningful and
// therefore cannot be filled in by FillDefaults. Call before Unmarshal.
func RegisterDefaults(v *viper.Viper) {
	v.SetDefault("server.rate_limit", DefaultRateLimit)
}

// FillDefaults applies default values if not provided. server.rate_limit is
// left alone: 0 there disables rate limiting (see RegisterDefaults).
func (c *Config) FillDefaults() {
	if c.App.LogLevel == "" {
		c.App.LogLevel = "info"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.RequestTimeout == "" {
		c.Server.RequestTimeout = "15s"
	}
	if c.Cache.Backend == "" {
		c.Cache.Backend = "memory"
	}
	if c.Cache.StoriesTTL == "" {
		c.Cache.StoriesTTL = "5m"
	}
	if c.Cache.CountsTTL == "" {
		c.Cache.CountsTTL = "1h"
	}
	if c.Redis.Addr == "" {
		c.Redis.Addr = "127.0.0.1:6379"
	}
	if c.Sources.Reddit.BaseURL == "" {
		c.Sources.Reddit.BaseURL = "https://www.reddit.com"
	}
	if c.Sources.Reddit.UserAgent == "" {
		c.Sources.Reddit.UserAgent = "TechTrendsFeed/1.0"
	}
	if c.Sources.Reddit.Limit == 0 {
		c.Sources.Reddit.Limit = 50
	}
	if c.Sources.Reddit.Timeout == "" {
		c.Sources.Reddit.Timeout = "10s"
	}
	if c.Feed.PageSize == 0 {
		c.Feed.PageSize = 5
	}
	if c.Feed.MaxStories == 0 {
		c.Feed.MaxStories = 30
	}
	if c.Feed.HeadlineSize == 0 {
		c.Feed.HeadlineSize = 10
	}
	if len(c.Subjects) == 0 {
		c.Subjects = DefaultSubjects()
	}
	for i := range c.Subjects {
		if c.Subjects[i].Source == "" {
			c.Subjects[i].Source = "reddit"
		}
	}
	if c.OpenAI.Model == "" {
		c.OpenAI.Model = "gpt-4o-mini"
	}
	if c.Digest.OutputDir == "" {
		c.Digest.OutputDir = "./out"
	}
	if c.Digest.Language == "" {
		c.Digest.Language = "English"
	}
}

// Durations holds the parsed duration strings of a Config.
type Durations struct {
	RequestTimeout time.Duration
	StoriesTTL     time.Duration
	CountsTTL      time.Duration
	RedditTimeout  time.Duration
	WarmInterval   time.Duration // 0 when disabled
	DigestInterval time.Duration // 0 when disabled
}

// ParseDurations parses every duration string. Call after FillDefaults.
func (c *Config) ParseDurations() (Durations, error) {
	var d Durations
	var err error
	if d.RequestTimeout, err = parseDuration("server.request_timeout", c.Server.RequestTimeout); err != nil {
		return d, err
	}
	if d.StoriesTTL, err = parseDuration("cache.stories_ttl", c.Cache.StoriesTTL); err != nil {
		return d, err
	}
	if d.CountsTTL, err = parseDuration("cache.counts_ttl", c.Cache.CountsTTL); err != nil {
		return d, err
	}
	if d.RedditTimeout, err = parseDuration("sources.reddit.timeout", c.Sources.Reddit.Timeout); err != nil {
		return d, err
	}
	if c.Cache.WarmInterval != "" {
		if d.WarmInterval, err = parseDuration("cache.warm_interval", c.Cache.WarmInterval); err != nil {
			return d, err
		}
	}
	if c.Digest.Interval != "" {
		if d.DigestInterval, err = parseDuration("digest.interval", c.Digest.Interval); err != nil {
			return d, err
		}
	}
	return d, nil
}
