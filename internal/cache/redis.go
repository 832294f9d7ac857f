package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"trendfeed/internal/config"
)

const keyPrefix = "trendfeed:"

// Redis stores entries as plain strings with native expiry.
type Redis struct {
	rdb *redis.Client
}

func NewRedis(rdb *redis.Client) *Redis {
	return &Redis{rdb: rdb}
}

// DialRedis creates a client from configuration. It does not connect until first use.
func DialRedis(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Username:     cfg.Username,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  3 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})
}

// Ping checks the server is reachable and returns its reply.
func (s *Redis) Ping(ctx context.Context) (string, error) {
	return s.rdb.Ping(ctx).Result()
}

func (s *Redis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := s.rdb.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func (s *Redis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	return s.rdb.Set(ctx, keyPrefix+key, value, ttl).Err()
}

// TTL returns the remaining freshness of key; negative when absent.
func (s *Redis) TTL(ctx context.Context, key string) (time.Duration, error) {
	return s.rdb.TTL(ctx, keyPrefix+key).Result()
}

func (s *Redis) Close() error {
	return s.rdb.Close()
}
