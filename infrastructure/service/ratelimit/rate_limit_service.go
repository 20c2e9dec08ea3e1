package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/sparkwave/sparkwave-login/infrastructure/service/logger"
)

// Limiter throttles signin attempts. Allow reports whether the caller
// identified by key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type Config struct {
	Enabled  bool
	RedisURL string
	Attempts int
	Window   time.Duration
}

// NewLimiter returns a Redis-backed fixed-window limiter, or a noop one
// when rate limiting is disabled.
func NewLimiter(cfg Config, log logger.Logger) (Limiter, error) {
	if !cfg.Enabled {
		log.Info(context.Background(), "rate limiting disabled", nil)
		return &noopLimiter{}, nil
	}

	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisLimiter{
		client:   client,
		attempts: cfg.Attempts,
		window:   cfg.Window,
	}, nil
}

type redisLimiter struct {
	client   *redis.Client
	attempts int
	window   time.Duration
}

func (l *redisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := "ratelimit:signin:" + key

	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, fmt.Errorf("failed to increment rate limit counter: %w", err)
	}
	if count == 1 {
		if err := l.client.Expire(ctx, redisKey, l.window).Err(); err != nil {
			return false, fmt.Errorf("failed to set rate limit window: %w", err)
		}
	}
	return count <= int64(l.attempts), nil
}

type noopLimiter struct{}

func (l *noopLimiter) Allow(ctx context.Context, key string) (bool, error) {
	return true, nil
}
