package server

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	logx "github.com/shrey-c/resume-chatbot/pkg/logger"
)

// RateLimitConfig bounds how many chats a client may start per minute.
type RateLimitConfig struct {
	RequestsPerMinute int `envconfig:"MAX_REQUESTS_PER_MINUTE" default:"10"`
}

// RateLimiter is a Redis-backed fixed-window counter keyed per client IP.
// A nil Redis client disables throttling entirely; if Redis is configured but
// fails at request time the limiter fails open, since dropping chats over an
// infrastructure hiccup is worse than briefly losing throttling.
type RateLimiter struct {
	rdb    *redis.Client
	limit  int
	window time.Duration
}

// NewRateLimiter builds a limiter over the given client, which may be nil.
func NewRateLimiter(rdb *redis.Client, cfg RateLimitConfig) *RateLimiter {
	return &RateLimiter{
		rdb:    rdb,
		limit:  cfg.RequestsPerMinute,
		window: time.Minute,
	}
}

// Allow reports whether the client identified by key may proceed, and if not,
// how long until the current window resets.
func (l *RateLimiter) Allow(ctx context.Context, key string) (bool, time.Duration) {
	if l.rdb == nil || l.limit <= 0 {
		return true, 0
	}

	now := time.Now()
	bucket := now.Unix() / int64(l.window.Seconds())
	redisKey := fmt.Sprintf("ratelimit:chat:%s:%d", key, bucket)

	pipe := l.rdb.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.Expire(ctx, redisKey, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		logx.Warn().Err(err).Msg("Rate limit check failed, allowing request")
		return true, 0
	}

	if incr.Val() > int64(l.limit) {
		reset := time.Unix((bucket+1)*int64(l.window.Seconds()), 0)
		return false, time.Until(reset).Round(time.Second)
	}
	return true, 0
}
