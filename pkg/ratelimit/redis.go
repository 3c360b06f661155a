package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLimiter shares a fixed window counter across instances through Redis.
type RedisLimiter struct {
	client *redis.Client
	prefix string
	limit  int
	window time.Duration
	now    func() time.Time
}

// NewRedisLimiter allows limit requests per key in each window.
func NewRedisLimiter(client *redis.Client, prefix string, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		prefix: prefix,
		limit:  limit,
		window: window,
		now:    time.Now,
	}
}

func (l *RedisLimiter) key(key string, windowIdx int64) string {
	return fmt.Sprintf("%s:%s:%d", l.prefix, key, windowIdx)
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (Result, error) {
	now := l.now()
	windowIdx := now.UnixNano() / int64(l.window)
	k := l.key(key, windowIdx)

	var incr *redis.IntCmd
	_, err := l.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, k)
		pipe.PExpire(ctx, k, l.window)
		return nil
	})
	if err != nil {
		return Result{}, fmt.Errorf("rate limit %s: %w", key, err)
	}

	count := int(incr.Val())
	res := Result{Allowed: count <= l.limit, Limit: l.limit, Remaining: l.limit - count}
	if res.Remaining < 0 {
		res.Remaining = 0
	}
	if !res.Allowed {
		windowEnd := time.Unix(0, (windowIdx+1)*int64(l.window))
		res.RetryAfter = windowEnd.Sub(now)
	}
	return res, nil
}
