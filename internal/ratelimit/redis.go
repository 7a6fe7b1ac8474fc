package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLimiter shares fixed-window counters across instances through Redis
type RedisLimiter struct {
	client *redis.Client
	limit  int64
	period time.Duration
}

// NewRedisClient connects to Redis and verifies the connection
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}

// NewRedisLimiter allows limit hits per key in each period
func NewRedisLimiter(client *redis.Client, limit int, period time.Duration) *RedisLimiter {
	return &RedisLimiter{client: client, limit: int64(limit), period: period}
}

// Allow increments the key's counter. The first hit of a window sets its expiry.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return Decision{}, fmt.Errorf("failed to increment rate counter: %w", err)
	}

	if count == 1 {
		if err := l.client.Expire(ctx, key, l.period).Err(); err != nil {
			return Decision{}, fmt.Errorf("failed to set rate window: %w", err)
		}
	}

	d := Decision{Allowed: count <= l.limit, Count: count}
	if !d.Allowed {
		ttl, err := l.client.PTTL(ctx, key).Result()
		if err != nil || ttl <= 0 {
			// A key without expiry would block forever; restore the window
			_ = l.client.Expire(ctx, key, l.period).Err()
			ttl = l.period
		}
		d.RetryAfter = ttl
	}
	return d, nil
}
