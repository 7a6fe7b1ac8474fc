package bootstrap

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/osse101/SpinWheel_Go/internal/config"
	"github.com/osse101/SpinWheel_Go/internal/ratelimit"
)

// InitializeRateLimiter picks the per-user limiter. It returns a nil limiter when
// limiting is disabled, and the Redis client to close when one was opened.
func InitializeRateLimiter(ctx context.Context, cfg *config.Config) (ratelimit.Limiter, io.Closer, error) {
	if cfg.RateLimitPerMinute <= 0 {
		slog.Info(LogMsgRateLimitDisabled)
		return nil, nil, nil
	}

	if cfg.RedisAddr == "" {
		slog.Info(LogMsgRateLimitMemory, "per_minute", cfg.RateLimitPerMinute)
		return ratelimit.NewMemoryLimiter(cfg.RateLimitPerMinute, time.Minute), nil, nil
	}

	client, err := ratelimit.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return nil, nil, err
	}
	slog.Info(LogMsgRateLimitRedis, "addr", cfg.RedisAddr, "per_minute", cfg.RateLimitPerMinute)
	return ratelimit.NewRedisLimiter(client, cfg.RateLimitPerMinute, time.Minute), client, nil
}
