package wheel

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/SpinWheel_Go/internal/domain"
	"github.com/osse101/SpinWheel_Go/internal/logger"
)

// CachedStore keeps the active configuration in an expirable LRU.
// Callers always receive their own copy; the cached value is never handed out.
// Publish through the cached store invalidates it immediately; other writers are
// picked up once the TTL expires.
type CachedStore struct {
	inner ConfigStore
	lru   *expirable.LRU[string, *domain.WheelConfiguration]
}

// NewCachedStore wraps inner. A ttl of zero or less disables caching.
func NewCachedStore(inner ConfigStore, ttl time.Duration) *CachedStore {
	c := &CachedStore{inner: inner}
	if ttl > 0 {
		c.lru = expirable.NewLRU[string, *domain.WheelConfiguration](cacheSize, nil, ttl)
	}
	return c
}

// LoadActive returns the cached configuration or loads it from the inner store
func (c *CachedStore) LoadActive(ctx context.Context) (*domain.WheelConfiguration, error) {
	if c.lru != nil {
		if cfg, ok := c.lru.Get(domain.DefaultWheelKey); ok {
			return cloneConfig(cfg), nil
		}
	}

	cfg, err := c.inner.LoadActive(ctx)
	if err != nil {
		return nil, err
	}

	if c.lru != nil {
		c.lru.Add(domain.DefaultWheelKey, cloneConfig(cfg))
	}
	return cfg, nil
}

// Publish stores the configuration and replaces the cached copy
func (c *CachedStore) Publish(ctx context.Context, cfg *domain.WheelConfiguration) (*domain.WheelConfiguration, error) {
	published, err := c.inner.Publish(ctx, cfg)
	if err != nil {
		return nil, err
	}

	c.Invalidate(ctx)
	if c.lru != nil {
		c.lru.Add(domain.DefaultWheelKey, cloneConfig(published))
	}
	return published, nil
}

// Invalidate drops the cached configuration
func (c *CachedStore) Invalidate(ctx context.Context) {
	if c.lru == nil {
		return
	}
	c.lru.Remove(domain.DefaultWheelKey)
	logger.FromContext(ctx).Debug(LogMsgConfigInvalidated)
}
