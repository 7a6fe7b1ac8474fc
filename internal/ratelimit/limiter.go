// Package ratelimit caps how often a caller may hit an endpoint, independent of the spin cooldown.
package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Decision is the outcome of one Allow call
type Decision struct {
	Allowed    bool
	Count      int64
	RetryAfter time.Duration
}

// Limiter counts hits per key in fixed windows
type Limiter interface {
	Allow(ctx context.Context, key string) (Decision, error)
}

// Key builds the counter key for a user and action
func Key(userID, action string) string {
	return fmt.Sprintf("ratelimit:%s:%s", userID, action)
}

type window struct {
	start time.Time
	count int64
}

// MemoryLimiter is a fixed-window limiter for single-instance deployments
type MemoryLimiter struct {
	mu      sync.Mutex
	limit   int64
	period  time.Duration
	windows map[string]*window
	now     func() time.Time // Injectable for testing
}

// NewMemoryLimiter allows limit hits per key in each period
func NewMemoryLimiter(limit int, period time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		limit:   int64(limit),
		period:  period,
		windows: make(map[string]*window),
		now:     time.Now,
	}
}

// Allow records a hit for key
func (l *MemoryLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	if err := ctx.Err(); err != nil {
		return Decision{}, err
	}

	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.windows[key]
	if !ok || now.Sub(w.start) >= l.period {
		l.sweep(now)
		w = &window{start: now}
		l.windows[key] = w
	}
	w.count++

	d := Decision{Allowed: w.count <= l.limit, Count: w.count}
	if !d.Allowed {
		d.RetryAfter = w.start.Add(l.period).Sub(now)
	}
	return d, nil
}

// sweep drops expired windows so idle keys do not accumulate. Caller holds mu.
func (l *MemoryLimiter) sweep(now time.Time) {
	for k, w := range l.windows {
		if now.Sub(w.start) >= l.period {
			delete(l.windows, k)
		}
	}
}
