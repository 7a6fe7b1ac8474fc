package wheel

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/SpinWheel_Go/internal/domain"
)

// MemoryStore is an in-process ConfigStore
type MemoryStore struct {
	mu     sync.RWMutex
	active *domain.WheelConfiguration
}

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// LoadActive returns a copy of the active configuration
func (s *MemoryStore) LoadActive(ctx context.Context) (*domain.WheelConfiguration, error) {
	s.mu.RLock()
	active := s.active
	s.mu.RUnlock()

	if active == nil {
		return nil, domain.ErrConfigurationNotFound
	}

	cfg := cloneConfig(active)
	if err := Normalize(ctx, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Publish validates cfg and makes it active with the next version
func (s *MemoryStore) Publish(ctx context.Context, cfg *domain.WheelConfiguration) (*domain.WheelConfiguration, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	next := cloneConfig(cfg)
	if err := Prepare(next); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next.Version = domain.InitialWheelVersion
	if s.active != nil {
		next.Version = s.active.Version + 1
	}
	next.UpdatedAt = time.Now().UTC()
	s.active = next

	return cloneConfig(next), nil
}

func cloneConfig(cfg *domain.WheelConfiguration) *domain.WheelConfiguration {
	if cfg == nil {
		return nil
	}
	out := *cfg
	out.Segments = append([]domain.Segment(nil), cfg.Segments...)
	return &out
}
