package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/SpinWheel_Go/internal/domain"
	"github.com/osse101/SpinWheel_Go/internal/wheel"
)

// WheelConfigRepository implements wheel.ConfigStore on PostgreSQL.
// Every publish inserts a new version row; the highest version is active.
type WheelConfigRepository struct {
	db *pgxpool.Pool
}

// NewWheelConfigRepository creates a PostgreSQL configuration store
func NewWheelConfigRepository(db *pgxpool.Pool) wheel.ConfigStore {
	return &WheelConfigRepository{db: db}
}

// LoadActive returns the newest configuration version
func (r *WheelConfigRepository) LoadActive(ctx context.Context) (*domain.WheelConfiguration, error) {
	var (
		cfg      domain.WheelConfiguration
		segments []byte
		version  int32
		cooldown int32
	)

	err := r.db.QueryRow(ctx, SQLSelectActiveWheel, domain.DefaultWheelKey).Scan(
		&cfg.Key, &version, &segments, &cfg.TotalWeight, &cooldown, &cfg.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrConfigurationNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadWheel, err)
	}

	if err := json.Unmarshal(segments, &cfg.Segments); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrConfiguration, ErrMsgFailedToDecodeSegments, err)
	}
	cfg.Version = int(version)
	cfg.CooldownMinutes = int(cooldown)
	cfg.UpdatedAt = cfg.UpdatedAt.UTC()

	if err := wheel.Normalize(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Publish validates cfg and stores it as the next version.
// Concurrent publishers are serialised by an advisory lock.
func (r *WheelConfigRepository) Publish(ctx context.Context, cfg *domain.WheelConfiguration) (*domain.WheelConfiguration, error) {
	if cfg == nil {
		return nil, wheel.Prepare(nil)
	}
	next := *cfg
	next.Segments = append([]domain.Segment(nil), cfg.Segments...)
	if err := wheel.Prepare(&next); err != nil {
		return nil, err
	}

	segments, err := json.Marshal(next.Segments)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToEncodeSegments, err)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	if err := lockInTx(ctx, tx, LockNamespaceWheel, next.Key); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToAcquireLock, err)
	}

	var current int32
	if err := tx.QueryRow(ctx, SQLSelectWheelVersion, next.Key).Scan(&current); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToReadWheelVersion, err)
	}

	next.Version = int(current) + 1
	next.UpdatedAt = time.Now().UTC().Truncate(time.Microsecond)

	_, err = tx.Exec(ctx, SQLInsertWheel,
		next.Key, next.Version, segments, next.TotalWeight, next.CooldownMinutes, next.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToInsertWheel, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return &next, nil
}
