package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/SpinWheel_Go/internal/config"
	"github.com/osse101/SpinWheel_Go/internal/database"
	"github.com/osse101/SpinWheel_Go/internal/database/postgres"
	"github.com/osse101/SpinWheel_Go/internal/spin"
	"github.com/osse101/SpinWheel_Go/internal/wheel"
)

// Storage holds the persistence backends used by the application.
// Pool is nil for the in-memory backend.
type Storage struct {
	Ledger  spin.Ledger
	Configs wheel.ConfigStore
	Pool    database.Pool
}

// Close releases the database pool, if any
func (s *Storage) Close() {
	if s.Pool != nil {
		s.Pool.Close()
	}
}

// InitializeStorage builds the configured backend, wraps the configuration store
// in a TTL cache and seeds the wheel from disk when no configuration exists yet.
func InitializeStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	var storage *Storage

	switch cfg.StorageBackend {
	case config.StorageBackendPostgres:
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDatabase, err)
		}

		applied, err := database.Migrate(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
		}
		slog.Info(LogMsgMigrationsApplied, "version", applied)

		storage = &Storage{
			Ledger:  postgres.NewSpinLedger(pool, nil),
			Configs: postgres.NewWheelConfigRepository(pool),
			Pool:    pool,
		}
	case config.StorageBackendMemory:
		storage = &Storage{
			Ledger:  spin.NewMemoryLedger(nil),
			Configs: wheel.NewMemoryStore(),
		}
	default:
		return nil, fmt.Errorf(ErrMsgUnknownBackend, cfg.StorageBackend)
	}

	if cfg.ConfigCacheTTL > 0 {
		storage.Configs = wheel.NewCachedStore(storage.Configs, cfg.ConfigCacheTTL)
	}

	if err := wheel.SeedIfMissing(ctx, storage.Configs, cfg.WheelConfigPath); err != nil {
		storage.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedSeedWheel, err)
	}

	slog.Info(LogMsgStorageInitialized, "backend", cfg.StorageBackend, "config_cache_ttl", cfg.ConfigCacheTTL)
	return storage, nil
}
