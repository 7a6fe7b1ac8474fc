package spin

import (
	"context"

	"github.com/osse101/SpinWheel_Go/internal/domain"
)

// LedgerTx is the view of the ledger inside a per-user serialised scope
type LedgerTx interface {
	// FindLatestByUser returns the user's most recent spin, or nil when there is none
	FindLatestByUser(ctx context.Context, userID string) (*domain.SpinRecord, error)

	// Append persists a new record and assigns its ID and timestamp
	Append(ctx context.Context, rec domain.NewSpinRecord) (*domain.SpinRecord, error)
}

// Ledger is the durable append-only store of spin records
type Ledger interface {
	LedgerTx

	// QueryPage returns records newest first, skipping offset and returning at most limit
	QueryPage(ctx context.Context, userID string, limit, offset int) ([]domain.SpinRecord, error)

	// CountByUser returns the total number of records for the user
	CountByUser(ctx context.Context, userID string) (int, error)

	// WithUserLock runs fn with exclusive access to the user's records.
	// Appends made through tx are only persisted if fn returns nil.
	WithUserLock(ctx context.Context, userID string, fn func(ctx context.Context, tx LedgerTx) error) error
}
