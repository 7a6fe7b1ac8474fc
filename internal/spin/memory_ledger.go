package spin

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/SpinWheel_Go/internal/concurrency"
	"github.com/osse101/SpinWheel_Go/internal/domain"
)

// MemoryLedger is an in-process Ledger. Records are lost on restart.
type MemoryLedger struct {
	mu      sync.RWMutex
	records map[string][]domain.SpinRecord // per user, append order

	locks *concurrency.LockManager
	now   func() time.Time
}

// NewMemoryLedger creates an empty ledger. A nil clock uses time.Now.
func NewMemoryLedger(now func() time.Time) *MemoryLedger {
	if now == nil {
		now = time.Now
	}
	return &MemoryLedger{
		records: make(map[string][]domain.SpinRecord),
		locks:   concurrency.NewLockManager(),
		now:     now,
	}
}

// FindLatestByUser returns the user's newest record
func (l *MemoryLedger) FindLatestByUser(ctx context.Context, userID string) (*domain.SpinRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	return latest(l.records[userID]), nil
}

// Append stores a record outside any user scope
func (l *MemoryLedger) Append(ctx context.Context, rec domain.NewSpinRecord) (*domain.SpinRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	stored := l.build(rec)

	l.mu.Lock()
	l.records[rec.UserID] = append(l.records[rec.UserID], stored)
	l.mu.Unlock()

	return &stored, nil
}

// QueryPage returns records newest first
func (l *MemoryLedger) QueryPage(ctx context.Context, userID string, limit, offset int) ([]domain.SpinRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l.mu.RLock()
	sorted := newestFirst(l.records[userID])
	l.mu.RUnlock()

	if offset >= len(sorted) {
		return []domain.SpinRecord{}, nil
	}
	end := offset + limit
	if end > len(sorted) {
		end = len(sorted)
	}
	return sorted[offset:end], nil
}

// CountByUser returns the number of records for the user
func (l *MemoryLedger) CountByUser(ctx context.Context, userID string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.records[userID]), nil
}

// WithUserLock serialises fn per user. Appends are staged and committed when fn succeeds.
func (l *MemoryLedger) WithUserLock(ctx context.Context, userID string, fn func(ctx context.Context, tx LedgerTx) error) error {
	unlock := l.locks.Lock(userID)
	defer unlock()

	tx := &memoryTx{ledger: l}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	l.mu.Lock()
	for _, rec := range tx.pending {
		l.records[rec.UserID] = append(l.records[rec.UserID], rec)
	}
	l.mu.Unlock()
	return nil
}

func (l *MemoryLedger) build(rec domain.NewSpinRecord) domain.SpinRecord {
	return domain.SpinRecord{
		ID:              uuid.NewString(),
		UserID:          rec.UserID,
		SegmentID:       rec.SegmentID,
		Prize:           rec.Prize,
		Timestamp:       l.now().UTC(),
		ClientRequestID: rec.ClientRequestID,
		WheelVersion:    rec.WheelVersion,
	}
}

// memoryTx stages appends until the surrounding scope commits
type memoryTx struct {
	ledger  *MemoryLedger
	pending []domain.SpinRecord
}

func (t *memoryTx) FindLatestByUser(ctx context.Context, userID string) (*domain.SpinRecord, error) {
	for i := len(t.pending) - 1; i >= 0; i-- {
		if t.pending[i].UserID == userID {
			rec := t.pending[i]
			return &rec, nil
		}
	}
	return t.ledger.FindLatestByUser(ctx, userID)
}

func (t *memoryTx) Append(ctx context.Context, rec domain.NewSpinRecord) (*domain.SpinRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	stored := t.ledger.build(rec)
	t.pending = append(t.pending, stored)
	return &stored, nil
}

func latest(records []domain.SpinRecord) *domain.SpinRecord {
	sorted := newestFirst(records)
	if len(sorted) == 0 {
		return nil
	}
	rec := sorted[0]
	return &rec
}

// newestFirst returns a sorted copy. Equal timestamps keep reverse append order.
func newestFirst(records []domain.SpinRecord) []domain.SpinRecord {
	out := make([]domain.SpinRecord, len(records))
	for i, r := range records {
		out[len(records)-1-i] = r
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}
