package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/SpinWheel_Go/internal/domain"
	"github.com/osse101/SpinWheel_Go/internal/spin"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// SpinLedger implements spin.Ledger on PostgreSQL
type SpinLedger struct {
	db  *pgxpool.Pool
	now func() time.Time
}

// NewSpinLedger creates a PostgreSQL spin ledger. A nil clock uses time.Now.
func NewSpinLedger(db *pgxpool.Pool, now func() time.Time) spin.Ledger {
	if now == nil {
		now = time.Now
	}
	return &SpinLedger{db: db, now: now}
}

// FindLatestByUser returns the newest spin for the user, or nil
func (l *SpinLedger) FindLatestByUser(ctx context.Context, userID string) (*domain.SpinRecord, error) {
	return findLatest(ctx, l.db, userID)
}

// Append inserts a record outside any user scope
func (l *SpinLedger) Append(ctx context.Context, rec domain.NewSpinRecord) (*domain.SpinRecord, error) {
	return insertSpin(ctx, l.db, rec, l.now())
}

// QueryPage returns spins newest first
func (l *SpinLedger) QueryPage(ctx context.Context, userID string, limit, offset int) ([]domain.SpinRecord, error) {
	rows, err := l.db.Query(ctx, SQLSelectSpinPage, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQuerySpins, err)
	}
	defer rows.Close()

	records := make([]domain.SpinRecord, 0, limit)
	for rows.Next() {
		rec, err := scanSpin(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQuerySpins, err)
	}
	return records, nil
}

// CountByUser counts all spins of the user
func (l *SpinLedger) CountByUser(ctx context.Context, userID string) (int, error) {
	var count int64
	if err := l.db.QueryRow(ctx, SQLCountSpins, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCountSpins, err)
	}
	return int(count), nil
}

// WithUserLock runs fn inside a transaction holding an advisory lock keyed by the user.
// The lock works even before the user has any rows.
func (l *SpinLedger) WithUserLock(ctx context.Context, userID string, fn func(ctx context.Context, tx spin.LedgerTx) error) error {
	tx, err := l.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	if err := lockInTx(ctx, tx, LockNamespaceSpin, userID); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToAcquireLock, err)
	}

	if err := fn(ctx, &ledgerTx{tx: tx, now: l.now}); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

// ledgerTx binds ledger reads and appends to one transaction
type ledgerTx struct {
	tx  pgx.Tx
	now func() time.Time
}

func (t *ledgerTx) FindLatestByUser(ctx context.Context, userID string) (*domain.SpinRecord, error) {
	return findLatest(ctx, t.tx, userID)
}

func (t *ledgerTx) Append(ctx context.Context, rec domain.NewSpinRecord) (*domain.SpinRecord, error) {
	return insertSpin(ctx, t.tx, rec, t.now())
}

func findLatest(ctx context.Context, q querier, userID string) (*domain.SpinRecord, error) {
	rec, err := scanSpin(q.QueryRow(ctx, SQLSelectLatestSpin, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetLatestSpin, err)
	}
	return rec, nil
}

func insertSpin(ctx context.Context, q querier, rec domain.NewSpinRecord, now time.Time) (*domain.SpinRecord, error) {
	// Postgres stores microseconds; truncate so the returned record matches what is read back
	ts := now.UTC().Truncate(time.Microsecond)
	id := uuid.New()

	_, err := q.Exec(ctx, SQLInsertSpin,
		id,
		rec.UserID,
		rec.SegmentID,
		rec.Prize.Type,
		rec.Prize.Amount,
		rec.Prize.Description,
		rec.WheelVersion,
		rec.ClientRequestID,
		ts,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToInsertSpin, err)
	}

	return &domain.SpinRecord{
		ID:              id.String(),
		UserID:          rec.UserID,
		SegmentID:       rec.SegmentID,
		Prize:           rec.Prize,
		Timestamp:       ts,
		ClientRequestID: rec.ClientRequestID,
		WheelVersion:    rec.WheelVersion,
	}, nil
}

func scanSpin(row pgx.Row) (*domain.SpinRecord, error) {
	var (
		rec       domain.SpinRecord
		segmentID int32
		version   int32
	)
	err := row.Scan(
		&rec.ID,
		&rec.UserID,
		&segmentID,
		&rec.Prize.Type,
		&rec.Prize.Amount,
		&rec.Prize.Description,
		&version,
		&rec.ClientRequestID,
		&rec.Timestamp,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanSpin, err)
	}

	rec.SegmentID = int(segmentID)
	rec.WheelVersion = int(version)
	rec.Timestamp = rec.Timestamp.UTC()
	return &rec, nil
}
