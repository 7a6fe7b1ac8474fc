package postgres

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/SpinWheel_Go/internal/logger"
)

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxClosed
func SafeRollback(ctx context.Context, tx pgx.Tx) {
	// The request context may already be cancelled; rollback must still reach the server
	if err := tx.Rollback(context.WithoutCancel(ctx)); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error(LogMsgFailedToRollback, "error", err)
	}
}

// advisoryLockKey hashes namespace + id into a positive int64 for pg_advisory_xact_lock
func advisoryLockKey(namespace, id string) int64 {
	h := sha256.Sum256([]byte(namespace + HashSeparator + id))
	return int64(binary.BigEndian.Uint64(h[:8]) & HashMaskPositiveInt64)
}

// lockInTx takes a transaction-scoped advisory lock, released on commit or rollback
func lockInTx(ctx context.Context, tx pgx.Tx, namespace, id string) error {
	_, err := tx.Exec(ctx, SQLAdvisoryLock, advisoryLockKey(namespace, id))
	return err
}
