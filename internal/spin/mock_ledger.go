package spin

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/SpinWheel_Go/internal/domain"
)

// MockLedger is a mock implementation of the Ledger interface.
// WithUserLock calls fn with the mock itself as the scoped ledger unless an error is stubbed.
type MockLedger struct {
	mock.Mock
}

func (m *MockLedger) FindLatestByUser(ctx context.Context, userID string) (*domain.SpinRecord, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SpinRecord), args.Error(1)
}

func (m *MockLedger) Append(ctx context.Context, rec domain.NewSpinRecord) (*domain.SpinRecord, error) {
	args := m.Called(ctx, rec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SpinRecord), args.Error(1)
}

func (m *MockLedger) QueryPage(ctx context.Context, userID string, limit, offset int) ([]domain.SpinRecord, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SpinRecord), args.Error(1)
}

func (m *MockLedger) CountByUser(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockLedger) WithUserLock(ctx context.Context, userID string, fn func(ctx context.Context, tx LedgerTx) error) error {
	args := m.Called(ctx, userID)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(ctx, m)
}
