package spin

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/SpinWheel_Go/internal/domain"
)

// MockService is a mock implementation of the Service interface
type MockService struct {
	mock.Mock
}

func (m *MockService) RecordSpin(ctx context.Context, userID string, clientRequestID *string) (*domain.SpinOutcome, error) {
	args := m.Called(ctx, userID, clientRequestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SpinOutcome), args.Error(1)
}

func (m *MockService) GetHistory(ctx context.Context, userID string, limit, offset int) (*domain.HistoryPage, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HistoryPage), args.Error(1)
}

func (m *MockService) GetStatus(ctx context.Context, userID string) (*domain.SpinStatus, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SpinStatus), args.Error(1)
}

func (m *MockService) ActiveWheel(ctx context.Context) (*domain.WheelConfiguration, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WheelConfiguration), args.Error(1)
}

func (m *MockService) PublishWheel(ctx context.Context, cfg *domain.WheelConfiguration) (*domain.WheelConfiguration, error) {
	args := m.Called(ctx, cfg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WheelConfiguration), args.Error(1)
}
