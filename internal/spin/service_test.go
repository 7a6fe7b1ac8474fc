package spin

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SpinWheel_Go/internal/domain"
	"github.com/osse101/SpinWheel_Go/internal/event"
	"github.com/osse101/SpinWheel_Go/internal/wheel"
)

// fakeClock is a manually advanced clock shared by the service and ledger
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// staticStore always returns the same configuration, bypassing validation
type staticStore struct {
	cfg *domain.WheelConfiguration
	err error
}

func (s *staticStore) LoadActive(_ context.Context) (*domain.WheelConfiguration, error) {
	return s.cfg, s.err
}

func (s *staticStore) Publish(_ context.Context, _ *domain.WheelConfiguration) (*domain.WheelConfiguration, error) {
	return nil, errors.New("read only")
}

func seedWheel(cooldownMinutes int) *domain.WheelConfiguration {
	return &domain.WheelConfiguration{
		CooldownMinutes: cooldownMinutes,
		Segments: []domain.Segment{
			{ID: 1, Label: "A", Weight: 10, Prize: domain.Prize{Type: domain.PrizeTypeCoins, Amount: 100, Description: "100 Coins!"}},
			{ID: 2, Label: "B", Weight: 15, Prize: domain.Prize{Type: domain.PrizeTypeCoins, Amount: 50, Description: "50 Coins!"}},
			{ID: 8, Label: "J", Weight: 5, Prize: domain.Prize{Type: domain.PrizeTypeJackpot, Amount: 1000, Description: "JACKPOT! 1000 Coins!"}},
		},
	}
}

type testEnv struct {
	svc    Service
	ledger *MemoryLedger
	store  *wheel.MemoryStore
	clock  *fakeClock
	bus    *event.MemoryBus
}

func newTestEnv(t *testing.T, cooldownMinutes int, draw float64) *testEnv {
	t.Helper()

	clock := newFakeClock()
	ledger := NewMemoryLedger(clock.Now)
	store := wheel.NewMemoryStore()
	bus := event.NewMemoryBus()

	_, err := store.Publish(context.Background(), seedWheel(cooldownMinutes))
	require.NoError(t, err)

	svc := NewService(ledger, store, bus,
		WithClock(clock.Now),
		WithSelector(wheel.NewSelector(func() float64 { return draw })),
	)
	return &testEnv{svc: svc, ledger: ledger, store: store, clock: clock, bus: bus}
}

func TestRecordSpin_FirstSpin(t *testing.T) {
	env := newTestEnv(t, 5, 0)
	ctx := context.Background()

	var events []event.Event
	env.bus.Subscribe(event.SpinRecorded, func(_ context.Context, e event.Event) error {
		events = append(events, e)
		return nil
	})

	reqID := "req-1"
	outcome, err := env.svc.RecordSpin(ctx, "user-1", &reqID)
	require.NoError(t, err)

	assert.NotEmpty(t, outcome.SpinID)
	assert.Equal(t, 1, outcome.Segment.ID)
	assert.Equal(t, "You won: 100 Coins!", outcome.Message)
	assert.Equal(t, 5, outcome.CooldownMinutes)
	assert.Equal(t, env.clock.Now(), outcome.Timestamp)

	count, err := env.ledger.CountByUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	latest, err := env.ledger.FindLatestByUser(ctx, "user-1")
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, outcome.SpinID, latest.ID)
	assert.Equal(t, 1, latest.WheelVersion)
	require.NotNil(t, latest.ClientRequestID)
	assert.Equal(t, "req-1", *latest.ClientRequestID)

	require.Len(t, events, 1)
	payload, err := event.DecodePayload[event.SpinRecordedPayloadV1](events[0].Payload)
	require.NoError(t, err)
	assert.Equal(t, outcome.SpinID, payload.SpinID)
}

func TestRecordSpin_CooldownBoundaries(t *testing.T) {
	env := newTestEnv(t, 5, 0)
	ctx := context.Background()

	_, err := env.svc.RecordSpin(ctx, "user-1", nil)
	require.NoError(t, err)

	env.clock.Advance(4 * time.Minute)
	_, err = env.svc.RecordSpin(ctx, "user-1", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCooldownActive)

	var cdErr *domain.CooldownActiveError
	require.True(t, errors.As(err, &cdErr))
	assert.Equal(t, 1, cdErr.RemainingMinutes)

	t.Run("other users are unaffected", func(t *testing.T) {
		_, err := env.svc.RecordSpin(ctx, "user-2", nil)
		assert.NoError(t, err)
	})

	env.clock.Advance(time.Minute)
	_, err = env.svc.RecordSpin(ctx, "user-1", nil)
	require.NoError(t, err)

	count, err := env.ledger.CountByUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 2, count, "denied spin must not be recorded")
}

func TestPublishWheel_RejectsNonPositiveCooldown(t *testing.T) {
	env := newTestEnv(t, 1, 0.5)
	ctx := context.Background()

	for _, minutes := range []int{0, -5} {
		t.Run(fmt.Sprintf("%d minutes", minutes), func(t *testing.T) {
			_, err := env.svc.PublishWheel(ctx, seedWheel(minutes))
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidArgument)
		})
	}

	active, err := env.svc.ActiveWheel(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, active.Version)
	assert.Equal(t, 1, active.CooldownMinutes)

	_, err = env.svc.RecordSpin(ctx, "user-1", nil)
	require.NoError(t, err)
	_, err = env.svc.RecordSpin(ctx, "user-1", nil)
	assert.ErrorIs(t, err, domain.ErrCooldownActive, "back-to-back spins stay blocked")
}

func TestRecordSpin_StoredZeroCooldownIsConfigurationError(t *testing.T) {
	cfg := seedWheel(0)
	cfg.Version = 1
	svc := NewService(NewMemoryLedger(nil), &staticStore{cfg: cfg}, nil)

	_, err := svc.RecordSpin(context.Background(), "user-1", nil)
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestRecordSpin_ConfigurationErrors(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		store   wheel.ConfigStore
		wantErr error
	}{
		{"not found", wheel.NewMemoryStore(), domain.ErrConfigurationNotFound},
		{"no segments", &staticStore{cfg: &domain.WheelConfiguration{Version: 1, CooldownMinutes: 1}}, domain.ErrConfiguration},
		{"store failure", &staticStore{err: errors.New("connection refused")}, domain.ErrStorage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := NewMemoryLedger(nil)
			svc := NewService(ledger, tt.store, nil)

			_, err := svc.RecordSpin(ctx, "user-1", nil)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			count, _ := ledger.CountByUser(ctx, "user-1")
			assert.Zero(t, count)
		})
	}
}

func TestRecordSpin_InvalidInput(t *testing.T) {
	env := newTestEnv(t, 1, 0)
	ctx := context.Background()

	_, err := env.svc.RecordSpin(ctx, "", nil)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	long := string(make([]byte, MaxClientRequestIDLength+1))
	_, err = env.svc.RecordSpin(ctx, "user-1", &long)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestRecordSpin_StorageFailures(t *testing.T) {
	ctx := context.Background()
	store := &staticStore{cfg: seedWheel(1)}
	store.cfg.Version = 1
	dbErr := errors.New("connection reset")

	t.Run("lock scope unavailable", func(t *testing.T) {
		ledger := new(MockLedger)
		ledger.On("WithUserLock", mock.Anything, "user-1").Return(dbErr)

		_, err := NewService(ledger, store, nil).RecordSpin(ctx, "user-1", nil)
		assert.ErrorIs(t, err, domain.ErrStorage)
		ledger.AssertExpectations(t)
	})

	t.Run("read last spin fails", func(t *testing.T) {
		ledger := new(MockLedger)
		ledger.On("WithUserLock", mock.Anything, "user-1").Return(nil)
		ledger.On("FindLatestByUser", mock.Anything, "user-1").Return(nil, dbErr)

		_, err := NewService(ledger, store, nil).RecordSpin(ctx, "user-1", nil)
		assert.ErrorIs(t, err, domain.ErrStorage)
		ledger.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	})

	t.Run("append fails", func(t *testing.T) {
		ledger := new(MockLedger)
		ledger.On("WithUserLock", mock.Anything, "user-1").Return(nil)
		ledger.On("FindLatestByUser", mock.Anything, "user-1").Return(nil, nil)
		ledger.On("Append", mock.Anything, mock.MatchedBy(func(r domain.NewSpinRecord) bool {
			return r.UserID == "user-1" && r.WheelVersion == 1
		})).Return(nil, dbErr)

		_, err := NewService(ledger, store, nil).RecordSpin(ctx, "user-1", nil)
		assert.ErrorIs(t, err, domain.ErrStorage)
		assert.ErrorIs(t, err, dbErr)
		ledger.AssertExpectations(t)
	})
}

func TestRecordSpin_PrizeImmutableAfterConfigChange(t *testing.T) {
	env := newTestEnv(t, 1, 0)
	ctx := context.Background()

	first, err := env.svc.RecordSpin(ctx, "user-1", nil)
	require.NoError(t, err)
	require.Equal(t, 1, first.Segment.ID)

	changed := seedWheel(1)
	changed.Segments[0].Prize = domain.Prize{Type: domain.PrizeTypeCoins, Amount: 1, Description: "1 Coin"}
	published, err := env.svc.PublishWheel(ctx, changed)
	require.NoError(t, err)
	assert.Equal(t, 2, published.Version)

	env.clock.Advance(time.Minute)
	second, err := env.svc.RecordSpin(ctx, "user-1", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), second.Prize.Amount)

	page, err := env.svc.GetHistory(ctx, "user-1", 20, 0)
	require.NoError(t, err)
	require.Len(t, page.Spins, 2)

	older := page.Spins[1]
	assert.Equal(t, first.SpinID, older.ID)
	assert.Equal(t, int64(100), older.Prize.Amount)
	assert.Equal(t, "100 Coins!", older.Prize.Description)
	assert.Equal(t, 1, older.WheelVersion)
	assert.Equal(t, 2, page.Spins[0].WheelVersion)
}

func TestGetHistory_Pagination(t *testing.T) {
	env := newTestEnv(t, 1, 0)
	ctx := context.Background()

	var ids []string
	for i := 0; i < 25; i++ {
		out, err := env.svc.RecordSpin(ctx, "user-1", nil)
		require.NoError(t, err)
		ids = append(ids, out.SpinID)
		env.clock.Advance(time.Minute)
	}

	page, err := env.svc.GetHistory(ctx, "user-1", 20, 0)
	require.NoError(t, err)
	assert.Len(t, page.Spins, 20)
	assert.Equal(t, 25, page.TotalSpins)
	assert.True(t, page.HasMore)
	assert.Equal(t, ids[24], page.Spins[0].ID, "newest first")
	assert.Equal(t, 20, page.Stats.TotalSpins, "stats cover the page only")

	for i := 1; i < len(page.Spins); i++ {
		assert.True(t, page.Spins[i-1].Timestamp.After(page.Spins[i].Timestamp))
	}

	page, err = env.svc.GetHistory(ctx, "user-1", 20, 20)
	require.NoError(t, err)
	assert.Len(t, page.Spins, 5)
	assert.False(t, page.HasMore)
	assert.Equal(t, ids[0], page.Spins[4].ID)

	page, err = env.svc.GetHistory(ctx, "user-1", 20, 40)
	require.NoError(t, err)
	assert.Empty(t, page.Spins)
	assert.NotNil(t, page.Spins)
	assert.Equal(t, 25, page.TotalSpins)
	assert.False(t, page.HasMore)
}

func TestGetHistory_Validation(t *testing.T) {
	env := newTestEnv(t, 1, 0)
	ctx := context.Background()

	tests := []struct {
		name    string
		userID  string
		limit   int
		offset  int
		wantErr error
		wantMsg string
	}{
		{"limit above max", "user-1", 101, 0, domain.ErrInvalidArgument, domain.ErrMsgLimitTooLarge},
		{"zero limit", "user-1", 0, 0, domain.ErrInvalidArgument, ErrMsgLimitTooSmall},
		{"negative offset", "user-1", 10, -1, domain.ErrInvalidArgument, ErrMsgNegativeOffset},
		{"unauthenticated", "", 10, 0, domain.ErrUnauthenticated, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.svc.GetHistory(ctx, tt.userID, tt.limit, tt.offset)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}

	t.Run("max limit accepted", func(t *testing.T) {
		page, err := env.svc.GetHistory(ctx, "user-1", 100, 0)
		require.NoError(t, err)
		assert.Equal(t, 0, page.TotalSpins)
		assert.Nil(t, page.Stats.MostCommonPrize)
	})
}

func TestGetHistory_OffsetBeyondEnd(t *testing.T) {
	env := newTestEnv(t, 1, 0)
	ctx := context.Background()

	_, err := env.svc.RecordSpin(ctx, "user-1", nil)
	require.NoError(t, err)

	for _, offset := range []int{1, 1000, math.MaxInt - 5, math.MaxInt} {
		t.Run(fmt.Sprintf("offset %d", offset), func(t *testing.T) {
			page, err := env.svc.GetHistory(ctx, "user-1", 20, offset)
			require.NoError(t, err)
			assert.Empty(t, page.Spins)
			assert.Equal(t, 1, page.TotalSpins)
			assert.False(t, page.HasMore)
		})
	}
}

func TestGetHistory_Stats(t *testing.T) {
	ctx := context.Background()
	ledger := NewMemoryLedger(nil)
	svc := NewService(ledger, wheel.NewMemoryStore(), nil)

	for _, p := range []domain.Prize{
		{Type: domain.PrizeTypeJackpot, Amount: 1000, Description: "JACKPOT!"},
		{Type: domain.PrizeTypeCoins, Amount: 50, Description: "50 Coins!"},
		{Type: domain.PrizeTypeCoins, Amount: 100, Description: "100 Coins!"},
	} {
		_, err := ledger.Append(ctx, domain.NewSpinRecord{UserID: "user-1", SegmentID: 1, Prize: p, WheelVersion: 1})
		require.NoError(t, err)
	}

	page, err := svc.GetHistory(ctx, "user-1", 20, 0)
	require.NoError(t, err)

	assert.Equal(t, 3, page.Stats.TotalSpins)
	assert.Equal(t, int64(150), page.Stats.TotalCoins)
	assert.Equal(t, int64(1000), page.Stats.TotalJackpot)
	require.NotNil(t, page.Stats.MostCommonPrize)
}

func TestGetHistory_StorageFailures(t *testing.T) {
	ctx := context.Background()
	store := &staticStore{cfg: seedWheel(1)}
	dbErr := errors.New("timeout")

	t.Run("query fails", func(t *testing.T) {
		ledger := new(MockLedger)
		ledger.On("QueryPage", mock.Anything, "user-1", 20, 0).Return(nil, dbErr)

		_, err := NewService(ledger, store, nil).GetHistory(ctx, "user-1", 20, 0)
		assert.ErrorIs(t, err, domain.ErrStorage)
	})

	t.Run("count fails", func(t *testing.T) {
		ledger := new(MockLedger)
		ledger.On("QueryPage", mock.Anything, "user-1", 20, 0).Return([]domain.SpinRecord{}, nil)
		ledger.On("CountByUser", mock.Anything, "user-1").Return(0, dbErr)

		_, err := NewService(ledger, store, nil).GetHistory(ctx, "user-1", 20, 0)
		assert.ErrorIs(t, err, domain.ErrStorage)
	})
}

func TestGetStatus(t *testing.T) {
	env := newTestEnv(t, 5, 0)
	ctx := context.Background()

	status, err := env.svc.GetStatus(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, status.CanSpin)
	assert.Nil(t, status.LastSpinAt)
	assert.Equal(t, 5, status.CooldownMinutes)

	_, err = env.svc.RecordSpin(ctx, "user-1", nil)
	require.NoError(t, err)
	env.clock.Advance(90 * time.Second)

	status, err = env.svc.GetStatus(ctx, "user-1")
	require.NoError(t, err)
	assert.False(t, status.CanSpin)
	assert.Equal(t, 4, status.RemainingMinutes)
	assert.Equal(t, 210, status.RemainingSeconds)
	require.NotNil(t, status.LastSpinAt)
	assert.Equal(t, 1, status.WheelVersion)

	_, err = env.svc.GetStatus(ctx, "")
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestPublishWheel(t *testing.T) {
	env := newTestEnv(t, 1, 0)
	ctx := context.Background()

	var published []event.Event
	env.bus.Subscribe(event.WheelConfigPublished, func(_ context.Context, e event.Event) error {
		published = append(published, e)
		return nil
	})

	_, err := env.svc.PublishWheel(ctx, &domain.WheelConfiguration{})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.Empty(t, published)

	cfg, err := env.svc.PublishWheel(ctx, seedWheel(3))
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Version)
	assert.Equal(t, 30.0, cfg.TotalWeight)
	assert.Len(t, published, 1)

	active, err := env.svc.ActiveWheel(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, active.CooldownMinutes)
}

func TestRecordSpin_EventFailureDoesNotFailSpin(t *testing.T) {
	env := newTestEnv(t, 1, 0)
	env.bus.Subscribe(event.SpinRecorded, func(_ context.Context, _ event.Event) error {
		return fmt.Errorf("subscriber down")
	})

	_, err := env.svc.RecordSpin(context.Background(), "user-1", nil)
	assert.NoError(t, err)
}

func TestRecordSpin_CancelledContext(t *testing.T) {
	env := newTestEnv(t, 1, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := env.svc.RecordSpin(ctx, "user-1", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)

	count, _ := env.ledger.CountByUser(context.Background(), "user-1")
	assert.Zero(t, count)
}
