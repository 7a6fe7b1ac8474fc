package spin

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/SpinWheel_Go/internal/cooldown"
	"github.com/osse101/SpinWheel_Go/internal/domain"
	"github.com/osse101/SpinWheel_Go/internal/event"
	"github.com/osse101/SpinWheel_Go/internal/logger"
	"github.com/osse101/SpinWheel_Go/internal/stats"
	"github.com/osse101/SpinWheel_Go/internal/wheel"
)

// Service adjudicates spins and serves history
type Service interface {
	// RecordSpin performs one spin for an authenticated user
	RecordSpin(ctx context.Context, userID string, clientRequestID *string) (*domain.SpinOutcome, error)

	// GetHistory returns one page of the user's spins, newest first, with page statistics
	GetHistory(ctx context.Context, userID string, limit, offset int) (*domain.HistoryPage, error)

	// GetStatus reports the user's cooldown state
	GetStatus(ctx context.Context, userID string) (*domain.SpinStatus, error)

	// ActiveWheel returns the configuration spins are currently drawn from
	ActiveWheel(ctx context.Context) (*domain.WheelConfiguration, error)

	// PublishWheel replaces the active configuration
	PublishWheel(ctx context.Context, cfg *domain.WheelConfiguration) (*domain.WheelConfiguration, error)
}

type service struct {
	ledger   Ledger
	configs  wheel.ConfigStore
	selector *wheel.Selector
	eventBus event.Bus
	now      func() time.Time // Injectable for testing
}

// Option customises the service
type Option func(*service)

// WithClock replaces the wall clock used for cooldown checks
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

// WithSelector replaces the prize selector
func WithSelector(sel *wheel.Selector) Option {
	return func(s *service) { s.selector = sel }
}

// NewService creates a new spin service. eventBus may be nil.
func NewService(ledger Ledger, configs wheel.ConfigStore, eventBus event.Bus, opts ...Option) Service {
	s := &service{
		ledger:   ledger,
		configs:  configs,
		selector: wheel.NewSelector(nil),
		eventBus: eventBus,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RecordSpin loads the active wheel, then checks cooldown, draws and appends inside the
// user's serialised scope so concurrent spins of one user cannot both pass the check.
func (s *service) RecordSpin(ctx context.Context, userID string, clientRequestID *string) (*domain.SpinOutcome, error) {
	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}
	if clientRequestID != nil && len(*clientRequestID) > MaxClientRequestIDLength {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidArgument, ErrMsgClientRequestLong)
	}

	ctx = logger.WithUserID(ctx, userID)
	log := logger.FromContext(ctx)

	cfg, err := s.configs.LoadActive(ctx)
	if err != nil {
		return nil, classify(ErrMsgLoadConfigFailed, err)
	}
	if cfg.CooldownMinutes <= 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrConfiguration, domain.ErrMsgInvalidCooldown)
	}

	var (
		segment domain.Segment
		rec     *domain.SpinRecord
	)

	err = s.ledger.WithUserLock(ctx, userID, func(ctx context.Context, tx LedgerTx) error {
		last, err := tx.FindLatestByUser(ctx, userID)
		if err != nil {
			return storageError(ErrMsgFindLatestFailed, err)
		}

		decision := cooldown.Check(lastSpinTime(last), cfg.CooldownDuration(), s.now())
		if !decision.Allowed {
			return &domain.CooldownActiveError{
				RemainingMinutes: decision.RemainingMinutes,
				Remaining:        decision.Remaining,
			}
		}

		segment, err = s.selector.Select(cfg.Segments)
		if err != nil {
			return err
		}

		rec, err = tx.Append(ctx, domain.NewSpinRecord{
			UserID:          userID,
			SegmentID:       segment.ID,
			Prize:           segment.Prize,
			ClientRequestID: clientRequestID,
			WheelVersion:    cfg.Version,
		})
		if err != nil {
			return storageError(ErrMsgAppendFailed, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrCooldownActive) {
			log.Debug(LogMsgSpinDenied, "error", err)
			return nil, err
		}
		err = classify(ErrMsgUserScopeFailed, err)
		if errors.Is(err, domain.ErrStorage) {
			log.Error(LogMsgStorageFailure, "error", err)
		}
		return nil, err
	}

	log.Info(LogMsgSpinRecorded,
		"spin_id", rec.ID,
		"segment_id", segment.ID,
		"prize_type", segment.Prize.Type,
		"wheel_version", cfg.Version)

	s.publish(ctx, event.NewSpinRecordedEvent(rec))

	return &domain.SpinOutcome{
		SpinID:          rec.ID,
		Segment:         segment,
		Prize:           rec.Prize,
		Message:         fmt.Sprintf(WinMessageFormat, rec.Prize.Description),
		CooldownMinutes: cfg.CooldownMinutes,
		Timestamp:       rec.Timestamp,
	}, nil
}

// GetHistory returns a page of spins. Statistics cover the returned page only.
func (s *service) GetHistory(ctx context.Context, userID string, limit, offset int) (*domain.HistoryPage, error) {
	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}
	if limit > domain.MaxHistoryLimit {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidArgument, domain.ErrMsgLimitTooLarge)
	}
	if limit < 1 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidArgument, ErrMsgLimitTooSmall)
	}
	if offset < 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidArgument, ErrMsgNegativeOffset)
	}

	ctx = logger.WithUserID(ctx, userID)

	spins, err := s.ledger.QueryPage(ctx, userID, limit, offset)
	if err != nil {
		return nil, storageError(ErrMsgQueryPageFailed, err)
	}

	total, err := s.ledger.CountByUser(ctx, userID)
	if err != nil {
		return nil, storageError(ErrMsgCountFailed, err)
	}

	if spins == nil {
		spins = []domain.SpinRecord{}
	}

	page := &domain.HistoryPage{
		Spins:      spins,
		TotalSpins: total,
		HasMore:    offset < total-limit,
		Stats:      stats.Summarize(spins),
		Limit:      limit,
		Offset:     offset,
	}

	logger.FromContext(ctx).Debug(LogMsgHistoryServed, "returned", len(spins), "total", total, "offset", offset)
	return page, nil
}

// GetStatus reads the last spin without taking the user scope; the answer is advisory.
func (s *service) GetStatus(ctx context.Context, userID string) (*domain.SpinStatus, error) {
	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}

	cfg, err := s.configs.LoadActive(ctx)
	if err != nil {
		return nil, classify(ErrMsgLoadConfigFailed, err)
	}

	last, err := s.ledger.FindLatestByUser(ctx, userID)
	if err != nil {
		return nil, storageError(ErrMsgFindLatestFailed, err)
	}

	lastAt := lastSpinTime(last)
	decision := cooldown.Check(lastAt, cfg.CooldownDuration(), s.now())

	return &domain.SpinStatus{
		CanSpin:          decision.Allowed,
		RemainingMinutes: decision.RemainingMinutes,
		RemainingSeconds: cooldown.CeilSeconds(decision.Remaining),
		LastSpinAt:       lastAt,
		CooldownMinutes:  cfg.CooldownMinutes,
		WheelVersion:     cfg.Version,
	}, nil
}

// ActiveWheel returns the active configuration
func (s *service) ActiveWheel(ctx context.Context) (*domain.WheelConfiguration, error) {
	cfg, err := s.configs.LoadActive(ctx)
	if err != nil {
		return nil, classify(ErrMsgLoadConfigFailed, err)
	}
	return cfg, nil
}

// PublishWheel stores a new configuration version. Existing spin records keep their
// prize copy and wheel version.
func (s *service) PublishWheel(ctx context.Context, cfg *domain.WheelConfiguration) (*domain.WheelConfiguration, error) {
	published, err := s.configs.Publish(ctx, cfg)
	if err != nil {
		return nil, classify(ErrMsgPublishFailed, err)
	}

	logger.FromContext(ctx).Info(LogMsgWheelPublished,
		"version", published.Version,
		"segments", len(published.Segments),
		"total_weight", published.TotalWeight)

	s.publish(ctx, event.NewWheelConfigPublishedEvent(published))
	return published, nil
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.eventBus == nil {
		return
	}
	if err := s.eventBus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, "event_type", evt.Type, "error", err)
	}
}

func lastSpinTime(rec *domain.SpinRecord) *time.Time {
	if rec == nil {
		return nil
	}
	ts := rec.Timestamp
	return &ts
}

// classify keeps errors that already carry a domain kind and treats the rest as storage failures
func classify(op string, err error) error {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated),
		errors.Is(err, domain.ErrInvalidArgument),
		errors.Is(err, domain.ErrConfigurationNotFound),
		errors.Is(err, domain.ErrConfiguration),
		errors.Is(err, domain.ErrCooldownActive),
		errors.Is(err, domain.ErrStorage),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		return storageError(op, err)
	}
}

func storageError(op string, err error) error {
	if errors.Is(err, domain.ErrStorage) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("%w: %s: %w", domain.ErrStorage, op, err)
}
