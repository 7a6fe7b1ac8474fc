package wheel

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/SpinWheel_Go/internal/domain"
	"github.com/osse101/SpinWheel_Go/internal/logger"
)

// ConfigStore provides the active wheel configuration
type ConfigStore interface {
	// LoadActive returns the active configuration.
	// domain.ErrConfigurationNotFound when none was published,
	// domain.ErrConfiguration when the stored one is unusable.
	LoadActive(ctx context.Context) (*domain.WheelConfiguration, error)

	// Publish replaces the active configuration and bumps its version
	Publish(ctx context.Context, cfg *domain.WheelConfiguration) (*domain.WheelConfiguration, error)
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	return validate
}

// Prepare validates a configuration about to be published and fills derived fields.
// Errors wrap domain.ErrInvalidArgument.
func Prepare(cfg *domain.WheelConfiguration) error {
	if cfg == nil {
		return fmt.Errorf("%w: configuration is required", domain.ErrInvalidArgument)
	}
	if err := getValidator().Struct(cfg); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidArgument, describeValidation(err))
	}
	if err := checkSegments(cfg.Segments); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidArgument, err)
	}

	cfg.Key = domain.DefaultWheelKey
	cfg.TotalWeight = domain.SumWeights(cfg.Segments)
	return nil
}

// Normalize checks a loaded configuration before it is used for a spin.
// The stored total weight is replaced with the live sum. Errors wrap domain.ErrConfiguration.
func Normalize(ctx context.Context, cfg *domain.WheelConfiguration) error {
	if len(cfg.Segments) == 0 {
		return fmt.Errorf("%w: %s", domain.ErrConfiguration, domain.ErrMsgNoSegments)
	}
	if err := checkSegments(cfg.Segments); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrConfiguration, err)
	}
	if cfg.CooldownMinutes <= 0 {
		return fmt.Errorf("%w: %s", domain.ErrConfiguration, domain.ErrMsgInvalidCooldown)
	}

	live := domain.SumWeights(cfg.Segments)
	if math.Abs(live-cfg.TotalWeight) > weightDriftTolerance {
		logger.FromContext(ctx).Warn(LogMsgTotalWeightDrift,
			"stored", cfg.TotalWeight, "live", live, "version", cfg.Version)
	}
	cfg.TotalWeight = live

	if cfg.Key == "" {
		cfg.Key = domain.DefaultWheelKey
	}
	if cfg.Version <= 0 {
		cfg.Version = domain.InitialWheelVersion
	}
	return nil
}

func checkSegments(segments []domain.Segment) error {
	seen := make(map[int]struct{}, len(segments))
	for _, s := range segments {
		if _, dup := seen[s.ID]; dup {
			return fmt.Errorf(ErrMsgDuplicateSegmentID, s.ID)
		}
		seen[s.ID] = struct{}{}

		if math.IsNaN(s.Weight) || math.IsInf(s.Weight, 0) {
			return fmt.Errorf(ErrMsgInvalidWeight, s.ID)
		}
		if s.Weight <= 0 {
			return fmt.Errorf("segment %d weight must be positive", s.ID)
		}
		if s.Prize.Amount < 0 {
			return fmt.Errorf("segment %d prize amount must not be negative", s.ID)
		}
	}
	return nil
}

func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, e := range verrs {
		parts = append(parts, fmt.Sprintf("%s failed %s", e.Namespace(), e.Tag()))
	}
	return strings.Join(parts, "; ")
}
