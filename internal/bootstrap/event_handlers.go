package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/SpinWheel_Go/internal/event"
	"github.com/osse101/SpinWheel_Go/internal/logger"
	"github.com/osse101/SpinWheel_Go/internal/metrics"
)

// RegisterEventHandlers sets up all event subscribers:
// the metrics collector and the audit logger.
func RegisterEventHandlers(bus event.Bus) {
	metrics.NewEventMetricsCollector().Register(bus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	bus.Subscribe(event.SpinRecorded, auditSpin)
	bus.Subscribe(event.WheelConfigPublished, auditWheel)
	slog.Info(LogMsgSpinAuditRegistered)
}

func auditSpin(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.SpinRecordedPayloadV1](evt.Payload)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgDecodeAuditPayload, err)
	}
	logger.FromContext(ctx).Info(LogMsgSpinAudit,
		"spin_id", payload.SpinID,
		"user_id", payload.UserID,
		"segment_id", payload.SegmentID,
		"prize_type", payload.Prize.Type,
		"prize_amount", payload.Prize.Amount,
		"wheel_version", payload.WheelVersion)
	return nil
}

func auditWheel(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.WheelConfigPublishedPayloadV1](evt.Payload)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgDecodeAuditPayload, err)
	}
	logger.FromContext(ctx).Info(LogMsgWheelAudit,
		"version", payload.Version,
		"segments", payload.SegmentCount,
		"total_weight", payload.TotalWeight)
	return nil
}
