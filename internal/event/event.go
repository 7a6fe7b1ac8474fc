package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/SpinWheel_Go/internal/domain"
	"github.com/osse101/SpinWheel_Go/internal/logger"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version  string                 `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type                   `json:"type"`
	Payload  interface{}            `json:"payload"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// Event types
const (
	SpinRecorded         Type = domain.EventSpinRecorded
	WheelConfigPublished Type = domain.EventWheelConfigPublished
)

// SpinRecordedPayloadV1 is the typed payload for spin.recorded events
type SpinRecordedPayloadV1 struct {
	SpinID       string       `json:"spin_id"`
	UserID       string       `json:"user_id"`
	SegmentID    int          `json:"segment_id"`
	Prize        domain.Prize `json:"prize"`
	WheelVersion int          `json:"wheel_version"`
	Timestamp    int64        `json:"timestamp"`
}

// WheelConfigPublishedPayloadV1 is the typed payload for wheel.config_published events
type WheelConfigPublishedPayloadV1 struct {
	Version      int     `json:"version"`
	SegmentCount int     `json:"segment_count"`
	TotalWeight  float64 `json:"total_weight"`
	Timestamp    int64   `json:"timestamp"`
}

// NewSpinRecordedEvent creates a spin.recorded event from a persisted record
func NewSpinRecordedEvent(rec *domain.SpinRecord) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    SpinRecorded,
		Payload: SpinRecordedPayloadV1{
			SpinID:       rec.ID,
			UserID:       rec.UserID,
			SegmentID:    rec.SegmentID,
			Prize:        rec.Prize,
			WheelVersion: rec.WheelVersion,
			Timestamp:    rec.Timestamp.Unix(),
		},
	}
}

// NewWheelConfigPublishedEvent creates a wheel.config_published event
func NewWheelConfigPublishedEvent(cfg *domain.WheelConfiguration) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    WheelConfigPublished,
		Payload: WheelConfigPublishedPayloadV1{
			Version:      cfg.Version,
			SegmentCount: len(cfg.Segments),
			TotalWeight:  cfg.TotalWeight,
			Timestamp:    time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber synchronously and joins their errors.
// A panicking handler is recovered and reported as an error.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := safeHandle(ctx, handler, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}
	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

func safeHandle(ctx context.Context, h Handler, event Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.FromContext(ctx).Error(LogMsgHandlerPanic, "event_type", event.Type, "panic", r)
			err = fmt.Errorf("%s: %v", LogMsgHandlerPanic, r)
		}
	}()
	return h(ctx, event)
}
