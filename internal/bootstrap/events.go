package bootstrap

import (
	"log/slog"

	"github.com/osse101/SpinWheel_Go/internal/event"
)

// InitializeEventSystem creates the in-process event bus and registers the
// built-in subscribers on it.
func InitializeEventSystem() event.Bus {
	eventBus := event.NewMemoryBus()
	RegisterEventHandlers(eventBus)
	slog.Info(LogMsgEventSystemInitialized)
	return eventBus
}
