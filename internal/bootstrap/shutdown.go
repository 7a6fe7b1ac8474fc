package bootstrap

import (
	"context"
	"io"
	"log/slog"

	"github.com/osse101/SpinWheel_Go/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Storage and RedisClient may be nil.
type ShutdownComponents struct {
	Server      *server.Server
	Storage     *Storage
	RedisClient io.Closer
}

// GracefulShutdown stops the HTTP server first so no new spins start, then
// releases the rate limiter client and the storage pool.
// Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.RedisClient != nil {
		if err := components.RedisClient.Close(); err != nil {
			slog.Error(LogMsgRedisCloseFailed, "error", err)
		}
	}

	if components.Storage != nil {
		slog.Info(LogMsgClosingStorage)
		components.Storage.Close()
	}

	slog.Info(LogMsgServerStopped)
}
