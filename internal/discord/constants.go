package discord

import "time"

// API client
const (
	ClientTimeout    = 10 * time.Second
	ClientMaxRetries = 3
	ClientRetryDelay = 500 * time.Millisecond

	// TokenTTL bounds the lifetime of the per-request tokens the bot mints
	TokenTTL = 5 * time.Minute

	UserIDPrefix = "discord:"

	// CommandTimeout bounds the API work of one slash command
	CommandTimeout = 15 * time.Second
	// PingTimeout bounds the health check behind /ping
	PingTimeout    = 5 * time.Second
)

// API paths
const (
	PathSpin       = "/api/v1/spin"
	PathSpinStatus = "/api/v1/spin/status"
	PathHistory    = "/api/v1/history"
	PathHealthz    = "/healthz"
)

// History paging
const (
	HistoryPageSize   = 10
	HistoryRecentRows = 5
)

// Embed colors
const (
	ColorWin      = 0x4ADE80
	ColorJackpot  = 0xEF4444
	ColorHistory  = 0x3B82F6
	ColorCooldown = 0xF59E0B
)

// Log messages
const (
	LogMsgRetryingRequest   = "Retrying API request"
	LogMsgRequestFailed     = "API request failed"
	LogMsgServerError       = "Server error, will retry"
	LogMsgActionFailed      = "Action failed"
	LogMsgCheckingCommands  = "Checking Discord commands"
	LogMsgCommandsForced    = "Force update enabled, replacing all commands"
	LogMsgCommandsUnchanged = "Commands unchanged, skipping registration"
	LogMsgCommandsUpdated   = "Commands updated"
	LogMsgDeferFailed       = "Failed to send deferred response"
	LogMsgEditFailed        = "Failed to edit interaction response"
	LogMsgWheelUnreachable  = "SpinWheel API unreachable"
)
