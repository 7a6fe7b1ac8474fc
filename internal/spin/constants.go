package spin

// =============================================================================
// Messages
// =============================================================================

const (
	// WinMessageFormat builds the message returned with a spin outcome
	WinMessageFormat = "You won: %s"
)

// =============================================================================
// Error Messages
// =============================================================================

const (
	ErrMsgLimitTooSmall     = "limit must be at least 1"
	ErrMsgNegativeOffset    = "offset cannot be negative"
	ErrMsgLoadConfigFailed  = "failed to load wheel configuration"
	ErrMsgFindLatestFailed  = "failed to read last spin"
	ErrMsgAppendFailed      = "failed to record spin"
	ErrMsgQueryPageFailed   = "failed to query spin history"
	ErrMsgCountFailed       = "failed to count spins"
	ErrMsgUserScopeFailed   = "failed to run spin in user scope"
	ErrMsgPublishFailed     = "failed to publish wheel configuration"
	ErrMsgClientRequestLong = "clientRequestId is too long"
)

// MaxClientRequestIDLength bounds the advisory client request ID
const MaxClientRequestIDLength = 128

// =============================================================================
// Log Messages
// =============================================================================

const (
	LogMsgSpinRecorded       = "Spin recorded"
	LogMsgSpinDenied         = "Spin denied by cooldown"
	LogMsgEventPublishFailed = "Failed to publish spin event"
	LogMsgHistoryServed      = "Spin history served"
	LogMsgWheelPublished     = "Wheel configuration published"
	LogMsgStorageFailure     = "Spin storage failure"
)
