package handler

// Machine-readable error kinds carried in every error response
const (
	KindUnauthenticated       = "unauthenticated"
	KindInvalidArgument       = "invalid_argument"
	KindConfigurationNotFound = "configuration_not_found"
	KindConfigurationError    = "configuration_error"
	KindCooldownActive        = "cooldown_active"
	KindStorageError          = "storage_error"
	KindRateLimited           = "rate_limited"
	KindInternal              = "internal"
)

// User-facing error messages.
// These intentionally do not expose internal error details.
const (
	ErrMsgUnauthenticated       = "User must be authenticated"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgConfigurationNotFound = "Wheel configuration not found"
	ErrMsgNoSegments            = "No wheel segments configured"
	ErrMsgInvalidConfiguration  = "Wheel configuration is invalid"
	ErrMsgCooldownFormat        = "Please wait %d more minute(s) before spinning again"
	ErrMsgStorageUnavailable    = "Storage temporarily unavailable. Please try again."
	ErrMsgGenericServerError    = "Something went wrong. Please try again."
	ErrMsgTooManyRequests       = "Too many requests. Please try again later."
	ErrMsgInvalidLimit          = "limit must be an integer"
	ErrMsgInvalidOffset         = "offset must be an integer"
)

// Success messages
const (
	MsgWheelPublished = "Wheel configuration published"
)

// Log messages
const (
	LogMsgRequestFailed        = "Request failed"
	LogMsgRequestDecodeFailed  = "Failed to decode request"
	LogMsgRequestInvalid       = "Request failed validation"
	LogMsgEncodeFailed         = "Failed to encode JSON response"
	LogMsgWriteFailed          = "Failed to write response buffer"
	LogMsgReadinessCheckFailed = "Readiness check failed"
)

// Query parameters
const (
	QueryParamLimit  = "limit"
	QueryParamOffset = "offset"
)

// HeaderRetryAfter tells clients how many seconds to wait
const HeaderRetryAfter = "Retry-After"

// MaxRequestBodyBytes bounds request bodies read by handlers
const MaxRequestBodyBytes = 1 << 20
