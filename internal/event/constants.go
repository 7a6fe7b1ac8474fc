package event

import "errors"

// Event schema versioning
const (
	// EventSchemaVersion is the current event schema version
	EventSchemaVersion = "1.0"
)

// Log message constants
const (
	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"
	LogMsgHandlerPanic       = "event handler panicked"
)

// ErrBadPayload is returned when a payload cannot be decoded into the requested type
var ErrBadPayload = errors.New("bad event payload")
