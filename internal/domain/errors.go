package domain

import (
	"errors"
	"fmt"
	"time"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgUnauthenticated       = "user must be authenticated"
	ErrMsgInvalidArgument       = "invalid argument"
	ErrMsgConfigurationNotFound = "wheel configuration not found"
	ErrMsgConfiguration         = "invalid wheel configuration"
	ErrMsgNoSegments            = "no wheel segments configured"
	ErrMsgInvalidCooldown       = "cooldown minutes must be positive"
	ErrMsgCooldownActive        = "spin on cooldown"
	ErrMsgStorage               = "storage error"
	ErrMsgLimitTooLarge         = "limit cannot exceed 100"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrUnauthenticated       = errors.New(ErrMsgUnauthenticated)
	ErrInvalidArgument       = errors.New(ErrMsgInvalidArgument)
	ErrConfigurationNotFound = errors.New(ErrMsgConfigurationNotFound)
	ErrConfiguration         = errors.New(ErrMsgConfiguration)
	ErrCooldownActive        = errors.New(ErrMsgCooldownActive)
	ErrStorage               = errors.New(ErrMsgStorage)
)

// CooldownActiveError is returned when a spin is attempted inside the cooldown window
type CooldownActiveError struct {
	RemainingMinutes int
	Remaining        time.Duration
}

func (e *CooldownActiveError) Error() string {
	return fmt.Sprintf("%s: %d minute(s) remaining", ErrMsgCooldownActive, e.RemainingMinutes)
}

// Is allows errors.Is(err, ErrCooldownActive) to match
func (e *CooldownActiveError) Is(target error) bool {
	if target == ErrCooldownActive {
		return true
	}
	_, ok := target.(*CooldownActiveError)
	return ok
}
