package cooldown

import (
	"math"
	"time"
)

// Decision is the outcome of a cooldown evaluation
type Decision struct {
	Allowed          bool
	Remaining        time.Duration
	RemainingMinutes int
}

// Check decides whether a new spin is allowed given the user's last spin time.
// It never reads the clock; callers pass now.
func Check(lastSpin *time.Time, cooldown time.Duration, now time.Time) Decision {
	if lastSpin == nil || cooldown <= 0 {
		return Decision{Allowed: true}
	}

	// A last spin in the future is clock skew, treat as just now
	elapsed := now.Sub(*lastSpin)
	if elapsed < 0 {
		elapsed = 0
	}

	if elapsed >= cooldown {
		return Decision{Allowed: true}
	}

	remaining := cooldown - elapsed
	return Decision{
		Allowed:          false,
		Remaining:        remaining,
		RemainingMinutes: CeilMinutes(remaining),
	}
}

// CeilMinutes rounds a positive duration up to whole minutes
func CeilMinutes(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int(math.Ceil(d.Minutes()))
}

// CeilSeconds rounds a positive duration up to whole seconds
func CeilSeconds(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int(math.Ceil(d.Seconds()))
}
