package domain

import "time"

// NewSpinRecord is what the service hands to the ledger.
// ID and timestamp are assigned on persistence.
type NewSpinRecord struct {
	UserID          string
	SegmentID       int
	Prize           Prize
	ClientRequestID *string
	WheelVersion    int
}

// SpinRecord is an immutable ledger entry
type SpinRecord struct {
	ID              string    `json:"id"`
	UserID          string    `json:"userId"`
	SegmentID       int       `json:"segmentId"`
	Prize           Prize     `json:"prize"`
	Timestamp       time.Time `json:"timestamp"`
	ClientRequestID *string   `json:"clientRequestId,omitempty"`
	WheelVersion    int       `json:"wheelVersion"`
}

// SpinOutcome is the result of a successful spin
type SpinOutcome struct {
	SpinID          string    `json:"spinId"`
	Segment         Segment   `json:"segment"`
	Prize           Prize     `json:"prize"`
	Message         string    `json:"message"`
	CooldownMinutes int       `json:"cooldownMinutes"`
	Timestamp       time.Time `json:"timestamp"`
}

// SpinStats summarises a set of spin records
type SpinStats struct {
	TotalSpins      int            `json:"totalSpins"`
	TotalCoins      int64          `json:"totalCoins"`
	TotalSpecial    int64          `json:"totalSpecial"`
	TotalBonus      int64          `json:"totalBonus"`
	TotalJackpot    int64          `json:"totalJackpot"`
	MostCommonPrize *string        `json:"mostCommonPrize"`
	PrizeCounts     map[string]int `json:"prizeCounts"`
}

// HistoryPage is one page of a user's spin history.
// Stats cover Spins only, not the user's whole history.
type HistoryPage struct {
	Spins      []SpinRecord `json:"spins"`
	TotalSpins int          `json:"totalSpins"`
	HasMore    bool         `json:"hasMore"`
	Stats      SpinStats    `json:"stats"`
	Limit      int          `json:"limit"`
	Offset     int          `json:"offset"`
}

// SpinStatus reports whether a user may spin now
type SpinStatus struct {
	CanSpin          bool       `json:"canSpin"`
	RemainingMinutes int        `json:"remainingMinutes"`
	RemainingSeconds int        `json:"remainingSeconds"`
	LastSpinAt       *time.Time `json:"lastSpinAt"`
	CooldownMinutes  int        `json:"cooldownMinutes"`
	WheelVersion     int        `json:"wheelVersion"`
}
