package domain

import "time"

// Prize is the reward attached to a wheel segment.
// Type is an open set; see the PrizeType constants for the kinds that have statistics buckets.
type Prize struct {
	Type        string `json:"type" validate:"required,max=32"`
	Amount      int64  `json:"amount" validate:"gte=0"`
	Description string `json:"description" validate:"max=200"`
}

// Segment is one slice of the wheel
type Segment struct {
	ID     int     `json:"id" validate:"required"`
	Label  string  `json:"label" validate:"required,max=64"`
	Color  string  `json:"color,omitempty" validate:"omitempty,max=32"`
	Weight float64 `json:"weight" validate:"gt=0"`
	Prize  Prize   `json:"prize"`
}

// WheelConfiguration is the versioned set of segments spins are drawn from.
// TotalWeight is denormalised and never used for selection.
type WheelConfiguration struct {
	Key             string    `json:"key"`
	Segments        []Segment `json:"segments" validate:"required,min=1,dive"`
	TotalWeight     float64   `json:"totalWeight"`
	CooldownMinutes int       `json:"cooldownMinutes" validate:"gt=0,lte=10080"`
	Version         int       `json:"version"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// SumWeights returns the live total weight of the segments
func SumWeights(segments []Segment) float64 {
	var total float64
	for _, s := range segments {
		total += s.Weight
	}
	return total
}

// SegmentByID returns the segment with the given id
func (c *WheelConfiguration) SegmentByID(id int) (Segment, bool) {
	for _, s := range c.Segments {
		if s.ID == id {
			return s, true
		}
	}
	return Segment{}, false
}

// CooldownDuration returns the cooldown as a duration
func (c *WheelConfiguration) CooldownDuration() time.Duration {
	return time.Duration(c.CooldownMinutes) * time.Minute
}
