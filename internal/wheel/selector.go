package wheel

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/osse101/SpinWheel_Go/internal/domain"
)

// Selector draws a segment with probability proportional to its weight
type Selector struct {
	rng func() float64 // Injectable for testing, returns [0,1)
}

// NewSelector creates a selector. A nil rng uses math/rand/v2.
func NewSelector(rng func() float64) *Selector {
	if rng == nil {
		rng = rand.Float64
	}
	return &Selector{rng: rng}
}

// Select picks one segment. The total weight is always recomputed from the segments.
func (s *Selector) Select(segments []domain.Segment) (domain.Segment, error) {
	if len(segments) == 0 {
		return domain.Segment{}, fmt.Errorf("%w: %s", domain.ErrConfiguration, domain.ErrMsgNoSegments)
	}

	for _, seg := range segments {
		if math.IsNaN(seg.Weight) || math.IsInf(seg.Weight, 0) {
			return domain.Segment{}, fmt.Errorf("%w: "+ErrMsgInvalidWeight, domain.ErrConfiguration, seg.ID)
		}
	}

	total := domain.SumWeights(segments)
	if !(total > 0) || math.IsInf(total, 0) {
		return domain.Segment{}, fmt.Errorf("%w: %s", domain.ErrConfiguration, ErrMsgInvalidTotalWeight)
	}

	return SelectWithDraw(segments, s.rng()*total), nil
}

// SelectWithDraw walks the segments subtracting weights from r and returns the
// first segment that brings the remainder to zero or below.
// If rounding leaves a positive remainder, the last segment is returned.
// segments must not be empty.
func SelectWithDraw(segments []domain.Segment, r float64) domain.Segment {
	for _, seg := range segments {
		r -= seg.Weight
		if r <= 0 {
			return seg
		}
	}
	return segments[len(segments)-1]
}
