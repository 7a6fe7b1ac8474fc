// Package stats summarises spin history.
package stats

import (
	"github.com/osse101/SpinWheel_Go/internal/domain"
)

// Summarize computes prize totals and frequencies over records.
// MostCommonPrize ties resolve to the description seen first in input order,
// which for history pages is the most recent spin.
func Summarize(records []domain.SpinRecord) domain.SpinStats {
	s := domain.SpinStats{
		TotalSpins:  len(records),
		PrizeCounts: make(map[string]int),
	}

	order := make([]string, 0)
	for _, r := range records {
		switch r.Prize.Type {
		case domain.PrizeTypeCoins:
			s.TotalCoins += r.Prize.Amount
		case domain.PrizeTypeSpecial:
			s.TotalSpecial += r.Prize.Amount
		case domain.PrizeTypeBonus:
			s.TotalBonus += r.Prize.Amount
		case domain.PrizeTypeJackpot:
			s.TotalJackpot += r.Prize.Amount
		}

		desc := r.Prize.Description
		if desc == "" {
			desc = domain.UnknownPrizeDescription
		}
		if _, seen := s.PrizeCounts[desc]; !seen {
			order = append(order, desc)
		}
		s.PrizeCounts[desc]++
	}

	best := 0
	for _, desc := range order {
		if n := s.PrizeCounts[desc]; n > best {
			best = n
			d := desc
			s.MostCommonPrize = &d
		}
	}

	return s
}
