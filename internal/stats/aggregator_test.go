package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SpinWheel_Go/internal/domain"
)

func record(prizeType string, amount int64, desc string) domain.SpinRecord {
	return domain.SpinRecord{Prize: domain.Prize{Type: prizeType, Amount: amount, Description: desc}}
}

func TestSummarize(t *testing.T) {
	records := []domain.SpinRecord{
		record(domain.PrizeTypeCoins, 100, "100 Coins!"),
		record(domain.PrizeTypeCoins, 50, "50 Coins!"),
		record(domain.PrizeTypeJackpot, 1000, "JACKPOT!"),
	}

	s := Summarize(records)

	assert.Equal(t, 3, s.TotalSpins)
	assert.Equal(t, int64(150), s.TotalCoins)
	assert.Equal(t, int64(1000), s.TotalJackpot)
	assert.Zero(t, s.TotalSpecial)
	assert.Zero(t, s.TotalBonus)
	assert.Len(t, s.PrizeCounts, 3)
	require.NotNil(t, s.MostCommonPrize)
	assert.Equal(t, "100 Coins!", *s.MostCommonPrize, "ties go to the first description seen")
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)

	assert.Zero(t, s.TotalSpins)
	assert.Nil(t, s.MostCommonPrize)
	assert.NotNil(t, s.PrizeCounts)
	assert.Empty(t, s.PrizeCounts)
}

func TestSummarize_Buckets(t *testing.T) {
	tests := []struct {
		name   string
		record domain.SpinRecord
		check  func(t *testing.T, s domain.SpinStats)
	}{
		{"special", record(domain.PrizeTypeSpecial, 1, "Diamond"), func(t *testing.T, s domain.SpinStats) {
			assert.Equal(t, int64(1), s.TotalSpecial)
		}},
		{"bonus", record(domain.PrizeTypeBonus, 2, "2x"), func(t *testing.T, s domain.SpinStats) {
			assert.Equal(t, int64(2), s.TotalBonus)
		}},
		{"unknown type counts but has no bucket", record("mystery", 9, "Box"), func(t *testing.T, s domain.SpinStats) {
			assert.Equal(t, 1, s.TotalSpins)
			assert.Zero(t, s.TotalCoins+s.TotalSpecial+s.TotalBonus+s.TotalJackpot)
			assert.Equal(t, 1, s.PrizeCounts["Box"])
		}},
		{"empty description", record(domain.PrizeTypeCoins, 5, ""), func(t *testing.T, s domain.SpinStats) {
			assert.Equal(t, 1, s.PrizeCounts[domain.UnknownPrizeDescription])
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, Summarize([]domain.SpinRecord{tt.record}))
		})
	}
}

func TestSummarize_MostCommon(t *testing.T) {
	records := []domain.SpinRecord{
		record(domain.PrizeTypeCoins, 10, "10 Coins!"),
		record(domain.PrizeTypeCoins, 25, "25 Coins!"),
		record(domain.PrizeTypeCoins, 25, "25 Coins!"),
		record(domain.PrizeTypeCoins, 10, "10 Coins!"),
		record(domain.PrizeTypeCoins, 25, "25 Coins!"),
	}

	s := Summarize(records)

	require.NotNil(t, s.MostCommonPrize)
	assert.Equal(t, "25 Coins!", *s.MostCommonPrize)
	assert.Equal(t, 3, s.PrizeCounts["25 Coins!"])
	assert.Equal(t, int64(95), s.TotalCoins)
}
