package quit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeStatsScenario48Hours(t *testing.T) {
	now := time.Date(2025, 6, 17, 10, 0, 0, 0, time.UTC)
	p := testProfile(now.Add(-48 * time.Hour))

	snap := ComputeStats(now, p, "ar")

	assert.Equal(t, int64(48*3600), snap.ElapsedSeconds)
	assert.Equal(t, int64(2), snap.Elapsed.Days)
	assert.Equal(t, int64(40), snap.CigarettesAvoided)
	assert.Equal(t, "700.00", snap.MoneySavedDisplay)
	assert.Equal(t, "DZD", snap.Currency)
	assert.Len(t, snap.Milestones, 10)
	assert.Len(t, snap.Badges, 5)
	assert.Equal(t, 2, snap.Level.Level)
}

func TestComputeStatsFutureQuitInstant(t *testing.T) {
	now := time.Date(2025, 6, 17, 10, 0, 0, 0, time.UTC)
	p := testProfile(now.Add(24 * time.Hour))

	snap := ComputeStats(now, p, "fr")

	assert.Equal(t, int64(0), snap.ElapsedSeconds)
	assert.Equal(t, int64(0), snap.CigarettesAvoided)
	assert.Equal(t, "0.00", snap.MoneySavedDisplay)
	assert.Equal(t, LifeRegained{}, snap.LifeRegained)
	for _, b := range snap.Badges {
		assert.False(t, b.Achieved)
	}
	for _, m := range snap.Milestones {
		assert.Equal(t, 0, m.Percent)
	}
	// projections come from the daily rate, not from elapsed history
	assert.InDelta(t, 350*365, snap.Projections[0].Amount, 1e-6)
}

func TestQuoteOfDayStableWithinDay(t *testing.T) {
	day := time.Date(2025, 6, 17, 0, 30, 0, 0, time.UTC)
	assert.Equal(t, QuoteOfDay(day, "ar"), QuoteOfDay(day.Add(20*time.Hour), "ar"))
	assert.NotEmpty(t, QuoteOfDay(day, "fr"))
}
