package quit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Oussamaberchi/Quickkt/internal"
)

func cravingAt(ts time.Time, intensity int) internal.CravingLog {
	return internal.CravingLog{ID: ts.Format(time.RFC3339Nano), Timestamp: ts, Intensity: intensity}
}

func TestAverageIntensity(t *testing.T) {
	now := time.Now().UTC()
	logs := []internal.CravingLog{
		cravingAt(now, 2),
		cravingAt(now.Add(time.Minute), 5),
		cravingAt(now.Add(2*time.Minute), 8),
	}
	assert.InDelta(t, 5.0, AverageIntensity(logs), 1e-9)
}

func TestAverageIntensityEmptyLogIsZero(t *testing.T) {
	assert.Equal(t, 0.0, AverageIntensity(nil))
	assert.Equal(t, 0.0, AverageIntensity([]internal.CravingLog{}))
}

func TestWeekdayHistogram(t *testing.T) {
	cal := DefaultCalendar() // UTC, week starts Monday
	// 2025-06-16 is a Monday
	monday := time.Date(2025, 6, 16, 9, 0, 0, 0, time.UTC)
	logs := []internal.CravingLog{
		cravingAt(monday, 5),
		cravingAt(monday.Add(3*time.Hour), 4),
		cravingAt(monday.AddDate(0, 0, 2), 7), // Wednesday
	}

	hist := WeekdayHistogram(logs, cal)
	assert.Len(t, hist, 7)
	assert.Equal(t, "Monday", hist[0].Weekday)
	assert.Equal(t, 2, hist[0].Count)
	assert.Equal(t, "Wednesday", hist[2].Weekday)
	assert.Equal(t, 1, hist[2].Count)
	assert.Equal(t, 0, hist[6].Count)
}

func TestWeekdayHistogramRespectsWeekStart(t *testing.T) {
	cal := Calendar{Location: time.UTC, WeekStart: time.Sunday}
	sunday := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	hist := WeekdayHistogram([]internal.CravingLog{cravingAt(sunday, 5)}, cal)
	assert.Equal(t, "Sunday", hist[0].Weekday)
	assert.Equal(t, 1, hist[0].Count)
}

func TestHeatmapBucketsLocalTime(t *testing.T) {
	loc, err := time.LoadLocation("Africa/Algiers") // UTC+1, no DST
	assert.NoError(t, err)
	cal := Calendar{Location: loc, WeekStart: time.Monday}

	// 23:30 UTC on Monday is 00:30 Tuesday in Algiers
	mondayLateUTC := time.Date(2025, 6, 16, 23, 30, 0, 0, time.UTC)
	rows := Heatmap([]internal.CravingLog{cravingAt(mondayLateUTC, 6)}, cal)

	assert.Len(t, rows, 7)
	assert.Equal(t, "Tuesday", rows[1].Weekday)
	assert.Equal(t, 1, rows[1].Hours[0])
	assert.Equal(t, 0, rows[0].Hours[23])
}

func TestAnalyzeEmptyLogDegradesGracefully(t *testing.T) {
	got := Analyze(nil, DefaultCalendar())
	assert.Equal(t, 0, got.Total)
	assert.Equal(t, 0.0, got.AverageIntensity)
	assert.Len(t, got.ByWeekday, 7)
	assert.Len(t, got.Heatmap, 7)
	for _, wc := range got.ByWeekday {
		assert.Equal(t, 0, wc.Count)
	}
}
