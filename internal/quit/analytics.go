package quit

import (
	"time"

	"github.com/Oussamaberchi/Quickkt/internal"
)

// Calendar fixes how craving timestamps are bucketed. Both the timezone and
// the first day of the week are injected so analytics never depend on the
// display locale or the server's local clock.
type Calendar struct {
	Location  *time.Location
	WeekStart time.Weekday
}

func DefaultCalendar() Calendar {
	return Calendar{Location: time.UTC, WeekStart: time.Monday}
}

type WeekdayCount struct {
	Weekday string `json:"weekday"`
	Count   int    `json:"count"`
}

// HeatmapRow is one weekday row of the hour×day grid, hours 0–23 in the
// calendar's timezone.
type HeatmapRow struct {
	Weekday string  `json:"weekday"`
	Hours   [24]int `json:"hours"`
}

// CravingAnalytics is the aggregate view over the full craving log. All
// fields degrade to zero values on an empty log.
type CravingAnalytics struct {
	Total            int            `json:"total"`
	AverageIntensity float64        `json:"average_intensity"`
	ByWeekday        []WeekdayCount `json:"by_weekday"`
	Heatmap          []HeatmapRow   `json:"heatmap"`
}

// row maps a weekday onto its position given the configured week start.
func (c Calendar) row(d time.Weekday) int {
	return (int(d) - int(c.WeekStart) + 7) % 7
}

func (c Calendar) weekdayAt(row int) time.Weekday {
	return time.Weekday((int(c.WeekStart) + row) % 7)
}

// AverageIntensity is the arithmetic mean; an empty log yields exactly 0.
func AverageIntensity(logs []internal.CravingLog) float64 {
	if len(logs) == 0 {
		return 0
	}
	sum := 0
	for _, l := range logs {
		sum += l.Intensity
	}
	return float64(sum) / float64(len(logs))
}

// WeekdayHistogram counts cravings per calendar weekday, ordered from the
// calendar's week start.
func WeekdayHistogram(logs []internal.CravingLog, cal Calendar) []WeekdayCount {
	counts := [7]int{}
	for _, l := range logs {
		counts[cal.row(l.Timestamp.In(cal.Location).Weekday())]++
	}
	out := make([]WeekdayCount, 7)
	for i := 0; i < 7; i++ {
		out[i] = WeekdayCount{Weekday: cal.weekdayAt(i).String(), Count: counts[i]}
	}
	return out
}

// Heatmap builds the 7×24 weekday/hour grid in the calendar's timezone.
func Heatmap(logs []internal.CravingLog, cal Calendar) []HeatmapRow {
	grid := [7][24]int{}
	for _, l := range logs {
		ts := l.Timestamp.In(cal.Location)
		grid[cal.row(ts.Weekday())][ts.Hour()]++
	}
	out := make([]HeatmapRow, 7)
	for i := 0; i < 7; i++ {
		out[i] = HeatmapRow{Weekday: cal.weekdayAt(i).String(), Hours: grid[i]}
	}
	return out
}

// Analyze runs every aggregation over the log in one pass-friendly call.
func Analyze(logs []internal.CravingLog, cal Calendar) CravingAnalytics {
	return CravingAnalytics{
		Total:            len(logs),
		AverageIntensity: AverageIntensity(logs),
		ByWeekday:        WeekdayHistogram(logs, cal),
		Heatmap:          Heatmap(logs, cal),
	}
}
