// Package quit holds the derived-metrics and milestone-progression engine.
// Everything in it is a pure function of a clock instant and a read-only
// Profile / craving-log snapshot; mutation lives at the storage and API
// boundaries.
package quit

import "time"

const (
	SecondsPerMinute int64 = 60
	SecondsPerHour   int64 = 3600
	SecondsPerDay    int64 = 86400
)

// Breakdown decomposes a non-negative duration into display units.
type Breakdown struct {
	Days    int64 `json:"days"`
	Hours   int64 `json:"hours"`
	Minutes int64 `json:"minutes"`
	Seconds int64 `json:"seconds"`
}

// ElapsedSeconds returns the whole seconds between the quit instant and now,
// clamped at zero so a quit instant set in the future never shows negative
// time.
func ElapsedSeconds(now, quitInstant time.Time) int64 {
	secs := int64(now.Sub(quitInstant) / time.Second)
	if secs < 0 {
		return 0
	}
	return secs
}

// BreakdownSeconds splits elapsed seconds into days/hours/minutes/seconds
// using floor division. The input must already be non-negative.
func BreakdownSeconds(elapsed int64) Breakdown {
	return Breakdown{
		Days:    elapsed / SecondsPerDay,
		Hours:   (elapsed % SecondsPerDay) / SecondsPerHour,
		Minutes: (elapsed % SecondsPerHour) / SecondsPerMinute,
		Seconds: elapsed % SecondsPerMinute,
	}
}
