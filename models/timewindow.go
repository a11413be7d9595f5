package models

import "fmt"

// TimeWindow is a concrete bookable window on a single calendar date.
// Times are minutes from midnight (e.g., 600 for 10:00 AM).
//
// Date may be empty on an in-flight request whose calendar day has not
// resolved yet; such a window describes an intra-day range only and the
// engine fills the date in as soon as it is known. Persisted bookings
// always carry a concrete date.
type TimeWindow struct {
	Date  string `bson:"date" json:"date"` // "YYYY-MM-DD"
	Start int    `bson:"start" json:"start"`
	End   int    `bson:"end" json:"end"`
}

// Overlaps reports whether two windows overlap on the same date.
// Comparison is half-open: adjacent windows (a.End == b.Start) do not overlap.
func (w TimeWindow) Overlaps(o TimeWindow) bool {
	if w.Date != o.Date {
		return false
	}
	return w.Start < o.End && o.Start < w.End
}

// MinutesToClock renders minutes-from-midnight as a 24h clock string ("600" -> "10:00").
func MinutesToClock(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// String renders a window as "2025-03-01 10:00-11:00".
func (w TimeWindow) String() string {
	return fmt.Sprintf("%s %s-%s", w.Date, MinutesToClock(w.Start), MinutesToClock(w.End))
}
