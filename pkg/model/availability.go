package model

import "time"

// AvailabilitySlot is a bookable start-time candidate. Slots are computed
// fresh per request and never persisted; unavailable candidates are
// omitted from responses rather than flagged false.
type AvailabilitySlot struct {
	Time      string    `json:"time"`
	Available bool      `json:"available"`
	DateTime  time.Time `json:"datetime"`
}

// BusyInterval is an externally reported occupied range, half-open
// [Start, End).
type BusyInterval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether [start, end) intersects the interval.
// Touching boundaries do not conflict.
func (b BusyInterval) Overlaps(start, end time.Time) bool {
	return start.Before(b.End) && end.After(b.Start)
}
