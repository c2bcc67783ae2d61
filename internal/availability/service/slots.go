package service

import (
	"time"

	"reserva/pkg/model"
)

// WorkingHours bounds the start times of a business day: slots begin no
// earlier than StartHour and strictly before EndHour.
type WorkingHours struct {
	StartHour int
	EndHour   int
}

// CandidateSlots generates the ordered start-time candidates for a day.
// Starts fall within [StartHour, EndHour); a candidate survives as long
// as the appointment still ends within the same calendar day, so a late
// start may run past EndHour. Pure: identical inputs always yield
// identical output. The sequence is empty when the duration fits no
// candidate; that is not an error.
func CandidateSlots(day time.Time, durationMin, intervalMin int, wh WorkingHours) []time.Time {
	loc := day.Location()
	windowStart := time.Date(day.Year(), day.Month(), day.Day(), wh.StartHour, 0, 0, 0, loc)
	windowEnd := time.Date(day.Year(), day.Month(), day.Day(), wh.EndHour, 0, 0, 0, loc)
	midnight := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc).Add(24 * time.Hour)

	duration := time.Duration(durationMin) * time.Minute
	interval := time.Duration(intervalMin) * time.Minute

	var slots []time.Time
	for t := windowStart; t.Before(windowEnd); t = t.Add(interval) {
		if t.Add(duration).After(midnight) {
			continue
		}
		slots = append(slots, t)
	}
	return slots
}

// FilterConflicts drops candidates whose granularity window
// [start, start+interval) overlaps any busy interval. The window is the
// slot step, not the appointment duration: an event blocks exactly the
// slots it covers. Touching boundaries do not conflict.
func FilterConflicts(candidates []time.Time, intervalMin int, busy []model.BusyInterval) []time.Time {
	if len(busy) == 0 {
		return candidates
	}

	window := time.Duration(intervalMin) * time.Minute
	free := make([]time.Time, 0, len(candidates))

	for _, start := range candidates {
		end := start.Add(window)
		conflicted := false
		for _, interval := range busy {
			if interval.Overlaps(start, end) {
				conflicted = true
				break
			}
		}
		if !conflicted {
			free = append(free, start)
		}
	}
	return free
}
