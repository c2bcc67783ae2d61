package service

import (
	"testing"
	"time"

	"reserva/pkg/model"
)

var testHours = WorkingHours{StartHour: 9, EndHour: 18}

func testDay(t *testing.T) time.Time {
	t.Helper()
	day, err := time.ParseInLocation("2006-01-02", "2025-08-20", time.UTC)
	if err != nil {
		t.Fatalf("failed to parse test date: %v", err)
	}
	return day
}

func at(t *testing.T, day time.Time, clock string) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation("2006-01-02 15:04", day.Format("2006-01-02")+" "+clock, day.Location())
	if err != nil {
		t.Fatalf("failed to parse clock %q: %v", clock, err)
	}
	return parsed
}

// ────────────────────────────────────────────────
// Tests for CandidateSlots()
// ────────────────────────────────────────────────

func TestCandidateSlots_FullDay(t *testing.T) {
	day := testDay(t)

	slots := CandidateSlots(day, 60, 30, testHours)

	if len(slots) != 18 {
		t.Fatalf("expected 18 slots, got %d", len(slots))
	}
	if !slots[0].Equal(at(t, day, "09:00")) {
		t.Errorf("expected first slot 09:00, got %s", slots[0].Format("15:04"))
	}
	if !slots[len(slots)-1].Equal(at(t, day, "17:30")) {
		t.Errorf("expected last slot 17:30, got %s", slots[len(slots)-1].Format("15:04"))
	}
}

func TestCandidateSlots_OrderedAtFixedInterval(t *testing.T) {
	day := testDay(t)

	slots := CandidateSlots(day, 120, 30, testHours)

	for i := 1; i < len(slots); i++ {
		if got := slots[i].Sub(slots[i-1]); got != 30*time.Minute {
			t.Errorf("slot %d: expected 30m step, got %s", i, got)
		}
	}
}

func TestCandidateSlots_StartsStayInsideWindow(t *testing.T) {
	day := testDay(t)

	slots := CandidateSlots(day, 60, 30, testHours)

	windowStart := at(t, day, "09:00")
	windowEnd := at(t, day, "18:00")
	for _, s := range slots {
		if s.Before(windowStart) || !s.Before(windowEnd) {
			t.Errorf("slot %s outside [09:00, 18:00)", s.Format("15:04"))
		}
	}
}

func TestCandidateSlots_LongDurationTruncatesLateStarts(t *testing.T) {
	day := testDay(t)

	// 8 hours: a 17:30 start would end at 01:30 the next day and is cut
	slots := CandidateSlots(day, 480, 30, testHours)

	last := slots[len(slots)-1]
	if !last.Equal(at(t, day, "16:00")) {
		t.Errorf("expected last slot 16:00, got %s", last.Format("15:04"))
	}
	for _, s := range slots {
		if s.Add(480 * time.Minute).After(day.AddDate(0, 0, 1)) {
			t.Errorf("slot %s runs past midnight", s.Format("15:04"))
		}
	}
}

func TestCandidateSlots_Deterministic(t *testing.T) {
	day := testDay(t)

	a := CandidateSlots(day, 90, 30, testHours)
	b := CandidateSlots(day, 90, 30, testHours)

	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			t.Errorf("slot %d differs: %s vs %s", i, a[i], b[i])
		}
	}
}

func TestCandidateSlots_EmptyWhenNothingFits(t *testing.T) {
	day := testDay(t)

	// 25 hours cannot end within the calendar day from any start
	slots := CandidateSlots(day, 1500, 30, testHours)

	if len(slots) != 0 {
		t.Errorf("expected no slots, got %d", len(slots))
	}
}

// ────────────────────────────────────────────────
// Tests for FilterConflicts()
// ────────────────────────────────────────────────

func TestFilterConflicts_DropsOverlappingSlot(t *testing.T) {
	day := testDay(t)
	candidates := CandidateSlots(day, 60, 30, testHours)

	busy := []model.BusyInterval{
		{Start: at(t, day, "10:00"), End: at(t, day, "10:30")},
	}

	free := FilterConflicts(candidates, 30, busy)

	if len(free) != 17 {
		t.Fatalf("expected 17 slots, got %d", len(free))
	}
	for _, s := range free {
		if s.Equal(at(t, day, "10:00")) {
			t.Error("10:00 slot should have been dropped")
		}
	}
	// the event blocks only the slot it covers; 09:30 stays available
	for _, s := range free {
		if s.Equal(at(t, day, "09:30")) {
			return
		}
	}
	t.Error("09:30 slot unexpectedly dropped")
}

func TestFilterConflicts_TouchingBoundaryIsNotConflict(t *testing.T) {
	day := testDay(t)
	candidates := []time.Time{at(t, day, "10:00")}

	busy := []model.BusyInterval{
		{Start: at(t, day, "09:00"), End: at(t, day, "10:00")},
		{Start: at(t, day, "10:30"), End: at(t, day, "11:00")},
	}

	free := FilterConflicts(candidates, 30, busy)

	if len(free) != 1 {
		t.Errorf("back-to-back events should not conflict, got %d free slots", len(free))
	}
}

func TestFilterConflicts_NoBusyReturnsAllCandidates(t *testing.T) {
	day := testDay(t)
	candidates := CandidateSlots(day, 60, 30, testHours)

	free := FilterConflicts(candidates, 30, nil)

	if len(free) != len(candidates) {
		t.Errorf("expected all %d candidates, got %d", len(candidates), len(free))
	}
}

func TestFilterConflicts_EventCoveringDay(t *testing.T) {
	day := testDay(t)
	candidates := CandidateSlots(day, 60, 30, testHours)

	busy := []model.BusyInterval{
		{Start: at(t, day, "00:00"), End: day.AddDate(0, 0, 1)},
	}

	free := FilterConflicts(candidates, 30, busy)

	if len(free) != 0 {
		t.Errorf("expected no free slots under an all-day event, got %d", len(free))
	}
}
