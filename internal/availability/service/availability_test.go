package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"reserva/internal/calendar"
	"reserva/pkg/config"
	apperrors "reserva/pkg/errors"
	"reserva/pkg/logger"
	"reserva/pkg/model"
)

// ────────────────────────────────────────────────
// Mock calendar for testing
// ────────────────────────────────────────────────

type mockCalendarService struct {
	listBusyFunc    func(ctx context.Context, from, to time.Time) ([]model.BusyInterval, error)
	insertEventFunc func(ctx context.Context, ev calendar.Event) (string, error)
}

func (m *mockCalendarService) ListBusy(ctx context.Context, from, to time.Time) ([]model.BusyInterval, error) {
	if m.listBusyFunc != nil {
		return m.listBusyFunc(ctx, from, to)
	}
	return nil, nil
}

func (m *mockCalendarService) InsertEvent(ctx context.Context, ev calendar.Event) (string, error) {
	if m.insertEventFunc != nil {
		return m.insertEventFunc(ctx, ev)
	}
	return "evt-1", nil
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		WorkingHoursStart:      9,
		WorkingHoursEnd:        18,
		SlotIntervalMin:        30,
		DefaultDurationMin:     120,
		BusinessTimeZone:       "UTC",
		CalendarRequestTimeout: time.Second,
		Log: logger.New(logger.Config{
			Level:   "error",
			Service: "test",
		}),
	}
}

func TestGetAvailability_FullDay(t *testing.T) {
	svc := NewAvailabilityService(&mockCalendarService{}, testConfig(t))

	slots, duration, err := svc.GetAvailability(context.Background(), "2025-08-20", 60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if duration != 60 {
		t.Errorf("expected effective duration 60, got %d", duration)
	}
	if len(slots) != 18 {
		t.Fatalf("expected 18 slots, got %d", len(slots))
	}
	if slots[0].Time != "09:00" || slots[len(slots)-1].Time != "17:30" {
		t.Errorf("expected slots 09:00..17:30, got %s..%s", slots[0].Time, slots[len(slots)-1].Time)
	}
	for _, s := range slots {
		if !s.Available {
			t.Errorf("slot %s returned as unavailable", s.Time)
		}
	}
}

func TestGetAvailability_DropsBusySlot(t *testing.T) {
	cal := &mockCalendarService{
		listBusyFunc: func(ctx context.Context, from, to time.Time) ([]model.BusyInterval, error) {
			return []model.BusyInterval{
				{
					Start: time.Date(2025, 8, 20, 10, 0, 0, 0, time.UTC),
					End:   time.Date(2025, 8, 20, 10, 30, 0, 0, time.UTC),
				},
			}, nil
		},
	}
	svc := NewAvailabilityService(cal, testConfig(t))

	slots, _, err := svc.GetAvailability(context.Background(), "2025-08-20", 60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 17 {
		t.Fatalf("expected 17 slots, got %d", len(slots))
	}
	for _, s := range slots {
		if s.Time == "10:00" {
			t.Error("10:00 slot should have been dropped")
		}
	}
}

func TestGetAvailability_CalendarFailureTreatsDayAsFree(t *testing.T) {
	cal := &mockCalendarService{
		listBusyFunc: func(ctx context.Context, from, to time.Time) ([]model.BusyInterval, error) {
			return nil, fmt.Errorf("calendar unreachable")
		},
	}
	svc := NewAvailabilityService(cal, testConfig(t))

	slots, _, err := svc.GetAvailability(context.Background(), "2025-08-20", 60)
	if err != nil {
		t.Fatalf("calendar outage must not fail the request: %v", err)
	}
	if len(slots) != 18 {
		t.Errorf("expected the full 18 slots on calendar outage, got %d", len(slots))
	}
}

func TestGetAvailability_NilCalendar(t *testing.T) {
	svc := NewAvailabilityService(nil, testConfig(t))

	slots, _, err := svc.GetAvailability(context.Background(), "2025-08-20", 60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 18 {
		t.Errorf("expected 18 slots without a calendar, got %d", len(slots))
	}
}

func TestGetAvailability_DefaultsDuration(t *testing.T) {
	svc := NewAvailabilityService(&mockCalendarService{}, testConfig(t))

	_, duration, err := svc.GetAvailability(context.Background(), "2025-08-20", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if duration != 120 {
		t.Errorf("expected default duration 120, got %d", duration)
	}
}

func TestGetAvailability_RejectsBadInput(t *testing.T) {
	svc := NewAvailabilityService(&mockCalendarService{}, testConfig(t))

	cases := []struct {
		name     string
		date     string
		duration int
	}{
		{"malformed date", "20-08-2025", 60},
		{"empty date", "", 60},
		{"negative duration", "2025-08-20", -30},
		{"excessive duration", "2025-08-20", 9999},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := svc.GetAvailability(context.Background(), tc.date, tc.duration)
			if err == nil {
				t.Fatal("expected error")
			}
			appErr := apperrors.AsAppError(err)
			if appErr == nil || appErr.HTTPStatus != 400 {
				t.Errorf("expected a 400 app error, got %v", err)
			}
		})
	}
}
