package service

import (
	"context"
	"time"

	"reserva/internal/calendar"
	"reserva/pkg/config"
	apperrors "reserva/pkg/errors"
	"reserva/pkg/model"
)

const maxDurationMin = 480

// AvailabilityService computes free slots for a date. The returned int is
// the effective duration used after defaulting, echoed in API responses.
type AvailabilityService interface {
	GetAvailability(ctx context.Context, date string, durationMin int) ([]model.AvailabilitySlot, int, error)
}

type availabilityService struct {
	cal calendar.Service
	cfg *config.Config
}

func NewAvailabilityService(cal calendar.Service, cfg *config.Config) AvailabilityService {
	return &availabilityService{
		cal: cal,
		cfg: cfg,
	}
}

// GetAvailability computes the free slots for a date. A calendar outage
// degrades to "no known conflicts" rather than failing the request: the
// availability feature prefers optimistic answers over hard failure.
func (s *availabilityService) GetAvailability(ctx context.Context, date string, durationMin int) ([]model.AvailabilitySlot, int, error) {
	loc := s.cfg.Location()

	day, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return nil, 0, apperrors.InvalidInput("date must be in YYYY-MM-DD format")
	}

	if durationMin == 0 {
		durationMin = s.cfg.DefaultDurationMin
	}
	if durationMin < 0 || durationMin > maxDurationMin {
		return nil, 0, apperrors.InvalidInput("duration must be between 1 and 480 minutes")
	}

	candidates := CandidateSlots(day, durationMin, s.cfg.SlotIntervalMin, WorkingHours{
		StartHour: s.cfg.WorkingHoursStart,
		EndHour:   s.cfg.WorkingHoursEnd,
	})

	busy := s.fetchBusy(ctx, day)
	free := FilterConflicts(candidates, s.cfg.SlotIntervalMin, busy)

	slots := make([]model.AvailabilitySlot, 0, len(free))
	for _, start := range free {
		slots = append(slots, model.AvailabilitySlot{
			Time:      start.Format("15:04"),
			Available: true,
			DateTime:  start,
		})
	}

	s.cfg.Log.Debug("Availability computed",
		"date", date,
		"duration_min", durationMin,
		"candidates", len(candidates),
		"busy_intervals", len(busy),
		"free_slots", len(slots),
	)
	return slots, durationMin, nil
}

func (s *availabilityService) fetchBusy(ctx context.Context, day time.Time) []model.BusyInterval {
	if s.cal == nil {
		return nil
	}

	startOfDay := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	endOfDay := startOfDay.Add(24 * time.Hour)

	ctx, cancel := context.WithTimeout(ctx, s.cfg.CalendarRequestTimeout)
	defer cancel()

	busy, err := s.cal.ListBusy(ctx, startOfDay, endOfDay)
	if err != nil {
		s.cfg.Log.Warn("Calendar lookup failed, treating day as free",
			"date", day.Format("2006-01-02"),
			"error", err,
		)
		return nil
	}
	return busy
}
