package calendar

import (
	"context"
	"fmt"
	"time"

	"reserva/pkg/logger"
	"reserva/pkg/model"

	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// GoogleService talks to the Google Calendar API for a single business
// calendar. The client is constructed once at startup and shared across
// requests.
type GoogleService struct {
	svc        *gcal.Service
	calendarID string
	timeZone   string
	log        *logger.Logger
}

func NewGoogleService(ctx context.Context, calendarID, credentialsFile, timeZone string, log *logger.Logger) (*GoogleService, error) {
	if calendarID == "" {
		return nil, fmt.Errorf("calendar ID cannot be empty")
	}

	opts := []option.ClientOption{option.WithScopes(gcal.CalendarScope)}
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	svc, err := gcal.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar client: %w", err)
	}

	return &GoogleService{
		svc:        svc,
		calendarID: calendarID,
		timeZone:   timeZone,
		log:        log,
	}, nil
}

func (g *GoogleService) ListBusy(ctx context.Context, from, to time.Time) ([]model.BusyInterval, error) {
	events, err := g.svc.Events.List(g.calendarID).
		TimeMin(from.Format(time.RFC3339)).
		TimeMax(to.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}

	busy := make([]model.BusyInterval, 0, len(events.Items))
	for _, item := range events.Items {
		if item.Status == "cancelled" {
			continue
		}
		start, end, ok := eventInterval(item)
		if !ok {
			g.log.Warn("Skipping calendar event with unparseable times", "event_id", item.Id)
			continue
		}
		busy = append(busy, model.BusyInterval{Start: start, End: end})
	}
	return busy, nil
}

func (g *GoogleService) InsertEvent(ctx context.Context, ev Event) (string, error) {
	event := &gcal.Event{
		Summary:     ev.Summary,
		Description: ev.Description,
		Location:    ev.Location,
		Start: &gcal.EventDateTime{
			DateTime: ev.Start.Format(time.RFC3339),
			TimeZone: g.timeZone,
		},
		End: &gcal.EventDateTime{
			DateTime: ev.End.Format(time.RFC3339),
			TimeZone: g.timeZone,
		},
	}
	if ev.AttendeeEmail != "" {
		event.Attendees = []*gcal.EventAttendee{{Email: ev.AttendeeEmail}}
	}

	created, err := g.svc.Events.Insert(g.calendarID, event).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to insert calendar event: %w", err)
	}
	return created.Id, nil
}

// eventInterval extracts the occupied range from a calendar event,
// handling both timed and all-day entries.
func eventInterval(item *gcal.Event) (time.Time, time.Time, bool) {
	if item.Start == nil || item.End == nil {
		return time.Time{}, time.Time{}, false
	}

	if item.Start.DateTime != "" && item.End.DateTime != "" {
		start, errS := time.Parse(time.RFC3339, item.Start.DateTime)
		end, errE := time.Parse(time.RFC3339, item.End.DateTime)
		if errS != nil || errE != nil {
			return time.Time{}, time.Time{}, false
		}
		return start, end, true
	}

	// All-day events block the whole day.
	if item.Start.Date != "" && item.End.Date != "" {
		start, errS := time.Parse("2006-01-02", item.Start.Date)
		end, errE := time.Parse("2006-01-02", item.End.Date)
		if errS != nil || errE != nil {
			return time.Time{}, time.Time{}, false
		}
		return start, end, true
	}

	return time.Time{}, time.Time{}, false
}
