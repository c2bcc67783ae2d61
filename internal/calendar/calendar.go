package calendar

import (
	"context"
	"time"

	"reserva/pkg/model"
)

// Event is the request to place a booking on the business calendar. The
// returned identifier is opaque; it is stored on the booking but never
// treated as authoritative for later conflict checks.
type Event struct {
	Summary       string
	Description   string
	Location      string
	Start         time.Time
	End           time.Time
	AttendeeEmail string
}

// Service is the external calendar collaborator. Both operations may fail
// for reasons outside this process; callers decide whether that failure
// is fatal (it never is, per the availability and booking policies).
type Service interface {
	ListBusy(ctx context.Context, from, to time.Time) ([]model.BusyInterval, error)
	InsertEvent(ctx context.Context, ev Event) (string, error)
}
