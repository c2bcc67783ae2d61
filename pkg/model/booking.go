package model

import (
	"time"
)

// Event categories accepted by the booking API.
const (
	EventTypeWedding     = "wedding"
	EventTypeCorporate   = "corporate"
	EventTypeBirthday    = "birthday"
	EventTypeAnniversary = "anniversary"
	EventTypeOther       = "other"
)

const (
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// Booking is the durable record of an accepted appointment. The ID is a
// generated human-readable reference and doubles as the Mongo _id. Once
// persisted the record is immutable apart from status transitions handled
// by administrative flows.
type Booking struct {
	ID              string    `json:"id,omitempty" bson:"_id,omitempty"`
	ClientName      string    `json:"clientName" bson:"client_name" validate:"required,min=2,max=100"`
	ClientEmail     string    `json:"clientEmail" bson:"client_email" validate:"required,email"`
	ClientPhone     string    `json:"clientPhone" bson:"client_phone" validate:"required,min=7,max=20"`
	EventDate       string    `json:"eventDate" bson:"event_date" validate:"required,datetime=2006-01-02"`
	EventTime       string    `json:"eventTime" bson:"event_time" validate:"required,datetime=15:04"`
	EventType       string    `json:"eventType" bson:"event_type" validate:"required,oneof=wedding corporate birthday anniversary other"`
	Location        string    `json:"location" bson:"location" validate:"required,min=2,max=200"`
	Message         string    `json:"message,omitempty" bson:"message,omitempty" validate:"omitempty,max=2000"`
	DurationMin     int       `json:"duration,omitempty" bson:"duration_min" validate:"omitempty,min=30,max=480"`
	Status          string    `json:"status,omitempty" bson:"status" validate:"omitempty,oneof=confirmed cancelled"`
	CalendarEventID *string   `json:"calendarEventId,omitempty" bson:"calendar_event_id,omitempty"`
	CreatedAt       time.Time `json:"created_at,omitempty" bson:"created_at"`
	UpdatedAt       time.Time `json:"updated_at,omitempty" bson:"updated_at"`
}

// StartsAt resolves the booking's date and time into an instant in loc.
func (b *Booking) StartsAt(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", b.EventDate+" "+b.EventTime, loc)
}
