package errors

import "errors"

var (
	ErrNotFound  = errors.New("booking not found")
	ErrInvalidID = errors.New("invalid booking ID")

	// ErrSlotTaken is returned when the unique (event_date, event_time)
	// index rejects an insert: another request already booked the slot.
	ErrSlotTaken = errors.New("slot already booked")
)
