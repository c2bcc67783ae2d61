package model

import "time"

// Audit event kinds.
const (
	AuditBookingCreated   = "booking_created"
	AuditValidationFailed = "validation_failed"
)

// AuditLogEntry is an append-only operator record. There is no update or
// delete path; entries correlate a request with its outcome.
type AuditLogEntry struct {
	ID            string    `json:"id,omitempty" bson:"_id,omitempty"`
	CorrelationID string    `json:"correlation_id" bson:"correlation_id"`
	EventKind     string    `json:"event_kind" bson:"event_kind"`
	Details       string    `json:"details" bson:"details"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
}
