package service

import "reserva/pkg/model"

// Step names for the booking creation pipeline, in execution order.
const (
	StepValidate = "validate"
	StepCalendar = "calendar_insert"
	StepPersist  = "persist"
	StepNotify   = "notify"
	StepAudit    = "audit"
)

type StepStatus string

const (
	// StepOK means the step completed.
	StepOK StepStatus = "ok"
	// StepDegraded means a best-effort step failed; the pipeline continues
	// and the failure is visible only in logs and the audit trail.
	StepDegraded StepStatus = "degraded"
	// StepSkipped means the step had no work (collaborator not configured).
	StepSkipped StepStatus = "skipped"
)

type StepResult struct {
	Name   string
	Status StepStatus
	Err    error
}

// CreateResult reports a successful booking creation. Degraded steps are
// recorded here for the audit trail but never change the HTTP outcome.
type CreateResult struct {
	Booking *model.Booking
	Steps   []StepResult
}

func (r *CreateResult) record(name string, status StepStatus, err error) {
	r.Steps = append(r.Steps, StepResult{Name: name, Status: status, Err: err})
}

// Degraded reports whether any best-effort step failed.
func (r *CreateResult) Degraded() bool {
	for _, s := range r.Steps {
		if s.Status == StepDegraded {
			return true
		}
	}
	return false
}
