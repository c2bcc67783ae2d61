package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	auditservice "reserva/internal/audit/service"
	bookingserrors "reserva/internal/bookings/errors"
	"reserva/internal/bookings/repository"
	bookingvalidator "reserva/internal/bookings/validator"
	"reserva/internal/calendar"
	"reserva/internal/notify"
	"reserva/pkg/config"
	apperrors "reserva/pkg/errors"
	"reserva/pkg/logger"
	"reserva/pkg/middleware"
	"reserva/pkg/model"
	"reserva/pkg/sanitizer"
)

type BookingService interface {
	Create(ctx context.Context, booking *model.Booking) (*CreateResult, error)
	GetByID(ctx context.Context, id string) (*model.Booking, error)
	List(ctx context.Context, limit int, offset int64) ([]*model.Booking, int64, error)
}

type bookingService struct {
	repo      repository.BookingRepository
	validator *bookingvalidator.BookingValidator
	idgen     IDGenerator
	calendar  calendar.Service
	sender    notify.Sender
	audit     auditservice.AuditService
	cfg       *config.Config
	log       *logger.Logger
}

// NewBookingService wires the booking creation pipeline. The calendar
// service may be nil (no calendar configured); the sender and audit
// service must not be.
func NewBookingService(
	repo repository.BookingRepository,
	v *bookingvalidator.BookingValidator,
	idgen IDGenerator,
	cal calendar.Service,
	sender notify.Sender,
	audit auditservice.AuditService,
	cfg *config.Config,
	log *logger.Logger,
) BookingService {
	return &bookingService{
		repo:      repo,
		validator: v,
		idgen:     idgen,
		calendar:  cal,
		sender:    sender,
		audit:     audit,
		cfg:       cfg,
		log:       log,
	}
}

// Create runs the booking pipeline. Only the persist step decides the
// outcome: calendar insertion and notifications are best-effort, and a
// failure there degrades the result without failing the request.
func (s *bookingService) Create(ctx context.Context, booking *model.Booking) (*CreateResult, error) {
	result := &CreateResult{}

	s.sanitize(booking)
	if verrs := s.validator.Validate(booking); verrs != nil {
		s.audit.Record(model.AuditLogEntry{
			CorrelationID: middleware.RequestID(ctx),
			EventKind:     model.AuditValidationFailed,
			Details:       verrs.Error(),
		})
		return nil, apperrors.Validation("booking validation failed", verrs)
	}
	result.record(StepValidate, StepOK, nil)

	booking.ID = s.idgen.NewID()
	booking.Status = model.StatusConfirmed
	if booking.DurationMin == 0 {
		booking.DurationMin = s.cfg.DefaultDurationMin
	}

	s.insertCalendarEvent(ctx, booking, result)

	if err := s.repo.Create(ctx, booking); err != nil {
		if errors.Is(err, bookingserrors.ErrSlotTaken) {
			return nil, apperrors.Conflict("the requested slot is no longer available")
		}
		s.log.Error("Failed to persist booking", "booking_id", booking.ID, "error", err)
		return nil, apperrors.Internal("failed to create booking", err)
	}
	result.record(StepPersist, StepOK, nil)
	result.Booking = booking

	s.notifyParties(ctx, booking, result)
	s.auditCreated(ctx, booking, result)

	return result, nil
}

func (s *bookingService) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, bookingserrors.ErrNotFound):
			return nil, apperrors.NotFound("booking not found")
		case errors.Is(err, bookingserrors.ErrInvalidID):
			return nil, apperrors.InvalidInput("booking id cannot be empty")
		default:
			s.log.Error("Failed to fetch booking", "booking_id", id, "error", err)
			return nil, apperrors.Internal("failed to fetch booking", err)
		}
	}
	return booking, nil
}

func (s *bookingService) List(ctx context.Context, limit int, offset int64) ([]*model.Booking, int64, error) {
	bookings, err := s.repo.FindAll(ctx, limit, offset)
	if err != nil {
		s.log.Error("Failed to list bookings", "error", err)
		return nil, 0, apperrors.Internal("failed to list bookings", err)
	}
	total, err := s.repo.Count(ctx)
	if err != nil {
		s.log.Error("Failed to count bookings", "error", err)
		return nil, 0, apperrors.Internal("failed to list bookings", err)
	}
	return bookings, total, nil
}

func (s *bookingService) sanitize(b *model.Booking) {
	b.ClientName = sanitizer.NormalizeName(b.ClientName)
	b.ClientEmail = sanitizer.NormalizeEmail(b.ClientEmail)
	b.ClientPhone = sanitizer.NormalizePhone(b.ClientPhone)
	b.Location = sanitizer.NormalizeLocation(b.Location)
	b.Message = sanitizer.NormalizeMessage(b.Message)
	b.EventType = sanitizer.TrimAndNormalize(strings.ToLower(b.EventType))
	b.EventDate = sanitizer.TrimAndNormalize(b.EventDate)
	b.EventTime = sanitizer.TrimAndNormalize(b.EventTime)
}

func (s *bookingService) insertCalendarEvent(ctx context.Context, b *model.Booking, result *CreateResult) {
	if s.calendar == nil {
		result.record(StepCalendar, StepSkipped, nil)
		return
	}

	start, err := b.StartsAt(s.cfg.Location())
	if err != nil {
		// validation already proved the formats; treat as degraded, not fatal
		result.record(StepCalendar, StepDegraded, err)
		return
	}
	end := start.Add(time.Duration(b.DurationMin) * time.Minute)

	calCtx, cancel := context.WithTimeout(ctx, s.cfg.CalendarRequestTimeout)
	defer cancel()

	eventID, err := s.calendar.InsertEvent(calCtx, calendar.Event{
		Summary:       fmt.Sprintf("%s - %s", eventTypeLabel(b.EventType), b.ClientName),
		Description:   calendarDescription(b),
		Location:      b.Location,
		Start:         start,
		End:           end,
		AttendeeEmail: b.ClientEmail,
	})
	if err != nil {
		s.log.Warn("Calendar insert failed, continuing without event",
			"booking_id", b.ID,
			"error", err,
		)
		result.record(StepCalendar, StepDegraded, err)
		return
	}

	b.CalendarEventID = &eventID
	result.record(StepCalendar, StepOK, nil)
}

func (s *bookingService) notifyParties(ctx context.Context, b *model.Booking, result *CreateResult) {
	status := StepOK
	var firstErr error

	if err := s.sendEmail(ctx, clientConfirmation(b)); err != nil {
		s.log.Warn("Client confirmation email failed", "booking_id", b.ID, "error", err)
		status, firstErr = StepDegraded, err
	}

	if s.cfg.BusinessEmail != "" {
		if err := s.sendEmail(ctx, businessNotification(b, s.cfg.BusinessEmail)); err != nil {
			s.log.Warn("Business notification email failed", "booking_id", b.ID, "error", err)
			if firstErr == nil {
				status, firstErr = StepDegraded, err
			}
		}
	}

	result.record(StepNotify, status, firstErr)
}

func (s *bookingService) sendEmail(ctx context.Context, msg notify.EmailMessage) error {
	emailCtx, cancel := context.WithTimeout(ctx, s.cfg.EmailRequestTimeout)
	defer cancel()
	return s.sender.Send(emailCtx, msg)
}

func (s *bookingService) auditCreated(ctx context.Context, b *model.Booking, result *CreateResult) {
	details := fmt.Sprintf("booking %s for %s <%s> on %s %s", b.ID, b.ClientName, b.ClientEmail, b.EventDate, b.EventTime)
	if result.Degraded() {
		var degraded []string
		for _, step := range result.Steps {
			if step.Status == StepDegraded {
				degraded = append(degraded, step.Name)
			}
		}
		details += " (degraded: " + strings.Join(degraded, ", ") + ")"
	}

	s.audit.Record(model.AuditLogEntry{
		CorrelationID: middleware.RequestID(ctx),
		EventKind:     model.AuditBookingCreated,
		Details:       details,
	})
	result.record(StepAudit, StepOK, nil)
}
