package validator

import (
	"errors"
	"fmt"
	"strings"

	apperrors "reserva/pkg/errors"
	"reserva/pkg/logger"
	"reserva/pkg/model"

	"github.com/go-playground/validator/v10"
)

type ValidationErrors []apperrors.FieldError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, fmt.Sprintf("%s: %s", err.Param, err.Msg))
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

type BookingValidator struct {
	validate *validator.Validate
	log      *logger.Logger
}

func NewBookingValidator(log *logger.Logger) *BookingValidator {
	v := validator.New()

	return &BookingValidator{
		validate: v,
		log:      log,
	}
}

// Validate runs field-level checks and returns the full list of
// per-field errors, never just the first one.
func (v *BookingValidator) Validate(booking *model.Booking) ValidationErrors {
	if err := v.validate.Struct(booking); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translate(validationErrs)
		}
		return ValidationErrors{{Param: "request", Msg: err.Error()}}
	}
	return nil
}

var fieldParams = map[string]string{
	"ClientName":  "clientName",
	"ClientEmail": "clientEmail",
	"ClientPhone": "clientPhone",
	"EventDate":   "eventDate",
	"EventTime":   "eventTime",
	"EventType":   "eventType",
	"Location":    "location",
	"Message":     "message",
	"DurationMin": "duration",
	"Status":      "status",
}

func (v *BookingValidator) translate(errs validator.ValidationErrors) ValidationErrors {
	var out ValidationErrors

	for _, err := range errs {
		param := fieldParams[err.Field()]
		if param == "" {
			param = err.Field()
		}

		var message string
		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", param)
		case "min":
			message = fmt.Sprintf("%s must be at least %s", param, err.Param())
		case "max":
			message = fmt.Sprintf("%s must be at most %s", param, err.Param())
		case "email":
			message = fmt.Sprintf("%s must be a valid email address", param)
		case "datetime":
			switch err.Param() {
			case "2006-01-02":
				message = fmt.Sprintf("%s must be a date in YYYY-MM-DD format", param)
			case "15:04":
				message = fmt.Sprintf("%s must be a time in HH:MM format", param)
			default:
				message = fmt.Sprintf("%s has an invalid format", param)
			}
		case "oneof":
			message = fmt.Sprintf("%s must be one of: %s", param, err.Param())
		default:
			message = fmt.Sprintf("%s is invalid", param)
		}

		out = append(out, apperrors.FieldError{Param: param, Msg: message})
	}

	return out
}
