package errors

import (
	"errors"
	"net/http"
	"testing"
)

func TestValidationCarriesFieldErrors(t *testing.T) {
	err := Validation("Booking validation failed", []FieldError{
		{Param: "eventType", Msg: "eventType must be one of the supported categories"},
		{Param: "clientEmail", Msg: "clientEmail must be a valid email address"},
	})

	if err.HTTPStatus != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", err.HTTPStatus)
	}
	if len(err.Fields) != 2 {
		t.Fatalf("expected 2 field errors, got %d", len(err.Fields))
	}
	if err.Fields[0].Param != "eventType" {
		t.Errorf("expected first field 'eventType', got %q", err.Fields[0].Param)
	}
}

func TestInternalHidesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Internal("Failed to save booking", cause)

	if !errors.Is(err, cause) {
		t.Error("expected wrapped cause to be reachable via errors.Is")
	}

	payload := string(err.ToJSON())
	if payload == "" {
		t.Fatal("expected JSON payload")
	}
	for _, leaked := range []string{"connection refused"} {
		if containsSubstring(payload, leaked) {
			t.Errorf("internal detail %q leaked into client payload %q", leaked, payload)
		}
	}
}

func TestAsAppErrorWrapsUnknown(t *testing.T) {
	plain := errors.New("boom")
	appErr := AsAppError(plain)

	if appErr.Code != CodeInternal {
		t.Errorf("expected code %s, got %s", CodeInternal, appErr.Code)
	}
	if !errors.Is(appErr, plain) {
		t.Error("expected original error preserved")
	}
}

func TestAsAppErrorPassesThrough(t *testing.T) {
	original := Conflict("slot already booked")
	got := AsAppError(original)
	if got != original {
		t.Error("expected identical AppError returned")
	}
	if got.HTTPStatus != http.StatusConflict {
		t.Errorf("expected 409, got %d", got.HTTPStatus)
	}
}

func containsSubstring(s, sub string) bool {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}
