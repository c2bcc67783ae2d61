package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"reserva/internal/bookings/service"
	apperrors "reserva/pkg/errors"
	"reserva/pkg/logger"
	"reserva/pkg/model"

	"github.com/julienschmidt/httprouter"
)

// Mock service for testing
type mockBookingService struct {
	createFunc  func(ctx context.Context, booking *model.Booking) (*service.CreateResult, error)
	getByIDFunc func(ctx context.Context, id string) (*model.Booking, error)
	listFunc    func(ctx context.Context, limit int, offset int64) ([]*model.Booking, int64, error)
}

func (m *mockBookingService) Create(ctx context.Context, booking *model.Booking) (*service.CreateResult, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, booking)
	}
	booking.ID = "BK-test-abc123"
	return &service.CreateResult{Booking: booking}, nil
}

func (m *mockBookingService) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, apperrors.NotFound("booking")
}

func (m *mockBookingService) List(ctx context.Context, limit int, offset int64) ([]*model.Booking, int64, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, limit, offset)
	}
	return []*model.Booking{}, 0, nil
}

func newTestRouter(svc service.BookingService) *httprouter.Router {
	h := NewBookingHandler(svc, logger.New(logger.Config{Level: "error", Service: "test"}))
	router := httprouter.New()
	h.RegisterRoutes(router)
	return router
}

const validBody = `{
	"clientName": "Dana Levy",
	"clientEmail": "dana@example.com",
	"clientPhone": "+12125550123",
	"eventDate": "2025-08-20",
	"eventTime": "10:00",
	"eventType": "wedding",
	"location": "Herzliya Marina",
	"duration": 60
}`

func TestCreate_Returns201(t *testing.T) {
	router := newTestRouter(&mockBookingService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(validBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp CreateBookingResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Success || resp.BookingID != "BK-test-abc123" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestCreate_DegradedCalendarStillReturns201(t *testing.T) {
	svc := &mockBookingService{
		createFunc: func(ctx context.Context, booking *model.Booking) (*service.CreateResult, error) {
			booking.ID = "BK-test-abc123"
			// calendar insert failed upstream: no event id on the booking
			return &service.CreateResult{Booking: booking}, nil
		},
	}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(validBody))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &raw); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if string(raw["calendar_event_id"]) != "null" {
		t.Errorf("expected explicit null calendar_event_id, got %s", raw["calendar_event_id"])
	}
}

func TestCreate_ValidationErrorReturns400(t *testing.T) {
	svc := &mockBookingService{
		createFunc: func(ctx context.Context, booking *model.Booking) (*service.CreateResult, error) {
			return nil, apperrors.Validation("booking validation failed", []apperrors.FieldError{
				{Param: "eventType", Msg: "eventType must be one of: wedding corporate birthday anniversary other"},
			})
		},
	}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(`{"eventType":"brunch"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp struct {
		Success bool                   `json:"success"`
		Errors  []apperrors.FieldError `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Success {
		t.Error("expected success=false")
	}
	if len(resp.Errors) != 1 || resp.Errors[0].Param != "eventType" {
		t.Errorf("expected an eventType field error, got %+v", resp.Errors)
	}
}

func TestCreate_MalformedBodyReturns400(t *testing.T) {
	router := newTestRouter(&mockBookingService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestCreate_SlotTakenReturns409(t *testing.T) {
	svc := &mockBookingService{
		createFunc: func(ctx context.Context, booking *model.Booking) (*service.CreateResult, error) {
			return nil, apperrors.Conflict("the requested slot is no longer available")
		},
	}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(validBody))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", rec.Code)
	}
}

func TestCreate_IgnoresClientSuppliedID(t *testing.T) {
	var received *model.Booking
	svc := &mockBookingService{
		createFunc: func(ctx context.Context, booking *model.Booking) (*service.CreateResult, error) {
			received = booking
			booking.ID = "BK-test-abc123"
			return &service.CreateResult{Booking: booking}, nil
		},
	}
	router := newTestRouter(svc)

	body := `{"id":"BK-forged","status":"cancelled","calendarEventId":"evil","clientName":"Dana Levy","clientEmail":"dana@example.com","clientPhone":"+12125550123","eventDate":"2025-08-20","eventTime":"10:00","eventType":"wedding","location":"Herzliya Marina"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if received.Status != "" || received.CalendarEventID != nil {
		t.Errorf("client-supplied status/calendar id must be cleared, got %+v", received)
	}
}

func TestGetByID_NotFoundReturns404(t *testing.T) {
	router := newTestRouter(&mockBookingService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/BK-missing", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestList_ReturnsPaginatedEnvelope(t *testing.T) {
	svc := &mockBookingService{
		listFunc: func(ctx context.Context, limit int, offset int64) ([]*model.Booking, int64, error) {
			return []*model.Booking{{ID: "BK-1"}, {ID: "BK-2"}}, 2, nil
		},
	}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings?limit=10&offset=0", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Success    bool             `json:"success"`
		Data       []*model.Booking `json:"data"`
		TotalCount int64            `json:"total_count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Success || resp.TotalCount != 2 || len(resp.Data) != 2 {
		t.Errorf("unexpected response: %+v", resp)
	}
}
