package handler

import (
	"encoding/json"
	"net/http"

	"reserva/internal/bookings/service"
	apperrors "reserva/pkg/errors"
	httputil "reserva/pkg/http"
	"reserva/pkg/logger"
	"reserva/pkg/model"

	"github.com/julienschmidt/httprouter"
)

// CreateBookingResponse reflects only the persistence outcome: a degraded
// calendar or email step still returns 201 with a null calendarEventId.
type CreateBookingResponse struct {
	Success         bool    `json:"success"`
	BookingID       string  `json:"booking_id"`
	CalendarEventID *string `json:"calendar_event_id"`
	Message         string  `json:"message"`
}

type BookingResponse struct {
	Success bool           `json:"success"`
	Booking *model.Booking `json:"booking"`
}

type BookingHandler struct {
	service service.BookingService
	log     *logger.Logger
}

func NewBookingHandler(service service.BookingService, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log,
	}
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var booking model.Booking
	if err := json.NewDecoder(r.Body).Decode(&booking); err != nil {
		if writeErr := httputil.WriteError(w, apperrors.InvalidInput("invalid request body")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "error", writeErr)
		}
		return
	}
	// client-supplied identifiers and statuses are never trusted
	booking.ID = ""
	booking.Status = ""
	booking.CalendarEventID = nil

	result, err := h.service.Create(r.Context(), &booking)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "error", writeErr)
		}
		return
	}

	resp := CreateBookingResponse{
		Success:         true,
		BookingID:       result.Booking.ID,
		CalendarEventID: result.Booking.CalendarEventID,
		Message:         "booking confirmed",
	}
	if err := httputil.WriteJSON(w, http.StatusCreated, resp); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Create", "error", err)
	}
}

func (h *BookingHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	booking, err := h.service.GetByID(r.Context(), ps.ByName("id"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetByID", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteJSON(w, http.StatusOK, BookingResponse{Success: true, Booking: booking}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "GetByID", "error", err)
	}
}

func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	limit, offset, err := httputil.ExtractLimitOffset(r)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "List", "error", writeErr)
		}
		return
	}

	bookings, total, err := h.service.List(r.Context(), limit, offset)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "List", "error", writeErr)
		}
		return
	}

	if err := httputil.WritePaginated(w, bookings, total, limit, offset); err != nil {
		h.log.Error("failed to write JSON response", "handler", "List", "error", err)
	}
}

func (h *BookingHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/bookings", h.Create)
	router.GET("/api/v1/bookings", h.List)
	router.GET("/api/v1/bookings/:id", h.GetByID)
}
