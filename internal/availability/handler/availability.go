package handler

import (
	"net/http"
	"strconv"

	"reserva/internal/availability/service"
	apperrors "reserva/pkg/errors"
	httputil "reserva/pkg/http"
	"reserva/pkg/logger"
	"reserva/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type AvailabilityResponse struct {
	Success         bool                     `json:"success"`
	Date            string                   `json:"date"`
	AvailableSlots  []model.AvailabilitySlot `json:"available_slots"`
	DurationMinutes int                      `json:"duration_minutes"`
}

type AvailabilityHandler struct {
	service service.AvailabilityService
	log     *logger.Logger
}

func NewAvailabilityHandler(service service.AvailabilityService, log *logger.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{
		service: service,
		log:     log,
	}
}

func (h *AvailabilityHandler) Get(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()

	date := query.Get("date")
	if date == "" {
		if writeErr := httputil.WriteError(w, apperrors.InvalidInput("'date' query parameter is required")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Get", "error", writeErr)
		}
		return
	}

	durationMin := 0
	if s := query.Get("duration"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			if writeErr := httputil.WriteError(w, apperrors.InvalidInput("invalid duration parameter: "+s)); writeErr != nil {
				h.log.Error("failed to write error response", "handler", "Get", "error", writeErr)
			}
			return
		}
		durationMin = v
	}

	slots, effectiveDuration, err := h.service.GetAvailability(r.Context(), date, durationMin)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Get", "error", writeErr)
		}
		return
	}

	resp := AvailabilityResponse{
		Success:         true,
		Date:            date,
		AvailableSlots:  slots,
		DurationMinutes: effectiveDuration,
	}
	if err := httputil.WriteJSON(w, http.StatusOK, resp); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Get", "error", err)
	}
}

func (h *AvailabilityHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/availability", h.Get)
}
