package http

import (
	"encoding/json"
	"net/http"

	apperrors "reserva/pkg/errors"
)

// ErrorResponse is the envelope for all failure payloads. Validation
// failures carry per-field entries; everything else carries a single
// message with no internal detail.
type ErrorResponse struct {
	Success bool                   `json:"success"`
	Error   string                 `json:"error,omitempty"`
	Errors  []apperrors.FieldError `json:"errors,omitempty"`
	Details map[string]any         `json:"details,omitempty"`
}

type PaginatedResponse struct {
	Success    bool  `json:"success"`
	Data       any   `json:"data"`
	TotalCount int64 `json:"total_count"`
	Limit      int   `json:"limit"`
	Offset     int64 `json:"offset"`
}

func WriteJSON(w http.ResponseWriter, statusCode int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(data)
}

func WriteError(w http.ResponseWriter, err error) error {
	appErr := apperrors.AsAppError(err)

	resp := ErrorResponse{Success: false}
	if appErr.Code == apperrors.CodeValidation && len(appErr.Fields) > 0 {
		resp.Errors = appErr.Fields
	} else {
		resp.Error = appErr.Message
		resp.Details = appErr.Details
	}

	return WriteJSON(w, appErr.HTTPStatus, resp)
}

func WritePaginated(w http.ResponseWriter, data any, totalCount int64, limit int, offset int64) error {
	return WriteJSON(w, http.StatusOK, PaginatedResponse{
		Success:    true,
		Data:       data,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	})
}

func WriteNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
