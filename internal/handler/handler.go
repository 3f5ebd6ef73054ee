package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"escape-booking/internal/model"

	"github.com/rs/zerolog"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, ErrorResponse{Error: message})
}

// writeServiceError maps a service error to a response. Domain errors carry
// their own message; anything else is reported with fallback.
func writeServiceError(w http.ResponseWriter, err error, fallback string, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if !errors.As(err, &domainErr) {
		logger.Error().Err(err).Int("status", http.StatusInternalServerError).Msg("handler error")
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: fallback, Code: model.ErrCodeInternalError})
		return
	}

	status := statusForCode(domainErr.Code)
	event := logger.Warn()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.Str("code", domainErr.Code).Str("error", domainErr.Message).Int("status", status).Msg("handler error")
	writeJSON(w, status, ErrorResponse{Error: domainErr.Message, Code: domainErr.Code})
}

func statusForCode(code string) int {
	switch code {
	case model.ErrCodeInvalidJSON, model.ErrCodeInvalidRequest, model.ErrCodeInvalidPlayerCount, model.ErrCodeInvalidTimeSlot:
		return http.StatusBadRequest
	case model.ErrCodeRoomNotFound:
		return http.StatusNotFound
	case model.ErrCodeSlotTaken, model.ErrCodeRoomInactive:
		return http.StatusConflict
	case model.ErrCodeUnauthorised:
		return http.StatusUnauthorized
	case model.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// decodeJSON decodes the request body into dst and writes a 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any, logger zerolog.Logger) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.Warn().Err(err).Msg("invalid request body")
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Code: model.ErrCodeInvalidJSON})
		return false
	}
	return true
}

// parsePagination reads limit and offset query parameters.
func parsePagination(r *http.Request) (limit, offset int, err error) {
	limit = 10 // default
	if s := r.URL.Query().Get("limit"); s != "" {
		if limit, err = strconv.Atoi(s); err != nil || limit < 1 {
			return 0, 0, errors.New("invalid limit parameter")
		}
	}

	if s := r.URL.Query().Get("offset"); s != "" {
		if offset, err = strconv.Atoi(s); err != nil || offset < 0 {
			return 0, 0, errors.New("invalid offset parameter")
		}
	}

	return limit, offset, nil
}
