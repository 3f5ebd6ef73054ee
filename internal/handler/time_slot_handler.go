package handler

import (
	"net/http"

	"escape-booking/internal/service"

	"github.com/rs/zerolog"
)

// TimeSlotHandler serves the bookable start times.
type TimeSlotHandler struct {
	service service.TimeSlotService
	logger  zerolog.Logger
}

// NewTimeSlotHandler creates a new time slot handler.
func NewTimeSlotHandler(service service.TimeSlotService, logger zerolog.Logger) *TimeSlotHandler {
	return &TimeSlotHandler{
		service: service,
		logger:  logger.With().Str("handler", "time_slot").Logger(),
	}
}

// List handles GET /api/time-slots requests.
func (h *TimeSlotHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	slots, err := h.service.ListActive(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve time slots", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, slots)
}
