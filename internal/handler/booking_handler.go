package handler

import (
	"net/http"
	"strings"

	"escape-booking/internal/model"
	"escape-booking/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// BookingHandler handles booking-related HTTP requests.
type BookingHandler struct {
	service service.BookingService
	logger  zerolog.Logger
}

// NewBookingHandler creates a new booking handler.
func NewBookingHandler(service service.BookingService, logger zerolog.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		logger:  logger.With().Str("handler", "booking").Logger(),
	}
}

// Create handles POST /api/bookings requests.
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req model.BookingRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, "failed to create booking", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, booking)
}

// GetByID handles GET /api/bookings/{id} requests.
func (h *BookingHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	bookingIDStr := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/bookings/"), "/")
	if bookingIDStr == "" {
		writeError(w, http.StatusBadRequest, "booking ID is required", h.logger)
		return
	}

	bookingID, err := uuid.Parse(bookingIDStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid booking ID format", h.logger)
		return
	}

	booking, err := h.service.GetByID(r.Context(), bookingID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve booking", h.logger)
		return
	}

	if booking == nil {
		writeError(w, http.StatusNotFound, "booking not found", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, booking)
}

// BookedSlots handles GET /api/rooms/{id}/booked-slots?date=YYYY-MM-DD requests.
func (h *BookingHandler) BookedSlots(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	roomID := strings.TrimPrefix(r.URL.Path, "/api/rooms/")
	roomID = strings.Trim(strings.TrimSuffix(strings.TrimSuffix(roomID, "/"), "/booked-slots"), "/")
	if roomID == "" || strings.Contains(roomID, "/") {
		writeError(w, http.StatusBadRequest, "room ID is required", h.logger)
		return
	}

	slots, err := h.service.BookedSlots(r.Context(), roomID, r.URL.Query().Get("date"))
	if err != nil {
		writeServiceError(w, err, "failed to retrieve booked slots", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, slots)
}
