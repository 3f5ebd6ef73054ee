package handler

import (
	"net/http"
	"strings"

	"escape-booking/internal/service"

	"github.com/rs/zerolog"
)

// RoomHandler handles room-related HTTP requests.
type RoomHandler struct {
	service service.RoomService
	logger  zerolog.Logger
}

// NewRoomHandler creates a new room handler.
func NewRoomHandler(service service.RoomService, logger zerolog.Logger) *RoomHandler {
	return &RoomHandler{
		service: service,
		logger:  logger.With().Str("handler", "room").Logger(),
	}
}

// GetAll handles GET /api/rooms requests with pagination.
func (h *RoomHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	limit, offset, err := parsePagination(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	rooms, err := h.service.GetAll(r.Context(), limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve rooms", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, rooms)
}

// GetByID handles GET /api/rooms/{id} requests. The id may also be a slug.
func (h *RoomHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	roomID := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/rooms/"), "/")
	if roomID == "" {
		writeError(w, http.StatusBadRequest, "room ID is required", h.logger)
		return
	}

	room, err := h.service.GetByID(r.Context(), roomID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve room", h.logger)
		return
	}

	if room == nil {
		writeError(w, http.StatusNotFound, "room not found", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, room)
}
