package handler

import (
	"net/http"

	"escape-booking/internal/model"
	"escape-booking/internal/service"

	"github.com/rs/zerolog"
)

// QuoteHandler handles pricing-related HTTP requests.
type QuoteHandler struct {
	service service.QuoteService
	logger  zerolog.Logger
}

// NewQuoteHandler creates a new quote handler.
func NewQuoteHandler(service service.QuoteService, logger zerolog.Logger) *QuoteHandler {
	return &QuoteHandler{
		service: service,
		logger:  logger.With().Str("handler", "quote").Logger(),
	}
}

// Quote handles POST /api/quotes requests.
func (h *QuoteHandler) Quote(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req model.QuoteRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	quote, err := h.service.Quote(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, "failed to calculate quote", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, quote)
}

// ValidatePromo handles POST /api/promo-codes/validate requests.
func (h *QuoteHandler) ValidatePromo(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req model.PromoValidationRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	resp, err := h.service.ValidatePromo(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, "failed to validate promo code", h.logger)
		return
	}

	// An ineligible code is a normal outcome, reported in the body.
	writeJSON(w, http.StatusOK, resp)
}

// ListOffers handles GET /api/offers requests.
func (h *QuoteHandler) ListOffers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	query := r.URL.Query()
	offers, err := h.service.ListOffers(r.Context(), query.Get("roomId"), query.Get("date"))
	if err != nil {
		writeServiceError(w, err, "failed to retrieve offers", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, offers)
}
