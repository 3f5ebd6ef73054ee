package pricing

import (
	"context"

	"escape-booking/internal/model"
)

// QuoteEngine calculates booking quotes.
type QuoteEngine interface {
	// Calculate resolves the base price, applies the best offer and the promo
	// code (in that order, each against the running total) and returns the quote.
	// Store failures degrade to fewer discounts; only a player count below one
	// is reported as an error.
	Calculate(ctx context.Context, req model.BookingQuoteRequest) (*model.BookingQuote, error)
}

// PromoValidator checks promo codes against their eligibility rules.
type PromoValidator interface {
	// Validate runs the eligibility checks in order and reports the first
	// failure. It never returns an error; lookup failures surface as an
	// invalid result.
	Validate(ctx context.Context, code string, pctx PromoContext) PromoValidation
}

// OfferSelector finds the offers applicable to a booking.
type OfferSelector interface {
	// ActiveOffersForRoom returns the active offers that apply to the room on
	// the given date (YYYY-MM-DD), ordered by ID.
	ActiveOffersForRoom(ctx context.Context, roomID, date string) []model.Offer

	// AllActiveOffers returns every active offer, ordered by ID.
	AllActiveOffers(ctx context.Context) []model.Offer

	// RoomHasActiveOffer reports whether any active offer targets the room,
	// ignoring date restrictions.
	RoomHasActiveOffer(ctx context.Context, roomID string) bool
}

// PromoContext is the booking context a promo code is checked against.
type PromoContext struct {
	RoomID      string
	PlayerCount int
	Date        *string
}

// LookupStatus tags the outcome of a promo code lookup.
type LookupStatus int

const (
	// LookupSkipped means no lookup was attempted.
	LookupSkipped LookupStatus = iota
	LookupFound
	LookupNotFound
	LookupStoreError
)

func (s LookupStatus) String() string {
	switch s {
	case LookupFound:
		return "found"
	case LookupNotFound:
		return "not_found"
	case LookupStoreError:
		return "store_error"
	default:
		return "skipped"
	}
}

// PromoValidation is the outcome of a promo code check.
type PromoValidation struct {
	Valid bool
	// Error is the user-facing reason when Valid is false.
	Error string
	Promo *model.PromoCode
	// Lookup distinguishes a missing code from an unreachable store; both
	// produce the same user-facing message.
	Lookup LookupStatus
}

// Response converts the validation to its API representation.
func (v PromoValidation) Response() *model.PromoValidationResponse {
	resp := &model.PromoValidationResponse{
		Valid: v.Valid,
		Promo: v.Promo,
	}
	if !v.Valid {
		msg := v.Error
		resp.Error = &msg
	}
	return resp
}
