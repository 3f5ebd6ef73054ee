package service

import (
	"context"

	"escape-booking/internal/model"

	"github.com/google/uuid"
)

// QuoteService defines pricing operations exposed to clients.
type QuoteService interface {
	// Quote prices a prospective booking for a room.
	Quote(ctx context.Context, req *model.QuoteRequest) (*model.BookingQuote, error)

	// ValidatePromo checks a promo code against a booking context.
	ValidatePromo(ctx context.Context, req *model.PromoValidationRequest) (*model.PromoValidationResponse, error)

	// ListOffers returns active offers. When both roomID and date are given,
	// only offers applicable to that room on that date are returned.
	ListOffers(ctx context.Context, roomID, date string) ([]model.Offer, error)
}

// RoomService defines operations for room listing.
type RoomService interface {
	// GetAll retrieves all rooms with pagination.
	GetAll(ctx context.Context, limit, offset int) ([]model.RoomResponse, error)

	// GetByID retrieves a single room by ID or slug.
	GetByID(ctx context.Context, idOrSlug string) (*model.RoomResponse, error)
}

// BookingService defines operations for booking management.
type BookingService interface {
	// CreateBooking prices and persists a booking with a frozen price snapshot.
	CreateBooking(ctx context.Context, req *model.BookingRequest) (*model.BookingResponse, error)

	// GetByID retrieves a booking by its ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Booking, error)

	// BookedSlots lists the time slots held by non-cancelled bookings of a
	// room on a date (YYYY-MM-DD).
	BookedSlots(ctx context.Context, roomIDOrSlug, date string) (*model.BookedSlotsResponse, error)
}

// TimeSlotService exposes the bookable start times.
type TimeSlotService interface {
	ListActive(ctx context.Context) ([]model.TimeSlot, error)
}
