package repository

import (
	"context"

	"escape-booking/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// RoomRepository defines the interface for room data access operations.
type RoomRepository interface {
	// GetAll retrieves all active rooms with their pricing tables, with
	// pagination support. Inactive rooms are only reachable through GetByID.
	GetAll(ctx context.Context, limit, offset int) ([]model.Room, error)

	// GetByID retrieves a single room by its ID or slug.
	// Returns nil without error if the room does not exist.
	GetByID(ctx context.Context, idOrSlug string) (*model.Room, error)
}

// PromoCodeRepository defines the interface for promo code lookups.
type PromoCodeRepository interface {
	// GetByCode retrieves a promo code by its canonical (upper-case) code.
	// Returns nil without error if the code does not exist.
	GetByCode(ctx context.Context, code string) (*model.PromoCode, error)
}

// OfferRepository defines the interface for offer data access operations.
type OfferRepository interface {
	// ListActive retrieves every active offer.
	ListActive(ctx context.Context) ([]model.Offer, error)
}

// TimeSlotRepository defines the interface for the bookable start times.
type TimeSlotRepository interface {
	// ListActiveSlots retrieves every active time slot ordered by slot time.
	ListActiveSlots(ctx context.Context) ([]model.TimeSlot, error)
}

// BookingRepository defines the interface for booking data access operations.
type BookingRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// CreateBooking inserts a new booking within the provided transaction.
	// Returns model.ErrSlotTaken if the slot is already held.
	CreateBooking(ctx context.Context, tx pgx.Tx, booking *model.Booking) error

	// IncrementPromoUsage bumps the used count of a promo code within the
	// provided transaction.
	IncrementPromoUsage(ctx context.Context, tx pgx.Tx, code string) error

	// GetByID retrieves a booking by its ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Booking, error)

	// BookedSlots returns the time slots held by non-cancelled bookings of a
	// room on a date (YYYY-MM-DD), ordered by slot.
	BookedSlots(ctx context.Context, roomID, date string) ([]string, error)
}
