package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"escape-booking/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// uniqueViolation is the PostgreSQL SQLSTATE for a unique constraint violation.
const uniqueViolation = "23505"

// bookingRepository implements the BookingRepository interface using PostgreSQL.
type bookingRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewBookingRepository creates a new PostgreSQL-backed booking repository.
func NewBookingRepository(pool *pgxpool.Pool, logger zerolog.Logger) BookingRepository {
	return &bookingRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "booking").Logger(),
	}
}

// BeginTx starts a new database transaction.
func (r *bookingRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// CreateBooking inserts a new booking within the provided transaction.
func (r *bookingRepository) CreateBooking(ctx context.Context, tx pgx.Tx, booking *model.Booking) error {
	date, err := time.Parse("2006-01-02", booking.BookingDate)
	if err != nil {
		return fmt.Errorf("invalid booking date %q: %w", booking.BookingDate, err)
	}

	query := `
		INSERT INTO bookings (
			id, room_id, booking_date, time_slot, player_count,
			customer_name, customer_email, customer_phone,
			total_price, final_price_per_person, promo_code, offer_id,
			status, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	_, err = tx.Exec(ctx, query,
		booking.ID,
		booking.RoomID,
		date,
		booking.TimeSlot,
		booking.PlayerCount,
		booking.CustomerName,
		booking.CustomerEmail,
		booking.CustomerPhone,
		booking.TotalPrice,
		booking.FinalPricePerPerson,
		booking.PromoCode,
		booking.OfferID,
		string(booking.Status),
		booking.CreatedAt,
		booking.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			r.logger.Info().
				Str("room_id", booking.RoomID).
				Str("booking_date", booking.BookingDate).
				Str("time_slot", booking.TimeSlot).
				Msg("booking slot already taken")
			return model.ErrSlotTaken
		}
		r.logger.Error().
			Err(err).
			Str("booking_id", booking.ID.String()).
			Msg("failed to create booking")
		return fmt.Errorf("failed to create booking: %w", err)
	}

	r.logger.Debug().
		Str("booking_id", booking.ID.String()).
		Msg("booking created successfully")

	return nil
}

// IncrementPromoUsage bumps the used count of a promo code within the provided transaction.
func (r *bookingRepository) IncrementPromoUsage(ctx context.Context, tx pgx.Tx, code string) error {
	query := `
		UPDATE promo_codes
		SET used_count = used_count + 1
		WHERE upper(code) = $1
	`

	tag, err := tx.Exec(ctx, query, code)
	if err != nil {
		r.logger.Error().Err(err).Str("promo_code", code).Msg("failed to increment promo usage")
		return fmt.Errorf("failed to increment promo usage: %w", err)
	}
	if tag.RowsAffected() == 0 {
		r.logger.Warn().Str("promo_code", code).Msg("promo usage not recorded, code not found")
	}

	return nil
}

// GetByID retrieves a booking by its ID.
func (r *bookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	query := `
		SELECT id, room_id, to_char(booking_date, 'YYYY-MM-DD'), time_slot, player_count,
		       customer_name, customer_email, customer_phone,
		       total_price, final_price_per_person, promo_code, offer_id,
		       status, created_at, updated_at
		FROM bookings
		WHERE id = $1
	`

	var (
		b      model.Booking
		status string
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&b.ID,
		&b.RoomID,
		&b.BookingDate,
		&b.TimeSlot,
		&b.PlayerCount,
		&b.CustomerName,
		&b.CustomerEmail,
		&b.CustomerPhone,
		&b.TotalPrice,
		&b.FinalPricePerPerson,
		&b.PromoCode,
		&b.OfferID,
		&status,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("booking_id", id.String()).Msg("booking not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("booking_id", id.String()).Msg("failed to query booking")
		return nil, fmt.Errorf("failed to query booking: %w", err)
	}
	b.Status = model.BookingStatus(status)

	return &b, nil
}

// BookedSlots returns the time slots held by non-cancelled bookings of a room on a date.
func (r *bookingRepository) BookedSlots(ctx context.Context, roomID, date string) ([]string, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("invalid booking date %q: %w", date, err)
	}

	query := `
		SELECT time_slot
		FROM bookings
		WHERE room_id = $1 AND booking_date = $2 AND status <> 'cancelled'
		ORDER BY time_slot
	`

	rows, err := r.pool.Query(ctx, query, roomID, day)
	if err != nil {
		r.logger.Error().Err(err).Str("room_id", roomID).Str("booking_date", date).Msg("failed to query booked slots")
		return nil, fmt.Errorf("failed to query booked slots: %w", err)
	}

	defer rows.Close()

	slots := []string{}
	for rows.Next() {
		var slot string
		if err := rows.Scan(&slot); err != nil {
			r.logger.Error().Err(err).Str("room_id", roomID).Msg("failed to scan booked slot row")
			return nil, fmt.Errorf("failed to scan booked slot: %w", err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Str("room_id", roomID).Msg("error iterating booked slot rows")
		return nil, fmt.Errorf("error iterating booked slots: %w", err)
	}

	return slots, nil
}
