package repository

import (
	"context"
	"fmt"

	"escape-booking/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// offerRepository implements the OfferRepository interface using PostgreSQL.
type offerRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewOfferRepository creates a new PostgreSQL-backed offer repository.
func NewOfferRepository(pool *pgxpool.Pool, logger zerolog.Logger) OfferRepository {
	return &offerRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "offer").Logger(),
	}
}

// ListActive retrieves every active offer ordered by ID.
func (r *offerRepository) ListActive(ctx context.Context) ([]model.Offer, error) {
	query := `
		SELECT id, name, active, discount_type, discount_value::text, room_ids,
		       day_of_week, to_char(start_date, 'YYYY-MM-DD'), to_char(end_date, 'YYYY-MM-DD')
		FROM offers
		WHERE active = TRUE
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query active offers")
		return nil, fmt.Errorf("failed to query active offers: %w", err)
	}
	defer rows.Close()

	offers := []model.Offer{}
	for rows.Next() {
		var (
			rec   model.OfferRecord
			value string
		)
		err := rows.Scan(
			&rec.ID,
			&rec.Name,
			&rec.Active,
			&rec.DiscountType,
			&value,
			&rec.RoomIDs,
			&rec.DayOfWeek,
			&rec.StartDate,
			&rec.EndDate,
		)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan offer row")
			return nil, fmt.Errorf("failed to scan offer: %w", err)
		}

		rec.DiscountValue, err = decimal.NewFromString(value)
		if err != nil {
			r.logger.Error().Err(err).Str("offer_id", rec.ID).Msg("invalid discount value")
			return nil, fmt.Errorf("invalid discount value for offer %s: %w", rec.ID, err)
		}

		offers = append(offers, rec.ToModel())
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating offer rows")
		return nil, fmt.Errorf("error iterating offers: %w", err)
	}

	return offers, nil
}
