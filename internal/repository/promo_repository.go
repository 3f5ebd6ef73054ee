package repository

import (
	"context"
	"errors"
	"fmt"

	"escape-booking/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// promoCodeRepository implements the PromoCodeRepository interface using PostgreSQL.
type promoCodeRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewPromoCodeRepository creates a new PostgreSQL-backed promo code repository.
func NewPromoCodeRepository(pool *pgxpool.Pool, logger zerolog.Logger) PromoCodeRepository {
	return &promoCodeRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "promo_code").Logger(),
	}
}

// GetByCode retrieves a promo code by its canonical code.
func (r *promoCodeRepository) GetByCode(ctx context.Context, code string) (*model.PromoCode, error) {
	query := `
		SELECT id, code, active, discount_type, discount_value::text,
		       min_players, valid_from, valid_to, usage_limit, used_count
		FROM promo_codes
		WHERE upper(code) = $1
	`

	var (
		rec   model.PromoCodeRecord
		value string
	)
	err := r.pool.QueryRow(ctx, query, code).Scan(
		&rec.ID,
		&rec.Code,
		&rec.Active,
		&rec.DiscountType,
		&value,
		&rec.MinPlayers,
		&rec.ValidFrom,
		&rec.ValidTo,
		&rec.UsageLimit,
		&rec.UsedCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("promo_code", code).Msg("promo code not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("promo_code", code).Msg("failed to query promo code")
		return nil, fmt.Errorf("failed to query promo code: %w", err)
	}

	rec.DiscountValue, err = decimal.NewFromString(value)
	if err != nil {
		r.logger.Error().Err(err).Str("promo_code", code).Str("discount_value", value).Msg("invalid discount value")
		return nil, fmt.Errorf("invalid discount value for promo code %s: %w", code, err)
	}

	promo := rec.ToModel()
	return &promo, nil
}
