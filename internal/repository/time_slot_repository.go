package repository

import (
	"context"
	"fmt"

	"escape-booking/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// timeSlotRepository implements the TimeSlotRepository interface using PostgreSQL.
type timeSlotRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewTimeSlotRepository creates a new PostgreSQL-backed time slot repository.
func NewTimeSlotRepository(pool *pgxpool.Pool, logger zerolog.Logger) TimeSlotRepository {
	return &timeSlotRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "time_slot").Logger(),
	}
}

// ListActiveSlots retrieves every active time slot ordered by slot time.
func (r *timeSlotRepository) ListActiveSlots(ctx context.Context) ([]model.TimeSlot, error) {
	query := `
		SELECT id, slot_time, is_active
		FROM time_slots
		WHERE is_active = TRUE
		ORDER BY slot_time
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query time slots")
		return nil, fmt.Errorf("failed to query time slots: %w", err)
	}

	defer rows.Close()

	slots := []model.TimeSlot{}
	for rows.Next() {
		var rec model.TimeSlotRecord
		if err := rows.Scan(&rec.ID, &rec.SlotTime, &rec.IsActive); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan time slot row")
			return nil, fmt.Errorf("failed to scan time slot: %w", err)
		}
		slots = append(slots, rec.ToModel())
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating time slot rows")
		return nil, fmt.Errorf("error iterating time slots: %w", err)
	}

	return slots, nil
}
