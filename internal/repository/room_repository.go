package repository

import (
	"context"
	"errors"
	"fmt"

	"escape-booking/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// roomRepository implements the RoomRepository interface using PostgreSQL.
type roomRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewRoomRepository creates a new PostgreSQL-backed room repository.
func NewRoomRepository(pool *pgxpool.Pool, logger zerolog.Logger) RoomRepository {
	return &roomRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "room").Logger(),
	}
}

// GetAll retrieves all active rooms with pagination support.
func (r *roomRepository) GetAll(ctx context.Context, limit, offset int) ([]model.Room, error) {
	query := `
		SELECT id, slug, name, active
		FROM rooms
		WHERE active = TRUE
		ORDER BY name
		LIMIT $1 OFFSET $2
	`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		r.logger.Error().Err(err).
			Int("limit", limit).
			Int("offset", offset).
			Msg("failed to query rooms")
		return nil, fmt.Errorf("failed to query rooms: %w", err)
	}
	defer rows.Close()

	rooms := []model.Room{}
	for rows.Next() {
		var room model.Room
		if err := rows.Scan(&room.ID, &room.Slug, &room.Name, &room.Active); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan room row")
			return nil, fmt.Errorf("failed to scan room: %w", err)
		}
		room.Pricing = model.PricingTable{}
		rooms = append(rooms, room)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating room rows")
		return nil, fmt.Errorf("error iterating rooms: %w", err)
	}

	if len(rooms) == 0 {
		return rooms, nil
	}

	ids := lo.Map(rooms, func(room model.Room, _ int) string { return room.ID })
	tiers, err := r.pricingTiers(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range rooms {
		if pricing, ok := tiers[rooms[i].ID]; ok {
			rooms[i].Pricing = pricing
		}
	}

	return rooms, nil
}

// GetByID retrieves a single room by its ID or slug.
func (r *roomRepository) GetByID(ctx context.Context, idOrSlug string) (*model.Room, error) {
	query := `
		SELECT id, slug, name, active
		FROM rooms
		WHERE id = $1 OR slug = $1
		ORDER BY (id = $1) DESC
		LIMIT 1
	`

	var room model.Room
	err := r.pool.QueryRow(ctx, query, idOrSlug).Scan(&room.ID, &room.Slug, &room.Name, &room.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("room_id", idOrSlug).Msg("room not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("room_id", idOrSlug).Msg("failed to query room")
		return nil, fmt.Errorf("failed to query room: %w", err)
	}

	tiers, err := r.pricingTiers(ctx, []string{room.ID})
	if err != nil {
		return nil, err
	}
	room.Pricing = lo.ValueOr(tiers, room.ID, model.PricingTable{})

	return &room, nil
}

// pricingTiers loads the pricing tables of the given rooms keyed by room ID.
func (r *roomRepository) pricingTiers(ctx context.Context, roomIDs []string) (map[string]model.PricingTable, error) {
	query := `
		SELECT room_id, player_count, price_per_person
		FROM pricing_tiers
		WHERE room_id = ANY($1)
	`

	rows, err := r.pool.Query(ctx, query, roomIDs)
	if err != nil {
		r.logger.Error().Err(err).Int("count", len(roomIDs)).Msg("failed to query pricing tiers")
		return nil, fmt.Errorf("failed to query pricing tiers: %w", err)
	}
	defer rows.Close()

	tables := make(map[string]model.PricingTable, len(roomIDs))
	for rows.Next() {
		var tier model.PricingTierRecord
		if err := rows.Scan(&tier.RoomID, &tier.PlayerCount, &tier.PricePerPerson); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan pricing tier row")
			return nil, fmt.Errorf("failed to scan pricing tier: %w", err)
		}
		if _, ok := tables[tier.RoomID]; !ok {
			tables[tier.RoomID] = model.PricingTable{}
		}
		tables[tier.RoomID][tier.PlayerCount] = tier.PricePerPerson
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating pricing tier rows")
		return nil, fmt.Errorf("error iterating pricing tiers: %w", err)
	}

	return tables, nil
}
