package database

import (
	"context"
	"fmt"

	"escape-booking/internal/catalog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedCatalog upserts the rooms, pricing tiers, promo codes, offers and time slots of cat
// in a single transaction. A room's pricing tiers are replaced, and promo
// usage counts already recorded by bookings are kept.
func SeedCatalog(ctx context.Context, pool *pgxpool.Pool, cat *catalog.Catalog) (err error) {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	batch := &pgx.Batch{}

	for _, room := range cat.Rooms {
		batch.Queue(`
			INSERT INTO rooms (id, slug, name, active) VALUES ($1, $2, $3, $4)
			ON CONFLICT (id) DO UPDATE SET slug = EXCLUDED.slug, name = EXCLUDED.name, active = EXCLUDED.active`,
			room.ID, room.Slug, room.Name, room.Active,
		)
		batch.Queue(`DELETE FROM pricing_tiers WHERE room_id = $1`, room.ID)
		for players, price := range room.Pricing {
			batch.Queue(`INSERT INTO pricing_tiers (room_id, player_count, price_per_person) VALUES ($1, $2, $3)`,
				room.ID, players, price,
			)
		}
	}

	for _, p := range cat.PromoCodes {
		batch.Queue(`
			INSERT INTO promo_codes (id, code, active, discount_type, discount_value, min_players, valid_from, valid_to, usage_limit, used_count)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			ON CONFLICT (id) DO UPDATE SET
				code = EXCLUDED.code, active = EXCLUDED.active,
				discount_type = EXCLUDED.discount_type, discount_value = EXCLUDED.discount_value,
				min_players = EXCLUDED.min_players, valid_from = EXCLUDED.valid_from,
				valid_to = EXCLUDED.valid_to, usage_limit = EXCLUDED.usage_limit,
				used_count = GREATEST(promo_codes.used_count, EXCLUDED.used_count)`,
			p.ID, p.Code, p.Active, string(p.DiscountType), p.DiscountValue.String(),
			p.MinPlayers, p.ValidFrom, p.ValidTo, p.UsageLimit, p.UsedCount,
		)
	}

	for _, o := range cat.Offers {
		batch.Queue(`
			INSERT INTO offers (id, name, active, discount_type, discount_value, room_ids, day_of_week, start_date, end_date)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name, active = EXCLUDED.active,
				discount_type = EXCLUDED.discount_type, discount_value = EXCLUDED.discount_value,
				room_ids = EXCLUDED.room_ids, day_of_week = EXCLUDED.day_of_week,
				start_date = EXCLUDED.start_date, end_date = EXCLUDED.end_date`,
			o.ID, o.Name, o.Active, string(o.DiscountType), o.DiscountValue.String(),
			o.RoomIDs, o.DayOfWeek, o.StartDate, o.EndDate,
		)
	}

	for _, s := range cat.TimeSlots {
		batch.Queue(`
			INSERT INTO time_slots (id, slot_time, is_active) VALUES ($1, $2, $3)
			ON CONFLICT (id) DO UPDATE SET slot_time = EXCLUDED.slot_time, is_active = EXCLUDED.is_active`,
			s.ID, s.SlotTime, s.Active,
		)
	}

	if err = tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to seed catalogue: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit seed transaction: %w", err)
	}
	return nil
}
