package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema is the PostgreSQL schema of the booking service. Statements are
// idempotent so it can be applied to an existing database.
const Schema = `
	CREATE TABLE IF NOT EXISTS rooms (
		id TEXT PRIMARY KEY,
		slug TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS pricing_tiers (
		room_id TEXT NOT NULL REFERENCES rooms(id) ON DELETE CASCADE,
		player_count INTEGER NOT NULL CHECK (player_count > 0),
		price_per_person BIGINT NOT NULL CHECK (price_per_person >= 0),
		PRIMARY KEY (room_id, player_count)
	);

	CREATE TABLE IF NOT EXISTS promo_codes (
		id TEXT PRIMARY KEY,
		code TEXT NOT NULL,
		active BOOLEAN NOT NULL DEFAULT TRUE,
		discount_type TEXT NOT NULL,
		discount_value NUMERIC(12,2) NOT NULL DEFAULT 0,
		min_players INTEGER,
		valid_from TIMESTAMPTZ,
		valid_to TIMESTAMPTZ,
		usage_limit INTEGER,
		used_count INTEGER NOT NULL DEFAULT 0
	);
	CREATE UNIQUE INDEX IF NOT EXISTS idx_promo_codes_code ON promo_codes(upper(code));

	CREATE TABLE IF NOT EXISTS offers (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		active BOOLEAN NOT NULL DEFAULT TRUE,
		discount_type TEXT NOT NULL,
		discount_value NUMERIC(12,2) NOT NULL DEFAULT 0,
		room_ids TEXT[] NOT NULL DEFAULT '{}',
		day_of_week INTEGER CHECK (day_of_week BETWEEN 0 AND 6),
		start_date DATE,
		end_date DATE
	);
	CREATE INDEX IF NOT EXISTS idx_offers_active ON offers(active);

	CREATE TABLE IF NOT EXISTS time_slots (
		id TEXT PRIMARY KEY,
		slot_time TEXT NOT NULL UNIQUE,
		is_active BOOLEAN NOT NULL DEFAULT TRUE
	);

	CREATE TABLE IF NOT EXISTS bookings (
		id UUID PRIMARY KEY,
		room_id TEXT NOT NULL REFERENCES rooms(id),
		booking_date DATE NOT NULL,
		time_slot TEXT NOT NULL,
		player_count INTEGER NOT NULL CHECK (player_count > 0),
		customer_name TEXT NOT NULL,
		customer_email TEXT NOT NULL,
		customer_phone TEXT NOT NULL DEFAULT '',
		total_price BIGINT NOT NULL CHECK (total_price >= 0),
		final_price_per_person BIGINT NOT NULL CHECK (final_price_per_person >= 0),
		promo_code TEXT,
		offer_id TEXT,
		status TEXT NOT NULL DEFAULT 'pending',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	CREATE UNIQUE INDEX IF NOT EXISTS idx_bookings_active_slot
		ON bookings(room_id, booking_date, time_slot)
		WHERE status <> 'cancelled';
	CREATE INDEX IF NOT EXISTS idx_bookings_created_at ON bookings(created_at DESC);
`

// ApplySchema creates the tables and indexes if they do not exist.
func ApplySchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
