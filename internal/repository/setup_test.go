package repository

import (
	"context"
	"testing"
	"time"

	"escape-booking/internal/database"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupTestDB creates a PostgreSQL testcontainer with the service schema and
// returns a connection pool.
func setupTestDB(t *testing.T) (*pgxpool.Pool, func()) {
	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}

	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)

	require.NoError(t, database.ApplySchema(ctx, pool))

	cleanup := func() {
		pool.Close()
		_ = pgContainer.Terminate(ctx)
	}

	return pool, cleanup
}

// seedRoom inserts a room and its pricing tiers.
func seedRoom(t *testing.T, pool *pgxpool.Pool, id, slug, name string, active bool, pricing map[int]int64) {
	ctx := context.Background()

	_, err := pool.Exec(ctx,
		`INSERT INTO rooms (id, slug, name, active) VALUES ($1, $2, $3, $4)`,
		id, slug, name, active,
	)
	require.NoError(t, err)

	for players, price := range pricing {
		_, err := pool.Exec(ctx,
			`INSERT INTO pricing_tiers (room_id, player_count, price_per_person) VALUES ($1, $2, $3)`,
			id, players, price,
		)
		require.NoError(t, err)
	}
}

// seedPromo inserts a promo code row.
func seedPromo(t *testing.T, pool *pgxpool.Pool, id, code string, active bool, kind, value string, minPlayers, usageLimit *int, usedCount int, validFrom, validTo *time.Time) {
	_, err := pool.Exec(context.Background(), `
		INSERT INTO promo_codes (id, code, active, discount_type, discount_value, min_players, usage_limit, used_count, valid_from, valid_to)
		VALUES ($1, $2, $3, $4, $5::numeric, $6, $7, $8, $9, $10)`,
		id, code, active, kind, value, minPlayers, usageLimit, usedCount, validFrom, validTo,
	)
	require.NoError(t, err)
}

// seedOffer inserts an offer row. Dates are YYYY-MM-DD strings or nil.
func seedOffer(t *testing.T, pool *pgxpool.Pool, id, name string, active bool, kind, value string, roomIDs []string, dayOfWeek *int, startDate, endDate *string) {
	_, err := pool.Exec(context.Background(), `
		INSERT INTO offers (id, name, active, discount_type, discount_value, room_ids, day_of_week, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5::numeric, $6, $7, $8::text::date, $9::text::date)`,
		id, name, active, kind, value, roomIDs, dayOfWeek, startDate, endDate,
	)
	require.NoError(t, err)
}

func seedTimeSlot(t *testing.T, pool *pgxpool.Pool, id, slotTime string, active bool) {
	_, err := pool.Exec(context.Background(),
		`INSERT INTO time_slots (id, slot_time, is_active) VALUES ($1, $2, $3)`,
		id, slotTime, active,
	)
	require.NoError(t, err)
}

func intPtr(i int) *int { return &i }

func strPtr(s string) *string { return &s }
