package database

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"escape-booking/internal/catalog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadSampleCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	path := filepath.Join(t.TempDir(), "catalog.jsonl.gz")
	f, err := os.Create(path)
	require.NoError(t, err)
	_, err = catalog.WriteSample(f)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	cat, err := catalog.NewFileLoader(zerolog.Nop()).Load(context.Background(), path)
	require.NoError(t, err)
	return cat
}

func countRows(t *testing.T, ctx context.Context, pool *pgxpool.Pool, table string) int {
	t.Helper()
	var n int
	require.NoError(t, pool.QueryRow(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}

func TestSeedCatalog(t *testing.T) {
	connStr := startPostgres(t)
	ctx := context.Background()

	pool, err := NewPoolFromURL(ctx, connStr, nil)
	require.NoError(t, err)
	defer pool.Close()
	require.NoError(t, ApplySchema(ctx, pool))

	cat := loadSampleCatalog(t)
	require.NoError(t, SeedCatalog(ctx, pool, cat))

	assert.Equal(t, len(cat.Rooms), countRows(t, ctx, pool, "rooms"))
	assert.Equal(t, len(cat.PromoCodes), countRows(t, ctx, pool, "promo_codes"))
	assert.Equal(t, len(cat.Offers), countRows(t, ctx, pool, "offers"))
	assert.Equal(t, len(cat.TimeSlots), countRows(t, ctx, pool, "time_slots"))

	tiers := 0
	for _, r := range cat.Rooms {
		tiers += len(r.Pricing)
	}
	assert.Equal(t, tiers, countRows(t, ctx, pool, "pricing_tiers"))

	var dayOfWeek int
	var roomIDs []string
	require.NoError(t, pool.QueryRow(ctx,
		`SELECT day_of_week, room_ids FROM offers WHERE id = 'offer-vault-saturday'`,
	).Scan(&dayOfWeek, &roomIDs))
	assert.Equal(t, 6, dayOfWeek)
	assert.Equal(t, []string{"room-vault"}, roomIDs)

	t.Run("reseeding is idempotent and keeps recorded usage", func(t *testing.T) {
		_, err := pool.Exec(ctx, `UPDATE promo_codes SET used_count = 7 WHERE id = 'promo-spring'`)
		require.NoError(t, err)

		require.NoError(t, SeedCatalog(ctx, pool, cat))

		assert.Equal(t, len(cat.Rooms), countRows(t, ctx, pool, "rooms"))
		assert.Equal(t, tiers, countRows(t, ctx, pool, "pricing_tiers"))
		assert.Equal(t, len(cat.TimeSlots), countRows(t, ctx, pool, "time_slots"))

		var used int
		require.NoError(t, pool.QueryRow(ctx,
			`SELECT used_count FROM promo_codes WHERE id = 'promo-spring'`,
		).Scan(&used))
		assert.Equal(t, 7, used)
	})
}
