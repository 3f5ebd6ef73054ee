package integration

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"escape-booking/internal/catalog"
	"escape-booking/internal/database"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container with the booking schema applied.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	// Create PostgreSQL container
	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	// Get connection string
	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	pool, err := database.NewPoolFromURL(ctx, connStr, nil)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	if err := database.ApplySchema(ctx, pool); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// LoadSampleCatalog writes the demo snapshot to a temporary file and reads it
// back through the file loader.
func LoadSampleCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	path := filepath.Join(t.TempDir(), "catalog.jsonl.gz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create snapshot: %v", err)
	}
	if _, err := catalog.WriteSample(f); err != nil {
		t.Fatalf("failed to write snapshot: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("failed to close snapshot: %v", err)
	}

	cat, err := catalog.NewFileLoader(zerolog.Nop()).Load(context.Background(), path)
	if err != nil {
		t.Fatalf("failed to load snapshot: %v", err)
	}
	return cat
}

// SeedCatalog inserts the demo rooms, promo codes, offers and time slots into the database.
func SeedCatalog(t *testing.T, pool *pgxpool.Pool) *catalog.Catalog {
	t.Helper()

	cat := LoadSampleCatalog(t)
	if err := database.SeedCatalog(context.Background(), pool, cat); err != nil {
		t.Fatalf("failed to seed catalogue: %v", err)
	}
	return cat
}

// CleanupDB cleans all data from test tables.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	tables := []string{"bookings", "time_slots", "pricing_tiers", "offers", "promo_codes", "rooms"}
	for _, table := range tables {
		_, err := pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}
