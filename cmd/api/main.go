package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"escape-booking/internal/catalog"
	"escape-booking/internal/config"
	"escape-booking/internal/database"
	"escape-booking/internal/handler"
	"escape-booking/internal/pricing"
	"escape-booking/internal/repository"
	"escape-booking/internal/router"
	"escape-booking/internal/service"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// stores holds the record store for the configured backend. bookings is nil
// for backends that are read-only.
type stores struct {
	rooms    repository.RoomRepository
	promos   repository.PromoCodeRepository
	offers   repository.OfferRepository
	slots    repository.TimeSlotRepository
	bookings repository.BookingRepository
	close    func()
}

func run() error {
	// A missing .env file is normal outside local development
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env file: %w", err)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Str("store_backend", cfg.Store.Backend).Msg("starting escape-booking API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	st, err := openStores(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer st.close()

	offerRepo := st.offers
	if cfg.Cache.OffersTTL > 0 {
		offerRepo = repository.NewCachedOfferRepository(offerRepo, cfg.Cache.OffersTTL, logger)
	}

	// Initialize pricing engine
	offers := pricing.NewOfferSelector(offerRepo, logger)
	promos := pricing.NewPromoValidator(st.promos, nil, logger)
	engine := pricing.NewQuoteEngine(&pricing.QuoteConfig{
		DefaultPricePerPerson: cfg.Pricing.DefaultPricePerPerson,
	}, offers, promos, logger)

	// Initialize services and HTTP handlers
	validate := service.NewValidator()
	handlers := router.Handlers{
		Quotes:    handler.NewQuoteHandler(service.NewQuoteService(st.rooms, engine, promos, offers, validate, logger), logger),
		Rooms:     handler.NewRoomHandler(service.NewRoomService(st.rooms, offers, logger), logger),
		TimeSlots: handler.NewTimeSlotHandler(service.NewTimeSlotService(st.slots, logger), logger),
	}
	if st.bookings != nil {
		bookingService := service.NewBookingService(st.bookings, st.rooms, st.slots, engine, validate, logger)
		handlers.Bookings = handler.NewBookingHandler(bookingService, logger)
	} else {
		logger.Info().Msg("booking endpoints disabled for read-only store backend")
	}

	// Validated by config.Load
	trustedProxies, err := cfg.RateLimit.ProxyPrefixes()
	if err != nil {
		return err
	}

	// Initialize router
	mux := router.New(handlers, router.Options{
		APIKey:             cfg.Auth.APIKey,
		RateLimitPerSecond: cfg.RateLimit.RequestsPerSecond,
		RateLimitBurst:     cfg.RateLimit.Burst,
		TrustedProxies:     trustedProxies,
	}, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// openStores connects the record store selected by STORE_BACKEND.
func openStores(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*stores, error) {
	switch cfg.Store.Backend {
	case config.StoreBackendPostgres:
		// Initialize database connection pool
		pool, err := database.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return &stores{
			rooms:    repository.NewRoomRepository(pool, logger),
			promos:   repository.NewPromoCodeRepository(pool, logger),
			offers:   repository.NewOfferRepository(pool, logger),
			slots:    repository.NewTimeSlotRepository(pool, logger),
			bookings: repository.NewBookingRepository(pool, logger),
			close:    pool.Close,
		}, nil

	case config.StoreBackendSupabase:
		store := repository.NewSupabaseStore(cfg.Supabase.URL, cfg.Supabase.ServiceKey, logger)
		return &stores{rooms: store, promos: store, offers: store, slots: store, close: func() {}}, nil

	case config.StoreBackendSnapshot:
		cat, err := loadSnapshot(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		store := repository.NewMemoryStore(cat, logger)
		return &stores{rooms: store, promos: store, offers: store, slots: store, close: func() {}}, nil

	default:
		return nil, fmt.Errorf("unsupported store backend %q", cfg.Store.Backend)
	}
}

// loadSnapshot reads the catalogue files named in SNAPSHOT_PATH, trying S3
// first when it is enabled.
func loadSnapshot(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*catalog.Catalog, error) {
	fileLoader := catalog.NewFileLoader(logger)

	var s3Loader catalog.Loader
	if cfg.S3.Enabled {
		var err error
		s3Loader, err = catalog.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 loader, falling back to local file system only")
		}
	} else {
		logger.Info().Msg("using local file system for catalogue snapshots (S3 disabled)")
	}

	loader := catalog.NewFallbackLoader(s3Loader, fileLoader, cfg.S3.Prefix, cfg.S3.Enabled, logger)

	var paths []string
	for _, p := range strings.Split(cfg.Store.SnapshotPath, ",") {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}

	cat, err := catalog.LoadAll(ctx, loader, paths, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalogue snapshot: %w", err)
	}
	return cat, nil
}
