package catalog

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// fileLoader implements Loader for snapshots on the local file system.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based catalogue loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "catalog-loader").Logger(),
	}
}

// Load reads a gzipped snapshot file and returns its catalogue.
func (l *fileLoader) Load(ctx context.Context, filePath string) (*Catalog, error) {
	l.logger.Info().Str("file", filePath).Msg("loading catalog snapshot")

	file, err := os.Open(filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to open catalog snapshot")
		return nil, fmt.Errorf("failed to open catalog snapshot %s: %w", filePath, err)
	}
	defer file.Close()

	cat, skipped, err := decode(ctx, file)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to read catalog snapshot")
		return nil, fmt.Errorf("failed to read catalog snapshot %s: %w", filePath, err)
	}

	l.logger.Info().
		Str("file", filePath).
		Int("rooms", len(cat.Rooms)).
		Int("promo_codes", len(cat.PromoCodes)).
		Int("offers", len(cat.Offers)).
		Int("skipped", skipped).
		Msg("catalog snapshot loaded successfully")

	return cat, nil
}
