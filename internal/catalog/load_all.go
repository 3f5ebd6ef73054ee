package catalog

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// LoadAll loads several snapshot shards concurrently and merges them in the
// order the paths are given. Any shard failure fails the whole load.
func LoadAll(ctx context.Context, loader Loader, paths []string, logger zerolog.Logger) (*Catalog, error) {
	logger = logger.With().Str("component", "catalog").Logger()

	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog snapshot paths configured")
	}

	type loadResult struct {
		index int
		cat   *Catalog
		err   error
	}

	resultChan := make(chan loadResult, len(paths))
	var wg sync.WaitGroup

	for i, path := range paths {
		wg.Add(1)
		go func(index int, path string) {
			defer wg.Done()

			cat, err := loader.Load(ctx, path)
			resultChan <- loadResult{index: index, cat: cat, err: err}
		}(i, path)
	}

	wg.Wait()
	close(resultChan)

	results := make([]loadResult, len(paths))
	for result := range resultChan {
		results[result.index] = result
	}

	merged := New()
	for i, result := range results {
		if result.err != nil {
			logger.Error().
				Err(result.err).
				Str("path", paths[i]).
				Msg("failed to load catalog shard")
			return nil, fmt.Errorf("failed to load catalog shard %s: %w", paths[i], result.err)
		}
		merged.Merge(result.cat)
	}

	logger.Info().
		Int("shards", len(paths)).
		Int("rooms", len(merged.Rooms)).
		Int("promo_codes", len(merged.PromoCodes)).
		Int("offers", len(merged.Offers)).
		Msg("catalog loaded")

	return merged, nil
}
