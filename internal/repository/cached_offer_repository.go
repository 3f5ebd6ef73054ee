package repository

import (
	"context"
	"time"

	"escape-booking/internal/model"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
)

const activeOffersKey = "offers:active"

// cachedOfferRepository is a read-through TTL cache in front of an OfferRepository.
type cachedOfferRepository struct {
	next   OfferRepository
	cache  *cache.Cache
	logger zerolog.Logger
}

// NewCachedOfferRepository wraps next with a cache of the active offer list.
// Store errors are never cached.
func NewCachedOfferRepository(next OfferRepository, ttl time.Duration, logger zerolog.Logger) OfferRepository {
	return &cachedOfferRepository{
		next:   next,
		cache:  cache.New(ttl, 2*ttl),
		logger: logger.With().Str("repository", "offer_cache").Logger(),
	}
}

// ListActive returns the cached active offers, loading them on a miss.
func (r *cachedOfferRepository) ListActive(ctx context.Context) ([]model.Offer, error) {
	if cached, found := r.cache.Get(activeOffersKey); found {
		return append([]model.Offer{}, cached.([]model.Offer)...), nil
	}

	offers, err := r.next.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	r.cache.SetDefault(activeOffersKey, offers)
	r.logger.Debug().Int("count", len(offers)).Msg("active offers cached")

	return append([]model.Offer{}, offers...), nil
}
