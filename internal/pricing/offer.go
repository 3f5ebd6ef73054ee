package pricing

import (
	"context"
	"sort"
	"time"

	"escape-booking/internal/model"
	"escape-booking/internal/repository"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

const dateLayout = "2006-01-02"

// offerSelector implements OfferSelector on top of the offer store.
type offerSelector struct {
	repo   repository.OfferRepository
	logger zerolog.Logger
}

// NewOfferSelector creates a new offer selector.
func NewOfferSelector(repo repository.OfferRepository, logger zerolog.Logger) OfferSelector {
	return &offerSelector{
		repo:   repo,
		logger: logger.With().Str("component", "offer-selector").Logger(),
	}
}

// AllActiveOffers returns every active offer, or an empty list if the store fails.
func (s *offerSelector) AllActiveOffers(ctx context.Context) []model.Offer {
	offers, err := s.repo.ListActive(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to load active offers")
		return []model.Offer{}
	}

	// Stores are expected to return active rows only.
	active := lo.Filter(offers, func(o model.Offer, _ int) bool { return o.Active })
	sort.SliceStable(active, func(i, j int) bool { return active[i].ID < active[j].ID })

	return active
}

// ActiveOffersForRoom returns the active offers applicable to roomID on date.
func (s *offerSelector) ActiveOffersForRoom(ctx context.Context, roomID, date string) []model.Offer {
	offers := s.AllActiveOffers(ctx)
	if len(offers) == 0 {
		return offers
	}

	weekday, weekdayKnown := dayOfWeek(date)

	applicable := lo.Filter(offers, func(o model.Offer, _ int) bool {
		if !appliesToRoom(o, roomID) {
			return false
		}
		if o.DayOfWeek != nil && (!weekdayKnown || *o.DayOfWeek != weekday) {
			return false
		}
		if o.StartDate != nil && date < *o.StartDate {
			return false
		}
		if o.EndDate != nil && date > *o.EndDate {
			return false
		}
		return true
	})

	s.logger.Debug().
		Str("room_id", roomID).
		Str("date", date).
		Int("active", len(offers)).
		Int("applicable", len(applicable)).
		Msg("offers filtered for room")

	return applicable
}

// RoomHasActiveOffer reports whether any active offer targets roomID.
func (s *offerSelector) RoomHasActiveOffer(ctx context.Context, roomID string) bool {
	return AnyOfferForRoom(s.AllActiveOffers(ctx), roomID)
}

// AnyOfferForRoom reports whether any of offers targets roomID, ignoring
// date restrictions.
func AnyOfferForRoom(offers []model.Offer, roomID string) bool {
	return lo.SomeBy(offers, func(o model.Offer) bool {
		return appliesToRoom(o, roomID)
	})
}

// SelectBestOffer returns the offer yielding the strictly largest discount
// against price, with its discount. The first offer wins a tie. It returns
// nil when no offer discounts anything.
func SelectBestOffer(offers []model.Offer, price int64) (*model.Offer, int64) {
	var best *model.Offer
	var bestDiscount int64

	for i := range offers {
		discount := CalculateDiscount(price, offers[i].DiscountType, offers[i].DiscountValue)
		if discount > bestDiscount {
			best = &offers[i]
			bestDiscount = discount
		}
	}

	return best, bestDiscount
}

func appliesToRoom(o model.Offer, roomID string) bool {
	return len(o.RoomIDs) == 0 || lo.Contains(o.RoomIDs, roomID)
}

// dayOfWeek returns the weekday (0=Sunday) of a YYYY-MM-DD calendar date.
func dayOfWeek(date string) (int, bool) {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return 0, false
	}
	return int(t.Weekday()), true
}
