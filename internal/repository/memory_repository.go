package repository

import (
	"context"
	"sort"
	"strings"

	"escape-booking/internal/catalog"
	"escape-booking/internal/model"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// MemoryStore serves rooms, promo codes, offers and time slots from a loaded
// catalogue snapshot. It implements RoomRepository, PromoCodeRepository,
// OfferRepository and TimeSlotRepository. The store is read-only and safe for
// concurrent use.
type MemoryStore struct {
	rooms  []model.Room
	promos map[string]model.PromoCode
	offers []model.Offer
	slots  []model.TimeSlot
	logger zerolog.Logger
}

// NewMemoryStore indexes the catalogue. Later promo codes with the same
// canonical code replace earlier ones.
func NewMemoryStore(cat *catalog.Catalog, logger zerolog.Logger) *MemoryStore {
	if cat == nil {
		cat = catalog.New()
	}

	rooms := append([]model.Room(nil), cat.Rooms...)
	sort.SliceStable(rooms, func(i, j int) bool { return rooms[i].Name < rooms[j].Name })

	offers := append([]model.Offer(nil), cat.Offers...)
	sort.SliceStable(offers, func(i, j int) bool { return offers[i].ID < offers[j].ID })

	slots := lo.Filter(cat.TimeSlots, func(s model.TimeSlot, _ int) bool { return s.Active })
	sort.SliceStable(slots, func(i, j int) bool { return slots[i].SlotTime < slots[j].SlotTime })

	promos := make(map[string]model.PromoCode, len(cat.PromoCodes))
	for _, p := range cat.PromoCodes {
		promos[strings.ToUpper(strings.TrimSpace(p.Code))] = p
	}

	store := &MemoryStore{
		rooms:  rooms,
		promos: promos,
		offers: offers,
		slots:  slots,
		logger: logger.With().Str("repository", "memory").Logger(),
	}

	store.logger.Info().
		Int("rooms", len(rooms)).
		Int("promo_codes", len(promos)).
		Int("offers", len(offers)).
		Int("time_slots", len(slots)).
		Msg("memory store initialised")

	return store
}

// GetAll retrieves all active rooms ordered by name with pagination support.
func (s *MemoryStore) GetAll(ctx context.Context, limit, offset int) ([]model.Room, error) {
	active := lo.Filter(s.rooms, func(r model.Room, _ int) bool { return r.Active })
	return append([]model.Room{}, paginate(active, limit, offset)...), nil
}

// GetByID retrieves a single room by its ID or slug.
func (s *MemoryStore) GetByID(ctx context.Context, idOrSlug string) (*model.Room, error) {
	room, ok := lo.Find(s.rooms, func(r model.Room) bool { return r.ID == idOrSlug })
	if !ok {
		room, ok = lo.Find(s.rooms, func(r model.Room) bool { return r.Slug == idOrSlug })
	}
	if !ok {
		s.logger.Debug().Str("room_id", idOrSlug).Msg("room not found")
		return nil, nil
	}
	return &room, nil
}

// GetByCode retrieves a promo code by its canonical code.
func (s *MemoryStore) GetByCode(ctx context.Context, code string) (*model.PromoCode, error) {
	promo, ok := s.promos[code]
	if !ok {
		s.logger.Debug().Str("promo_code", code).Msg("promo code not found")
		return nil, nil
	}
	return &promo, nil
}

// ListActive retrieves every active offer ordered by ID.
func (s *MemoryStore) ListActive(ctx context.Context) ([]model.Offer, error) {
	return lo.Filter(s.offers, func(o model.Offer, _ int) bool { return o.Active }), nil
}

// ListActiveSlots retrieves every active time slot ordered by slot time.
func (s *MemoryStore) ListActiveSlots(ctx context.Context) ([]model.TimeSlot, error) {
	return append([]model.TimeSlot{}, s.slots...), nil
}
