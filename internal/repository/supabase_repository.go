package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"escape-booking/internal/model"

	"github.com/google/uuid"
	"github.com/nedpals/supabase-go"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

const roomColumns = "id,slug,name,active,pricing_tiers(player_count,price_per_person)"

// SupabaseStore reads rooms, promo codes, offers and time slots through the
// hosted PostgREST API. It implements RoomRepository, PromoCodeRepository,
// OfferRepository and TimeSlotRepository.
type SupabaseStore struct {
	client *supabase.Client
	logger zerolog.Logger
}

// NewSupabaseStore creates a store backed by the Supabase REST API.
func NewSupabaseStore(url, serviceKey string, logger zerolog.Logger) *SupabaseStore {
	return &SupabaseStore{
		client: supabase.CreateClient(url, serviceKey),
		logger: logger.With().Str("repository", "supabase").Logger(),
	}
}

// GetAll retrieves all active rooms ordered by name with pagination support.
func (s *SupabaseStore) GetAll(ctx context.Context, limit, offset int) ([]model.Room, error) {
	var records []model.RoomRecord
	if err := s.client.DB.From("rooms").Select(roomColumns).Eq("active", "true").ExecuteWithContext(ctx, &records); err != nil {
		s.logger.Error().Err(err).Msg("failed to query rooms")
		return nil, fmt.Errorf("failed to query rooms: %w", err)
	}

	rooms := lo.Map(records, func(r model.RoomRecord, _ int) model.Room { return r.ToModel() })
	sort.SliceStable(rooms, func(i, j int) bool { return rooms[i].Name < rooms[j].Name })

	return paginate(rooms, limit, offset), nil
}

// GetByID retrieves a single room by its ID or slug. Hosted rooms are keyed
// by UUID, so anything that does not parse as one is looked up by slug.
func (s *SupabaseStore) GetByID(ctx context.Context, idOrSlug string) (*model.Room, error) {
	column := "slug"
	if _, err := uuid.Parse(idOrSlug); err == nil {
		column = "id"
	}

	var records []model.RoomRecord
	err := s.client.DB.From("rooms").Select(roomColumns).Eq(column, idOrSlug).ExecuteWithContext(ctx, &records)
	if err != nil {
		s.logger.Error().Err(err).Str("room_id", idOrSlug).Str("column", column).Msg("failed to query room")
		return nil, fmt.Errorf("failed to query room: %w", err)
	}

	if len(records) == 0 {
		s.logger.Debug().Str("room_id", idOrSlug).Msg("room not found")
		return nil, nil
	}

	room := records[0].ToModel()
	return &room, nil
}

// GetByCode retrieves a promo code by its canonical code. Stored codes may
// use any case; ilike can over-match on pattern characters so the result is
// narrowed to an exact case-insensitive match.
func (s *SupabaseStore) GetByCode(ctx context.Context, code string) (*model.PromoCode, error) {
	var records []model.PromoCodeRecord
	if err := s.client.DB.From("promo_codes").Select("*").Ilike("code", code).ExecuteWithContext(ctx, &records); err != nil {
		s.logger.Error().Err(err).Str("promo_code", code).Msg("failed to query promo code")
		return nil, fmt.Errorf("failed to query promo code: %w", err)
	}

	record, ok := lo.Find(records, func(r model.PromoCodeRecord) bool {
		return strings.EqualFold(strings.TrimSpace(r.Code), code)
	})
	if !ok {
		s.logger.Debug().Str("promo_code", code).Msg("promo code not found")
		return nil, nil
	}

	promo := record.ToModel()
	return &promo, nil
}

// ListActive retrieves every active offer ordered by ID.
func (s *SupabaseStore) ListActive(ctx context.Context) ([]model.Offer, error) {
	var records []model.OfferRecord
	if err := s.client.DB.From("offers").Select("*").Eq("active", "true").ExecuteWithContext(ctx, &records); err != nil {
		s.logger.Error().Err(err).Msg("failed to query active offers")
		return nil, fmt.Errorf("failed to query active offers: %w", err)
	}

	offers := lo.Map(records, func(r model.OfferRecord, _ int) model.Offer { return r.ToModel() })
	sort.SliceStable(offers, func(i, j int) bool { return offers[i].ID < offers[j].ID })

	return offers, nil
}

// ListActiveSlots retrieves every active time slot ordered by slot time.
func (s *SupabaseStore) ListActiveSlots(ctx context.Context) ([]model.TimeSlot, error) {
	var records []model.TimeSlotRecord
	if err := s.client.DB.From("time_slots").Select("*").Eq("is_active", "true").ExecuteWithContext(ctx, &records); err != nil {
		s.logger.Error().Err(err).Msg("failed to query time slots")
		return nil, fmt.Errorf("failed to query time slots: %w", err)
	}

	slots := lo.Map(records, func(r model.TimeSlotRecord, _ int) model.TimeSlot { return r.ToModel() })
	sort.SliceStable(slots, func(i, j int) bool { return slots[i].SlotTime < slots[j].SlotTime })

	return slots, nil
}

// paginate returns the window [offset, offset+limit) of items.
func paginate[T any](items []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}
	return lo.Slice(items, offset, offset+limit)
}
