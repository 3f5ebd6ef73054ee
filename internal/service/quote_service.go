package service

import (
	"context"
	"fmt"

	"escape-booking/internal/model"
	"escape-booking/internal/pricing"
	"escape-booking/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// quoteService implements QuoteService.
type quoteService struct {
	roomRepo repository.RoomRepository
	engine   pricing.QuoteEngine
	promos   pricing.PromoValidator
	offers   pricing.OfferSelector
	validate *validator.Validate
	logger   zerolog.Logger
}

// NewQuoteService creates a new quote service.
func NewQuoteService(
	roomRepo repository.RoomRepository,
	engine pricing.QuoteEngine,
	promos pricing.PromoValidator,
	offers pricing.OfferSelector,
	validate *validator.Validate,
	logger zerolog.Logger,
) QuoteService {
	return &quoteService{
		roomRepo: roomRepo,
		engine:   engine,
		promos:   promos,
		offers:   offers,
		validate: validate,
		logger:   logger.With().Str("service", "quote").Logger(),
	}
}

// Quote prices a prospective booking for a room.
func (s *quoteService) Quote(ctx context.Context, req *model.QuoteRequest) (*model.BookingQuote, error) {
	if req == nil {
		return nil, model.NewDomainError(model.ErrCodeInvalidRequest, "Request body is required")
	}
	if err := validateRequest(s.validate, req); err != nil {
		return nil, err
	}

	room, err := loadRoom(ctx, s.roomRepo, req.RoomID)
	if err != nil {
		return nil, err
	}

	quote, err := s.engine.Calculate(ctx, model.BookingQuoteRequest{
		RoomID:      room.ID,
		Date:        req.Date,
		TimeSlot:    req.TimeSlot,
		PlayerCount: req.PlayerCount,
		Pricing:     room.Pricing,
		PromoCode:   req.PromoCode,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("room_id", room.ID).
		Int("player_count", req.PlayerCount).
		Int64("total_price", quote.TotalPrice).
		Bool("offer_applied", quote.AppliedOffer != nil).
		Bool("promo_applied", quote.AppliedPromo != nil).
		Msg("quote issued")

	return quote, nil
}

// ValidatePromo checks a promo code against a booking context.
func (s *quoteService) ValidatePromo(ctx context.Context, req *model.PromoValidationRequest) (*model.PromoValidationResponse, error) {
	if req == nil {
		return nil, model.NewDomainError(model.ErrCodeInvalidRequest, "Request body is required")
	}
	if err := validateRequest(s.validate, req); err != nil {
		return nil, err
	}

	result := s.promos.Validate(ctx, req.Code, pricing.PromoContext{
		RoomID:      req.RoomID,
		PlayerCount: req.PlayerCount,
		Date:        req.Date,
	})

	s.logger.Debug().
		Bool("valid", result.Valid).
		Str("lookup", result.Lookup.String()).
		Msg("promo code checked")

	return result.Response(), nil
}

// ListOffers returns active offers, filtered when both roomID and date are given.
func (s *quoteService) ListOffers(ctx context.Context, roomID, date string) ([]model.Offer, error) {
	if roomID != "" && date != "" {
		if err := s.validate.Var(date, "datetime=2006-01-02"); err != nil {
			return nil, model.NewDomainError(model.ErrCodeInvalidRequest, "date must be a date in YYYY-MM-DD format")
		}
		return s.offers.ActiveOffersForRoom(ctx, roomID, date), nil
	}
	return s.offers.AllActiveOffers(ctx), nil
}

// loadRoom fetches a room by ID or slug and maps absence to ErrRoomNotFound.
func loadRoom(ctx context.Context, repo repository.RoomRepository, idOrSlug string) (*model.Room, error) {
	room, err := repo.GetByID(ctx, idOrSlug)
	if err != nil {
		return nil, fmt.Errorf("failed to load room: %w", err)
	}
	if room == nil {
		return nil, model.ErrRoomNotFound
	}
	room.Pricing = lo.Ternary(room.Pricing == nil, model.PricingTable{}, room.Pricing)
	return room, nil
}
