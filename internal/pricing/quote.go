package pricing

import (
	"context"
	"fmt"

	"escape-booking/internal/model"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// DefaultPricePerPerson is the business fallback price used when a room has
// no pricing tiers at all.
const DefaultPricePerPerson int64 = 420

// QuoteConfig holds configuration for the quote engine.
type QuoteConfig struct {
	// DefaultPricePerPerson is used when the pricing table is empty.
	// Default: 420
	DefaultPricePerPerson int64
}

// DefaultQuoteConfig returns the default quote engine configuration.
func DefaultQuoteConfig() *QuoteConfig {
	return &QuoteConfig{
		DefaultPricePerPerson: DefaultPricePerPerson,
	}
}

// quoteEngine implements QuoteEngine.
type quoteEngine struct {
	config    *QuoteConfig
	offers    OfferSelector
	validator PromoValidator
	logger    zerolog.Logger
}

// NewQuoteEngine creates a new quote engine.
func NewQuoteEngine(config *QuoteConfig, offers OfferSelector, validator PromoValidator, logger zerolog.Logger) QuoteEngine {
	if config == nil {
		config = DefaultQuoteConfig()
	}

	return &quoteEngine{
		config:    config,
		offers:    offers,
		validator: validator,
		logger:    logger.With().Str("component", "quote-engine").Logger(),
	}
}

// Calculate builds the quote for a booking request.
func (e *quoteEngine) Calculate(ctx context.Context, req model.BookingQuoteRequest) (*model.BookingQuote, error) {
	if req.PlayerCount < 1 {
		return nil, model.ErrInvalidPlayerCount
	}

	basePrice := e.basePricePerPerson(req.Pricing, req.PlayerCount)
	baseTotal := basePrice * int64(req.PlayerCount)

	quote := &model.BookingQuote{
		BasePricePerPerson:  basePrice,
		FinalPricePerPerson: basePrice,
		BaseTotal:           baseTotal,
		TotalPrice:          baseTotal,
		DiscountBreakdown:   []model.DiscountLine{},
	}

	if date := lo.FromPtr(req.Date); date != "" {
		e.applyOffer(ctx, quote, req.RoomID, date)
	}

	if code := lo.FromPtr(req.PromoCode); code != "" {
		e.applyPromo(ctx, quote, code, PromoContext{
			RoomID:      req.RoomID,
			PlayerCount: req.PlayerCount,
			Date:        req.Date,
		})
	}

	e.finalize(quote, req.PlayerCount)

	e.logger.Debug().
		Str("room_id", req.RoomID).
		Int("player_count", req.PlayerCount).
		Int64("base_total", quote.BaseTotal).
		Int64("total_price", quote.TotalPrice).
		Int64("discount_amount", quote.DiscountAmount).
		Msg("quote calculated")

	return quote, nil
}

// basePricePerPerson resolves the per-person price: the exact tier, else the
// tier of the largest player count, else the configured default.
func (e *quoteEngine) basePricePerPerson(pricing model.PricingTable, playerCount int) int64 {
	if price, ok := pricing[playerCount]; ok {
		return price
	}
	if len(pricing) > 0 {
		return pricing[lo.Max(lo.Keys(pricing))]
	}
	return e.config.DefaultPricePerPerson
}

// applyOffer applies the best applicable offer against the running total.
func (e *quoteEngine) applyOffer(ctx context.Context, quote *model.BookingQuote, roomID, date string) {
	offers := e.offers.ActiveOffersForRoom(ctx, roomID, date)
	if len(offers) == 0 {
		return
	}

	best, discount := SelectBestOffer(offers, quote.TotalPrice)
	if best == nil {
		return
	}

	quote.TotalPrice -= discount
	quote.DiscountAmount += discount
	quote.AppliedOffer = &model.AppliedOffer{
		ID:             best.ID,
		Name:           best.Name,
		DiscountType:   best.DiscountType,
		DiscountValue:  best.DiscountValue,
		DiscountAmount: discount,
	}
	quote.DiscountBreakdown = append(quote.DiscountBreakdown, model.DiscountLine{
		Type:   model.DiscountSourceOffer,
		Name:   best.Name,
		Amount: discount,
	})
}

// applyPromo validates the promo code and applies it against the running
// total, which already includes any offer discount.
func (e *quoteEngine) applyPromo(ctx context.Context, quote *model.BookingQuote, code string, pctx PromoContext) {
	validation := e.validator.Validate(ctx, code, pctx)
	if !validation.Valid || validation.Promo == nil {
		return
	}

	promo := validation.Promo
	discount := CalculateDiscount(quote.TotalPrice, promo.DiscountType, promo.DiscountValue)

	quote.TotalPrice -= discount
	quote.DiscountAmount += discount
	quote.AppliedPromo = &model.AppliedPromo{
		Code:           promo.Code,
		DiscountType:   promo.DiscountType,
		DiscountValue:  promo.DiscountValue,
		DiscountAmount: discount,
	}
	quote.DiscountBreakdown = append(quote.DiscountBreakdown, model.DiscountLine{
		Type:   model.DiscountSourcePromo,
		Name:   fmt.Sprintf("Promo: %s", promo.Code),
		Amount: discount,
	})
}

// finalize derives the per-person price and clamps negative totals.
func (e *quoteEngine) finalize(quote *model.BookingQuote, playerCount int) {
	if quote.TotalPrice < 0 {
		e.logger.Warn().
			Int64("total_price", quote.TotalPrice).
			Msg("negative total clamped to zero")
		quote.TotalPrice = 0
		quote.DiscountAmount = quote.BaseTotal
	}

	quote.FinalPricePerPerson = decimal.NewFromInt(quote.TotalPrice).
		Div(decimal.NewFromInt(int64(playerCount))).
		Round(0).
		IntPart()
	if quote.FinalPricePerPerson < 0 {
		quote.FinalPricePerPerson = 0
	}
}
