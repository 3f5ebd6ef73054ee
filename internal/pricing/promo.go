package pricing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"escape-booking/internal/model"
	"escape-booking/internal/repository"

	"github.com/rs/zerolog"
)

// User-facing promo rejection messages.
const (
	MsgPromoEmpty       = "Please enter a promo code"
	MsgPromoInvalid     = "Invalid promo code"
	MsgPromoInactive    = "This promo code is no longer active"
	MsgPromoNotYetValid = "This promo code is not yet active"
	MsgPromoExpired     = "This promo code has expired"
	MsgPromoUsageLimit  = "This promo code has reached its usage limit"
)

// promoValidator implements PromoValidator on top of the promo code store.
type promoValidator struct {
	repo   repository.PromoCodeRepository
	now    func() time.Time
	logger zerolog.Logger
}

// NewPromoValidator creates a promo validator. A nil clock uses time.Now.
func NewPromoValidator(repo repository.PromoCodeRepository, now func() time.Time, logger zerolog.Logger) PromoValidator {
	if now == nil {
		now = time.Now
	}
	return &promoValidator{
		repo:   repo,
		now:    now,
		logger: logger.With().Str("component", "promo-validator").Logger(),
	}
}

// CanonicalCode trims and upper-cases a promo code.
func CanonicalCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Validate runs the eligibility checks in order; the first failure wins.
func (v *promoValidator) Validate(ctx context.Context, code string, pctx PromoContext) PromoValidation {
	code = CanonicalCode(code)
	if code == "" {
		return PromoValidation{Error: MsgPromoEmpty}
	}

	promo, status := v.lookup(ctx, code)
	if status != LookupFound {
		return PromoValidation{Error: MsgPromoInvalid, Lookup: status}
	}

	reject := func(msg string) PromoValidation {
		v.logger.Debug().
			Str("promo_code", code).
			Str("reason", msg).
			Msg("promo code rejected")
		return PromoValidation{Error: msg, Lookup: status}
	}

	if !promo.Active {
		return reject(MsgPromoInactive)
	}

	now := v.now()
	if promo.ValidFrom != nil && promo.ValidFrom.After(now) {
		return reject(MsgPromoNotYetValid)
	}
	if promo.ValidTo != nil && promo.ValidTo.Before(now) {
		return reject(MsgPromoExpired)
	}

	if promo.UsageLimit != nil && promo.UsedCount >= *promo.UsageLimit {
		return reject(MsgPromoUsageLimit)
	}

	if promo.MinPlayers > 0 && pctx.PlayerCount < promo.MinPlayers {
		return reject(fmt.Sprintf("This promo requires at least %d players", promo.MinPlayers))
	}

	v.logger.Debug().
		Str("promo_code", code).
		Str("room_id", pctx.RoomID).
		Int("player_count", pctx.PlayerCount).
		Msg("promo code validated successfully")

	return PromoValidation{Valid: true, Promo: promo, Lookup: status}
}

// lookup fetches the promo by canonical code and tags the outcome.
func (v *promoValidator) lookup(ctx context.Context, code string) (*model.PromoCode, LookupStatus) {
	promo, err := v.repo.GetByCode(ctx, code)
	if err != nil {
		v.logger.Warn().
			Err(err).
			Str("promo_code", code).
			Msg("promo code lookup failed")
		return nil, LookupStoreError
	}
	if promo == nil {
		v.logger.Debug().Str("promo_code", code).Msg("promo code not found")
		return nil, LookupNotFound
	}
	return promo, LookupFound
}
