package model

import (
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Record shapes of the hosted database tables. The Supabase store and the
// catalogue snapshot both exchange rows in this form.

// PricingTierRecord is a row of the pricing_tiers table.
type PricingTierRecord struct {
	RoomID         string `json:"room_id,omitempty"`
	PlayerCount    int    `json:"player_count"`
	PricePerPerson int64  `json:"price_per_person"`
}

// RoomRecord is a row of the rooms table with its embedded pricing tiers.
type RoomRecord struct {
	ID           string              `json:"id"`
	Slug         string              `json:"slug"`
	Name         string              `json:"name"`
	Active       bool                `json:"active"`
	PricingTiers []PricingTierRecord `json:"pricing_tiers"`
}

// ToModel converts the record to a Room.
func (r RoomRecord) ToModel() Room {
	pricing := make(PricingTable, len(r.PricingTiers))
	for _, tier := range r.PricingTiers {
		pricing[tier.PlayerCount] = tier.PricePerPerson
	}
	return Room{
		ID:      r.ID,
		Slug:    r.Slug,
		Name:    r.Name,
		Active:  r.Active,
		Pricing: pricing,
	}
}

// PromoCodeRecord is a row of the promo_codes table.
type PromoCodeRecord struct {
	ID            string          `json:"id"`
	Code          string          `json:"code"`
	Active        bool            `json:"active"`
	DiscountType  string          `json:"discount_type"`
	DiscountValue decimal.Decimal `json:"discount_value"`
	MinPlayers    *int            `json:"min_players"`
	ValidFrom     *time.Time      `json:"valid_from"`
	ValidTo       *time.Time      `json:"valid_to"`
	UsageLimit    *int            `json:"usage_limit"`
	UsedCount     int             `json:"used_count"`
}

// ToModel converts the record to a PromoCode.
func (r PromoCodeRecord) ToModel() PromoCode {
	return PromoCode{
		ID:            r.ID,
		Code:          strings.ToUpper(strings.TrimSpace(r.Code)),
		Active:        r.Active,
		DiscountType:  DiscountType(r.DiscountType),
		DiscountValue: r.DiscountValue,
		MinPlayers:    lo.FromPtr(r.MinPlayers),
		ValidFrom:     r.ValidFrom,
		ValidTo:       r.ValidTo,
		UsageLimit:    r.UsageLimit,
		UsedCount:     r.UsedCount,
	}
}

// OfferRecord is a row of the offers table.
type OfferRecord struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Active        bool            `json:"active"`
	DiscountType  string          `json:"discount_type"`
	DiscountValue decimal.Decimal `json:"discount_value"`
	RoomIDs       []string        `json:"room_ids"`
	DayOfWeek     *int            `json:"day_of_week"`
	StartDate     *string         `json:"start_date"`
	EndDate       *string         `json:"end_date"`
}

// ToModel converts the record to an Offer.
func (r OfferRecord) ToModel() Offer {
	return Offer{
		ID:            r.ID,
		Name:          r.Name,
		Active:        r.Active,
		DiscountType:  DiscountType(r.DiscountType),
		DiscountValue: r.DiscountValue,
		RoomIDs:       lo.Ternary(r.RoomIDs == nil, []string{}, r.RoomIDs),
		DayOfWeek:     r.DayOfWeek,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
	}
}

// TimeSlotRecord is a row of the time_slots table.
type TimeSlotRecord struct {
	ID       string `json:"id"`
	SlotTime string `json:"slot_time"`
	IsActive bool   `json:"is_active"`
}

// ToModel converts the record to a TimeSlot.
func (r TimeSlotRecord) ToModel() TimeSlot {
	return TimeSlot{
		ID:       r.ID,
		SlotTime: strings.TrimSpace(r.SlotTime),
		Active:   r.IsActive,
	}
}
