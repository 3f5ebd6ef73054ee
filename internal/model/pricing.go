package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DiscountType identifies how a discount magnitude is interpreted.
type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

// PricingTable maps a player count to the price per person in the smallest
// currency unit. Tables may be sparse or empty.
type PricingTable map[int]int64

// PromoCode is an admin-managed promotional code.
type PromoCode struct {
	ID            string          `json:"id"`
	Code          string          `json:"code"`
	Active        bool            `json:"active"`
	DiscountType  DiscountType    `json:"discountType"`
	DiscountValue decimal.Decimal `json:"discountValue"`
	MinPlayers    int             `json:"minPlayers"`
	ValidFrom     *time.Time      `json:"validFrom,omitempty"`
	ValidTo       *time.Time      `json:"validTo,omitempty"`
	UsageLimit    *int            `json:"usageLimit,omitempty"`
	UsedCount     int             `json:"usedCount"`
}

// Offer is a date-scoped promotion applied automatically to eligible bookings.
type Offer struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Active        bool            `json:"active"`
	DiscountType  DiscountType    `json:"discountType"`
	DiscountValue decimal.Decimal `json:"discountValue"`
	RoomIDs       []string        `json:"roomIds"`
	DayOfWeek     *int            `json:"dayOfWeek,omitempty"`
	StartDate     *string         `json:"startDate,omitempty"`
	EndDate       *string         `json:"endDate,omitempty"`
}
