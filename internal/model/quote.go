package model

import "github.com/shopspring/decimal"

// DiscountSource identifies the stage that produced a discount line.
type DiscountSource string

const (
	DiscountSourceOffer DiscountSource = "offer"
	DiscountSourcePromo DiscountSource = "promo"
)

// BookingQuoteRequest is the input of a single quote calculation.
type BookingQuoteRequest struct {
	RoomID      string
	Date        *string // YYYY-MM-DD
	TimeSlot    string
	PlayerCount int
	Pricing     PricingTable
	PromoCode   *string
}

// BookingQuote is the immutable result of a quote calculation.
type BookingQuote struct {
	BasePricePerPerson  int64          `json:"basePricePerPerson"`
	FinalPricePerPerson int64          `json:"finalPricePerPerson"`
	BaseTotal           int64          `json:"baseTotal"`
	TotalPrice          int64          `json:"totalPrice"`
	DiscountAmount      int64          `json:"discountAmount"`
	AppliedOffer        *AppliedOffer  `json:"appliedOffer"`
	AppliedPromo        *AppliedPromo  `json:"appliedPromo"`
	DiscountBreakdown   []DiscountLine `json:"discountBreakdown"`
}

// AppliedOffer records the offer used in a quote.
type AppliedOffer struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	DiscountType   DiscountType    `json:"discountType"`
	DiscountValue  decimal.Decimal `json:"discountValue"`
	DiscountAmount int64           `json:"discountAmount"`
}

// AppliedPromo records the promo code used in a quote.
type AppliedPromo struct {
	Code           string          `json:"code"`
	DiscountType   DiscountType    `json:"discountType"`
	DiscountValue  decimal.Decimal `json:"discountValue"`
	DiscountAmount int64           `json:"discountAmount"`
}

// DiscountLine is one entry of a quote's discount breakdown.
type DiscountLine struct {
	Type   DiscountSource `json:"type"`
	Name   string         `json:"name"`
	Amount int64          `json:"amount"`
}

// QuoteRequest represents the request payload for a price quote.
type QuoteRequest struct {
	RoomID      string  `json:"roomId" validate:"required"`
	Date        *string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	TimeSlot    string  `json:"timeSlot,omitempty"`
	PlayerCount int     `json:"playerCount" validate:"gte=1,lte=100"`
	PromoCode   *string `json:"promoCode,omitempty"`
}

// PromoValidationRequest represents the request payload for checking a promo code.
type PromoValidationRequest struct {
	Code        string  `json:"code"`
	RoomID      string  `json:"roomId"`
	PlayerCount int     `json:"playerCount" validate:"gte=1,lte=100"`
	Date        *string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// PromoValidationResponse represents the response payload for a promo check.
type PromoValidationResponse struct {
	Valid bool       `json:"valid"`
	Error *string    `json:"error"`
	Promo *PromoCode `json:"promo"`
}
