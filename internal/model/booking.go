package model

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking is a persisted reservation carrying a frozen price snapshot.
type Booking struct {
	ID                  uuid.UUID     `json:"id" db:"id"`
	RoomID              string        `json:"roomId" db:"room_id"`
	BookingDate         string        `json:"bookingDate" db:"booking_date"`
	TimeSlot            string        `json:"timeSlot" db:"time_slot"`
	PlayerCount         int           `json:"playerCount" db:"player_count"`
	CustomerName        string        `json:"customerName" db:"customer_name"`
	CustomerEmail       string        `json:"customerEmail" db:"customer_email"`
	CustomerPhone       string        `json:"customerPhone,omitempty" db:"customer_phone"`
	TotalPrice          int64         `json:"totalPrice" db:"total_price"`
	FinalPricePerPerson int64         `json:"finalPricePerPerson" db:"final_price_per_person"`
	PromoCode           *string       `json:"promoCode,omitempty" db:"promo_code"`
	OfferID             *string       `json:"offerId,omitempty" db:"offer_id"`
	Status              BookingStatus `json:"status" db:"status"`
	CreatedAt           time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt           time.Time     `json:"updatedAt" db:"updated_at"`
}

// BookingRequest represents the request payload for submitting a booking.
type BookingRequest struct {
	RoomID        string  `json:"roomId" validate:"required"`
	Date          string  `json:"date" validate:"required,datetime=2006-01-02"`
	TimeSlot      string  `json:"timeSlot" validate:"required"`
	PlayerCount   int     `json:"playerCount" validate:"gte=1,lte=100"`
	PromoCode     *string `json:"promoCode,omitempty"`
	CustomerName  string  `json:"customerName" validate:"required"`
	CustomerEmail string  `json:"customerEmail" validate:"required,email"`
	CustomerPhone string  `json:"customerPhone,omitempty"`
}

// BookingResponse represents the response payload for a booking.
type BookingResponse struct {
	Booking Booking       `json:"booking"`
	Quote   *BookingQuote `json:"quote,omitempty"`
}

// TimeSlot is a bookable start time offered for every room, e.g. "18:00".
type TimeSlot struct {
	ID       string `json:"id" db:"id"`
	SlotTime string `json:"slotTime" db:"slot_time"`
	Active   bool   `json:"active" db:"is_active"`
}

// BookedSlotsResponse lists the slots already held for a room on a date.
type BookedSlotsResponse struct {
	RoomID    string   `json:"roomId"`
	Date      string   `json:"date"`
	TimeSlots []string `json:"timeSlots"`
}
