package model

// Room represents a bookable escape room with its pricing tiers.
type Room struct {
	ID      string       `json:"id"`
	Slug    string       `json:"slug"`
	Name    string       `json:"name"`
	Active  bool         `json:"active"`
	Pricing PricingTable `json:"pricing"`
}

// RoomResponse represents a room as returned by the API.
type RoomResponse struct {
	Room
	HasActiveOffer bool `json:"hasActiveOffer"`
}
