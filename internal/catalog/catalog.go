package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"escape-booking/internal/model"
)

// Table names carried by snapshot entries.
const (
	TableRooms      = "rooms"
	TablePromoCodes = "promo_codes"
	TableOffers     = "offers"
	TableTimeSlots  = "time_slots"
)

// Catalog is an in-memory copy of the room, promo code, offer and time slot
// tables.
type Catalog struct {
	Rooms      []model.Room
	PromoCodes []model.PromoCode
	Offers     []model.Offer
	TimeSlots  []model.TimeSlot
}

// Entry is one line of a catalogue snapshot: a table name and a row in its
// record form.
type Entry struct {
	Table  string          `json:"table"`
	Record json.RawMessage `json:"record"`
}

// Loader defines the interface for loading catalogue snapshots.
type Loader interface {
	// Load reads a gzipped JSON-lines snapshot and returns its catalogue.
	Load(ctx context.Context, path string) (*Catalog, error)
}

// New returns an empty catalogue.
func New() *Catalog {
	return &Catalog{
		Rooms:      []model.Room{},
		PromoCodes: []model.PromoCode{},
		Offers:     []model.Offer{},
		TimeSlots:  []model.TimeSlot{},
	}
}

// Size returns the total number of records in the catalogue.
func (c *Catalog) Size() int {
	return len(c.Rooms) + len(c.PromoCodes) + len(c.Offers) + len(c.TimeSlots)
}

// Merge appends the records of other to c.
func (c *Catalog) Merge(other *Catalog) {
	if other == nil {
		return
	}
	c.Rooms = append(c.Rooms, other.Rooms...)
	c.PromoCodes = append(c.PromoCodes, other.PromoCodes...)
	c.Offers = append(c.Offers, other.Offers...)
	c.TimeSlots = append(c.TimeSlots, other.TimeSlots...)
}

// add decodes entry into the matching table. It reports false for tables
// the catalogue does not hold.
func (c *Catalog) add(entry Entry) (bool, error) {
	switch entry.Table {
	case TableRooms:
		var rec model.RoomRecord
		if err := json.Unmarshal(entry.Record, &rec); err != nil {
			return true, fmt.Errorf("invalid room record: %w", err)
		}
		c.Rooms = append(c.Rooms, rec.ToModel())
	case TablePromoCodes:
		var rec model.PromoCodeRecord
		if err := json.Unmarshal(entry.Record, &rec); err != nil {
			return true, fmt.Errorf("invalid promo code record: %w", err)
		}
		c.PromoCodes = append(c.PromoCodes, rec.ToModel())
	case TableOffers:
		var rec model.OfferRecord
		if err := json.Unmarshal(entry.Record, &rec); err != nil {
			return true, fmt.Errorf("invalid offer record: %w", err)
		}
		c.Offers = append(c.Offers, rec.ToModel())
	case TableTimeSlots:
		var rec model.TimeSlotRecord
		if err := json.Unmarshal(entry.Record, &rec); err != nil {
			return true, fmt.Errorf("invalid time slot record: %w", err)
		}
		c.TimeSlots = append(c.TimeSlots, rec.ToModel())
	default:
		return false, nil
	}
	return true, nil
}
