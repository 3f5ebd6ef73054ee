package catalog

import (
	"io"
	"strings"
	"time"

	"escape-booking/internal/model"

	"github.com/shopspring/decimal"
)

// SampleRecords returns a small demo catalogue in record form.
func SampleRecords() ([]model.RoomRecord, []model.PromoCodeRecord, []model.OfferRecord) {
	four, one, saturday := 4, 1, 6
	expired := time.Date(2020, 12, 31, 23, 59, 59, 0, time.UTC)
	yearStart, yearEnd := "2026-01-01", "2026-12-31"

	rooms := []model.RoomRecord{
		{
			ID: "room-asylum", Slug: "asylum", Name: "Asylum", Active: true,
			PricingTiers: []model.PricingTierRecord{
				{PlayerCount: 2, PricePerPerson: 550},
				{PlayerCount: 3, PricePerPerson: 500},
				{PlayerCount: 4, PricePerPerson: 450},
				{PlayerCount: 5, PricePerPerson: 420},
				{PlayerCount: 6, PricePerPerson: 400},
			},
		},
		{
			ID: "room-vault", Slug: "the-vault", Name: "The Vault", Active: true,
			PricingTiers: []model.PricingTierRecord{
				{PlayerCount: 2, PricePerPerson: 600},
				{PlayerCount: 4, PricePerPerson: 500},
				{PlayerCount: 6, PricePerPerson: 450},
			},
		},
		{
			ID: "room-lab", Slug: "the-lab", Name: "The Lab", Active: false,
			PricingTiers: []model.PricingTierRecord{
				{PlayerCount: 2, PricePerPerson: 500},
			},
		},
	}

	promos := []model.PromoCodeRecord{
		{ID: "promo-spring", Code: "SPRING20", Active: true, DiscountType: "percentage", DiscountValue: decimal.NewFromInt(20)},
		{ID: "promo-welcome", Code: "WELCOME100", Active: true, DiscountType: "fixed", DiscountValue: decimal.NewFromInt(100), MinPlayers: &four},
		{ID: "promo-expired", Code: "EXPIRED10", Active: true, DiscountType: "percentage", DiscountValue: decimal.NewFromInt(10), ValidTo: &expired},
		{ID: "promo-limited", Code: "ONEOFF", Active: true, DiscountType: "percentage", DiscountValue: decimal.NewFromInt(50), UsageLimit: &one, UsedCount: 1},
		{ID: "promo-retired", Code: "RETIRED5", Active: false, DiscountType: "percentage", DiscountValue: decimal.NewFromInt(5)},
	}

	offers := []model.OfferRecord{
		{
			ID: "offer-all-year", Name: "Year Round Saver", Active: true,
			DiscountType: "fixed", DiscountValue: decimal.NewFromInt(50),
			RoomIDs: []string{}, StartDate: &yearStart, EndDate: &yearEnd,
		},
		{
			ID: "offer-vault-saturday", Name: "Vault Saturdays", Active: true,
			DiscountType: "percentage", DiscountValue: decimal.NewFromInt(10),
			RoomIDs: []string{"room-vault"}, DayOfWeek: &saturday,
		},
		{
			ID: "offer-paused", Name: "Paused Promotion", Active: false,
			DiscountType: "percentage", DiscountValue: decimal.NewFromInt(90),
			RoomIDs: []string{},
		},
	}

	return rooms, promos, offers
}

// SampleTimeSlots returns the demo opening hours. The late slot is retired.
func SampleTimeSlots() []model.TimeSlotRecord {
	slots := []string{"10:00", "12:00", "14:00", "16:00", "18:00", "20:00", "21:30"}

	records := make([]model.TimeSlotRecord, 0, len(slots)+1)
	for _, slot := range slots {
		records = append(records, model.TimeSlotRecord{ID: "slot-" + strings.ReplaceAll(slot, ":", ""), SlotTime: slot, IsActive: true})
	}
	return append(records, model.TimeSlotRecord{ID: "slot-2300", SlotTime: "23:00", IsActive: false})
}

// WriteSample writes the demo catalogue as a snapshot to w and returns the
// number of entries written.
func WriteSample(w io.Writer) (int, error) {
	rooms, promos, offers := SampleRecords()

	sw := NewWriter(w)
	for _, r := range rooms {
		if err := sw.Add(TableRooms, r); err != nil {
			return sw.Written(), err
		}
	}
	for _, p := range promos {
		if err := sw.Add(TablePromoCodes, p); err != nil {
			return sw.Written(), err
		}
	}
	for _, o := range offers {
		if err := sw.Add(TableOffers, o); err != nil {
			return sw.Written(), err
		}
	}
	for _, s := range SampleTimeSlots() {
		if err := sw.Add(TableTimeSlots, s); err != nil {
			return sw.Written(), err
		}
	}

	return sw.Written(), sw.Close()
}
