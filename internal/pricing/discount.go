package pricing

import (
	"escape-booking/internal/model"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// CalculateDiscount returns the discount for price under the given kind and
// magnitude, in the smallest currency unit.
//
// Percentage discounts round half away from zero. Fixed discounts are rounded
// to a whole unit and never exceed the price. Unknown kinds discount nothing.
// The result is always within [0, price].
func CalculateDiscount(price int64, kind model.DiscountType, value decimal.Decimal) int64 {
	if price <= 0 {
		return 0
	}

	var discount int64
	switch kind {
	case model.DiscountTypePercentage:
		discount = decimal.NewFromInt(price).Mul(value).Div(hundred).Round(0).IntPart()
	case model.DiscountTypeFixed:
		discount = value.Round(0).IntPart()
	default:
		return 0
	}

	return clamp(discount, 0, price)
}

func clamp(v, low, high int64) int64 {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
