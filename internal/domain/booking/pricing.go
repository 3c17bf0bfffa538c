package booking

import (
	"errors"
	"math"
)

var (
	ErrInvalidNights    = errors.New("nights must be positive")
	ErrInvalidRate      = errors.New("per-day rate cannot be negative")
	ErrInvalidPercent   = errors.New("percentage must be between 0 and 100")
	ErrInvalidBreakdown = errors.New("price breakdown does not add up")
)

// PriceBreakdown is the stored pricing of a booking. Every derived value is
// rounded to whole cents before the next stage is computed, so re-deriving
// the breakdown from its inputs always reproduces the stored cents exactly.
type PriceBreakdown struct {
	PerDayRate      Money
	Nights          int
	Subtotal        Money
	DiscountPercent float64
	DiscountAmount  Money
	TaxPercent      float64
	TaxAmount       Money
	Total           Money
}

// CalculateBookingTotal derives the full pricing breakdown.
// Stages, each rounded to cents before the next:
//
//	subtotal = rate * nights
//	discount = subtotal * discountPercent/100
//	tax      = (subtotal - discount) * taxPercent/100
//	total    = subtotal - discount + tax
func CalculateBookingTotal(perDayRateCents int64, nights int, discountPercent, taxPercent float64) (PriceBreakdown, error) {
	if perDayRateCents < 0 {
		return PriceBreakdown{}, ErrInvalidRate
	}
	if nights <= 0 {
		return PriceBreakdown{}, ErrInvalidNights
	}
	if discountPercent < 0 || discountPercent > 100 || taxPercent < 0 || taxPercent > 100 {
		return PriceBreakdown{}, ErrInvalidPercent
	}

	subtotal := perDayRateCents * int64(nights)
	discount := roundCents(float64(subtotal) * discountPercent / 100.0)
	taxable := subtotal - discount
	tax := roundCents(float64(taxable) * taxPercent / 100.0)
	total := taxable + tax

	return PriceBreakdown{
		PerDayRate:      MustMoney(perDayRateCents),
		Nights:          nights,
		Subtotal:        MustMoney(subtotal),
		DiscountPercent: discountPercent,
		DiscountAmount:  MustMoney(discount),
		TaxPercent:      taxPercent,
		TaxAmount:       MustMoney(tax),
		Total:           MustMoney(total),
	}, nil
}

func roundCents(v float64) int64 {
	return int64(math.Round(v))
}

// Validate checks the internal consistency of a breakdown loaded from storage.
func (b PriceBreakdown) Validate() error {
	recomputed, err := CalculateBookingTotal(b.PerDayRate.Cents(), b.Nights, b.DiscountPercent, b.TaxPercent)
	if err != nil {
		return err
	}
	if recomputed.Total.Cents() != b.Total.Cents() {
		return ErrInvalidBreakdown
	}
	return nil
}
