//go:build unit

package booking_test

import (
	"testing"

	"marina-ops/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateBookingTotal(t *testing.T) {
	t.Run("rounds every intermediate stage to cents", func(t *testing.T) {
		// 50.00/day, 3 nights, 10% discount, 13% tax:
		// subtotal 150.00, discount 15.00, tax 17.55, total 152.55
		b, err := booking.CalculateBookingTotal(5000, 3, 10, 13)
		require.NoError(t, err)

		assert.Equal(t, int64(15000), b.Subtotal.Cents())
		assert.Equal(t, int64(1500), b.DiscountAmount.Cents())
		assert.Equal(t, int64(1755), b.TaxAmount.Cents())
		assert.Equal(t, int64(15255), b.Total.Cents())
	})

	t.Run("no discount no tax", func(t *testing.T) {
		b, err := booking.CalculateBookingTotal(4250, 2, 0, 0)
		require.NoError(t, err)

		assert.Equal(t, int64(8500), b.Subtotal.Cents())
		assert.Equal(t, int64(0), b.DiscountAmount.Cents())
		assert.Equal(t, int64(0), b.TaxAmount.Cents())
		assert.Equal(t, int64(8500), b.Total.Cents())
	})

	t.Run("fractional cents round half away at each stage", func(t *testing.T) {
		// subtotal 99.99, 15% discount = 14.9985 -> 15.00,
		// taxable 84.99, 7% tax = 5.9493 -> 5.95, total 90.94
		b, err := booking.CalculateBookingTotal(3333, 3, 15, 7)
		require.NoError(t, err)

		assert.Equal(t, int64(9999), b.Subtotal.Cents())
		assert.Equal(t, int64(1500), b.DiscountAmount.Cents())
		assert.Equal(t, int64(595), b.TaxAmount.Cents())
		assert.Equal(t, int64(9094), b.Total.Cents())
	})

	t.Run("input validation", func(t *testing.T) {
		_, err := booking.CalculateBookingTotal(-1, 1, 0, 0)
		assert.ErrorIs(t, err, booking.ErrInvalidRate)

		_, err = booking.CalculateBookingTotal(5000, 0, 0, 0)
		assert.ErrorIs(t, err, booking.ErrInvalidNights)

		_, err = booking.CalculateBookingTotal(5000, 1, 101, 0)
		assert.ErrorIs(t, err, booking.ErrInvalidPercent)

		_, err = booking.CalculateBookingTotal(5000, 1, 0, -2)
		assert.ErrorIs(t, err, booking.ErrInvalidPercent)
	})

	t.Run("validate round-trips a stored breakdown", func(t *testing.T) {
		b, err := booking.CalculateBookingTotal(5000, 3, 10, 13)
		require.NoError(t, err)
		assert.NoError(t, b.Validate())

		b.Total = booking.MustMoney(b.Total.Cents() + 1)
		assert.ErrorIs(t, b.Validate(), booking.ErrInvalidBreakdown)
	})
}
