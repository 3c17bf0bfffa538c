//go:build unit

package booking_test

import (
	"testing"
	"time"

	"marina-ops/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func payment(t *testing.T, bookingID uuid.UUID, cents int64) *booking.Payment {
	t.Helper()
	p, err := booking.NewPayment(bookingID, booking.MustMoney(cents), "card", "", uuid.New(), time.Now())
	require.NoError(t, err)
	return p
}

func TestAggregatePayments(t *testing.T) {
	bookingID := uuid.New()
	total := booking.MustMoney(33900)

	t.Run("no payments is unpaid", func(t *testing.T) {
		agg := booking.AggregatePayments(total, nil)
		assert.Equal(t, int64(0), agg.AmountPaid.Cents())
		assert.Equal(t, booking.PaymentUnpaid, agg.Status)
	})

	t.Run("partial payment", func(t *testing.T) {
		agg := booking.AggregatePayments(total, []*booking.Payment{
			payment(t, bookingID, 10000),
		})
		assert.Equal(t, int64(10000), agg.AmountPaid.Cents())
		assert.Equal(t, booking.PaymentPartial, agg.Status)
	})

	t.Run("payments summing to the total settle the booking", func(t *testing.T) {
		agg := booking.AggregatePayments(total, []*booking.Payment{
			payment(t, bookingID, 10000),
			payment(t, bookingID, 23900),
		})
		assert.Equal(t, int64(33900), agg.AmountPaid.Cents())
		assert.Equal(t, booking.PaymentPaid, agg.Status)
	})

	t.Run("overpayment still reads paid", func(t *testing.T) {
		agg := booking.AggregatePayments(total, []*booking.Payment{
			payment(t, bookingID, 40000),
		})
		assert.Equal(t, booking.PaymentPaid, agg.Status)
	})

	t.Run("zero amount payment rejected", func(t *testing.T) {
		_, err := booking.NewPayment(bookingID, booking.Money{}, "cash", "", uuid.New(), time.Now())
		assert.ErrorIs(t, err, booking.ErrNegativeAmount)
	})
}
