//go:build unit

package berth_test

import (
	"testing"
	"time"

	"marina-ops/internal/domain/berth"
	"marina-ops/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func makeBooking(t *testing.T, berthID uuid.UUID, checkIn, checkOut string, status booking.Status, createdAt time.Time) *booking.Booking {
	t.Helper()

	stay, err := booking.NewStayPeriod(date(checkIn), date(checkOut))
	require.NoError(t, err)

	vessel, err := booking.NewVessel("Sea Breeze", "NL-1234-AB", 11.5)
	require.NoError(t, err)

	pricing, err := booking.CalculateBookingTotal(5000, stay.Nights(), 0, 0)
	require.NoError(t, err)

	b, err := booking.ReconstructBooking(
		uuid.New(), berthID, "A-05",
		booking.Guest{Name: "J. Doe"},
		vessel, stay, status, pricing,
		booking.Money{}, booking.PaymentUnpaid,
		uuid.New(), createdAt, createdAt,
	)
	require.NoError(t, err)
	return b
}

func TestResolve(t *testing.T) {
	berthID := uuid.New()
	now := time.Now()

	t.Run("no bookings resolves free", func(t *testing.T) {
		res := berth.Resolve(berthID, nil, date("2025-06-02"))
		assert.Equal(t, berth.OccupancyFree, res.Occupancy)
		assert.Nil(t, res.Covering)
		assert.False(t, res.HasConflict())

		_, ok := res.ExpectedVessel()
		assert.False(t, ok)
	})

	t.Run("half-open stay interval", func(t *testing.T) {
		b := makeBooking(t, berthID, "2025-06-01", "2025-06-05", booking.StatusConfirmed, now)

		tests := []struct {
			day  string
			want berth.Occupancy
		}{
			{"2025-05-31", berth.OccupancyFree},
			{"2025-06-01", berth.OccupancyReserved}, // check-in day covered
			{"2025-06-02", berth.OccupancyReserved},
			{"2025-06-04", berth.OccupancyReserved},
			{"2025-06-05", berth.OccupancyFree}, // check-out day free for resale
		}
		for _, tt := range tests {
			t.Run(tt.day, func(t *testing.T) {
				res := berth.Resolve(berthID, []*booking.Booking{b}, date(tt.day))
				assert.Equal(t, tt.want, res.Occupancy)
			})
		}
	})

	t.Run("status mapping", func(t *testing.T) {
		tests := []struct {
			name   string
			status booking.Status
			want   berth.Occupancy
		}{
			{"pending reserves", booking.StatusPending, berth.OccupancyReserved},
			{"confirmed reserves", booking.StatusConfirmed, berth.OccupancyReserved},
			{"checked_in occupies", booking.StatusCheckedIn, berth.OccupancyOccupied},
			{"cancelled never covers", booking.StatusCancelled, berth.OccupancyFree},
			{"no_show never covers", booking.StatusNoShow, berth.OccupancyFree},
			{"checked_out never covers", booking.StatusCheckedOut, berth.OccupancyFree},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				b := makeBooking(t, berthID, "2025-06-01", "2025-06-05", tt.status, now)
				res := berth.Resolve(berthID, []*booking.Booking{b}, date("2025-06-02"))
				assert.Equal(t, tt.want, res.Occupancy)
			})
		}
	})

	t.Run("other berths ignored", func(t *testing.T) {
		other := makeBooking(t, uuid.New(), "2025-06-01", "2025-06-05", booking.StatusCheckedIn, now)
		res := berth.Resolve(berthID, []*booking.Booking{other}, date("2025-06-02"))
		assert.Equal(t, berth.OccupancyFree, res.Occupancy)
	})

	t.Run("deterministic for identical inputs", func(t *testing.T) {
		bs := []*booking.Booking{
			makeBooking(t, berthID, "2025-06-01", "2025-06-05", booking.StatusConfirmed, now),
			makeBooking(t, berthID, "2025-06-10", "2025-06-12", booking.StatusPending, now),
		}
		first := berth.Resolve(berthID, bs, date("2025-06-03"))
		second := berth.Resolve(berthID, bs, date("2025-06-03"))
		assert.Equal(t, first, second)
	})

	t.Run("overlap picks most recent and reports conflict", func(t *testing.T) {
		older := makeBooking(t, berthID, "2025-06-01", "2025-06-05", booking.StatusConfirmed, now.Add(-time.Hour))
		newer := makeBooking(t, berthID, "2025-06-02", "2025-06-06", booking.StatusPending, now)

		res := berth.Resolve(berthID, []*booking.Booking{older, newer}, date("2025-06-03"))
		require.NotNil(t, res.Covering)
		assert.Equal(t, newer.ID(), res.Covering.ID())
		assert.True(t, res.HasConflict())
		require.Len(t, res.Conflicting, 1)
		assert.Equal(t, older.ID(), res.Conflicting[0].ID())

		// Input order must not matter.
		res2 := berth.Resolve(berthID, []*booking.Booking{newer, older}, date("2025-06-03"))
		assert.Equal(t, res.Covering.ID(), res2.Covering.ID())
	})

	t.Run("expected vessel comes from the covering booking", func(t *testing.T) {
		b := makeBooking(t, berthID, "2025-06-01", "2025-06-05", booking.StatusConfirmed, now)
		res := berth.Resolve(berthID, []*booking.Booking{b}, date("2025-06-01"))

		vessel, ok := res.ExpectedVessel()
		require.True(t, ok)
		assert.Equal(t, "Sea Breeze", vessel.Name())
		assert.Equal(t, "NL-1234-AB", vessel.Registration())
	})
}
