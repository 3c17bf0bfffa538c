//go:build unit

package berth_test

import (
	"testing"

	"marina-ops/internal/domain/berth"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDims() berth.Dimensions {
	return berth.Dimensions{
		LengthMeters:    12,
		WidthMeters:     4.5,
		DepthMeters:     3,
		MaxVesselLength: 11,
		MaxVesselWidth:  4,
	}
}

func TestCode(t *testing.T) {
	tests := []struct {
		in      string
		pontoon string
		wantErr bool
	}{
		{"A-05", "A", false},
		{"a-05", "A", false}, // normalized to upper case
		{" B-12 ", "B", false},
		{"MAIN-3", "MAIN", false},
		{"A05", "", true},
		{"-05", "", true},
		{"A-", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			code, err := berth.NewCode(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, berth.ErrInvalidCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.pontoon, code.Pontoon())
		})
	}
}

func TestBerth(t *testing.T) {
	code, err := berth.NewCode("A-05")
	require.NoError(t, err)
	pos, err := berth.NewPosition(52.377, 4.901)
	require.NoError(t, err)

	t.Run("placing a marker creates an active berth", func(t *testing.T) {
		b, err := berth.NewBerth(code, pos, validDims(), berth.Amenities{Water: true}, uuid.New())
		require.NoError(t, err)

		assert.Equal(t, berth.StatusActive, b.Status())
		assert.Equal(t, "A", b.Pontoon())
		assert.True(t, b.IsBookable())
	})

	t.Run("maintenance berths are not bookable", func(t *testing.T) {
		b, err := berth.NewBerth(code, pos, validDims(), berth.Amenities{}, uuid.New())
		require.NoError(t, err)

		require.NoError(t, b.SetStatus(berth.StatusMaintenance))
		assert.False(t, b.IsBookable())

		assert.Error(t, b.SetStatus(berth.Status("sunk")))
	})

	t.Run("invalid dimensions rejected", func(t *testing.T) {
		dims := validDims()
		dims.DepthMeters = 0
		_, err := berth.NewBerth(code, pos, dims, berth.Amenities{}, uuid.New())
		assert.ErrorIs(t, err, berth.ErrInvalidDimensions)
	})

	t.Run("position bounds", func(t *testing.T) {
		_, err := berth.NewPosition(91, 0)
		assert.ErrorIs(t, err, berth.ErrInvalidPosition)
		_, err = berth.NewPosition(0, -181)
		assert.ErrorIs(t, err, berth.ErrInvalidPosition)
	})

	t.Run("vessel fit", func(t *testing.T) {
		dims := validDims()
		assert.True(t, dims.FitsVessel(10.5))
		assert.False(t, dims.FitsVessel(11.5))
		assert.False(t, dims.FitsVessel(0))
	})
}
