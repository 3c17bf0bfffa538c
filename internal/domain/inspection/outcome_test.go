//go:build unit

package inspection_test

import (
	"testing"
	"time"

	"marina-ops/internal/domain/inspection"
	"marina-ops/internal/domain/violation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutcomeFor(t *testing.T) {
	tests := []struct {
		status inspection.Status
		want   inspection.Outcome
	}{
		{inspection.StatusCorrect, inspection.Outcome{CheckInBooking: true}},
		{inspection.StatusMissingVessel, inspection.Outcome{Anomaly: true}},
		{inspection.StatusEmptyOK, inspection.Outcome{}},
		{inspection.StatusWrongVessel, inspection.Outcome{RaiseViolation: true, ViolationType: violation.TypeWrongBerth}},
		{inspection.StatusIllegalMooring, inspection.Outcome{RaiseViolation: true, ViolationType: violation.TypeIllegalMooring}},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, inspection.OutcomeFor(tt.status))
		})
	}
}

func TestNewInspectionValidation(t *testing.T) {
	berthID := uuid.New()
	inspectorID := uuid.New()
	now := time.Now()
	expected := &inspection.ExpectedSnapshot{
		BookingID:  uuid.New(),
		VesselName: "Sea Breeze",
		VesselReg:  "NL-1234-AB",
		GuestName:  "J. Doe",
	}
	found := &inspection.FoundVessel{Name: "Intruder", Registration: "DE-9999-XY"}

	tests := []struct {
		name     string
		status   inspection.Status
		expected *inspection.ExpectedSnapshot
		found    *inspection.FoundVessel
		errIs    error
	}{
		{"correct with expected", inspection.StatusCorrect, expected, nil, nil},
		{"correct without expected rejected", inspection.StatusCorrect, nil, nil, inspection.ErrExpectedVesselRequired},
		{"missing_vessel with expected", inspection.StatusMissingVessel, expected, nil, nil},
		{"empty_ok on free berth", inspection.StatusEmptyOK, nil, nil, nil},
		{"empty_ok with expected rejected", inspection.StatusEmptyOK, expected, nil, inspection.ErrBerthNotExpectedEmpty},
		{"wrong_vessel with found", inspection.StatusWrongVessel, expected, found, nil},
		{"wrong_vessel without found rejected", inspection.StatusWrongVessel, expected, nil, inspection.ErrFoundVesselRequired},
		{"wrong_vessel with blank registration rejected", inspection.StatusWrongVessel, expected, &inspection.FoundVessel{Name: "X", Registration: "   "}, inspection.ErrFoundVesselRequired},
		{"illegal_mooring with found", inspection.StatusIllegalMooring, nil, found, nil},
		{"illegal_mooring without found rejected", inspection.StatusIllegalMooring, nil, nil, inspection.ErrFoundVesselRequired},
		{"unknown status rejected", inspection.Status("bogus"), nil, nil, inspection.ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			insp, err := inspection.NewInspection(
				berthID, "A-05", inspectorID, tt.status, tt.expected, tt.found, "", now,
			)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				assert.Nil(t, insp)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, insp)
			assert.Equal(t, tt.status, insp.Status())
			assert.Equal(t, "A-05", insp.BerthCode())
		})
	}
}
