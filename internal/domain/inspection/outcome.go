package inspection

import (
	"marina-ops/internal/domain/violation"
)

// Outcome is the effect plan for one inspection submission. All listed
// effects belong to the same atomic write: the inspection row always, a
// violation when the status flags one, and a booking check-in when the
// expected vessel was confirmed.
//
//	correct         -> check in the covering booking
//	missing_vessel  -> anomaly only, nothing else
//	empty_ok        -> nothing else
//	wrong_vessel    -> violation (wrong_berth)
//	illegal_mooring -> violation (illegal_mooring)
type Outcome struct {
	// CheckInBooking means the covering booking advances to checked_in,
	// making the berth resolve Occupied from now on.
	CheckInBooking bool

	// RaiseViolation means a violation of ViolationType is opened,
	// back-referencing the inspection.
	RaiseViolation bool
	ViolationType  violation.Type

	// Anomaly marks observations worth flagging in logs without opening
	// a violation (expected vessel missing from its berth).
	Anomaly bool
}

// OutcomeFor maps an inspection status to its side effects. The status is
// assumed to have passed NewInspection validation.
func OutcomeFor(status Status) Outcome {
	switch status {
	case StatusCorrect:
		return Outcome{CheckInBooking: true}
	case StatusMissingVessel:
		return Outcome{Anomaly: true}
	case StatusEmptyOK:
		return Outcome{}
	case StatusWrongVessel:
		return Outcome{RaiseViolation: true, ViolationType: violation.TypeWrongBerth}
	case StatusIllegalMooring:
		return Outcome{RaiseViolation: true, ViolationType: violation.TypeIllegalMooring}
	default:
		return Outcome{}
	}
}
