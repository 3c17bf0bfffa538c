package inspection

// Status is the inspector's verdict for one berth visit. The first three
// are only meaningful when the resolver found a covering booking (an
// expected vessel); the last two only when the berth resolved free.
type Status string

const (
	StatusCorrect        Status = "correct"
	StatusWrongVessel    Status = "wrong_vessel"
	StatusMissingVessel  Status = "missing_vessel"
	StatusEmptyOK        Status = "empty_ok"
	StatusIllegalMooring Status = "illegal_mooring"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusCorrect, StatusWrongVessel, StatusMissingVessel, StatusEmptyOK, StatusIllegalMooring:
		return true
	default:
		return false
	}
}

// RequiresExpectedVessel reports whether the status only makes sense when a
// covering booking exists.
func (s Status) RequiresExpectedVessel() bool {
	switch s {
	case StatusCorrect, StatusWrongVessel, StatusMissingVessel:
		return true
	default:
		return false
	}
}

// RequiresFoundVessel reports whether the inspector must record the vessel
// actually found. Submissions without a found registration are rejected
// before any write.
func (s Status) RequiresFoundVessel() bool {
	switch s {
	case StatusWrongVessel, StatusIllegalMooring:
		return true
	default:
		return false
	}
}

func (s Status) Label() string {
	switch s {
	case StatusCorrect:
		return "Correct vessel"
	case StatusWrongVessel:
		return "Wrong vessel"
	case StatusMissingVessel:
		return "Vessel missing"
	case StatusEmptyOK:
		return "Empty as expected"
	case StatusIllegalMooring:
		return "Illegal mooring"
	default:
		return "Unknown"
	}
}
