package violation

// Type classifies why a violation was raised. wrong_berth and
// illegal_mooring are auto-created from inspections; manual_report comes
// from staff directly.
type Type string

const (
	TypeWrongBerth     Type = "wrong_berth"
	TypeIllegalMooring Type = "illegal_mooring"
	TypeManualReport   Type = "manual_report"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeWrongBerth, TypeIllegalMooring, TypeManualReport:
		return true
	default:
		return false
	}
}

// Status is the violation lifecycle: open -> in_progress -> resolved or
// dismissed. Forward-only, nothing is deleted.
type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusResolved   Status = "resolved"
	StatusDismissed  Status = "dismissed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusResolved, StatusDismissed:
		return true
	default:
		return false
	}
}

func (s Status) IsFinal() bool {
	return s == StatusResolved || s == StatusDismissed
}

func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusOpen:
		return next == StatusInProgress || next == StatusResolved || next == StatusDismissed
	case StatusInProgress:
		return next == StatusResolved || next == StatusDismissed
	default:
		return false
	}
}
