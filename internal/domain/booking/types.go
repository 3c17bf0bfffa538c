package booking

// Status is the booking lifecycle. Forward-only:
// pending -> confirmed -> checked_in -> checked_out, with cancelled and
// no_show reachable from pending/confirmed.
type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusCheckedIn  Status = "checked_in"
	StatusCheckedOut Status = "checked_out"
	StatusCancelled  Status = "cancelled"
	StatusNoShow     Status = "no_show"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusCancelled, StatusNoShow:
		return true
	default:
		return false
	}
}

// IsActive reports whether the booking can still claim its berth.
// Cancelled, no-show and checked-out bookings never cover a date.
func (s Status) IsActive() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCheckedIn:
		return true
	default:
		return false
	}
}

func (s Status) canTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCheckedIn || next == StatusCancelled || next == StatusNoShow
	case StatusConfirmed:
		return next == StatusCheckedIn || next == StatusCancelled || next == StatusNoShow
	case StatusCheckedIn:
		return next == StatusCheckedOut
	default:
		return false
	}
}

// ActiveStatuses is the set the occupancy resolver filters on.
func ActiveStatuses() []Status {
	return []Status{StatusPending, StatusConfirmed, StatusCheckedIn}
}

type PaymentStatus string

const (
	PaymentUnpaid  PaymentStatus = "unpaid"
	PaymentPartial PaymentStatus = "partial"
	PaymentPaid    PaymentStatus = "paid"
)

func (s PaymentStatus) String() string {
	return string(s)
}

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentUnpaid, PaymentPartial, PaymentPaid:
		return true
	default:
		return false
	}
}
