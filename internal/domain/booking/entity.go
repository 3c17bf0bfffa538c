package booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus        = errors.New("invalid booking status")
	ErrIllegalTransition    = errors.New("illegal booking status transition")
	ErrEmptyGuestName       = errors.New("guest name is required")
	ErrAlreadyFinal         = errors.New("booking is in a final state")
	ErrNotActiveForCheckIn  = errors.New("only pending or confirmed bookings can be checked in")
	ErrNotCheckedIn         = errors.New("only checked-in bookings can be checked out")
	ErrCancelAfterCheckIn   = errors.New("checked-in bookings cannot be cancelled")
)

// Guest is the person the berth is reserved for. Contact fields are
// free-form; only the name is mandatory.
type Guest struct {
	Name  string
	Email string
	Phone string
}

// Booking reserves one berth for a contiguous stay. The berth is referenced
// by id; the code is carried only as a denormalized display field and must
// never be used as a join key.
type Booking struct {
	id         uuid.UUID
	berthID    uuid.UUID
	berthCode  string
	guest      Guest
	vessel     Vessel
	stay       StayPeriod
	status     Status
	pricing    PriceBreakdown
	amountPaid Money
	payStatus  PaymentStatus
	createdBy  uuid.UUID
	createdAt  time.Time
	updatedAt  time.Time
}

func NewBooking(
	berthID uuid.UUID,
	berthCode string,
	guest Guest,
	vessel Vessel,
	stay StayPeriod,
	pricing PriceBreakdown,
	createdBy uuid.UUID,
) (*Booking, error) {
	if guest.Name == "" {
		return nil, ErrEmptyGuestName
	}
	if vessel.IsZero() {
		return nil, ErrEmptyVesselName
	}
	if err := pricing.Validate(); err != nil {
		return nil, err
	}
	return &Booking{
		id:        uuid.New(),
		berthID:   berthID,
		berthCode: berthCode,
		guest:     guest,
		vessel:    vessel,
		stay:      stay,
		status:    StatusPending,
		pricing:   pricing,
		payStatus: PaymentUnpaid,
		createdBy: createdBy,
	}, nil
}

func ReconstructBooking(
	id, berthID uuid.UUID,
	berthCode string,
	guest Guest,
	vessel Vessel,
	stay StayPeriod,
	status Status,
	pricing PriceBreakdown,
	amountPaid Money,
	payStatus PaymentStatus,
	createdBy uuid.UUID,
	createdAt, updatedAt time.Time,
) (*Booking, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return &Booking{
		id:         id,
		berthID:    berthID,
		berthCode:  berthCode,
		guest:      guest,
		vessel:     vessel,
		stay:       stay,
		status:     status,
		pricing:    pricing,
		amountPaid: amountPaid,
		payStatus:  payStatus,
		createdBy:  createdBy,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (b *Booking) ID() uuid.UUID               { return b.id }
func (b *Booking) BerthID() uuid.UUID          { return b.berthID }
func (b *Booking) BerthCode() string           { return b.berthCode }
func (b *Booking) Guest() Guest                { return b.guest }
func (b *Booking) Vessel() Vessel              { return b.vessel }
func (b *Booking) Stay() StayPeriod            { return b.stay }
func (b *Booking) Status() Status              { return b.status }
func (b *Booking) Pricing() PriceBreakdown     { return b.pricing }
func (b *Booking) AmountPaid() Money           { return b.amountPaid }
func (b *Booking) PaymentStatus() PaymentStatus { return b.payStatus }
func (b *Booking) CreatedBy() uuid.UUID        { return b.createdBy }
func (b *Booking) CreatedAt() time.Time        { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time        { return b.updatedAt }

func (b *Booking) IsActive() bool {
	return b.status.IsActive()
}

// Covers reports whether this booking claims the berth on the given day.
func (b *Booking) Covers(day time.Time) bool {
	return b.status.IsActive() && b.stay.Covers(day)
}

func (b *Booking) transition(next Status) error {
	if !b.status.canTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, b.status, next)
	}
	b.status = next
	return nil
}

func (b *Booking) Confirm() error {
	if b.status != StatusPending {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, b.status, StatusConfirmed)
	}
	return b.transition(StatusConfirmed)
}

// CheckIn advances the booking after an inspector verified the expected
// vessel on the berth. This is what makes "occupied" sticky instead of
// purely date-derived.
func (b *Booking) CheckIn() error {
	if b.status != StatusPending && b.status != StatusConfirmed {
		return ErrNotActiveForCheckIn
	}
	return b.transition(StatusCheckedIn)
}

func (b *Booking) CheckOut() error {
	if b.status != StatusCheckedIn {
		return ErrNotCheckedIn
	}
	return b.transition(StatusCheckedOut)
}

func (b *Booking) Cancel() error {
	if b.status == StatusCheckedIn {
		return ErrCancelAfterCheckIn
	}
	return b.transition(StatusCancelled)
}

func (b *Booking) MarkNoShow() error {
	return b.transition(StatusNoShow)
}

// ApplyPayments recomputes the payment aggregate from the append-only list.
func (b *Booking) ApplyPayments(payments []*Payment) {
	agg := AggregatePayments(b.pricing.Total, payments)
	b.amountPaid = agg.AmountPaid
	b.payStatus = agg.Status
}
