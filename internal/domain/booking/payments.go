package booking

import (
	"time"

	"github.com/google/uuid"
)

// Payment is a single append-only payment record against a booking.
// Payments are never edited or deleted; the booking aggregate is always
// recomputed from the full list.
type Payment struct {
	id         uuid.UUID
	bookingID  uuid.UUID
	amount     Money
	method     string
	reference  string
	receivedBy uuid.UUID
	receivedAt time.Time
}

func NewPayment(bookingID uuid.UUID, amount Money, method, reference string, receivedBy uuid.UUID, receivedAt time.Time) (*Payment, error) {
	if amount.IsZero() {
		return nil, ErrNegativeAmount
	}
	return &Payment{
		id:         uuid.New(),
		bookingID:  bookingID,
		amount:     amount,
		method:     method,
		reference:  reference,
		receivedBy: receivedBy,
		receivedAt: receivedAt,
	}, nil
}

func ReconstructPayment(id, bookingID uuid.UUID, amount Money, method, reference string, receivedBy uuid.UUID, receivedAt time.Time) *Payment {
	return &Payment{
		id:         id,
		bookingID:  bookingID,
		amount:     amount,
		method:     method,
		reference:  reference,
		receivedBy: receivedBy,
		receivedAt: receivedAt,
	}
}

func (p *Payment) ID() uuid.UUID         { return p.id }
func (p *Payment) BookingID() uuid.UUID  { return p.bookingID }
func (p *Payment) Amount() Money         { return p.amount }
func (p *Payment) Method() string        { return p.method }
func (p *Payment) Reference() string     { return p.reference }
func (p *Payment) ReceivedBy() uuid.UUID { return p.receivedBy }
func (p *Payment) ReceivedAt() time.Time { return p.receivedAt }

// PaymentAggregate is the derived payment state of a booking.
type PaymentAggregate struct {
	AmountPaid Money
	Status     PaymentStatus
}

// AggregatePayments folds an append-only payment list into the booking's
// payment state: paid when the sum reaches the total, partial when anything
// has been received, unpaid otherwise.
func AggregatePayments(total Money, payments []*Payment) PaymentAggregate {
	var paid Money
	for _, p := range payments {
		paid = paid.Add(p.Amount())
	}
	return PaymentAggregate{
		AmountPaid: paid,
		Status:     paymentStatusFor(total, paid),
	}
}

func paymentStatusFor(total, paid Money) PaymentStatus {
	switch {
	case !paid.IsZero() && paid.GreaterOrEqual(total):
		return PaymentPaid
	case !paid.IsZero():
		return PaymentPartial
	default:
		return PaymentUnpaid
	}
}
