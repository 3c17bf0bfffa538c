package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"marina-ops/internal/infra"
	"marina-ops/internal/pkg/errs"
)

var ErrBookingNotFound = errs.New("booking not found")

type BookingView struct {
	ID              uuid.UUID     `json:"id"`
	BerthID         uuid.UUID     `json:"berth_id"`
	BerthCode       string        `json:"berth_code"`
	GuestName       string        `json:"guest_name"`
	GuestEmail      string        `json:"guest_email,omitempty"`
	GuestPhone      string        `json:"guest_phone,omitempty"`
	VesselName      string        `json:"vessel_name"`
	VesselReg       string        `json:"vessel_registration"`
	VesselLength    float64       `json:"vessel_length_m"`
	CheckIn         time.Time     `json:"check_in"`
	CheckOut        time.Time     `json:"check_out"`
	Status          string        `json:"status"`
	PerDayRateCents int64         `json:"per_day_rate_cents"`
	Nights          int           `json:"nights"`
	SubtotalCents   int64         `json:"subtotal_cents"`
	DiscountPercent float64       `json:"discount_percent"`
	DiscountCents   int64         `json:"discount_cents"`
	TaxPercent      float64       `json:"tax_percent"`
	TaxCents        int64         `json:"tax_cents"`
	TotalCents      int64         `json:"total_cents"`
	AmountPaidCents int64         `json:"amount_paid_cents"`
	PaymentStatus   string        `json:"payment_status"`
	Payments        []PaymentView `json:"payments,omitempty"`
	CreatedBy       uuid.UUID     `json:"created_by"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

type BookingListItem struct {
	ID              uuid.UUID `json:"id"`
	BerthCode       string    `json:"berth_code"`
	GuestName       string    `json:"guest_name"`
	VesselName      string    `json:"vessel_name"`
	CheckIn         time.Time `json:"check_in"`
	CheckOut        time.Time `json:"check_out"`
	Status          string    `json:"status"`
	TotalCents      int64     `json:"total_cents"`
	AmountPaidCents int64     `json:"amount_paid_cents"`
	PaymentStatus   string    `json:"payment_status"`
	CreatedAt       time.Time `json:"created_at"`
}

type PaymentView struct {
	ID          uuid.UUID `json:"id"`
	AmountCents int64     `json:"amount_cents"`
	Method      string    `json:"method"`
	Reference   string    `json:"reference,omitempty"`
	ReceivedBy  uuid.UUID `json:"received_by"`
	ReceivedAt  time.Time `json:"received_at"`
}

// BookingFilter narrows List. Zero values mean "no filter".
type BookingFilter struct {
	Status    string
	BerthID   uuid.UUID
	GuestName string
	From      time.Time
	To        time.Time
	Limit     int32
	Offset    int32
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, filter BookingFilter) ([]*BookingListItem, error)
	// Arrivals lists active bookings whose stay starts on the given day.
	Arrivals(ctx context.Context, day time.Time) ([]*BookingListItem, error)
	// Departures lists checked-in bookings whose stay ends on the given day.
	Departures(ctx context.Context, day time.Time) ([]*BookingListItem, error)
}

type BookingViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindFiltered(ctx context.Context, filter BookingFilter) ([]*BookingListItem, error)
	FindArrivals(ctx context.Context, day time.Time) ([]*BookingListItem, error)
	FindDepartures(ctx context.Context, day time.Time) ([]*BookingListItem, error)
}

type bookingQueriesImpl struct {
	repo BookingViewRepo
}

func NewBookingQueries(repo BookingViewRepo) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	v, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return v, nil
}

func (q *bookingQueriesImpl) List(ctx context.Context, filter BookingFilter) ([]*BookingListItem, error) {
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	return q.repo.FindFiltered(ctx, filter)
}

func (q *bookingQueriesImpl) Arrivals(ctx context.Context, day time.Time) ([]*BookingListItem, error) {
	return q.repo.FindArrivals(ctx, day)
}

func (q *bookingQueriesImpl) Departures(ctx context.Context, day time.Time) ([]*BookingListItem, error) {
	return q.repo.FindDepartures(ctx, day)
}
