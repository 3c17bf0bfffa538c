package repository

import (
	"context"

	"marina-ops/internal/domain/booking"
	"marina-ops/internal/infra"
	"marina-ops/internal/infra/db"

	"github.com/google/uuid"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

const insertBookingSQL = `
INSERT INTO berth_bookings (
	id, berth_id, berth_code,
	guest_name, guest_email, guest_phone,
	vessel_name, vessel_registration, vessel_length_m,
	check_in, check_out, status,
	per_day_rate_cents, nights, subtotal_cents,
	discount_percent, discount_cents, tax_percent, tax_cents, total_cents,
	amount_paid_cents, payment_status, created_by
) VALUES (
	$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
	$13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23
)
RETURNING id`

// Create relies on the no_overlapping_active_bookings exclusion constraint:
// a concurrent overlapping insert surfaces as KindConflict, not as a
// client-side race.
func (r *BookingRepository) Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	g := b.Guest()
	v := b.Vessel()
	p := b.Pricing()

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, insertBookingSQL,
		b.ID(), b.BerthID(), b.BerthCode(),
		g.Name, g.Email, g.Phone,
		v.Name(), v.Registration(), v.LengthMeters(),
		b.Stay().CheckIn(), b.Stay().CheckOut(), b.Status().String(),
		p.PerDayRate.Cents(), p.Nights, p.Subtotal.Cents(),
		p.DiscountPercent, p.DiscountAmount.Cents(), p.TaxPercent, p.TaxAmount.Cents(), p.Total.Cents(),
		b.AmountPaid().Cents(), b.PaymentStatus().String(), b.CreatedBy(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status booking.Status) error {
	tag, err := dbtx.Exec(ctx,
		`UPDATE berth_bookings SET status = $2, updated_at = now() WHERE id = $1`,
		id, status.String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) UpdatePaymentAggregate(ctx context.Context, dbtx db.DBTX, id uuid.UUID, agg booking.PaymentAggregate) error {
	tag, err := dbtx.Exec(ctx,
		`UPDATE berth_bookings SET amount_paid_cents = $2, payment_status = $3, updated_at = now() WHERE id = $1`,
		id, agg.AmountPaid.Cents(), agg.Status.String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking payment aggregate", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
