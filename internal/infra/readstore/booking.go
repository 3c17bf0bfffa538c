package readstore

import (
	"context"
	"fmt"
	"time"

	"marina-ops/internal/domain/booking"
	"marina-ops/internal/infra"
	"marina-ops/internal/infra/db"
	"marina-ops/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

var _ queries.BookingViewRepo = (*BookingReadStore)(nil)

const bookingViewSQL = `
SELECT id, berth_id, berth_code,
	guest_name, guest_email, guest_phone,
	vessel_name, vessel_registration, vessel_length_m,
	check_in, check_out, status,
	per_day_rate_cents, nights, subtotal_cents,
	discount_percent, discount_cents, tax_percent, tax_cents, total_cents,
	amount_paid_cents, payment_status, created_by, created_at, updated_at
FROM berth_bookings`

const bookingListSQL = `
SELECT id, berth_code, guest_name, vessel_name,
	check_in, check_out, status,
	total_cents, amount_paid_cents, payment_status, created_at
FROM berth_bookings`

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	var v queries.BookingView
	err := r.db.QueryRow(ctx, bookingViewSQL+` WHERE id = $1`, id).Scan(
		&v.ID, &v.BerthID, &v.BerthCode,
		&v.GuestName, &v.GuestEmail, &v.GuestPhone,
		&v.VesselName, &v.VesselReg, &v.VesselLength,
		&v.CheckIn, &v.CheckOut, &v.Status,
		&v.PerDayRateCents, &v.Nights, &v.SubtotalCents,
		&v.DiscountPercent, &v.DiscountCents, &v.TaxPercent, &v.TaxCents, &v.TotalCents,
		&v.AmountPaidCents, &v.PaymentStatus, &v.CreatedBy, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	payments, err := r.findPayments(ctx, id)
	if err != nil {
		return nil, err
	}
	v.Payments = payments

	return &v, nil
}

func (r *BookingReadStore) FindFiltered(ctx context.Context, filter queries.BookingFilter) ([]*queries.BookingListItem, error) {
	sql := bookingListSQL + ` WHERE 1=1`
	args := []any{}

	if filter.Status != "" {
		args = append(args, filter.Status)
		sql += fmt.Sprintf(` AND status = $%d`, len(args))
	}
	if filter.BerthID != uuid.Nil {
		args = append(args, filter.BerthID)
		sql += fmt.Sprintf(` AND berth_id = $%d`, len(args))
	}
	if filter.GuestName != "" {
		args = append(args, "%"+filter.GuestName+"%")
		sql += fmt.Sprintf(` AND guest_name ILIKE $%d`, len(args))
	}
	if !filter.From.IsZero() {
		args = append(args, booking.NormalizeDate(filter.From))
		sql += fmt.Sprintf(` AND check_out > $%d`, len(args))
	}
	if !filter.To.IsZero() {
		args = append(args, booking.NormalizeDate(filter.To))
		sql += fmt.Sprintf(` AND check_in < $%d`, len(args))
	}

	args = append(args, filter.Limit)
	sql += fmt.Sprintf(` ORDER BY check_in DESC, created_at DESC LIMIT $%d`, len(args))
	args = append(args, filter.Offset)
	sql += fmt.Sprintf(` OFFSET $%d`, len(args))

	return r.queryList(ctx, sql, args...)
}

func (r *BookingReadStore) FindArrivals(ctx context.Context, day time.Time) ([]*queries.BookingListItem, error) {
	return r.queryList(ctx,
		bookingListSQL+` WHERE check_in = $1 AND status = ANY($2) ORDER BY berth_code`,
		booking.NormalizeDate(day), activeStatusStrings(),
	)
}

func (r *BookingReadStore) FindDepartures(ctx context.Context, day time.Time) ([]*queries.BookingListItem, error) {
	return r.queryList(ctx,
		bookingListSQL+` WHERE check_out = $1 AND status = $2 ORDER BY berth_code`,
		booking.NormalizeDate(day), booking.StatusCheckedIn.String(),
	)
}

func (r *BookingReadStore) queryList(ctx context.Context, sql string, args ...any) ([]*queries.BookingListItem, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find bookings", err)
	}
	defer rows.Close()

	var result []*queries.BookingListItem
	for rows.Next() {
		var item queries.BookingListItem
		if err := rows.Scan(
			&item.ID, &item.BerthCode, &item.GuestName, &item.VesselName,
			&item.CheckIn, &item.CheckOut, &item.Status,
			&item.TotalCents, &item.AmountPaidCents, &item.PaymentStatus, &item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return result, nil
}

func (r *BookingReadStore) findPayments(ctx context.Context, bookingID uuid.UUID) ([]queries.PaymentView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, amount_cents, method, reference, received_by, received_at
		 FROM booking_payments WHERE booking_id = $1 ORDER BY received_at`,
		bookingID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find payments", err)
	}
	defer rows.Close()

	var result []queries.PaymentView
	for rows.Next() {
		var p queries.PaymentView
		if err := rows.Scan(&p.ID, &p.AmountCents, &p.Method, &p.Reference, &p.ReceivedBy, &p.ReceivedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan payment row", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate payment rows", err)
	}
	return result, nil
}
