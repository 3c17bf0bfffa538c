package readstore

import (
	"context"
	"time"

	"marina-ops/internal/domain/berth"
	"marina-ops/internal/domain/booking"
	"marina-ops/internal/domain/maintenance"
	"marina-ops/internal/domain/violation"
	"marina-ops/internal/infra"
	"marina-ops/internal/infra/db"
	"marina-ops/internal/usecase/shared"

	"github.com/google/uuid"
)

// CommandReads rehydrates full domain entities for command validation. It is
// bound to a DBTX so the same implementation serves pool-level reads and
// reads inside a transaction.
type CommandReads struct {
	db db.DBTX
}

func NewCommandReads(dbtx db.DBTX) *CommandReads {
	return &CommandReads{db: dbtx}
}

var _ shared.CommandReads = (*CommandReads)(nil)

func (r *CommandReads) BerthByID(ctx context.Context, id uuid.UUID) (*berth.Berth, error) {
	row := r.db.QueryRow(ctx, `SELECT `+berthColumns+` FROM berths WHERE id = $1`, id)
	b, err := scanBerthEntity(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("berth not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load berth", err)
	}
	return b, nil
}

func (r *CommandReads) BerthByCode(ctx context.Context, code string) (*berth.Berth, error) {
	row := r.db.QueryRow(ctx, `SELECT `+berthColumns+` FROM berths WHERE code = $1`, code)
	b, err := scanBerthEntity(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("berth not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load berth by code", err)
	}
	return b, nil
}

func (r *CommandReads) BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM berth_bookings WHERE id = $1`, id)
	b, err := scanBookingEntity(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load booking", err)
	}
	return b, nil
}

// ActiveBookingsForBerth returns the resolver's input set: every booking on
// the berth still holding a claim (pending, confirmed or checked_in).
func (r *CommandReads) ActiveBookingsForBerth(ctx context.Context, berthID uuid.UUID) ([]*booking.Booking, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+bookingColumns+` FROM berth_bookings
		 WHERE berth_id = $1 AND status = ANY($2)
		 ORDER BY created_at`,
		berthID, activeStatusStrings(),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load active bookings", err)
	}
	defer rows.Close()

	var result []*booking.Booking
	for rows.Next() {
		b, err := scanBookingEntity(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bookings", err)
	}
	return result, nil
}

func (r *CommandReads) PaymentsForBooking(ctx context.Context, bookingID uuid.UUID) ([]*booking.Payment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, booking_id, amount_cents, method, reference, received_by, received_at
		 FROM booking_payments WHERE booking_id = $1 ORDER BY received_at`,
		bookingID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load payments", err)
	}
	defer rows.Close()

	var result []*booking.Payment
	for rows.Next() {
		var (
			id, bID, receivedBy uuid.UUID
			amountCents         int64
			method, reference   string
			receivedAt          time.Time
		)
		if err := rows.Scan(&id, &bID, &amountCents, &method, &reference, &receivedBy, &receivedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan payment", err)
		}
		amount, err := booking.NewMoney(amountCents)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid payment amount", err)
		}
		result = append(result, booking.ReconstructPayment(id, bID, amount, method, reference, receivedBy, receivedAt))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate payments", err)
	}
	return result, nil
}

func (r *CommandReads) ViolationByID(ctx context.Context, id uuid.UUID) (*violation.Violation, error) {
	var (
		vID, berthID, reportedBy uuid.UUID
		berthCode                string
		typeStr, statusStr       string
		vesselName, vesselReg    string
		description              string
		inspectionID             *uuid.UUID
		resolvedBy               *uuid.UUID
		resolvedAt               *time.Time
		createdAt, updatedAt     time.Time
	)
	err := r.db.QueryRow(ctx,
		`SELECT id, berth_id, berth_code, type, status,
			vessel_name, vessel_registration, description,
			inspection_id, reported_by, resolved_by, resolved_at, created_at, updated_at
		 FROM violations WHERE id = $1`,
		id,
	).Scan(
		&vID, &berthID, &berthCode, &typeStr, &statusStr,
		&vesselName, &vesselReg, &description,
		&inspectionID, &reportedBy, &resolvedBy, &resolvedAt, &createdAt, &updatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("violation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load violation", err)
	}

	v, err := violation.ReconstructViolation(
		vID, berthID, berthCode,
		violation.Type(typeStr), violation.Status(statusStr),
		vesselName, vesselReg, description,
		inspectionID, reportedBy, resolvedBy, resolvedAt, createdAt, updatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid violation row", err)
	}
	return v, nil
}

func (r *CommandReads) DamageReportByID(ctx context.Context, id uuid.UUID) (*maintenance.DamageReport, error) {
	var (
		dID, reportedBy       uuid.UUID
		location              string
		categoryStr, sevStr   string
		description, photoURL string
		statusStr             string
		createdAt, updatedAt  time.Time
	)
	err := r.db.QueryRow(ctx,
		`SELECT id, location, category, severity, description, photo_url, status,
			reported_by, created_at, updated_at
		 FROM damage_reports WHERE id = $1`,
		id,
	).Scan(
		&dID, &location, &categoryStr, &sevStr, &description, &photoURL, &statusStr,
		&reportedBy, &createdAt, &updatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("damage report not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load damage report", err)
	}

	d, err := maintenance.ReconstructDamageReport(
		dID, location,
		maintenance.Category(categoryStr), maintenance.Severity(sevStr),
		description, photoURL, maintenance.Status(statusStr),
		reportedBy, createdAt, updatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid damage report row", err)
	}
	return d, nil
}

func activeStatusStrings() []string {
	statuses := booking.ActiveStatuses()
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = s.String()
	}
	return out
}
