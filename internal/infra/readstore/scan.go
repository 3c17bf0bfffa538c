package readstore

import (
	"time"

	"marina-ops/internal/domain/berth"
	"marina-ops/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const berthColumns = `
	id, code, lat, lng,
	length_m, width_m, depth_m, max_vessel_length_m, max_vessel_width_m,
	water, electricity, status, created_by, created_at, updated_at`

func scanBerthEntity(row pgx.Row) (*berth.Berth, error) {
	var (
		id, createdBy        uuid.UUID
		codeStr, statusStr   string
		lat, lng             float64
		dims                 berth.Dimensions
		am                   berth.Amenities
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(
		&id, &codeStr, &lat, &lng,
		&dims.LengthMeters, &dims.WidthMeters, &dims.DepthMeters,
		&dims.MaxVesselLength, &dims.MaxVesselWidth,
		&am.Water, &am.Electricity, &statusStr, &createdBy, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	code, err := berth.NewCode(codeStr)
	if err != nil {
		return nil, err
	}
	pos, err := berth.NewPosition(lat, lng)
	if err != nil {
		return nil, err
	}
	return berth.ReconstructBerth(id, code, pos, dims, am, berth.Status(statusStr), createdBy, createdAt, updatedAt)
}

const bookingColumns = `
	id, berth_id, berth_code,
	guest_name, guest_email, guest_phone,
	vessel_name, vessel_registration, vessel_length_m,
	check_in, check_out, status,
	per_day_rate_cents, nights, subtotal_cents,
	discount_percent, discount_cents, tax_percent, tax_cents, total_cents,
	amount_paid_cents, payment_status, created_by, created_at, updated_at`

func scanBookingEntity(row pgx.Row) (*booking.Booking, error) {
	var (
		id, berthID, createdBy  uuid.UUID
		berthCode               string
		guest                   booking.Guest
		vesselName, vesselReg   string
		vesselLength            float64
		checkIn, checkOut       time.Time
		statusStr, payStatusStr string
		rateCents               int64
		nights                  int
		subtotalCents           int64
		discountPct             float64
		discountCents           int64
		taxPct                  float64
		taxCents, totalCents    int64
		paidCents               int64
		createdAt, updatedAt    time.Time
	)
	if err := row.Scan(
		&id, &berthID, &berthCode,
		&guest.Name, &guest.Email, &guest.Phone,
		&vesselName, &vesselReg, &vesselLength,
		&checkIn, &checkOut, &statusStr,
		&rateCents, &nights, &subtotalCents,
		&discountPct, &discountCents, &taxPct, &taxCents, &totalCents,
		&paidCents, &payStatusStr, &createdBy, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	vessel, err := booking.NewVessel(vesselName, vesselReg, vesselLength)
	if err != nil {
		return nil, err
	}
	stay, err := booking.NewStayPeriod(checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	pricing := booking.PriceBreakdown{
		PerDayRate:      booking.MustMoney(rateCents),
		Nights:          nights,
		Subtotal:        booking.MustMoney(subtotalCents),
		DiscountPercent: discountPct,
		DiscountAmount:  booking.MustMoney(discountCents),
		TaxPercent:      taxPct,
		TaxAmount:       booking.MustMoney(taxCents),
		Total:           booking.MustMoney(totalCents),
	}
	paid, err := booking.NewMoney(paidCents)
	if err != nil {
		return nil, err
	}

	return booking.ReconstructBooking(
		id, berthID, berthCode, guest, vessel, stay,
		booking.Status(statusStr), pricing, paid, booking.PaymentStatus(payStatusStr),
		createdBy, createdAt, updatedAt,
	)
}
