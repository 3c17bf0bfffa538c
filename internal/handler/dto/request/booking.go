package request

import (
	"time"

	"marina-ops/internal/domain/booking"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	BerthID         uuid.UUID `json:"berth_id" binding:"required"`
	GuestName       string    `json:"guest_name" binding:"required"`
	GuestEmail      string    `json:"guest_email" binding:"omitempty,email"`
	GuestPhone      string    `json:"guest_phone"`
	VesselName      string    `json:"vessel_name" binding:"required"`
	VesselReg       string    `json:"vessel_registration"`
	VesselLength    float64   `json:"vessel_length_m" binding:"required,gt=0"`
	CheckIn         string    `json:"check_in" binding:"required,datetime=2006-01-02"`
	CheckOut        string    `json:"check_out" binding:"required,datetime=2006-01-02"`
	PerDayRateCents int64     `json:"per_day_rate_cents" binding:"required,gt=0"`
	DiscountPercent float64   `json:"discount_percent" binding:"gte=0,lte=100"`
	TaxPercent      float64   `json:"tax_percent" binding:"gte=0,lte=100"`
}

func (r *CreateBookingRequest) Stay() (booking.StayPeriod, error) {
	checkIn, err := time.Parse(time.DateOnly, r.CheckIn)
	if err != nil {
		return booking.StayPeriod{}, err
	}
	checkOut, err := time.Parse(time.DateOnly, r.CheckOut)
	if err != nil {
		return booking.StayPeriod{}, err
	}
	return booking.NewStayPeriod(checkIn, checkOut)
}

func (r *CreateBookingRequest) Guest() booking.Guest {
	return booking.Guest{
		Name:  r.GuestName,
		Email: r.GuestEmail,
		Phone: r.GuestPhone,
	}
}

func (r *CreateBookingRequest) Vessel() (booking.Vessel, error) {
	return booking.NewVessel(r.VesselName, r.VesselReg, r.VesselLength)
}

type RecordPaymentRequest struct {
	AmountCents int64  `json:"amount_cents" binding:"required,gt=0"`
	Method      string `json:"method" binding:"required,oneof=cash card transfer"`
	Reference   string `json:"reference"`
}
