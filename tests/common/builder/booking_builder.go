//go:build unit || e2e

package builder

import (
	"time"

	reqdto "marina-ops/internal/handler/dto/request"
	"marina-ops/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	BerthID         uuid.UUID
	GuestName       string
	GuestEmail      string
	VesselName      string
	VesselReg       string
	VesselLength    float64
	CheckIn         string
	CheckOut        string
	PerDayRateCents int64
	Status          string
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		BerthID:         uuid.New(),
		GuestName:       "Ada Marino",
		GuestEmail:      "ada@example.com",
		VesselName:      "Sea Sprite",
		VesselReg:       "FR-1234-AB",
		VesselLength:    9.5,
		CheckIn:         time.Now().AddDate(0, 0, 1).Format(time.DateOnly),
		CheckOut:        time.Now().AddDate(0, 0, 4).Format(time.DateOnly),
		PerDayRateCents: 4500,
		Status:          "pending",
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		BerthID:         b.BerthID,
		GuestName:       b.GuestName,
		GuestEmail:      b.GuestEmail,
		VesselName:      b.VesselName,
		VesselReg:       b.VesselReg,
		VesselLength:    b.VesselLength,
		CheckIn:         b.CheckIn,
		CheckOut:        b.CheckOut,
		PerDayRateCents: b.PerDayRateCents,
	}
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	checkIn, _ := time.Parse(time.DateOnly, b.CheckIn)
	checkOut, _ := time.Parse(time.DateOnly, b.CheckOut)
	nights := int64(checkOut.Sub(checkIn).Hours() / 24)
	return &queries.BookingListItem{
		ID:              uuid.New(),
		BerthCode:       "A-01",
		GuestName:       b.GuestName,
		VesselName:      b.VesselName,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Status:          b.Status,
		TotalCents:      nights * b.PerDayRateCents,
		AmountPaidCents: 0,
		PaymentStatus:   "unpaid",
		CreatedAt:       time.Now(),
	}
}
