package response

import (
	"time"

	"marina-ops/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID              uuid.UUID             `json:"id"`
	BerthID         uuid.UUID             `json:"berthId"`
	BerthCode       string                `json:"berthCode"`
	GuestName       string                `json:"guestName"`
	GuestEmail      string                `json:"guestEmail,omitempty"`
	GuestPhone      string                `json:"guestPhone,omitempty"`
	VesselName      string                `json:"vesselName"`
	VesselReg       string                `json:"vesselRegistration"`
	VesselLength    float64               `json:"vesselLength"`
	CheckIn         time.Time             `json:"checkIn"`
	CheckOut        time.Time             `json:"checkOut"`
	Status          string                `json:"status"`
	PerDayRateCents int64                 `json:"perDayRateCents"`
	Nights          int                   `json:"nights"`
	SubtotalCents   int64                 `json:"subtotalCents"`
	DiscountPercent float64               `json:"discountPercent"`
	DiscountCents   int64                 `json:"discountCents"`
	TaxPercent      float64               `json:"taxPercent"`
	TaxCents        int64                 `json:"taxCents"`
	TotalCents      int64                 `json:"totalCents"`
	AmountPaidCents int64                 `json:"amountPaidCents"`
	PaymentStatus   string                `json:"paymentStatus"`
	Payments        []queries.PaymentView `json:"payments,omitempty"`
	CreatedAt       time.Time             `json:"createdAt"`
	UpdatedAt       time.Time             `json:"updatedAt"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	var r BookingResponse
	_ = copier.Copy(&r, v)
	return &r
}

type BookingListResponse struct {
	ID              uuid.UUID `json:"id"`
	BerthCode       string    `json:"berthCode"`
	GuestName       string    `json:"guestName"`
	VesselName      string    `json:"vesselName"`
	CheckIn         time.Time `json:"checkIn"`
	CheckOut        time.Time `json:"checkOut"`
	Status          string    `json:"status"`
	TotalCents      int64     `json:"totalCents"`
	AmountPaidCents int64     `json:"amountPaidCents"`
	PaymentStatus   string    `json:"paymentStatus"`
	CreatedAt       time.Time `json:"createdAt"`
}

func FromBookingListItems(items []*queries.BookingListItem) []*BookingListResponse {
	result := make([]*BookingListResponse, len(items))
	for i, item := range items {
		var r BookingListResponse
		_ = copier.Copy(&r, item)
		result[i] = &r
	}
	return result
}
