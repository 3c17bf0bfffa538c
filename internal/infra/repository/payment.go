package repository

import (
	"context"

	"marina-ops/internal/domain/booking"
	"marina-ops/internal/infra"
	"marina-ops/internal/infra/db"

	"github.com/google/uuid"
)

type PaymentRepository struct{}

func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{}
}

const insertPaymentSQL = `
INSERT INTO booking_payments (
	id, booking_id, amount_cents, method, reference, received_by, received_at
) VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`

func (r *PaymentRepository) Create(ctx context.Context, dbtx db.DBTX, p *booking.Payment) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, insertPaymentSQL,
		p.ID(), p.BookingID(), p.Amount().Cents(),
		p.Method(), p.Reference(), p.ReceivedBy(), p.ReceivedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create payment", err)
	}
	return id, nil
}
