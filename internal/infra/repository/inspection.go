package repository

import (
	"context"

	"marina-ops/internal/domain/inspection"
	"marina-ops/internal/infra"
	"marina-ops/internal/infra/db"
	"marina-ops/internal/pkg/ptr"

	"github.com/google/uuid"
)

type InspectionRepository struct{}

func NewInspectionRepository() *InspectionRepository {
	return &InspectionRepository{}
}

const insertInspectionSQL = `
INSERT INTO inspections (
	id, berth_id, berth_code, inspector_id, status,
	expected_booking_id, expected_vessel_name, expected_vessel_registration, expected_guest_name,
	found_vessel_name, found_vessel_registration,
	notes, inspected_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
RETURNING id`

func (r *InspectionRepository) Create(ctx context.Context, dbtx db.DBTX, i *inspection.Inspection) (uuid.UUID, error) {
	var (
		expBookingID *uuid.UUID
		expVessel    *string
		expReg       *string
		expGuest     *string
	)
	if exp := i.Expected(); exp != nil {
		expBookingID = ptr.To(exp.BookingID)
		expVessel = ptr.To(exp.VesselName)
		expReg = ptr.To(exp.VesselReg)
		expGuest = ptr.To(exp.GuestName)
	}
	var foundName, foundReg *string
	if f := i.Found(); f != nil {
		foundName = ptr.To(f.Name)
		foundReg = ptr.To(f.Registration)
	}

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, insertInspectionSQL,
		i.ID(), i.BerthID(), i.BerthCode(), i.InspectorID(), i.Status().String(),
		expBookingID, expVessel, expReg, expGuest,
		foundName, foundReg,
		i.Notes(), i.InspectedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create inspection", err)
	}
	return id, nil
}
