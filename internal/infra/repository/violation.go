package repository

import (
	"context"

	"marina-ops/internal/domain/violation"
	"marina-ops/internal/infra"
	"marina-ops/internal/infra/db"

	"github.com/google/uuid"
)

type ViolationRepository struct{}

func NewViolationRepository() *ViolationRepository {
	return &ViolationRepository{}
}

const insertViolationSQL = `
INSERT INTO violations (
	id, berth_id, berth_code, type, status,
	vessel_name, vessel_registration, description,
	inspection_id, reported_by
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id`

func (r *ViolationRepository) Create(ctx context.Context, dbtx db.DBTX, v *violation.Violation) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, insertViolationSQL,
		v.ID(), v.BerthID(), v.BerthCode(), v.Type().String(), v.Status().String(),
		v.VesselName(), v.VesselReg(), v.Description(),
		v.InspectionID(), v.ReportedBy(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create violation", err)
	}
	return id, nil
}

const updateViolationSQL = `
UPDATE violations SET
	status = $2, resolved_by = $3, resolved_at = $4, updated_at = now()
WHERE id = $1`

func (r *ViolationRepository) Update(ctx context.Context, dbtx db.DBTX, v *violation.Violation) error {
	tag, err := dbtx.Exec(ctx, updateViolationSQL,
		v.ID(), v.Status().String(), v.ResolvedBy(), v.ResolvedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update violation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("violation not found", nil, infra.KindNotFound)
	}
	return nil
}
