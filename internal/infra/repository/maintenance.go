package repository

import (
	"context"

	"marina-ops/internal/domain/maintenance"
	"marina-ops/internal/infra"
	"marina-ops/internal/infra/db"

	"github.com/google/uuid"
)

type DamageRepository struct{}

func NewDamageRepository() *DamageRepository {
	return &DamageRepository{}
}

const insertDamageReportSQL = `
INSERT INTO damage_reports (
	id, location, category, severity, description, photo_url, status, reported_by
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id`

func (r *DamageRepository) Create(ctx context.Context, dbtx db.DBTX, d *maintenance.DamageReport) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, insertDamageReportSQL,
		d.ID(), d.Location(), d.Category().String(), d.Severity().String(),
		d.Description(), d.PhotoURL(), d.Status().String(), d.ReportedBy(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create damage report", err)
	}
	return id, nil
}

func (r *DamageRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status maintenance.Status) error {
	tag, err := dbtx.Exec(ctx,
		`UPDATE damage_reports SET status = $2, updated_at = now() WHERE id = $1`,
		id, status.String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update damage report status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("damage report not found", nil, infra.KindNotFound)
	}
	return nil
}
