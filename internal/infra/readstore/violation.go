package readstore

import (
	"context"
	"fmt"

	"marina-ops/internal/infra"
	"marina-ops/internal/infra/db"
	"marina-ops/internal/usecase/queries"

	"github.com/google/uuid"
)

type ViolationReadStore struct {
	db db.DBTX
}

func NewViolationReadStore(dbtx db.DBTX) *ViolationReadStore {
	return &ViolationReadStore{db: dbtx}
}

var _ queries.ViolationViewRepo = (*ViolationReadStore)(nil)

const violationViewSQL = `
SELECT id, berth_id, berth_code, type, status,
	vessel_name, vessel_registration, description,
	inspection_id, reported_by, resolved_by, resolved_at, created_at, updated_at
FROM violations`

func (r *ViolationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ViolationView, error) {
	row := r.db.QueryRow(ctx, violationViewSQL+` WHERE id = $1`, id)
	v, err := scanViolationView(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("violation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find violation by ID", err)
	}
	return v, nil
}

func (r *ViolationReadStore) FindFiltered(ctx context.Context, filter queries.ViolationFilter) ([]*queries.ViolationView, error) {
	sql := violationViewSQL + ` WHERE 1=1`
	args := []any{}

	if filter.Status != "" {
		args = append(args, filter.Status)
		sql += fmt.Sprintf(` AND status = $%d`, len(args))
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		sql += fmt.Sprintf(` AND type = $%d`, len(args))
	}
	if filter.BerthID != uuid.Nil {
		args = append(args, filter.BerthID)
		sql += fmt.Sprintf(` AND berth_id = $%d`, len(args))
	}

	args = append(args, filter.Limit)
	sql += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d`, len(args))
	args = append(args, filter.Offset)
	sql += fmt.Sprintf(` OFFSET $%d`, len(args))

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find violations", err)
	}
	defer rows.Close()

	var result []*queries.ViolationView
	for rows.Next() {
		v, err := scanViolationView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan violation row", err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate violation rows", err)
	}
	return result, nil
}

func scanViolationView(row rowScanner) (*queries.ViolationView, error) {
	var v queries.ViolationView
	if err := row.Scan(
		&v.ID, &v.BerthID, &v.BerthCode, &v.Type, &v.Status,
		&v.VesselName, &v.VesselReg, &v.Description,
		&v.InspectionID, &v.ReportedBy, &v.ResolvedBy, &v.ResolvedAt, &v.CreatedAt, &v.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &v, nil
}
