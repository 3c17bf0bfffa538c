package readstore

import (
	"context"
	"fmt"

	"marina-ops/internal/infra"
	"marina-ops/internal/infra/db"
	"marina-ops/internal/usecase/queries"

	"github.com/google/uuid"
)

type DamageReadStore struct {
	db db.DBTX
}

func NewDamageReadStore(dbtx db.DBTX) *DamageReadStore {
	return &DamageReadStore{db: dbtx}
}

var _ queries.DamageViewRepo = (*DamageReadStore)(nil)

const damageViewSQL = `
SELECT id, location, category, severity, description, photo_url, status,
	reported_by, created_at, updated_at
FROM damage_reports`

func (r *DamageReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.DamageReportView, error) {
	row := r.db.QueryRow(ctx, damageViewSQL+` WHERE id = $1`, id)
	v, err := scanDamageView(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("damage report not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find damage report by ID", err)
	}
	return v, nil
}

func (r *DamageReadStore) FindFiltered(ctx context.Context, filter queries.DamageFilter) ([]*queries.DamageReportView, error) {
	sql := damageViewSQL + ` WHERE 1=1`
	args := []any{}

	if filter.Status != "" {
		args = append(args, filter.Status)
		sql += fmt.Sprintf(` AND status = $%d`, len(args))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		sql += fmt.Sprintf(` AND category = $%d`, len(args))
	}
	if filter.Severity != "" {
		args = append(args, filter.Severity)
		sql += fmt.Sprintf(` AND severity = $%d`, len(args))
	}

	args = append(args, filter.Limit)
	sql += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d`, len(args))
	args = append(args, filter.Offset)
	sql += fmt.Sprintf(` OFFSET $%d`, len(args))

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find damage reports", err)
	}
	defer rows.Close()

	var result []*queries.DamageReportView
	for rows.Next() {
		v, err := scanDamageView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan damage report row", err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate damage report rows", err)
	}
	return result, nil
}

func scanDamageView(row rowScanner) (*queries.DamageReportView, error) {
	var v queries.DamageReportView
	if err := row.Scan(
		&v.ID, &v.Location, &v.Category, &v.Severity, &v.Description, &v.PhotoURL, &v.Status,
		&v.ReportedBy, &v.CreatedAt, &v.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &v, nil
}
