package readstore

import (
	"context"
	"time"

	"marina-ops/internal/domain/booking"
	"marina-ops/internal/infra"
	"marina-ops/internal/infra/db"
	"marina-ops/internal/usecase/queries"

	"github.com/google/uuid"
)

type InspectionReadStore struct {
	db db.DBTX
}

func NewInspectionReadStore(dbtx db.DBTX) *InspectionReadStore {
	return &InspectionReadStore{db: dbtx}
}

var (
	_ queries.InspectionViewRepo = (*InspectionReadStore)(nil)
	_ queries.InspectionLookup   = (*InspectionReadStore)(nil)
)

const inspectionViewSQL = `
SELECT i.id, i.berth_id, i.berth_code, i.inspector_id, p.full_name, i.status,
	i.expected_booking_id, i.expected_vessel_name, i.expected_vessel_registration, i.expected_guest_name,
	i.found_vessel_name, i.found_vessel_registration,
	i.notes, i.inspected_at
FROM inspections i
JOIN profiles p ON p.id = i.inspector_id`

func (r *InspectionReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.InspectionView, error) {
	row := r.db.QueryRow(ctx, inspectionViewSQL+` WHERE i.id = $1`, id)
	v, err := scanInspectionView(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("inspection not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find inspection by ID", err)
	}
	return v, nil
}

func (r *InspectionReadStore) FindByBerth(ctx context.Context, berthID uuid.UUID, limit int32) ([]*queries.InspectionView, error) {
	return r.queryList(ctx,
		inspectionViewSQL+` WHERE i.berth_id = $1 ORDER BY i.inspected_at DESC LIMIT $2`,
		berthID, limit,
	)
}

func (r *InspectionReadStore) FindByDay(ctx context.Context, day time.Time) ([]*queries.InspectionView, error) {
	start := booking.NormalizeDate(day)
	end := start.AddDate(0, 0, 1)
	return r.queryList(ctx,
		inspectionViewSQL+` WHERE i.inspected_at >= $1 AND i.inspected_at < $2 ORDER BY i.inspected_at DESC`,
		start, end,
	)
}

// LatestByBerthForDay returns the newest inspection per berth for the day,
// keyed by berth id. Berths never inspected that day are absent.
func (r *InspectionReadStore) LatestByBerthForDay(ctx context.Context, day time.Time) (map[uuid.UUID]*queries.InspectionView, error) {
	start := booking.NormalizeDate(day)
	end := start.AddDate(0, 0, 1)
	rows, err := r.db.Query(ctx,
		`SELECT DISTINCT ON (i.berth_id)
			i.id, i.berth_id, i.berth_code, i.inspector_id, p.full_name, i.status,
			i.expected_booking_id, i.expected_vessel_name, i.expected_vessel_registration, i.expected_guest_name,
			i.found_vessel_name, i.found_vessel_registration,
			i.notes, i.inspected_at
		 FROM inspections i
		 JOIN profiles p ON p.id = i.inspector_id
		 WHERE i.inspected_at >= $1 AND i.inspected_at < $2
		 ORDER BY i.berth_id, i.inspected_at DESC`,
		start, end,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find latest inspections", err)
	}
	defer rows.Close()

	result := make(map[uuid.UUID]*queries.InspectionView)
	for rows.Next() {
		v, err := scanInspectionView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan inspection row", err)
		}
		result[v.BerthID] = v
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate inspection rows", err)
	}
	return result, nil
}

func (r *InspectionReadStore) queryList(ctx context.Context, sql string, args ...any) ([]*queries.InspectionView, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find inspections", err)
	}
	defer rows.Close()

	var result []*queries.InspectionView
	for rows.Next() {
		v, err := scanInspectionView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan inspection row", err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate inspection rows", err)
	}
	return result, nil
}

func scanInspectionView(row rowScanner) (*queries.InspectionView, error) {
	var v queries.InspectionView
	if err := row.Scan(
		&v.ID, &v.BerthID, &v.BerthCode, &v.InspectorID, &v.InspectorName, &v.Status,
		&v.BookingID, &v.ExpectedName, &v.ExpectedReg, &v.ExpectedGuest,
		&v.FoundName, &v.FoundReg,
		&v.Notes, &v.InspectedAt,
	); err != nil {
		return nil, err
	}
	return &v, nil
}
