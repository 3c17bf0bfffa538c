package readstore

import (
	"context"

	"marina-ops/internal/domain/berth"
	"marina-ops/internal/domain/booking"
	"marina-ops/internal/infra"
	"marina-ops/internal/infra/db"
	"marina-ops/internal/usecase/queries"

	"github.com/google/uuid"
)

// BerthReadStore serves both the plain berth views and the entity directory
// the map-view resolver consumes.
type BerthReadStore struct {
	db db.DBTX
}

func NewBerthReadStore(dbtx db.DBTX) *BerthReadStore {
	return &BerthReadStore{db: dbtx}
}

var (
	_ queries.BerthViewRepo  = (*BerthReadStore)(nil)
	_ queries.BerthDirectory = (*BerthReadStore)(nil)
)

const berthViewSQL = `
SELECT id, code, lat, lng,
	length_m, width_m, depth_m, max_vessel_length_m, max_vessel_width_m,
	water, electricity, status, created_at, updated_at
FROM berths`

func (r *BerthReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BerthView, error) {
	row := r.db.QueryRow(ctx, berthViewSQL+` WHERE id = $1`, id)
	v, err := scanBerthView(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("berth not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find berth by ID", err)
	}
	return v, nil
}

func (r *BerthReadStore) FindAll(ctx context.Context, pontoon string) ([]*queries.BerthView, error) {
	sql := berthViewSQL
	args := []any{}
	if pontoon != "" {
		sql += ` WHERE code LIKE $1 || '-%'`
		args = append(args, pontoon)
	}
	sql += ` ORDER BY code`

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find berths", err)
	}
	defer rows.Close()

	var result []*queries.BerthView
	for rows.Next() {
		v, err := scanBerthView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan berth", err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate berths", err)
	}
	return result, nil
}

func (r *BerthReadStore) AllBerths(ctx context.Context) ([]*berth.Berth, error) {
	rows, err := r.db.Query(ctx, `SELECT `+berthColumns+` FROM berths ORDER BY code`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load berths", err)
	}
	defer rows.Close()

	var result []*berth.Berth
	for rows.Next() {
		b, err := scanBerthEntity(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan berth", err)
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate berths", err)
	}
	return result, nil
}

func (r *BerthReadStore) AllActiveBookings(ctx context.Context) ([]*booking.Booking, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+bookingColumns+` FROM berth_bookings WHERE status = ANY($1)`,
		activeStatusStrings(),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load active bookings", err)
	}
	defer rows.Close()

	var result []*booking.Booking
	for rows.Next() {
		b, err := scanBookingEntity(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bookings", err)
	}
	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBerthView(row rowScanner) (*queries.BerthView, error) {
	var (
		v    queries.BerthView
		code string
	)
	if err := row.Scan(
		&v.ID, &code, &v.Lat, &v.Lng,
		&v.LengthMeters, &v.WidthMeters, &v.DepthMeters,
		&v.MaxVesselLength, &v.MaxVesselWidth,
		&v.Water, &v.Electricity, &v.Status, &v.CreatedAt, &v.UpdatedAt,
	); err != nil {
		return nil, err
	}
	v.Code = code
	if c, err := berth.NewCode(code); err == nil {
		v.Pontoon = c.Pontoon()
	}
	return &v, nil
}
