package repository

import (
	"context"

	"marina-ops/internal/domain/berth"
	"marina-ops/internal/infra"
	"marina-ops/internal/infra/db"

	"github.com/google/uuid"
)

type BerthRepository struct{}

func NewBerthRepository() *BerthRepository {
	return &BerthRepository{}
}

const insertBerthSQL = `
INSERT INTO berths (
	id, code, lat, lng,
	length_m, width_m, depth_m, max_vessel_length_m, max_vessel_width_m,
	water, electricity, status, created_by
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
RETURNING id`

func (r *BerthRepository) Create(ctx context.Context, dbtx db.DBTX, b *berth.Berth) (uuid.UUID, error) {
	dims := b.Dimensions()
	am := b.Amenities()

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, insertBerthSQL,
		b.ID(), b.Code().String(), b.Position().Lat(), b.Position().Lng(),
		dims.LengthMeters, dims.WidthMeters, dims.DepthMeters,
		dims.MaxVesselLength, dims.MaxVesselWidth,
		am.Water, am.Electricity, b.Status().String(), b.CreatedBy(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create berth", err)
	}
	return id, nil
}

const updateBerthSQL = `
UPDATE berths SET
	lat = $2, lng = $3,
	length_m = $4, width_m = $5, depth_m = $6,
	max_vessel_length_m = $7, max_vessel_width_m = $8,
	water = $9, electricity = $10, status = $11,
	updated_at = now()
WHERE id = $1`

func (r *BerthRepository) Update(ctx context.Context, dbtx db.DBTX, b *berth.Berth) error {
	dims := b.Dimensions()
	am := b.Amenities()

	tag, err := dbtx.Exec(ctx, updateBerthSQL,
		b.ID(), b.Position().Lat(), b.Position().Lng(),
		dims.LengthMeters, dims.WidthMeters, dims.DepthMeters,
		dims.MaxVesselLength, dims.MaxVesselWidth,
		am.Water, am.Electricity, b.Status().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update berth", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("berth not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BerthRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, `DELETE FROM berths WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete berth", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("berth not found", nil, infra.KindNotFound)
	}
	return nil
}
