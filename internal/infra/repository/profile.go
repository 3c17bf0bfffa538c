package repository

import (
	"context"

	"marina-ops/internal/infra"
	"marina-ops/internal/infra/db"

	"github.com/google/uuid"
)

type ProfileRepository struct{}

func NewProfileRepository() *ProfileRepository {
	return &ProfileRepository{}
}

func (r *ProfileRepository) UpdateLastLogin(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) error {
	tag, err := dbtx.Exec(ctx,
		`UPDATE profiles SET last_login = now(), updated_at = now() WHERE id = $1`,
		userID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("profile not found", nil, infra.KindNotFound)
	}
	return nil
}
