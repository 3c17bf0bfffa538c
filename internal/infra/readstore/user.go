package readstore

import (
	"context"

	"marina-ops/internal/infra"
	"marina-ops/internal/infra/db"
	"marina-ops/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

var _ queries.UserReadStore = (*UserReadStore)(nil)

const userViewSQL = `
SELECT id, email, full_name, role, is_active, last_login
FROM profiles`

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var v queries.AuthorizedUserView
	err := r.db.QueryRow(ctx, userViewSQL+` WHERE id = $1`, id).Scan(
		&v.ID, &v.Email, &v.FullName, &v.Role, &v.IsActive, &v.LastLogin,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &v, nil
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	var (
		v    queries.AuthorizedUserView
		hash string
	)
	err := r.db.QueryRow(ctx,
		`SELECT id, email, full_name, role, is_active, last_login, password_hash
		 FROM profiles WHERE email = $1`,
		email,
	).Scan(&v.ID, &v.Email, &v.FullName, &v.Role, &v.IsActive, &v.LastLogin, &hash)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &v, hash, nil
}

func (r *UserReadStore) FindAll(ctx context.Context) ([]*queries.AuthorizedUserView, error) {
	rows, err := r.db.Query(ctx, userViewSQL+` ORDER BY full_name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find users", err)
	}
	defer rows.Close()

	var result []*queries.AuthorizedUserView
	for rows.Next() {
		var v queries.AuthorizedUserView
		if err := rows.Scan(&v.ID, &v.Email, &v.FullName, &v.Role, &v.IsActive, &v.LastLogin); err != nil {
			return nil, infra.WrapRepoErr("failed to scan user row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate user rows", err)
	}
	return result, nil
}
