//go:build unit || e2e

package builder

import (
	"marina-ops/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	Email    string
	FullName string
	Role     string
	IsActive bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Email:    "harbourmaster@example.com",
		FullName: "Test Harbourmaster",
		Role:     "admin",
		IsActive: true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       uuid.New(),
		Email:    u.Email,
		FullName: u.FullName,
		Role:     u.Role,
		IsActive: u.IsActive,
	}
}
