package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"marina-ops/internal/infra"
	"marina-ops/internal/pkg/errs"
)

var (
	ErrUserNotFound = errs.New("user not found")
	ErrUserInactive = errs.New("user inactive")
)

// AuthorizedUserView is the read model middleware and handlers use to
// identify the caller.
type AuthorizedUserView struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	FullName  string     `json:"full_name"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error)
	ListStaff(ctx context.Context) ([]*AuthorizedUserView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
	// FindByEmail also returns the password hash for credential checks.
	FindByEmail(ctx context.Context, email string) (*AuthorizedUserView, string, error)
	FindAll(ctx context.Context) ([]*AuthorizedUserView, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error) {
	u, err := q.readStore.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if !u.IsActive {
		return nil, ErrUserInactive
	}

	return u, nil
}

func (q *userQueriesImpl) ListStaff(ctx context.Context) ([]*AuthorizedUserView, error) {
	return q.readStore.FindAll(ctx)
}
