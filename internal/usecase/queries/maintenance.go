package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"marina-ops/internal/infra"
	"marina-ops/internal/pkg/errs"
)

var ErrDamageReportNotFound = errs.New("damage report not found")

type DamageReportView struct {
	ID          uuid.UUID `json:"id"`
	Location    string    `json:"location"`
	Category    string    `json:"category"`
	Severity    string    `json:"severity"`
	Description string    `json:"description"`
	PhotoURL    string    `json:"photo_url,omitempty"`
	Status      string    `json:"status"`
	ReportedBy  uuid.UUID `json:"reported_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type DamageFilter struct {
	Status   string
	Category string
	Severity string
	Limit    int32
	Offset   int32
}

type DamageQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*DamageReportView, error)
	List(ctx context.Context, filter DamageFilter) ([]*DamageReportView, error)
}

type DamageViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*DamageReportView, error)
	FindFiltered(ctx context.Context, filter DamageFilter) ([]*DamageReportView, error)
}

type damageQueriesImpl struct {
	repo DamageViewRepo
}

func NewDamageQueries(repo DamageViewRepo) DamageQueries {
	return &damageQueriesImpl{repo: repo}
}

func (q *damageQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*DamageReportView, error) {
	v, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrDamageReportNotFound
		}
		return nil, err
	}
	return v, nil
}

func (q *damageQueriesImpl) List(ctx context.Context, filter DamageFilter) ([]*DamageReportView, error) {
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	return q.repo.FindFiltered(ctx, filter)
}
