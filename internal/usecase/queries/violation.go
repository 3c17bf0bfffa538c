package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"marina-ops/internal/infra"
	"marina-ops/internal/pkg/errs"
)

var ErrViolationNotFound = errs.New("violation not found")

type ViolationView struct {
	ID           uuid.UUID  `json:"id"`
	BerthID      uuid.UUID  `json:"berth_id"`
	BerthCode    string     `json:"berth_code"`
	Type         string     `json:"type"`
	Status       string     `json:"status"`
	VesselName   string     `json:"vessel_name,omitempty"`
	VesselReg    string     `json:"vessel_registration,omitempty"`
	Description  string     `json:"description"`
	InspectionID *uuid.UUID `json:"inspection_id,omitempty"`
	ReportedBy   uuid.UUID  `json:"reported_by"`
	ResolvedBy   *uuid.UUID `json:"resolved_by,omitempty"`
	ResolvedAt   *time.Time `json:"resolved_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type ViolationFilter struct {
	Status  string
	Type    string
	BerthID uuid.UUID
	Limit   int32
	Offset  int32
}

type ViolationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ViolationView, error)
	List(ctx context.Context, filter ViolationFilter) ([]*ViolationView, error)
}

type ViolationViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ViolationView, error)
	FindFiltered(ctx context.Context, filter ViolationFilter) ([]*ViolationView, error)
}

type violationQueriesImpl struct {
	repo ViolationViewRepo
}

func NewViolationQueries(repo ViolationViewRepo) ViolationQueries {
	return &violationQueriesImpl{repo: repo}
}

func (q *violationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ViolationView, error) {
	v, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrViolationNotFound
		}
		return nil, err
	}
	return v, nil
}

func (q *violationQueriesImpl) List(ctx context.Context, filter ViolationFilter) ([]*ViolationView, error) {
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	return q.repo.FindFiltered(ctx, filter)
}
