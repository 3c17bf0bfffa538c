package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"marina-ops/internal/infra"
	"marina-ops/internal/pkg/errs"
)

var ErrInspectionNotFound = errs.New("inspection not found")

type InspectionView struct {
	ID            uuid.UUID  `json:"id"`
	BerthID       uuid.UUID  `json:"berth_id"`
	BerthCode     string     `json:"berth_code"`
	InspectorID   uuid.UUID  `json:"inspector_id"`
	InspectorName string     `json:"inspector_name"`
	Status        string     `json:"status"`
	BookingID     *uuid.UUID `json:"booking_id,omitempty"`
	ExpectedName  *string    `json:"expected_vessel_name,omitempty"`
	ExpectedReg   *string    `json:"expected_vessel_registration,omitempty"`
	ExpectedGuest *string    `json:"expected_guest_name,omitempty"`
	FoundName     *string    `json:"found_vessel_name,omitempty"`
	FoundReg      *string    `json:"found_vessel_registration,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	InspectedAt   time.Time  `json:"inspected_at"`
}

type InspectionQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*InspectionView, error)
	// HistoryForBerth lists inspections for one berth, newest first.
	HistoryForBerth(ctx context.Context, berthID uuid.UUID, limit int32) ([]*InspectionView, error)
	// ForDay lists all inspections performed on the given day.
	ForDay(ctx context.Context, day time.Time) ([]*InspectionView, error)
}

type InspectionViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*InspectionView, error)
	FindByBerth(ctx context.Context, berthID uuid.UUID, limit int32) ([]*InspectionView, error)
	FindByDay(ctx context.Context, day time.Time) ([]*InspectionView, error)
}

type inspectionQueriesImpl struct {
	repo InspectionViewRepo
}

func NewInspectionQueries(repo InspectionViewRepo) InspectionQueries {
	return &inspectionQueriesImpl{repo: repo}
}

func (q *inspectionQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*InspectionView, error) {
	v, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInspectionNotFound
		}
		return nil, err
	}
	return v, nil
}

func (q *inspectionQueriesImpl) HistoryForBerth(ctx context.Context, berthID uuid.UUID, limit int32) ([]*InspectionView, error) {
	if limit <= 0 {
		limit = 50
	}
	return q.repo.FindByBerth(ctx, berthID, limit)
}

func (q *inspectionQueriesImpl) ForDay(ctx context.Context, day time.Time) ([]*InspectionView, error) {
	return q.repo.FindByDay(ctx, day)
}
