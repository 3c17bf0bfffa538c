package queries

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"marina-ops/internal/domain/berth"
	"marina-ops/internal/domain/booking"
	"marina-ops/internal/infra"
	"marina-ops/internal/pkg/errs"
)

var ErrBerthNotFound = errs.New("berth not found")

type BerthView struct {
	ID              uuid.UUID `json:"id"`
	Code            string    `json:"code"`
	Pontoon         string    `json:"pontoon"`
	Lat             float64   `json:"lat"`
	Lng             float64   `json:"lng"`
	LengthMeters    float64   `json:"length_m"`
	WidthMeters     float64   `json:"width_m"`
	DepthMeters     float64   `json:"depth_m"`
	MaxVesselLength float64   `json:"max_vessel_length_m"`
	MaxVesselWidth  float64   `json:"max_vessel_width_m"`
	Water           bool      `json:"water"`
	Electricity     bool      `json:"electricity"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// BerthMapItem is one marker on the live marina map: the berth plus its
// resolved occupancy for the requested day.
type BerthMapItem struct {
	Berth      BerthView       `json:"berth"`
	Occupancy  string          `json:"occupancy"`
	BookingID  *uuid.UUID      `json:"booking_id,omitempty"`
	Vessel     *string         `json:"vessel,omitempty"`
	Guest      *string         `json:"guest,omitempty"`
	CheckOut   *time.Time      `json:"check_out,omitempty"`
	Inspection *InspectionView `json:"latest_inspection,omitempty"`
}

// IntegrityWarning flags a berth where more than one active booking covered
// the same day. The map still renders a deterministic state; the warning is
// for staff to repair the data.
type IntegrityWarning struct {
	BerthID    uuid.UUID   `json:"berth_id"`
	BerthCode  string      `json:"berth_code"`
	Day        time.Time   `json:"day"`
	BookingIDs []uuid.UUID `json:"booking_ids"`
}

type BerthQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BerthView, error)
	List(ctx context.Context, pontoon string) ([]*BerthView, error)
	// MapView resolves every berth for the given day in one pass.
	MapView(ctx context.Context, asOf time.Time) ([]*BerthMapItem, []IntegrityWarning, error)
}

type BerthViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BerthView, error)
	FindAll(ctx context.Context, pontoon string) ([]*BerthView, error)
}

// BerthDirectory rehydrates the domain entities the occupancy resolver needs.
type BerthDirectory interface {
	AllBerths(ctx context.Context) ([]*berth.Berth, error)
	AllActiveBookings(ctx context.Context) ([]*booking.Booking, error)
}

// InspectionLookup supplies the latest inspection per berth for the map view.
type InspectionLookup interface {
	LatestByBerthForDay(ctx context.Context, day time.Time) (map[uuid.UUID]*InspectionView, error)
}

type berthQueriesImpl struct {
	repo        BerthViewRepo
	directory   BerthDirectory
	inspections InspectionLookup
	logger      *slog.Logger
}

func NewBerthQueries(repo BerthViewRepo, directory BerthDirectory, inspections InspectionLookup, logger *slog.Logger) BerthQueries {
	return &berthQueriesImpl{
		repo:        repo,
		directory:   directory,
		inspections: inspections,
		logger:      logger,
	}
}

func (q *berthQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BerthView, error) {
	v, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBerthNotFound
		}
		return nil, err
	}
	return v, nil
}

func (q *berthQueriesImpl) List(ctx context.Context, pontoon string) ([]*BerthView, error) {
	return q.repo.FindAll(ctx, pontoon)
}

func (q *berthQueriesImpl) MapView(ctx context.Context, asOf time.Time) ([]*BerthMapItem, []IntegrityWarning, error) {
	berths, err := q.directory.AllBerths(ctx)
	if err != nil {
		return nil, nil, err
	}
	bookings, err := q.directory.AllActiveBookings(ctx)
	if err != nil {
		return nil, nil, err
	}

	latest, err := q.inspections.LatestByBerthForDay(ctx, asOf)
	if err != nil {
		return nil, nil, err
	}

	byBerth := make(map[uuid.UUID][]*booking.Booking, len(berths))
	for _, b := range bookings {
		byBerth[b.BerthID()] = append(byBerth[b.BerthID()], b)
	}

	items := make([]*BerthMapItem, 0, len(berths))
	var warnings []IntegrityWarning
	for _, b := range berths {
		res := berth.Resolve(b.ID(), byBerth[b.ID()], asOf)

		item := &BerthMapItem{
			Berth:      toBerthView(b),
			Occupancy:  res.Occupancy.String(),
			Inspection: latest[b.ID()],
		}
		if cov := res.Covering; cov != nil {
			id := cov.ID()
			vessel := cov.Vessel().Name()
			guest := cov.Guest().Name
			out := cov.Stay().CheckOut()
			item.BookingID = &id
			item.Vessel = &vessel
			item.Guest = &guest
			item.CheckOut = &out
		}
		items = append(items, item)

		if res.HasConflict() {
			ids := make([]uuid.UUID, 0, len(res.Conflicting)+1)
			ids = append(ids, res.Covering.ID())
			for _, c := range res.Conflicting {
				ids = append(ids, c.ID())
			}
			warnings = append(warnings, IntegrityWarning{
				BerthID:    b.ID(),
				BerthCode:  b.Code().String(),
				Day:        res.AsOf,
				BookingIDs: ids,
			})
			q.logger.Warn("overlapping active bookings on berth",
				"berth_code", b.Code().String(),
				"day", res.AsOf.Format(time.DateOnly),
				"bookings", len(ids),
			)
		}
	}

	return items, warnings, nil
}

func toBerthView(b *berth.Berth) BerthView {
	dims := b.Dimensions()
	am := b.Amenities()
	return BerthView{
		ID:              b.ID(),
		Code:            b.Code().String(),
		Pontoon:         b.Pontoon(),
		Lat:             b.Position().Lat(),
		Lng:             b.Position().Lng(),
		LengthMeters:    dims.LengthMeters,
		WidthMeters:     dims.WidthMeters,
		DepthMeters:     dims.DepthMeters,
		MaxVesselLength: dims.MaxVesselLength,
		MaxVesselWidth:  dims.MaxVesselWidth,
		Water:           am.Water,
		Electricity:     am.Electricity,
		Status:          b.Status().String(),
		CreatedAt:       b.CreatedAt(),
		UpdatedAt:       b.UpdatedAt(),
	}
}
