package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"marina-ops/internal/domain/berth"
	"marina-ops/internal/domain/booking"
	"marina-ops/internal/pkg/errs"
)

var ErrInvalidReportRange = errs.New("report range must span at least one day")

// OccupancyDay is one day of the occupancy report, derived by running the
// occupancy resolver over every berth.
type OccupancyDay struct {
	Day         time.Time `json:"day"`
	TotalBerths int       `json:"total_berths"`
	Occupied    int       `json:"occupied"`
	Reserved    int       `json:"reserved"`
	Free        int       `json:"free"`
	Rate        float64   `json:"occupancy_rate"`
}

// RevenueRow aggregates received payments per day.
type RevenueRow struct {
	Day         time.Time `json:"day"`
	Payments    int       `json:"payments"`
	AmountCents int64     `json:"amount_cents"`
}

type RevenueSummary struct {
	From       time.Time    `json:"from"`
	To         time.Time    `json:"to"`
	TotalCents int64        `json:"total_cents"`
	Rows       []RevenueRow `json:"rows"`
}

type ReportQueries interface {
	Occupancy(ctx context.Context, from, to time.Time) ([]OccupancyDay, error)
	Revenue(ctx context.Context, from, to time.Time) (*RevenueSummary, error)
}

type RevenueViewRepo interface {
	SumPaymentsByDay(ctx context.Context, from, to time.Time) ([]RevenueRow, error)
}

type reportQueriesImpl struct {
	directory BerthDirectory
	revenue   RevenueViewRepo
}

func NewReportQueries(directory BerthDirectory, revenue RevenueViewRepo) ReportQueries {
	return &reportQueriesImpl{
		directory: directory,
		revenue:   revenue,
	}
}

func (q *reportQueriesImpl) Occupancy(ctx context.Context, from, to time.Time) ([]OccupancyDay, error) {
	from = booking.NormalizeDate(from)
	to = booking.NormalizeDate(to)
	if !to.After(from) {
		return nil, ErrInvalidReportRange
	}

	berths, err := q.directory.AllBerths(ctx)
	if err != nil {
		return nil, err
	}
	bookings, err := q.directory.AllActiveBookings(ctx)
	if err != nil {
		return nil, err
	}

	byBerth := make(map[uuid.UUID][]*booking.Booking, len(berths))
	for _, b := range bookings {
		byBerth[b.BerthID()] = append(byBerth[b.BerthID()], b)
	}

	var days []OccupancyDay
	for day := from; day.Before(to); day = day.AddDate(0, 0, 1) {
		d := OccupancyDay{Day: day, TotalBerths: len(berths)}
		for _, b := range berths {
			res := berth.Resolve(b.ID(), byBerth[b.ID()], day)
			switch res.Occupancy {
			case berth.OccupancyOccupied:
				d.Occupied++
			case berth.OccupancyReserved:
				d.Reserved++
			default:
				d.Free++
			}
		}
		if d.TotalBerths > 0 {
			d.Rate = float64(d.Occupied+d.Reserved) / float64(d.TotalBerths)
		}
		days = append(days, d)
	}

	return days, nil
}

func (q *reportQueriesImpl) Revenue(ctx context.Context, from, to time.Time) (*RevenueSummary, error) {
	from = booking.NormalizeDate(from)
	to = booking.NormalizeDate(to)
	if !to.After(from) {
		return nil, ErrInvalidReportRange
	}

	rows, err := q.revenue.SumPaymentsByDay(ctx, from, to)
	if err != nil {
		return nil, err
	}

	summary := &RevenueSummary{From: from, To: to, Rows: rows}
	for _, r := range rows {
		summary.TotalCents += r.AmountCents
	}
	return summary, nil
}
