//go:build unit

package queries_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"marina-ops/internal/domain/berth"
	"marina-ops/internal/domain/booking"
	"marina-ops/internal/usecase/queries"
	queriesmock "marina-ops/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BerthQueriesTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockRepo        *queriesmock.MockBerthViewRepo
	mockDirectory   *queriesmock.MockBerthDirectory
	mockInspections *queriesmock.MockInspectionLookup
	queries         queries.BerthQueries
}

func (s *BerthQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = queriesmock.NewMockBerthViewRepo(s.mockCtrl)
	s.mockDirectory = queriesmock.NewMockBerthDirectory(s.mockCtrl)
	s.mockInspections = queriesmock.NewMockInspectionLookup(s.mockCtrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.queries = queries.NewBerthQueries(s.mockRepo, s.mockDirectory, s.mockInspections, logger)
}

func (s *BerthQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBerthQueriesSuite(t *testing.T) {
	suite.Run(t, new(BerthQueriesTestSuite))
}

func makeBerth(t *testing.T, code string) *berth.Berth {
	t.Helper()

	c, err := berth.NewCode(code)
	require.NoError(t, err)
	pos, err := berth.NewPosition(43.29, 5.37)
	require.NoError(t, err)
	dims := berth.Dimensions{
		LengthMeters:    12,
		WidthMeters:     4.5,
		DepthMeters:     3,
		MaxVesselLength: 11,
		MaxVesselWidth:  4,
	}
	now := time.Now()
	b, err := berth.ReconstructBerth(
		uuid.New(), c, pos, dims,
		berth.Amenities{Water: true, Electricity: true},
		berth.StatusActive, uuid.New(), now, now,
	)
	require.NoError(t, err)
	return b
}

func makeBooking(t *testing.T, berthID uuid.UUID, checkIn, checkOut string, status booking.Status, createdAt time.Time) *booking.Booking {
	t.Helper()

	in, err := time.Parse(time.DateOnly, checkIn)
	require.NoError(t, err)
	out, err := time.Parse(time.DateOnly, checkOut)
	require.NoError(t, err)

	stay, err := booking.NewStayPeriod(in, out)
	require.NoError(t, err)
	vessel, err := booking.NewVessel("Sea Breeze", "NL-1234-AB", 10)
	require.NoError(t, err)
	pricing, err := booking.CalculateBookingTotal(5000, stay.Nights(), 0, 0)
	require.NoError(t, err)

	b, err := booking.ReconstructBooking(
		uuid.New(), berthID, "A-01",
		booking.Guest{Name: "J. Doe"},
		vessel, stay, status, pricing,
		booking.Money{}, booking.PaymentUnpaid,
		uuid.New(), createdAt, createdAt,
	)
	require.NoError(t, err)
	return b
}

func (s *BerthQueriesTestSuite) TestMapView() {
	ctx := context.Background()
	asOf, _ := time.Parse(time.DateOnly, "2026-07-14")

	s.Run("resolves each berth independently", func() {
		occupied := makeBerth(s.T(), "A-01")
		reserved := makeBerth(s.T(), "A-02")
		free := makeBerth(s.T(), "B-01")
		berths := []*berth.Berth{occupied, reserved, free}
		bookings := []*booking.Booking{
			makeBooking(s.T(), occupied.ID(), "2026-07-10", "2026-07-20", booking.StatusCheckedIn, time.Now()),
			makeBooking(s.T(), reserved.ID(), "2026-07-14", "2026-07-16", booking.StatusConfirmed, time.Now()),
		}

		s.mockDirectory.EXPECT().AllBerths(ctx).Return(berths, nil)
		s.mockDirectory.EXPECT().AllActiveBookings(ctx).Return(bookings, nil)
		s.mockInspections.EXPECT().LatestByBerthForDay(ctx, asOf).Return(nil, nil)

		items, warnings, err := s.queries.MapView(ctx, asOf)

		s.Require().NoError(err)
		s.Require().Len(items, 3)
		s.Empty(warnings)

		byCode := make(map[string]*queries.BerthMapItem, len(items))
		for _, it := range items {
			byCode[it.Berth.Code] = it
		}
		s.Equal("occupied", byCode["A-01"].Occupancy)
		s.Equal(bookings[0].ID(), *byCode["A-01"].BookingID)
		s.Equal("Sea Breeze", *byCode["A-01"].Vessel)
		s.Equal("J. Doe", *byCode["A-01"].Guest)
		s.Equal("reserved", byCode["A-02"].Occupancy)
		s.Equal("free", byCode["B-01"].Occupancy)
		s.Nil(byCode["B-01"].BookingID)
	})

	s.Run("overlap yields warning and deterministic winner", func() {
		b := makeBerth(s.T(), "A-03")
		older := makeBooking(s.T(), b.ID(), "2026-07-10", "2026-07-20", booking.StatusConfirmed, time.Now().Add(-time.Hour))
		newer := makeBooking(s.T(), b.ID(), "2026-07-12", "2026-07-18", booking.StatusPending, time.Now())

		s.mockDirectory.EXPECT().AllBerths(ctx).Return([]*berth.Berth{b}, nil)
		s.mockDirectory.EXPECT().AllActiveBookings(ctx).Return([]*booking.Booking{older, newer}, nil)
		s.mockInspections.EXPECT().LatestByBerthForDay(ctx, asOf).Return(nil, nil)

		items, warnings, err := s.queries.MapView(ctx, asOf)

		s.Require().NoError(err)
		s.Require().Len(items, 1)
		s.Equal(newer.ID(), *items[0].BookingID)

		s.Require().Len(warnings, 1)
		s.Equal(b.ID(), warnings[0].BerthID)
		s.Equal("A-03", warnings[0].BerthCode)
		s.ElementsMatch([]uuid.UUID{older.ID(), newer.ID()}, warnings[0].BookingIDs)
	})

	s.Run("attaches latest inspection per berth", func() {
		b := makeBerth(s.T(), "C-07")
		insp := &queries.InspectionView{
			ID:      uuid.New(),
			BerthID: b.ID(),
			Status:  "empty_ok",
		}

		s.mockDirectory.EXPECT().AllBerths(ctx).Return([]*berth.Berth{b}, nil)
		s.mockDirectory.EXPECT().AllActiveBookings(ctx).Return(nil, nil)
		s.mockInspections.EXPECT().LatestByBerthForDay(ctx, asOf).
			Return(map[uuid.UUID]*queries.InspectionView{b.ID(): insp}, nil)

		items, _, err := s.queries.MapView(ctx, asOf)

		s.Require().NoError(err)
		s.Require().Len(items, 1)
		s.Require().NotNil(items[0].Inspection)
		s.Equal(insp.ID, items[0].Inspection.ID)
	})
}

func (s *BerthQueriesTestSuite) TestGetByID() {
	ctx := context.Background()

	s.Run("success", func() {
		id := uuid.New()
		view := &queries.BerthView{ID: id, Code: "A-01"}
		s.mockRepo.EXPECT().FindByID(ctx, id).Return(view, nil)

		got, err := s.queries.GetByID(ctx, id)

		s.Require().NoError(err)
		s.Equal(view, got)
	})
}
