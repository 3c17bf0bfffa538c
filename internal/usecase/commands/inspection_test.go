//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"marina-ops/internal/domain/berth"
	"marina-ops/internal/domain/booking"
	"marina-ops/internal/domain/inspection"
	"marina-ops/internal/domain/maintenance"
	"marina-ops/internal/domain/violation"
	reqdto "marina-ops/internal/handler/dto/request"
	"marina-ops/internal/infra"
	"marina-ops/internal/infra/db"
	"marina-ops/internal/infra/realtime"
	"marina-ops/internal/pkg/clock"
	"marina-ops/internal/usecase/commands"
	"marina-ops/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// fakeUoW runs the transaction closure directly and records every write, so
// command tests can assert on the exact set of effects without a database.
type fakeUoW struct {
	reads *fakeReads
	tx    *fakeTx

	withinErr error
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{
		reads: &fakeReads{},
		tx:    &fakeTx{},
	}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if u.withinErr != nil {
		return u.withinErr
	}
	return fn(ctx, u.tx)
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) CommandReads() shared.CommandReads { return u.reads }

type fakeReads struct {
	berth    *berth.Berth
	berthErr error
	bookings []*booking.Booking
}

func (r *fakeReads) BerthByID(ctx context.Context, id uuid.UUID) (*berth.Berth, error) {
	if r.berthErr != nil {
		return nil, r.berthErr
	}
	return r.berth, nil
}

func (r *fakeReads) BerthByCode(ctx context.Context, code string) (*berth.Berth, error) {
	return r.berth, r.berthErr
}

func (r *fakeReads) BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	for _, b := range r.bookings {
		if b.ID() == id {
			return b, nil
		}
	}
	return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
}

func (r *fakeReads) ActiveBookingsForBerth(ctx context.Context, berthID uuid.UUID) ([]*booking.Booking, error) {
	return r.bookings, nil
}

func (r *fakeReads) PaymentsForBooking(ctx context.Context, bookingID uuid.UUID) ([]*booking.Payment, error) {
	return nil, nil
}

func (r *fakeReads) ViolationByID(ctx context.Context, id uuid.UUID) (*violation.Violation, error) {
	return nil, infra.WrapRepoErr("violation not found", nil, infra.KindNotFound)
}

func (r *fakeReads) DamageReportByID(ctx context.Context, id uuid.UUID) (*maintenance.DamageReport, error) {
	return nil, infra.WrapRepoErr("damage report not found", nil, infra.KindNotFound)
}

type fakeTx struct {
	inspections     []*inspection.Inspection
	violations      []*violation.Violation
	statusUpdates   map[uuid.UUID]booking.Status
	inspectionsErr  error
	violationsErr   error
}

func (t *fakeTx) Berths() shared.BerthRepository           { return nil }
func (t *fakeTx) Payments() shared.PaymentRepository       { return nil }
func (t *fakeTx) Damage() shared.DamageRepository          { return nil }
func (t *fakeTx) Profiles() shared.ProfileRepository       { return nil }
func (t *fakeTx) Reads() shared.CommandReads               { return nil }
func (t *fakeTx) DB() db.DBTX                              { return nil }
func (t *fakeTx) Inspections() shared.InspectionRepository { return (*fakeInspectionRepo)(t) }
func (t *fakeTx) Violations() shared.ViolationRepository   { return (*fakeViolationRepo)(t) }
func (t *fakeTx) Bookings() shared.BookingRepository       { return (*fakeBookingRepo)(t) }

type fakeInspectionRepo fakeTx

func (r *fakeInspectionRepo) Create(ctx context.Context, dbtx db.DBTX, i *inspection.Inspection) (uuid.UUID, error) {
	if r.inspectionsErr != nil {
		return uuid.Nil, r.inspectionsErr
	}
	r.inspections = append(r.inspections, i)
	return i.ID(), nil
}

type fakeViolationRepo fakeTx

func (r *fakeViolationRepo) Create(ctx context.Context, dbtx db.DBTX, v *violation.Violation) (uuid.UUID, error) {
	if r.violationsErr != nil {
		return uuid.Nil, r.violationsErr
	}
	r.violations = append(r.violations, v)
	return v.ID(), nil
}

func (r *fakeViolationRepo) Update(ctx context.Context, dbtx db.DBTX, v *violation.Violation) error {
	return nil
}

type fakeBookingRepo fakeTx

func (r *fakeBookingRepo) Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	return b.ID(), nil
}

func (r *fakeBookingRepo) UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status booking.Status) error {
	if r.statusUpdates == nil {
		r.statusUpdates = make(map[uuid.UUID]booking.Status)
	}
	r.statusUpdates[id] = status
	return nil
}

func (r *fakeBookingRepo) UpdatePaymentAggregate(ctx context.Context, dbtx db.DBTX, id uuid.UUID, agg booking.PaymentAggregate) error {
	return nil
}

type fakePublisher struct {
	events []realtime.ChangeEvent
}

func (p *fakePublisher) Publish(event realtime.ChangeEvent) {
	p.events = append(p.events, event)
}

func (p *fakePublisher) tables() []string {
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Table)
	}
	return out
}

func testBerth(t *testing.T, code string) *berth.Berth {
	t.Helper()

	c, err := berth.NewCode(code)
	require.NoError(t, err)
	pos, err := berth.NewPosition(43.29, 5.37)
	require.NoError(t, err)
	b, err := berth.ReconstructBerth(
		uuid.New(), c, pos,
		berth.Dimensions{LengthMeters: 12, WidthMeters: 4, DepthMeters: 3, MaxVesselLength: 11, MaxVesselWidth: 3.8},
		berth.Amenities{Water: true, Electricity: true},
		berth.StatusActive, uuid.New(), time.Now(), time.Now(),
	)
	require.NoError(t, err)
	return b
}

func testBooking(t *testing.T, berthID uuid.UUID, status booking.Status, now time.Time) *booking.Booking {
	t.Helper()

	stay, err := booking.NewStayPeriod(now.AddDate(0, 0, -1), now.AddDate(0, 0, 2))
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
		uuid.New(), now, now,
	)
	require.NoError(t, err)
	return b
}

type InspectionCommandsTestSuite struct {
	suite.Suite
	uow       *fakeUoW
	publisher *fakePublisher
	clock     *clock.MockClock
	commands  commands.InspectionCommands

	now time.Time
}

func (s *InspectionCommandsTestSuite) SetupTest() {
	s.uow = newFakeUoW()
	s.publisher = &fakePublisher{}
	s.now = time.Date(2026, 7, 14, 10, 30, 0, 0, time.UTC)
	s.clock = clock.NewMockClock(s.now)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.commands = commands.NewInspectionCommands(s.uow, s.publisher, s.clock, logger)
}

func TestInspectionCommandsSuite(t *testing.T) {
	suite.Run(t, new(InspectionCommandsTestSuite))
}

func (s *InspectionCommandsTestSuite) TestSubmit() {
	ctx := context.Background()

	s.Run("correct checks in the covering booking", func() {
		s.SetupTest()
		b := testBerth(s.T(), "A-01")
		covering := testBooking(s.T(), b.ID(), booking.StatusConfirmed, s.now)
		s.uow.reads.berth = b
		s.uow.reads.bookings = []*booking.Booking{covering}

		result, err := s.commands.Submit(ctx, reqdto.SubmitInspectionRequest{
			BerthID: b.ID(),
			Status:  "correct",
		}, uuid.New())

		s.Require().NoError(err)
		s.Equal("reserved", result.Occupancy)
		s.Require().NotNil(result.CheckedInBooking)
		s.Equal(covering.ID(), *result.CheckedInBooking)
		s.Nil(result.ViolationID)

		s.Require().Len(s.uow.tx.inspections, 1)
		insp := s.uow.tx.inspections[0]
		s.Equal(inspection.StatusCorrect, insp.Status())
		s.Require().NotNil(insp.Expected())
		s.Equal(covering.ID(), insp.Expected().BookingID)
		s.Equal("Sea Breeze", insp.Expected().VesselName)

		s.Equal(booking.StatusCheckedIn, s.uow.tx.statusUpdates[covering.ID()])
		s.ElementsMatch([]string{"inspections", "berth_bookings"}, s.publisher.tables())
	})

	s.Run("repeat correct on checked-in booking writes no update", func() {
		s.SetupTest()
		b := testBerth(s.T(), "A-01")
		covering := testBooking(s.T(), b.ID(), booking.StatusCheckedIn, s.now)
		s.uow.reads.berth = b
		s.uow.reads.bookings = []*booking.Booking{covering}

		result, err := s.commands.Submit(ctx, reqdto.SubmitInspectionRequest{
			BerthID: b.ID(),
			Status:  "correct",
		}, uuid.New())

		s.Require().NoError(err)
		s.Equal("occupied", result.Occupancy)
		s.Nil(result.CheckedInBooking)
		s.Empty(s.uow.tx.statusUpdates)
		s.Len(s.uow.tx.inspections, 1)
	})

	s.Run("wrong_vessel opens a violation referencing the inspection", func() {
		s.SetupTest()
		b := testBerth(s.T(), "A-02")
		covering := testBooking(s.T(), b.ID(), booking.StatusConfirmed, s.now)
		s.uow.reads.berth = b
		s.uow.reads.bookings = []*booking.Booking{covering}

		result, err := s.commands.Submit(ctx, reqdto.SubmitInspectionRequest{
			BerthID:     b.ID(),
			Status:      "wrong_vessel",
			FoundVessel: "Intruder",
			FoundReg:    "ES-9999-ZZ",
		}, uuid.New())

		s.Require().NoError(err)
		s.Require().NotNil(result.ViolationID)
		s.Nil(result.CheckedInBooking)

		s.Require().Len(s.uow.tx.violations, 1)
		v := s.uow.tx.violations[0]
		s.Equal(violation.TypeWrongBerth, v.Type())
		s.Equal("ES-9999-ZZ", v.VesselReg())
		s.Require().NotNil(v.InspectionID())
		s.Equal(result.InspectionID, *v.InspectionID())

		s.ElementsMatch([]string{"inspections", "violations"}, s.publisher.tables())
	})

	s.Run("illegal_mooring on a free berth opens a violation", func() {
		s.SetupTest()
		b := testBerth(s.T(), "B-01")
		s.uow.reads.berth = b

		result, err := s.commands.Submit(ctx, reqdto.SubmitInspectionRequest{
			BerthID:     b.ID(),
			Status:      "illegal_mooring",
			FoundVessel: "Drifter",
			FoundReg:    "IT-0007-XY",
		}, uuid.New())

		s.Require().NoError(err)
		s.Equal("free", result.Occupancy)
		s.Require().Len(s.uow.tx.violations, 1)
		s.Equal(violation.TypeIllegalMooring, s.uow.tx.violations[0].Type())
	})

	s.Run("empty_ok writes only the inspection", func() {
		s.SetupTest()
		b := testBerth(s.T(), "B-02")
		s.uow.reads.berth = b

		result, err := s.commands.Submit(ctx, reqdto.SubmitInspectionRequest{
			BerthID: b.ID(),
			Status:  "empty_ok",
		}, uuid.New())

		s.Require().NoError(err)
		s.Nil(result.ViolationID)
		s.Nil(result.CheckedInBooking)
		s.Len(s.uow.tx.inspections, 1)
		s.Empty(s.uow.tx.violations)
		s.Equal([]string{"inspections"}, s.publisher.tables())
	})

	s.Run("correct without covering booking is rejected before any write", func() {
		s.SetupTest()
		b := testBerth(s.T(), "C-01")
		s.uow.reads.berth = b

		_, err := s.commands.Submit(ctx, reqdto.SubmitInspectionRequest{
			BerthID: b.ID(),
			Status:  "correct",
		}, uuid.New())

		s.Require().ErrorIs(err, commands.ErrInspectionValidation)
		s.Empty(s.uow.tx.inspections)
		s.Empty(s.publisher.events)
	})

	s.Run("wrong_vessel without found registration is rejected", func() {
		s.SetupTest()
		b := testBerth(s.T(), "C-02")
		covering := testBooking(s.T(), b.ID(), booking.StatusConfirmed, s.now)
		s.uow.reads.berth = b
		s.uow.reads.bookings = []*booking.Booking{covering}

		_, err := s.commands.Submit(ctx, reqdto.SubmitInspectionRequest{
			BerthID: b.ID(),
			Status:  "wrong_vessel",
		}, uuid.New())

		s.Require().ErrorIs(err, commands.ErrInspectionValidation)
		s.Empty(s.uow.tx.inspections)
	})

	s.Run("unknown berth", func() {
		s.SetupTest()
		s.uow.reads.berthErr = infra.WrapRepoErr("berth not found", nil, infra.KindNotFound)

		_, err := s.commands.Submit(ctx, reqdto.SubmitInspectionRequest{
			BerthID: uuid.New(),
			Status:  "empty_ok",
		}, uuid.New())

		s.Require().ErrorIs(err, commands.ErrBerthNotFound)
	})

	s.Run("no events published when the transaction fails", func() {
		s.SetupTest()
		b := testBerth(s.T(), "C-03")
		s.uow.reads.berth = b
		s.uow.withinErr = assert.AnError

		_, err := s.commands.Submit(ctx, reqdto.SubmitInspectionRequest{
			BerthID: b.ID(),
			Status:  "empty_ok",
		}, uuid.New())

		s.Require().Error(err)
		s.Empty(s.publisher.events)
	})
}
