package shared

import (
	"context"

	"marina-ops/internal/domain/berth"
	"marina-ops/internal/domain/booking"
	"marina-ops/internal/domain/inspection"
	"marina-ops/internal/domain/maintenance"
	"marina-ops/internal/domain/violation"
	"marina-ops/internal/infra/db"

	"github.com/google/uuid"
)

// UnitOfWork binds the multi-step writes of the inspection workflow and the
// payment ledger to one transaction: either every effect lands or none do.
type UnitOfWork interface {
	// Within: full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: direct access to command-side reads outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Berths() BerthRepository
	Bookings() BookingRepository
	Payments() PaymentRepository
	Inspections() InspectionRepository
	Violations() ViolationRepository
	Damage() DamageRepository
	Profiles() ProfileRepository
	Reads() CommandReads
	DB() db.DBTX
}

// CommandReads rehydrates domain entities for command validation. These are
// the resolver's inputs, so commands and queries see the same rows.
type CommandReads interface {
	BerthByID(ctx context.Context, id uuid.UUID) (*berth.Berth, error)
	BerthByCode(ctx context.Context, code string) (*berth.Berth, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	ActiveBookingsForBerth(ctx context.Context, berthID uuid.UUID) ([]*booking.Booking, error)
	PaymentsForBooking(ctx context.Context, bookingID uuid.UUID) ([]*booking.Payment, error)
	ViolationByID(ctx context.Context, id uuid.UUID) (*violation.Violation, error)
	DamageReportByID(ctx context.Context, id uuid.UUID) (*maintenance.DamageReport, error)
}

type BerthRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, b *berth.Berth) (uuid.UUID, error)
	Update(ctx context.Context, dbtx db.DBTX, b *berth.Berth) error
	Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
}

type BookingRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status booking.Status) error
	UpdatePaymentAggregate(ctx context.Context, dbtx db.DBTX, id uuid.UUID, agg booking.PaymentAggregate) error
}

type PaymentRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, p *booking.Payment) (uuid.UUID, error)
}

type InspectionRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, i *inspection.Inspection) (uuid.UUID, error)
}

type ViolationRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, v *violation.Violation) (uuid.UUID, error)
	Update(ctx context.Context, dbtx db.DBTX, v *violation.Violation) error
}

type DamageRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, d *maintenance.DamageReport) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status maintenance.Status) error
}

type ProfileRepository interface {
	UpdateLastLogin(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) error
}
