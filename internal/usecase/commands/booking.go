package commands

import (
	"context"

	"github.com/google/uuid"

	"marina-ops/internal/domain/booking"
	reqdto "marina-ops/internal/handler/dto/request"
	"marina-ops/internal/infra"
	"marina-ops/internal/infra/realtime"
	"marina-ops/internal/pkg/clock"
	"marina-ops/internal/pkg/errs"
	"marina-ops/internal/usecase/shared"
)

var (
	ErrBookingNotFound   = errs.New("booking not found")
	ErrBookingValidation = errs.New("booking validation failed")
	ErrBookingConflict   = errs.New("berth already booked for overlapping dates")
	ErrBerthNotBookable  = errs.New("berth is not bookable")
	ErrVesselTooLarge    = errs.New("vessel exceeds berth limits")
	ErrIllegalTransition = errs.New("illegal status transition")
	ErrPaymentValidation = errs.New("payment validation failed")
)

type BookingCommands interface {
	Create(ctx context.Context, req reqdto.CreateBookingRequest, createdBy uuid.UUID) (uuid.UUID, error)
	Confirm(ctx context.Context, id uuid.UUID) error
	Cancel(ctx context.Context, id uuid.UUID) error
	MarkNoShow(ctx context.Context, id uuid.UUID) error
	CheckOut(ctx context.Context, id uuid.UUID) error
	RecordPayment(ctx context.Context, id uuid.UUID, req reqdto.RecordPaymentRequest, receivedBy uuid.UUID) error
}

type bookingCommandsImpl struct {
	uow       shared.UnitOfWork
	publisher realtime.Publisher
	clock     clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, publisher realtime.Publisher, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{
		uow:       uow,
		publisher: publisher,
		clock:     clk,
	}
}

// Create validates dates, vessel fit and pricing before the insert. The
// overlap guarantee itself lives in the storage layer: a concurrent
// overlapping booking trips the exclusion constraint and surfaces as
// ErrBookingConflict.
func (b *bookingCommandsImpl) Create(ctx context.Context, req reqdto.CreateBookingRequest, createdBy uuid.UUID) (uuid.UUID, error) {
	berthEntity, err := b.uow.CommandReads().BerthByID(ctx, req.BerthID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, ErrBerthNotFound
		}
		return uuid.Nil, err
	}
	if !berthEntity.IsBookable() {
		return uuid.Nil, ErrBerthNotBookable
	}

	stay, err := req.Stay()
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrBookingValidation)
	}
	vessel, err := req.Vessel()
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrBookingValidation)
	}
	if !berthEntity.Dimensions().FitsVessel(vessel.LengthMeters()) {
		return uuid.Nil, ErrVesselTooLarge
	}

	pricing, err := booking.CalculateBookingTotal(req.PerDayRateCents, stay.Nights(), req.DiscountPercent, req.TaxPercent)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrBookingValidation)
	}

	entity, err := booking.NewBooking(berthEntity.ID(), berthEntity.Code().String(), req.Guest(), vessel, stay, pricing, createdBy)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrBookingValidation)
	}

	err = b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Bookings().Create(ctx, tx.DB(), entity)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return uuid.Nil, ErrBookingConflict
		}
		return uuid.Nil, err
	}

	b.publisher.Publish(realtime.ChangeEvent{Table: "berth_bookings", Op: realtime.OpInsert, EntityID: entity.ID()})
	return entity.ID(), nil
}

func (b *bookingCommandsImpl) Confirm(ctx context.Context, id uuid.UUID) error {
	return b.advance(ctx, id, func(entity *booking.Booking) error { return entity.Confirm() })
}

func (b *bookingCommandsImpl) Cancel(ctx context.Context, id uuid.UUID) error {
	return b.advance(ctx, id, func(entity *booking.Booking) error { return entity.Cancel() })
}

func (b *bookingCommandsImpl) MarkNoShow(ctx context.Context, id uuid.UUID) error {
	return b.advance(ctx, id, func(entity *booking.Booking) error { return entity.MarkNoShow() })
}

func (b *bookingCommandsImpl) CheckOut(ctx context.Context, id uuid.UUID) error {
	return b.advance(ctx, id, func(entity *booking.Booking) error { return entity.CheckOut() })
}

// advance re-reads the booking inside the transaction so concurrent
// transitions serialize on the row instead of racing.
func (b *bookingCommandsImpl) advance(ctx context.Context, id uuid.UUID, transition func(*booking.Booking) error) error {
	var next booking.Status
	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.Reads().BookingByID(ctx, id)
		if err != nil {
			return err
		}
		if err := transition(entity); err != nil {
			return errs.Mark(err, ErrIllegalTransition)
		}
		next = entity.Status()
		return tx.Bookings().UpdateStatus(ctx, tx.DB(), id, next)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return err
	}

	b.publisher.Publish(realtime.ChangeEvent{Table: "berth_bookings", Op: realtime.OpUpdate, EntityID: id})
	return nil
}

// RecordPayment appends the payment and recomputes the booking aggregate in
// the same transaction, so amount_paid always equals the sum of the rows.
func (b *bookingCommandsImpl) RecordPayment(ctx context.Context, id uuid.UUID, req reqdto.RecordPaymentRequest, receivedBy uuid.UUID) error {
	amount, err := booking.NewMoney(req.AmountCents)
	if err != nil {
		return errs.Mark(err, ErrPaymentValidation)
	}

	err = b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.Reads().BookingByID(ctx, id)
		if err != nil {
			return err
		}

		payment, err := booking.NewPayment(id, amount, req.Method, req.Reference, receivedBy, b.clock.Now())
		if err != nil {
			return errs.Mark(err, ErrPaymentValidation)
		}
		if _, err := tx.Payments().Create(ctx, tx.DB(), payment); err != nil {
			return err
		}

		payments, err := tx.Reads().PaymentsForBooking(ctx, id)
		if err != nil {
			return err
		}
		agg := booking.AggregatePayments(entity.Pricing().Total, payments)
		return tx.Bookings().UpdatePaymentAggregate(ctx, tx.DB(), id, agg)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return err
	}

	b.publisher.Publish(realtime.ChangeEvent{Table: "berth_bookings", Op: realtime.OpUpdate, EntityID: id})
	return nil
}
