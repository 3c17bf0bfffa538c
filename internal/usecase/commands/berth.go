package commands

import (
	"context"

	"github.com/google/uuid"

	"marina-ops/internal/domain/berth"
	reqdto "marina-ops/internal/handler/dto/request"
	"marina-ops/internal/infra"
	"marina-ops/internal/infra/realtime"
	"marina-ops/internal/pkg/errs"
	"marina-ops/internal/usecase/shared"
)

var (
	ErrBerthValidation = errs.New("berth validation failed")
	ErrBerthCodeTaken  = errs.New("berth code already in use")
	ErrBerthInUse      = errs.New("berth has bookings and cannot be removed")
)

type BerthCommands interface {
	Place(ctx context.Context, req reqdto.PlaceBerthRequest, createdBy uuid.UUID) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateBerthRequest) error
	MoveMarker(ctx context.Context, id uuid.UUID, req reqdto.MoveMarkerRequest) error
	SetStatus(ctx context.Context, id uuid.UUID, req reqdto.SetBerthStatusRequest) error
	Remove(ctx context.Context, id uuid.UUID) error
}

type berthCommandsImpl struct {
	uow       shared.UnitOfWork
	publisher realtime.Publisher
}

func NewBerthCommands(uow shared.UnitOfWork, publisher realtime.Publisher) BerthCommands {
	return &berthCommandsImpl{
		uow:       uow,
		publisher: publisher,
	}
}

// Place turns a map marker into a berth row.
func (b *berthCommandsImpl) Place(ctx context.Context, req reqdto.PlaceBerthRequest, createdBy uuid.UUID) (uuid.UUID, error) {
	code, err := berth.NewCode(req.Code)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrBerthValidation)
	}
	pos, err := berth.NewPosition(req.Lat, req.Lng)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrBerthValidation)
	}

	entity, err := berth.NewBerth(code, pos, req.Dimensions(), berth.Amenities{Water: req.Water, Electricity: req.Electricity}, createdBy)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrBerthValidation)
	}

	err = b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Berths().Create(ctx, tx.DB(), entity)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, ErrBerthCodeTaken
		}
		return uuid.Nil, err
	}

	b.publisher.Publish(realtime.ChangeEvent{Table: "berths", Op: realtime.OpInsert, EntityID: entity.ID()})
	return entity.ID(), nil
}

func (b *berthCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateBerthRequest) error {
	return b.mutate(ctx, id, func(entity *berth.Berth) error {
		if err := entity.UpdateDimensions(req.Dimensions()); err != nil {
			return errs.Mark(err, ErrBerthValidation)
		}
		entity.SetAmenities(berth.Amenities{Water: req.Water, Electricity: req.Electricity})
		return nil
	})
}

func (b *berthCommandsImpl) MoveMarker(ctx context.Context, id uuid.UUID, req reqdto.MoveMarkerRequest) error {
	return b.mutate(ctx, id, func(entity *berth.Berth) error {
		pos, err := berth.NewPosition(req.Lat, req.Lng)
		if err != nil {
			return errs.Mark(err, ErrBerthValidation)
		}
		entity.MoveMarker(pos)
		return nil
	})
}

func (b *berthCommandsImpl) SetStatus(ctx context.Context, id uuid.UUID, req reqdto.SetBerthStatusRequest) error {
	return b.mutate(ctx, id, func(entity *berth.Berth) error {
		if err := entity.SetStatus(berth.Status(req.Status)); err != nil {
			return errs.Mark(err, ErrBerthValidation)
		}
		return nil
	})
}

func (b *berthCommandsImpl) mutate(ctx context.Context, id uuid.UUID, apply func(*berth.Berth) error) error {
	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.Reads().BerthByID(ctx, id)
		if err != nil {
			return err
		}
		if err := apply(entity); err != nil {
			return err
		}
		return tx.Berths().Update(ctx, tx.DB(), entity)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBerthNotFound
		}
		return err
	}

	b.publisher.Publish(realtime.ChangeEvent{Table: "berths", Op: realtime.OpUpdate, EntityID: id})
	return nil
}

// Remove hard-deletes the berth. Bookings reference berths with RESTRICT, so
// a berth with any booking history refuses to go.
func (b *berthCommandsImpl) Remove(ctx context.Context, id uuid.UUID) error {
	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Berths().Delete(ctx, tx.DB(), id)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBerthNotFound
		}
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return ErrBerthInUse
		}
		return err
	}

	b.publisher.Publish(realtime.ChangeEvent{Table: "berths", Op: realtime.OpDelete, EntityID: id})
	return nil
}
