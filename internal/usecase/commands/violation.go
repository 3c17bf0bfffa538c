package commands

import (
	"context"

	"github.com/google/uuid"

	"marina-ops/internal/domain/violation"
	reqdto "marina-ops/internal/handler/dto/request"
	"marina-ops/internal/infra"
	"marina-ops/internal/infra/realtime"
	"marina-ops/internal/pkg/clock"
	"marina-ops/internal/pkg/errs"
	"marina-ops/internal/usecase/shared"
)

var (
	ErrViolationNotFound   = errs.New("violation not found")
	ErrViolationValidation = errs.New("violation validation failed")
)

type ViolationCommands interface {
	Report(ctx context.Context, req reqdto.ReportViolationRequest, reportedBy uuid.UUID) (uuid.UUID, error)
	Advance(ctx context.Context, id uuid.UUID, req reqdto.AdvanceViolationRequest, actor uuid.UUID) error
}

type violationCommandsImpl struct {
	uow       shared.UnitOfWork
	publisher realtime.Publisher
	clock     clock.Clock
}

func NewViolationCommands(uow shared.UnitOfWork, publisher realtime.Publisher, clk clock.Clock) ViolationCommands {
	return &violationCommandsImpl{
		uow:       uow,
		publisher: publisher,
		clock:     clk,
	}
}

func (v *violationCommandsImpl) Report(ctx context.Context, req reqdto.ReportViolationRequest, reportedBy uuid.UUID) (uuid.UUID, error) {
	b, err := v.uow.CommandReads().BerthByID(ctx, req.BerthID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, ErrBerthNotFound
		}
		return uuid.Nil, err
	}

	entity, err := violation.NewViolation(
		b.ID(), b.Code().String(), violation.TypeManualReport,
		req.VesselName, req.VesselReg, req.Description,
		nil, reportedBy,
	)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrViolationValidation)
	}

	err = v.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Violations().Create(ctx, tx.DB(), entity)
		return err
	})
	if err != nil {
		return uuid.Nil, err
	}

	v.publisher.Publish(realtime.ChangeEvent{Table: "violations", Op: realtime.OpInsert, EntityID: entity.ID()})
	return entity.ID(), nil
}

func (v *violationCommandsImpl) Advance(ctx context.Context, id uuid.UUID, req reqdto.AdvanceViolationRequest, actor uuid.UUID) error {
	err := v.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.Reads().ViolationByID(ctx, id)
		if err != nil {
			return err
		}
		if err := entity.Advance(violation.Status(req.Status), actor, v.clock.Now()); err != nil {
			return errs.Mark(err, ErrIllegalTransition)
		}
		return tx.Violations().Update(ctx, tx.DB(), entity)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrViolationNotFound
		}
		return err
	}

	v.publisher.Publish(realtime.ChangeEvent{Table: "violations", Op: realtime.OpUpdate, EntityID: id})
	return nil
}
