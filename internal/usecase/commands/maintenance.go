package commands

import (
	"context"

	"github.com/google/uuid"

	"marina-ops/internal/domain/maintenance"
	reqdto "marina-ops/internal/handler/dto/request"
	"marina-ops/internal/infra"
	"marina-ops/internal/infra/realtime"
	"marina-ops/internal/pkg/errs"
	"marina-ops/internal/usecase/shared"
)

var (
	ErrDamageReportNotFound = errs.New("damage report not found")
	ErrDamageValidation     = errs.New("damage report validation failed")
)

type DamageCommands interface {
	Report(ctx context.Context, req reqdto.ReportDamageRequest, reportedBy uuid.UUID) (uuid.UUID, error)
	Advance(ctx context.Context, id uuid.UUID, req reqdto.AdvanceDamageRequest) error
}

type damageCommandsImpl struct {
	uow       shared.UnitOfWork
	publisher realtime.Publisher
}

func NewDamageCommands(uow shared.UnitOfWork, publisher realtime.Publisher) DamageCommands {
	return &damageCommandsImpl{
		uow:       uow,
		publisher: publisher,
	}
}

func (d *damageCommandsImpl) Report(ctx context.Context, req reqdto.ReportDamageRequest, reportedBy uuid.UUID) (uuid.UUID, error) {
	entity, err := maintenance.NewDamageReport(
		req.Location,
		maintenance.Category(req.Category),
		maintenance.Severity(req.Severity),
		req.Description, req.PhotoURL, reportedBy,
	)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDamageValidation)
	}

	err = d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Damage().Create(ctx, tx.DB(), entity)
		return err
	})
	if err != nil {
		return uuid.Nil, err
	}

	d.publisher.Publish(realtime.ChangeEvent{Table: "damage_reports", Op: realtime.OpInsert, EntityID: entity.ID()})
	return entity.ID(), nil
}

func (d *damageCommandsImpl) Advance(ctx context.Context, id uuid.UUID, req reqdto.AdvanceDamageRequest) error {
	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.Reads().DamageReportByID(ctx, id)
		if err != nil {
			return err
		}
		if err := entity.Advance(maintenance.Status(req.Status)); err != nil {
			return errs.Mark(err, ErrIllegalTransition)
		}
		return tx.Damage().UpdateStatus(ctx, tx.DB(), id, entity.Status())
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrDamageReportNotFound
		}
		return err
	}

	d.publisher.Publish(realtime.ChangeEvent{Table: "damage_reports", Op: realtime.OpUpdate, EntityID: id})
	return nil
}
