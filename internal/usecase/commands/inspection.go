package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"marina-ops/internal/domain/berth"
	"marina-ops/internal/domain/inspection"
	"marina-ops/internal/domain/violation"
	reqdto "marina-ops/internal/handler/dto/request"
	"marina-ops/internal/infra"
	"marina-ops/internal/infra/realtime"
	"marina-ops/internal/pkg/clock"
	"marina-ops/internal/pkg/errs"
	"marina-ops/internal/usecase/shared"
)

var (
	ErrBerthNotFound        = errs.New("berth not found")
	ErrInspectionValidation = errs.New("inspection validation failed")
)

// SubmitInspectionResult reports everything the single transaction did.
type SubmitInspectionResult struct {
	InspectionID     uuid.UUID
	Occupancy        string
	ViolationID      *uuid.UUID
	CheckedInBooking *uuid.UUID
}

type InspectionCommands interface {
	Submit(ctx context.Context, req reqdto.SubmitInspectionRequest, inspectorID uuid.UUID) (*SubmitInspectionResult, error)
}

type inspectionCommandsImpl struct {
	uow       shared.UnitOfWork
	publisher realtime.Publisher
	clock     clock.Clock
	logger    *slog.Logger
}

func NewInspectionCommands(uow shared.UnitOfWork, publisher realtime.Publisher, clk clock.Clock, logger *slog.Logger) InspectionCommands {
	return &inspectionCommandsImpl{
		uow:       uow,
		publisher: publisher,
		clock:     clk,
		logger:    logger,
	}
}

// Submit runs the full inspection workflow: resolve the berth's expected
// state, validate the inspector's verdict against it, then apply every
// effect in one transaction. Nothing is written when validation fails.
func (i *inspectionCommandsImpl) Submit(ctx context.Context, req reqdto.SubmitInspectionRequest, inspectorID uuid.UUID) (*SubmitInspectionResult, error) {
	reads := i.uow.CommandReads()

	b, err := reads.BerthByID(ctx, req.BerthID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBerthNotFound
		}
		return nil, err
	}

	bookings, err := reads.ActiveBookingsForBerth(ctx, req.BerthID)
	if err != nil {
		return nil, err
	}

	now := i.clock.Now()
	res := berth.Resolve(b.ID(), bookings, now)
	if res.HasConflict() {
		i.logger.Warn("overlapping active bookings on inspected berth",
			"berth_code", b.Code().String(),
			"bookings", len(res.Conflicting)+1)
	}

	status := inspection.Status(req.Status)
	var found *inspection.FoundVessel
	if strings.TrimSpace(req.FoundVessel) != "" || strings.TrimSpace(req.FoundReg) != "" {
		found = &inspection.FoundVessel{
			Name:         strings.TrimSpace(req.FoundVessel),
			Registration: strings.TrimSpace(req.FoundReg),
		}
	}

	insp, err := inspection.NewInspection(
		b.ID(), b.Code().String(), inspectorID,
		status, inspection.SnapshotExpected(res.Covering), found,
		req.Notes, now,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrInspectionValidation)
	}

	outcome := inspection.OutcomeFor(status)
	result := &SubmitInspectionResult{
		InspectionID: insp.ID(),
		Occupancy:    res.Occupancy.String(),
	}

	err = i.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Inspections().Create(ctx, tx.DB(), insp); err != nil {
			return err
		}

		if outcome.RaiseViolation {
			v, err := i.buildViolation(insp, outcome.ViolationType, inspectorID)
			if err != nil {
				return errs.Mark(err, ErrInspectionValidation)
			}
			if _, err := tx.Violations().Create(ctx, tx.DB(), v); err != nil {
				return err
			}
			id := v.ID()
			result.ViolationID = &id
		}

		if outcome.CheckInBooking {
			covering := res.Covering
			if err := covering.CheckIn(); err != nil {
				// Already checked in: a repeat "correct" inspection is fine.
				i.logger.Info("covering booking not advanced",
					"booking_id", covering.ID(), "reason", err.Error())
				return nil
			}
			if err := tx.Bookings().UpdateStatus(ctx, tx.DB(), covering.ID(), covering.Status()); err != nil {
				return err
			}
			id := covering.ID()
			result.CheckedInBooking = &id
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if outcome.Anomaly {
		i.logger.Warn("expected vessel missing from berth",
			"berth_code", b.Code().String(),
			"inspection_id", insp.ID())
	}

	i.publisher.Publish(realtime.ChangeEvent{Table: "inspections", Op: realtime.OpInsert, EntityID: insp.ID()})
	if result.ViolationID != nil {
		i.publisher.Publish(realtime.ChangeEvent{Table: "violations", Op: realtime.OpInsert, EntityID: *result.ViolationID})
	}
	if result.CheckedInBooking != nil {
		i.publisher.Publish(realtime.ChangeEvent{Table: "berth_bookings", Op: realtime.OpUpdate, EntityID: *result.CheckedInBooking})
	}

	return result, nil
}

func (i *inspectionCommandsImpl) buildViolation(insp *inspection.Inspection, vtype violation.Type, inspectorID uuid.UUID) (*violation.Violation, error) {
	found := insp.Found()
	description := fmt.Sprintf("%s at berth %s", insp.Status().Label(), insp.BerthCode())
	if insp.Notes() != "" {
		description += ": " + insp.Notes()
	}

	id := insp.ID()
	return violation.NewViolation(
		insp.BerthID(), insp.BerthCode(), vtype,
		found.Name, found.Registration, description,
		&id, inspectorID,
	)
}
