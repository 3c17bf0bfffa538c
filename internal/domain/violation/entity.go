package violation

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidType       = errors.New("invalid violation type")
	ErrInvalidStatus     = errors.New("invalid violation status")
	ErrIllegalTransition = errors.New("illegal violation status transition")
	ErrEmptyDescription  = errors.New("violation description is required")
)

// Violation is a flagged rule breach at a berth. Inspection-spawned
// violations carry a back-reference to the inspection that raised them;
// manual reports do not.
type Violation struct {
	id           uuid.UUID
	berthID      uuid.UUID
	berthCode    string
	vtype        Type
	status       Status
	vesselName   string
	vesselReg    string
	description  string
	inspectionID *uuid.UUID
	reportedBy   uuid.UUID
	resolvedBy   *uuid.UUID
	resolvedAt   *time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

func NewViolation(
	berthID uuid.UUID,
	berthCode string,
	vtype Type,
	vesselName, vesselReg, description string,
	inspectionID *uuid.UUID,
	reportedBy uuid.UUID,
) (*Violation, error) {
	if !vtype.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidType, vtype)
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrEmptyDescription
	}
	return &Violation{
		id:           uuid.New(),
		berthID:      berthID,
		berthCode:    berthCode,
		vtype:        vtype,
		status:       StatusOpen,
		vesselName:   strings.TrimSpace(vesselName),
		vesselReg:    strings.TrimSpace(vesselReg),
		description:  description,
		inspectionID: inspectionID,
		reportedBy:   reportedBy,
	}, nil
}

func ReconstructViolation(
	id, berthID uuid.UUID,
	berthCode string,
	vtype Type,
	status Status,
	vesselName, vesselReg, description string,
	inspectionID *uuid.UUID,
	reportedBy uuid.UUID,
	resolvedBy *uuid.UUID,
	resolvedAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Violation, error) {
	if !vtype.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidType, vtype)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return &Violation{
		id:           id,
		berthID:      berthID,
		berthCode:    berthCode,
		vtype:        vtype,
		status:       status,
		vesselName:   vesselName,
		vesselReg:    vesselReg,
		description:  description,
		inspectionID: inspectionID,
		reportedBy:   reportedBy,
		resolvedBy:   resolvedBy,
		resolvedAt:   resolvedAt,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (v *Violation) ID() uuid.UUID            { return v.id }
func (v *Violation) BerthID() uuid.UUID       { return v.berthID }
func (v *Violation) BerthCode() string        { return v.berthCode }
func (v *Violation) Type() Type               { return v.vtype }
func (v *Violation) Status() Status           { return v.status }
func (v *Violation) VesselName() string       { return v.vesselName }
func (v *Violation) VesselReg() string        { return v.vesselReg }
func (v *Violation) Description() string      { return v.description }
func (v *Violation) InspectionID() *uuid.UUID { return v.inspectionID }
func (v *Violation) ReportedBy() uuid.UUID    { return v.reportedBy }
func (v *Violation) ResolvedBy() *uuid.UUID   { return v.resolvedBy }
func (v *Violation) ResolvedAt() *time.Time   { return v.resolvedAt }
func (v *Violation) CreatedAt() time.Time     { return v.createdAt }
func (v *Violation) UpdatedAt() time.Time     { return v.updatedAt }

// Advance moves the violation along its lifecycle. Resolving or dismissing
// records who closed it and when.
func (v *Violation) Advance(next Status, actor uuid.UUID, now time.Time) error {
	if !next.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, next)
	}
	if !v.status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, v.status, next)
	}
	v.status = next
	if next.IsFinal() {
		v.resolvedBy = &actor
		v.resolvedAt = &now
	}
	return nil
}
