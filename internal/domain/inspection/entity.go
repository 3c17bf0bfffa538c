package inspection

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"marina-ops/internal/domain/booking"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus          = errors.New("invalid inspection status")
	ErrExpectedVesselRequired = errors.New("status requires a covering booking")
	ErrBerthNotExpectedEmpty  = errors.New("status requires the berth to resolve free")
	ErrFoundVesselRequired    = errors.New("found vessel registration is required")
)

// ExpectedSnapshot freezes what the resolver reported at submission time.
// It is copied onto the record, never referenced live: editing the booking
// later must not rewrite inspection history.
type ExpectedSnapshot struct {
	BookingID    uuid.UUID
	VesselName   string
	VesselReg    string
	GuestName    string
}

// FoundVessel is what the inspector actually saw when it differed from the
// expectation. Registration is the mandatory identifying field.
type FoundVessel struct {
	Name         string
	Registration string
}

// Inspection is one immutable berth observation. Records are append-only; a
// berth can be inspected any number of times per day and every submission
// creates an independent row.
type Inspection struct {
	id          uuid.UUID
	berthID     uuid.UUID
	berthCode   string
	inspectorID uuid.UUID
	status      Status
	expected    *ExpectedSnapshot
	found       *FoundVessel
	notes       string
	inspectedAt time.Time
}

// NewInspection validates an inspector's submission against the resolver's
// current output. All preconditions are checked here, before any write:
// the status must be admissible for the presence or absence of a covering
// booking, and the found-vessel registration is mandatory for wrong_vessel
// and illegal_mooring.
func NewInspection(
	berthID uuid.UUID,
	berthCode string,
	inspectorID uuid.UUID,
	status Status,
	expected *ExpectedSnapshot,
	found *FoundVessel,
	notes string,
	inspectedAt time.Time,
) (*Inspection, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	if status.RequiresExpectedVessel() && expected == nil {
		return nil, ErrExpectedVesselRequired
	}
	if !status.RequiresExpectedVessel() && expected != nil {
		return nil, ErrBerthNotExpectedEmpty
	}
	if status.RequiresFoundVessel() {
		if found == nil || strings.TrimSpace(found.Registration) == "" {
			return nil, ErrFoundVesselRequired
		}
	}

	return &Inspection{
		id:          uuid.New(),
		berthID:     berthID,
		berthCode:   berthCode,
		inspectorID: inspectorID,
		status:      status,
		expected:    expected,
		found:       found,
		notes:       strings.TrimSpace(notes),
		inspectedAt: inspectedAt,
	}, nil
}

// SnapshotExpected copies the covering booking's identity into an immutable
// snapshot for the inspection record.
func SnapshotExpected(covering *booking.Booking) *ExpectedSnapshot {
	if covering == nil {
		return nil
	}
	return &ExpectedSnapshot{
		BookingID:  covering.ID(),
		VesselName: covering.Vessel().Name(),
		VesselReg:  covering.Vessel().Registration(),
		GuestName:  covering.Guest().Name,
	}
}

func ReconstructInspection(
	id, berthID uuid.UUID,
	berthCode string,
	inspectorID uuid.UUID,
	status Status,
	expected *ExpectedSnapshot,
	found *FoundVessel,
	notes string,
	inspectedAt time.Time,
) *Inspection {
	return &Inspection{
		id:          id,
		berthID:     berthID,
		berthCode:   berthCode,
		inspectorID: inspectorID,
		status:      status,
		expected:    expected,
		found:       found,
		notes:       notes,
		inspectedAt: inspectedAt,
	}
}

func (i *Inspection) ID() uuid.UUID               { return i.id }
func (i *Inspection) BerthID() uuid.UUID          { return i.berthID }
func (i *Inspection) BerthCode() string           { return i.berthCode }
func (i *Inspection) InspectorID() uuid.UUID      { return i.inspectorID }
func (i *Inspection) Status() Status              { return i.status }
func (i *Inspection) Expected() *ExpectedSnapshot { return i.expected }
func (i *Inspection) Found() *FoundVessel         { return i.found }
func (i *Inspection) Notes() string               { return i.notes }
func (i *Inspection) InspectedAt() time.Time      { return i.inspectedAt }
