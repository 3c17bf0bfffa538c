package berth

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Berth is a single mooring slot. It is created when an operator places a
// marker on the marina map and lives until a manager removes it. Occupancy
// is never a field here; see Resolve.
type Berth struct {
	id        uuid.UUID
	code      Code
	position  Position
	dims      Dimensions
	amenities Amenities
	status    Status
	createdBy uuid.UUID
	createdAt time.Time
	updatedAt time.Time
}

func NewBerth(code Code, position Position, dims Dimensions, amenities Amenities, createdBy uuid.UUID) (*Berth, error) {
	if err := dims.Validate(); err != nil {
		return nil, err
	}
	return &Berth{
		id:        uuid.New(),
		code:      code,
		position:  position,
		dims:      dims,
		amenities: amenities,
		status:    StatusActive,
		createdBy: createdBy,
	}, nil
}

func ReconstructBerth(
	id uuid.UUID,
	code Code,
	position Position,
	dims Dimensions,
	amenities Amenities,
	status Status,
	createdBy uuid.UUID,
	createdAt, updatedAt time.Time,
) (*Berth, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid berth status %q", status)
	}
	return &Berth{
		id:        id,
		code:      code,
		position:  position,
		dims:      dims,
		amenities: amenities,
		status:    status,
		createdBy: createdBy,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (b *Berth) ID() uuid.UUID        { return b.id }
func (b *Berth) Code() Code           { return b.code }
func (b *Berth) Pontoon() string      { return b.code.Pontoon() }
func (b *Berth) Position() Position   { return b.position }
func (b *Berth) Dimensions() Dimensions { return b.dims }
func (b *Berth) Amenities() Amenities { return b.amenities }
func (b *Berth) Status() Status       { return b.status }
func (b *Berth) CreatedBy() uuid.UUID { return b.createdBy }
func (b *Berth) CreatedAt() time.Time { return b.createdAt }
func (b *Berth) UpdatedAt() time.Time { return b.updatedAt }

// MoveMarker repositions the map marker.
func (b *Berth) MoveMarker(pos Position) {
	b.position = pos
}

func (b *Berth) SetStatus(status Status) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid berth status %q", status)
	}
	b.status = status
	return nil
}

func (b *Berth) UpdateDimensions(dims Dimensions) error {
	if err := dims.Validate(); err != nil {
		return err
	}
	b.dims = dims
	return nil
}

func (b *Berth) SetAmenities(a Amenities) {
	b.amenities = a
}

func (b *Berth) IsBookable() bool {
	return b.status == StatusActive
}
