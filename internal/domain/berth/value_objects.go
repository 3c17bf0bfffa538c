package berth

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidCode       = errors.New("berth code must look like A-05")
	ErrInvalidPosition   = errors.New("position out of range")
	ErrInvalidDimensions = errors.New("berth dimensions must be positive")
)

// codeRegex accepts a pontoon prefix, a dash and a numeric slot, e.g. A-05
// or MAIN-12.
var codeRegex = regexp.MustCompile(`^[A-Z][A-Z0-9]*-\d{1,3}$`)

// Code identifies a berth for display and on the map, e.g. "A-05". The
// pontoon grouping is the prefix before the dash. Code is not a join key;
// rows reference berths by id.
type Code struct {
	value string
}

func NewCode(s string) (Code, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if !codeRegex.MatchString(s) {
		return Code{}, ErrInvalidCode
	}
	return Code{value: s}, nil
}

func (c Code) String() string { return c.value }

// Pontoon derives the pontoon grouping from the code prefix.
func (c Code) Pontoon() string {
	idx := strings.Index(c.value, "-")
	if idx < 0 {
		return c.value
	}
	return c.value[:idx]
}

// Position is a map marker placement in WGS84 coordinates.
type Position struct {
	lat float64
	lng float64
}

func NewPosition(lat, lng float64) (Position, error) {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return Position{}, ErrInvalidPosition
	}
	return Position{lat: lat, lng: lng}, nil
}

func (p Position) Lat() float64 { return p.lat }
func (p Position) Lng() float64 { return p.lng }

// Dimensions describes the physical slot and the largest vessel it takes.
type Dimensions struct {
	LengthMeters    float64
	WidthMeters     float64
	DepthMeters     float64
	MaxVesselLength float64
	MaxVesselWidth  float64
}

func (d Dimensions) Validate() error {
	if d.LengthMeters <= 0 || d.WidthMeters <= 0 || d.DepthMeters <= 0 {
		return ErrInvalidDimensions
	}
	if d.MaxVesselLength <= 0 || d.MaxVesselWidth <= 0 {
		return ErrInvalidDimensions
	}
	return nil
}

// FitsVessel reports whether a vessel of the given length fits the slot.
func (d Dimensions) FitsVessel(lengthMeters float64) bool {
	return lengthMeters > 0 && lengthMeters <= d.MaxVesselLength
}

// Amenities are the service hookups available at the berth.
type Amenities struct {
	Water       bool
	Electricity bool
}
