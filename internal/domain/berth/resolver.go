package berth

import (
	"sort"
	"time"

	"marina-ops/internal/domain/booking"

	"github.com/google/uuid"
)

// Resolution is the derived occupancy of one berth on one date. The same
// resolution feeds the map view, the table views and the inspection
// workflow, so it must be computed from identical inputs everywhere.
type Resolution struct {
	BerthID   uuid.UUID
	AsOf      time.Time
	Occupancy Occupancy

	// Covering is the unique active booking whose stay contains AsOf,
	// nil when the berth resolves free. Its vessel is the "expected
	// vessel" an inspector compares against.
	Covering *booking.Booking

	// Conflicting holds every additional active booking covering AsOf.
	// Non-empty means the overlap invariant was violated upstream; the
	// resolver still returns a deterministic Covering, but callers must
	// surface this as a data-integrity warning.
	Conflicting []*booking.Booking
}

func (r Resolution) HasConflict() bool {
	return len(r.Conflicting) > 0
}

// ExpectedVessel returns the vessel the covering booking announces, and
// whether one exists.
func (r Resolution) ExpectedVessel() (booking.Vessel, bool) {
	if r.Covering == nil {
		return booking.Vessel{}, false
	}
	return r.Covering.Vessel(), true
}

// Resolve derives the occupancy of a berth on asOf from a booking set.
//
// Pure: no I/O, no clock access, deterministic for identical inputs. Only
// bookings for the given berth whose half-open stay [checkIn, checkOut)
// contains asOf and whose status is active (pending, confirmed, checked_in)
// contribute; cancelled and no-show bookings never do. A checked-in covering
// booking yields Occupied, otherwise Reserved. When more than one active
// booking covers the date the most recently created one wins (id as
// tiebreaker) and the losers are reported via Conflicting.
func Resolve(berthID uuid.UUID, bookings []*booking.Booking, asOf time.Time) Resolution {
	day := booking.NormalizeDate(asOf)

	var covering []*booking.Booking
	for _, b := range bookings {
		if b.BerthID() != berthID {
			continue
		}
		if b.Covers(day) {
			covering = append(covering, b)
		}
	}

	res := Resolution{
		BerthID:   berthID,
		AsOf:      day,
		Occupancy: OccupancyFree,
	}

	if len(covering) == 0 {
		return res
	}

	if len(covering) > 1 {
		sort.SliceStable(covering, func(i, j int) bool {
			ci, cj := covering[i].CreatedAt(), covering[j].CreatedAt()
			if !ci.Equal(cj) {
				return ci.After(cj)
			}
			return covering[i].ID().String() > covering[j].ID().String()
		})
		res.Conflicting = covering[1:]
	}

	res.Covering = covering[0]
	if res.Covering.Status() == booking.StatusCheckedIn {
		res.Occupancy = OccupancyOccupied
	} else {
		res.Occupancy = OccupancyReserved
	}
	return res
}
