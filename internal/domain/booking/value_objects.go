package booking

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidStayPeriod   = errors.New("check-out date must be after check-in date")
	ErrEmptyVesselName     = errors.New("vessel name is required")
	ErrInvalidVesselLength = errors.New("vessel length must be positive")
	ErrNegativeAmount      = errors.New("amount cannot be negative")
)

// StayPeriod is a half-open date range [checkIn, checkOut): the check-in day
// is covered, the check-out day is free for resale. Times-of-day are
// irrelevant; both ends are normalized to midnight UTC.
type StayPeriod struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayPeriod(checkIn, checkOut time.Time) (StayPeriod, error) {
	in := NormalizeDate(checkIn)
	out := NormalizeDate(checkOut)
	if !out.After(in) {
		return StayPeriod{}, ErrInvalidStayPeriod
	}
	return StayPeriod{checkIn: in, checkOut: out}, nil
}

// NormalizeDate truncates t to midnight UTC so date comparisons ignore
// wall-clock time and zone.
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (p StayPeriod) CheckIn() time.Time  { return p.checkIn }
func (p StayPeriod) CheckOut() time.Time { return p.checkOut }

// Covers reports whether day falls inside the half-open interval.
func (p StayPeriod) Covers(day time.Time) bool {
	d := NormalizeDate(day)
	return !d.Before(p.checkIn) && d.Before(p.checkOut)
}

func (p StayPeriod) Nights() int {
	return int(p.checkOut.Sub(p.checkIn).Hours() / 24)
}

func (p StayPeriod) Overlaps(other StayPeriod) bool {
	return p.checkIn.Before(other.checkOut) && other.checkIn.Before(p.checkOut)
}

// ToDaterange renders the period as a postgres daterange literal, matching
// the exclusion constraint on berth_bookings.
func (p StayPeriod) ToDaterange() string {
	return fmt.Sprintf("[%s,%s)", p.checkIn.Format(time.DateOnly), p.checkOut.Format(time.DateOnly))
}

// Vessel identifies the boat a booking or inspection refers to.
type Vessel struct {
	name         string
	registration string
	lengthMeters float64
}

func NewVessel(name, registration string, lengthMeters float64) (Vessel, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Vessel{}, ErrEmptyVesselName
	}
	if lengthMeters <= 0 {
		return Vessel{}, ErrInvalidVesselLength
	}
	return Vessel{
		name:         name,
		registration: strings.TrimSpace(registration),
		lengthMeters: lengthMeters,
	}, nil
}

func (v Vessel) Name() string          { return v.name }
func (v Vessel) Registration() string  { return v.registration }
func (v Vessel) LengthMeters() float64 { return v.lengthMeters }
func (v Vessel) IsZero() bool          { return v.name == "" }

// Money is a currency amount in cents. All derived pricing arithmetic rounds
// to whole cents at each stage, never only at display time.
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

func MustMoney(cents int64) Money {
	m, err := NewMoney(cents)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Cents() int64 { return m.cents }

func (m Money) Float() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) GreaterOrEqual(other Money) bool {
	return m.cents >= other.cents
}

func (m Money) IsZero() bool { return m.cents == 0 }
