package berth

// Status is the berth lifecycle set by operators, independent of occupancy.
type Status string

const (
	StatusActive      Status = "active"
	StatusInactive    Status = "inactive"
	StatusMaintenance Status = "maintenance"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusMaintenance:
		return true
	default:
		return false
	}
}

// Occupancy is never stored; it is derived by the resolver from the berth's
// bookings as of a given date.
type Occupancy string

const (
	OccupancyFree     Occupancy = "free"
	OccupancyOccupied Occupancy = "occupied"
	OccupancyReserved Occupancy = "reserved"
)

func (o Occupancy) String() string {
	return string(o)
}

func (o Occupancy) Label() string {
	switch o {
	case OccupancyFree:
		return "Free"
	case OccupancyOccupied:
		return "Occupied"
	case OccupancyReserved:
		return "Reserved"
	default:
		return "Unknown"
	}
}
