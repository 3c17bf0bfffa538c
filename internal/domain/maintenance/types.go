package maintenance

// Category groups damage reports for triage.
type Category string

const (
	CategoryPontoon    Category = "pontoon"
	CategoryElectrical Category = "electrical"
	CategoryWater      Category = "water"
	CategoryMooring    Category = "mooring"
	CategoryOther      Category = "other"
)

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryPontoon, CategoryElectrical, CategoryWater, CategoryMooring, CategoryOther:
		return true
	default:
		return false
	}
}

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

func (s Severity) String() string {
	return string(s)
}

func (s Severity) IsValid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	default:
		return false
	}
}

// Status is the ticket lifecycle:
// reported -> acknowledged -> in_progress -> completed or cancelled.
type Status string

const (
	StatusReported     Status = "reported"
	StatusAcknowledged Status = "acknowledged"
	StatusInProgress   Status = "in_progress"
	StatusCompleted    Status = "completed"
	StatusCancelled    Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusReported, StatusAcknowledged, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusReported:
		return next == StatusAcknowledged || next == StatusInProgress || next == StatusCancelled
	case StatusAcknowledged:
		return next == StatusInProgress || next == StatusCancelled
	case StatusInProgress:
		return next == StatusCompleted || next == StatusCancelled
	default:
		return false
	}
}
