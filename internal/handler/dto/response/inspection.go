package response

import (
	"github.com/google/uuid"
)

// SubmitInspectionResponse reports what the inspection transaction did.
type SubmitInspectionResponse struct {
	ID               uuid.UUID  `json:"id"`
	Occupancy        string     `json:"occupancy"`
	ViolationID      *uuid.UUID `json:"violationId,omitempty"`
	CheckedInBooking *uuid.UUID `json:"checkedInBookingId,omitempty"`
}
