package request

import (
	"github.com/google/uuid"
)

// SubmitInspectionRequest records one berth observation. The found vessel
// fields are mandatory for wrong_vessel and illegal_mooring; the domain layer
// enforces that before any write.
type SubmitInspectionRequest struct {
	BerthID     uuid.UUID `json:"berth_id" binding:"required"`
	Status      string    `json:"status" binding:"required,oneof=correct wrong_vessel missing_vessel empty_ok illegal_mooring"`
	FoundVessel string    `json:"found_vessel_name"`
	FoundReg    string    `json:"found_vessel_registration"`
	Notes       string    `json:"notes"`
}
