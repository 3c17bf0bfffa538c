package request

import (
	"github.com/google/uuid"
)

type ReportViolationRequest struct {
	BerthID     uuid.UUID `json:"berth_id" binding:"required"`
	VesselName  string    `json:"vessel_name"`
	VesselReg   string    `json:"vessel_registration"`
	Description string    `json:"description" binding:"required"`
}

type AdvanceViolationRequest struct {
	Status string `json:"status" binding:"required,oneof=in_progress resolved dismissed"`
}
