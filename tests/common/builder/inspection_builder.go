//go:build unit || e2e

package builder

import (
	reqdto "marina-ops/internal/handler/dto/request"

	"github.com/google/uuid"
)

type InspectionBuilder struct {
	BerthID     uuid.UUID
	Status      string
	FoundVessel string
	FoundReg    string
	Notes       string
}

func NewInspectionBuilder() *InspectionBuilder {
	return &InspectionBuilder{
		BerthID: uuid.New(),
		Status:  "correct",
	}
}

func (i *InspectionBuilder) With(mutate func(*InspectionBuilder)) *InspectionBuilder {
	mutate(i)
	return i
}

func (i *InspectionBuilder) BuildDTO() reqdto.SubmitInspectionRequest {
	return reqdto.SubmitInspectionRequest{
		BerthID:     i.BerthID,
		Status:      i.Status,
		FoundVessel: i.FoundVessel,
		FoundReg:    i.FoundReg,
		Notes:       i.Notes,
	}
}
