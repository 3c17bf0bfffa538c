package response

import (
	"time"

	"marina-ops/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BerthResponse struct {
	ID              uuid.UUID `json:"id"`
	Code            string    `json:"code"`
	Pontoon         string    `json:"pontoon"`
	Lat             float64   `json:"lat"`
	Lng             float64   `json:"lng"`
	LengthMeters    float64   `json:"lengthMeters"`
	WidthMeters     float64   `json:"widthMeters"`
	DepthMeters     float64   `json:"depthMeters"`
	MaxVesselLength float64   `json:"maxVesselLength"`
	MaxVesselWidth  float64   `json:"maxVesselWidth"`
	Water           bool      `json:"water"`
	Electricity     bool      `json:"electricity"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func FromBerthView(v *queries.BerthView) *BerthResponse {
	var r BerthResponse
	_ = copier.Copy(&r, v)
	return &r
}

func FromBerthViews(views []*queries.BerthView) []*BerthResponse {
	result := make([]*BerthResponse, len(views))
	for i, v := range views {
		result[i] = FromBerthView(v)
	}
	return result
}

// MapViewResponse is the live map payload: every berth with derived
// occupancy, plus data-integrity warnings for overlapping bookings.
type MapViewResponse struct {
	AsOf     string                     `json:"asOf"`
	Items    []*queries.BerthMapItem    `json:"items"`
	Warnings []queries.IntegrityWarning `json:"warnings,omitempty"`
}
