package request

import (
	"marina-ops/internal/domain/berth"
)

// PlaceBerthRequest creates a berth from a map marker placement.
type PlaceBerthRequest struct {
	Code            string  `json:"code" binding:"required"`
	Lat             float64 `json:"lat" binding:"required,gte=-90,lte=90"`
	Lng             float64 `json:"lng" binding:"required,gte=-180,lte=180"`
	LengthMeters    float64 `json:"length_m" binding:"required,gt=0"`
	WidthMeters     float64 `json:"width_m" binding:"required,gt=0"`
	DepthMeters     float64 `json:"depth_m" binding:"required,gt=0"`
	MaxVesselLength float64 `json:"max_vessel_length_m" binding:"required,gt=0"`
	MaxVesselWidth  float64 `json:"max_vessel_width_m" binding:"required,gt=0"`
	Water           bool    `json:"water"`
	Electricity     bool    `json:"electricity"`
}

func (r *PlaceBerthRequest) Dimensions() berth.Dimensions {
	return berth.Dimensions{
		LengthMeters:    r.LengthMeters,
		WidthMeters:     r.WidthMeters,
		DepthMeters:     r.DepthMeters,
		MaxVesselLength: r.MaxVesselLength,
		MaxVesselWidth:  r.MaxVesselWidth,
	}
}

type UpdateBerthRequest struct {
	LengthMeters    float64 `json:"length_m" binding:"required,gt=0"`
	WidthMeters     float64 `json:"width_m" binding:"required,gt=0"`
	DepthMeters     float64 `json:"depth_m" binding:"required,gt=0"`
	MaxVesselLength float64 `json:"max_vessel_length_m" binding:"required,gt=0"`
	MaxVesselWidth  float64 `json:"max_vessel_width_m" binding:"required,gt=0"`
	Water           bool    `json:"water"`
	Electricity     bool    `json:"electricity"`
}

func (r *UpdateBerthRequest) Dimensions() berth.Dimensions {
	return berth.Dimensions{
		LengthMeters:    r.LengthMeters,
		WidthMeters:     r.WidthMeters,
		DepthMeters:     r.DepthMeters,
		MaxVesselLength: r.MaxVesselLength,
		MaxVesselWidth:  r.MaxVesselWidth,
	}
}

type MoveMarkerRequest struct {
	Lat float64 `json:"lat" binding:"required,gte=-90,lte=90"`
	Lng float64 `json:"lng" binding:"required,gte=-180,lte=180"`
}

type SetBerthStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active inactive maintenance"`
}
