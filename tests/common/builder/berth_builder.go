//go:build unit || e2e

package builder

import (
	"time"

	reqdto "marina-ops/internal/handler/dto/request"
	"marina-ops/internal/usecase/queries"

	"github.com/google/uuid"
)

type BerthBuilder struct {
	Code            string
	Lat             float64
	Lng             float64
	LengthMeters    float64
	WidthMeters     float64
	DepthMeters     float64
	MaxVesselLength float64
	MaxVesselWidth  float64
	Water           bool
	Electricity     bool
	Status          string
}

func NewBerthBuilder() *BerthBuilder {
	return &BerthBuilder{
		Code:            "A-01",
		Lat:             43.2951,
		Lng:             5.3739,
		LengthMeters:    12,
		WidthMeters:     4.5,
		DepthMeters:     3,
		MaxVesselLength: 11,
		MaxVesselWidth:  4,
		Water:           true,
		Electricity:     true,
		Status:          "active",
	}
}

func (b *BerthBuilder) With(mutate func(*BerthBuilder)) *BerthBuilder {
	mutate(b)
	return b
}

func (b *BerthBuilder) BuildDTO() reqdto.PlaceBerthRequest {
	return reqdto.PlaceBerthRequest{
		Code:            b.Code,
		Lat:             b.Lat,
		Lng:             b.Lng,
		LengthMeters:    b.LengthMeters,
		WidthMeters:     b.WidthMeters,
		DepthMeters:     b.DepthMeters,
		MaxVesselLength: b.MaxVesselLength,
		MaxVesselWidth:  b.MaxVesselWidth,
		Water:           b.Water,
		Electricity:     b.Electricity,
	}
}

func (b *BerthBuilder) BuildView() *queries.BerthView {
	now := time.Now()
	return &queries.BerthView{
		ID:              uuid.New(),
		Code:            b.Code,
		Pontoon:         "A",
		Lat:             b.Lat,
		Lng:             b.Lng,
		LengthMeters:    b.LengthMeters,
		WidthMeters:     b.WidthMeters,
		DepthMeters:     b.DepthMeters,
		MaxVesselLength: b.MaxVesselLength,
		MaxVesselWidth:  b.MaxVesselWidth,
		Water:           b.Water,
		Electricity:     b.Electricity,
		Status:          b.Status,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}
