package models

import (
	"time"

	"github.com/exodash/exodash/internal/exoplanet"
)

const (
	// MarkStep is the spacing of slider tick marks in radius units.
	MarkStep = 2
	// SliderStep is the radius slider granularity.
	SliderStep = 0.1
)

// PlanetsData is the payload of the filtered planet list.
type PlanetsData struct {
	Selection SelectionModel           `json:"selection"`
	Count     int                      `json:"count"`
	List      []exoplanet.PlanetRecord `json:"list"`
}

type SelectionModel struct {
	Lo       float64                `json:"lo"`
	Hi       float64                `json:"hi"`
	Category exoplanet.SizeCategory `json:"category"`
}

func NewPlanetsData(rr exoplanet.RadiusRange, c exoplanet.SizeCategory, records []exoplanet.PlanetRecord) PlanetsData {
	if records == nil {
		records = []exoplanet.PlanetRecord{}
	}
	return PlanetsData{
		Selection: SelectionModel{Lo: rr.Lo, Hi: rr.Hi, Category: c},
		Count:     len(records),
		List:      records,
	}
}

// BoundsModel describes the radius slider. Min and Max are the dataset
// extremes; SliderMin and SliderMax widen them onto the Step grid so both
// ends stay reachable.
type BoundsModel struct {
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
	SliderMin float64 `json:"sliderMin"`
	SliderMax float64 `json:"sliderMax"`
	Step      float64 `json:"step"`
	Marks     []int   `json:"marks"`
}

func NewBoundsModel(b exoplanet.Bounds) BoundsModel {
	marks := b.Marks(MarkStep)
	if marks == nil {
		marks = []int{}
	}
	slider := b.Align(SliderStep)
	return BoundsModel{
		Min:       b.Min,
		Max:       b.Max,
		SliderMin: slider.Min,
		SliderMax: slider.Max,
		Step:      SliderStep,
		Marks:     marks,
	}
}

// HealthModel reports whether the dataset is loaded.
type HealthModel struct {
	Status      string `json:"status"`
	Records     int    `json:"records"`
	Source      string `json:"source"`
	LastUpdated int64  `json:"lastUpdated"`
}

func NewHealthModel(records int, source string, lastUpdated time.Time) HealthModel {
	status := "ok"
	if records == 0 {
		status = "empty"
	}
	return HealthModel{
		Status:      status,
		Records:     records,
		Source:      source,
		LastUpdated: lastUpdated.UnixNano() / int64(time.Millisecond),
	}
}
