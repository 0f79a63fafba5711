package exoplanet

import "math"

// Bounds holds the min and max planetary radius of a table.
type Bounds struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Range converts the bounds into a full-width slider selection.
func (b Bounds) Range() RadiusRange {
	return RadiusRange{Lo: b.Min, Hi: b.Max}
}

// RadiusBounds scans records for the planetary radius extremes.
// An empty table yields the zero Bounds.
func RadiusBounds(records []PlanetRecord) Bounds {
	if len(records) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: records[0].PlanetRadius, Max: records[0].PlanetRadius}
	for _, rec := range records[1:] {
		b.Min = math.Min(b.Min, rec.PlanetRadius)
		b.Max = math.Max(b.Max, rec.PlanetRadius)
	}
	return b
}

// Align widens b outward to the nearest multiples of step, so a slider
// stepping from Min by step lands exactly on Max.
func (b Bounds) Align(step float64) Bounds {
	if step <= 0 {
		return b
	}
	const eps = 1e-9
	lo := math.Floor(b.Min/step+eps) * step
	hi := math.Ceil(b.Max/step-eps) * step
	return Bounds{Min: roundGrid(lo), Max: roundGrid(hi)}
}

// roundGrid drops the float noise left by multiplying out a grid index.
func roundGrid(v float64) float64 {
	return math.Round(v*1e9) / 1e9
}

// Marks returns slider tick positions every step units from floor(min) up
// to floor(max) inclusive.
func (b Bounds) Marks(step int) []int {
	if step <= 0 {
		return nil
	}
	lo, hi := int(math.Floor(b.Min)), int(math.Floor(b.Max))
	var marks []int
	for i := lo; i <= hi; i += step {
		marks = append(marks, i)
	}
	return marks
}

// Summary counts records per size category.
type Summary struct {
	Total      int                  `json:"total"`
	ByCategory map[SizeCategory]int `json:"byCategory"`
}

// Summarize tallies records by category. Every category is present in the
// result even when its count is zero.
func Summarize(records []PlanetRecord) Summary {
	s := Summary{Total: len(records), ByCategory: make(map[SizeCategory]int, len(Categories))}
	for _, c := range Categories {
		s.ByCategory[c] = 0
	}
	for _, rec := range records {
		s.ByCategory[rec.SizeCategory]++
	}
	return s
}
