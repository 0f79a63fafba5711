package exoplanet

// RadiusRange is an inclusive range over planetary radius.
type RadiusRange struct {
	Lo float64 `json:"lo"`
	Hi float64 `json:"hi"`
}

// Contains reports whether lo <= r <= hi.
func (rr RadiusRange) Contains(r float64) bool {
	return rr.Lo <= r && r <= rr.Hi
}

// Filter returns the records inside rr whose category is c, in table order.
// The input slice is never modified.
func Filter(records []PlanetRecord, rr RadiusRange, c SizeCategory) []PlanetRecord {
	out := make([]PlanetRecord, 0, len(records))
	for _, rec := range records {
		if rr.Contains(rec.PlanetRadius) && rec.SizeCategory == c {
			out = append(out, rec)
		}
	}
	return out
}
