package exoplanet

// SizeCategory compares a planet's radius to its host star's radius.
type SizeCategory string

const (
	Big      SizeCategory = "big"
	SameSize SizeCategory = "same-size"
	Small    SizeCategory = "small"
)

// Categories lists every size category in dropdown order.
var Categories = []SizeCategory{Big, SameSize, Small}

// ParseSizeCategory returns the category named by s.
func ParseSizeCategory(s string) (SizeCategory, bool) {
	for _, c := range Categories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// Label is the human readable dropdown label.
func (c SizeCategory) Label() string {
	switch c {
	case Big:
		return "Big"
	case SameSize:
		return "Same Size"
	case Small:
		return "Small"
	default:
		return string(c)
	}
}

// PlanetRecord is one row of the Kepler dataset. Field names follow the
// upstream API so the raw JSON decodes directly.
type PlanetRecord struct {
	PlanetRadius      float64      `json:"RPLANET"`
	PlanetTemperature float64      `json:"TPLANET"`
	StarRadius        float64      `json:"RSTAR"`
	StarMass          float64      `json:"MSTAR"`
	SizeCategory      SizeCategory `json:"SizeCategory"`
}
