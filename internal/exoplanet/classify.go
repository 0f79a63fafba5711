package exoplanet

import "math"

// sameSizeTolerance is the relative radius difference under which a planet
// counts as the same size as its star.
const sameSizeTolerance = 0.1

// Classify derives the size category from a planetary radius and a stellar
// radius. The big check runs first, so equal radii are same-size.
func Classify(planetRadius, starRadius float64) SizeCategory {
	if planetRadius > starRadius {
		return Big
	}
	if math.Abs(planetRadius-starRadius)/starRadius < sameSizeTolerance {
		return SameSize
	}
	return Small
}

// ClassifyAll assigns SizeCategory on every record in place.
func ClassifyAll(records []PlanetRecord) {
	for i := range records {
		records[i].SizeCategory = Classify(records[i].PlanetRadius, records[i].StarRadius)
	}
}
