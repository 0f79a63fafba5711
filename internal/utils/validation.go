package utils

import (
	"errors"
	"math"
	"regexp"

	"github.com/exodash/exodash/internal/exoplanet"
)

// Plot names are lower-case words joined by hyphens.
var validNamePattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// ValidateName validates a route name parameter such as a plot name.
func ValidateName(name string) error {
	if name == "" {
		return errors.New("name cannot be empty")
	}
	if len(name) > 64 {
		return errors.New("name too long (max 64 characters)")
	}
	if !validNamePattern.MatchString(name) {
		return errors.New("name contains invalid characters")
	}
	return nil
}

// ValidateRadius rejects NaN and infinite slider positions.
func ValidateRadius(r float64) error {
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return errors.New("radius must be a finite number")
	}
	return nil
}

// ValidateRange checks that lo does not exceed hi.
func ValidateRange(rr exoplanet.RadiusRange) error {
	if rr.Lo > rr.Hi {
		return errors.New("lo must not be greater than hi")
	}
	return nil
}

// ValidateCategory parses a size category, defaulting to big when empty.
func ValidateCategory(s string) (exoplanet.SizeCategory, error) {
	if s == "" {
		return exoplanet.Big, nil
	}
	c, ok := exoplanet.ParseSizeCategory(s)
	if !ok {
		return "", errors.New("category must be one of big, same-size, small")
	}
	return c, nil
}
