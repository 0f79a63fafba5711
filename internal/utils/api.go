package utils

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/exodash/exodash/internal/exoplanet"
)

// ParseFloatParam retrieves a float64 value from the provided URL query parameters.
// If the key is not present it returns def. An unparsable value is recorded in fieldErrors.
func ParseFloatParam(params url.Values, key string, def float64, fieldErrors map[string][]string) float64 {
	val := params.Get(key)
	if val == "" {
		return def
	}

	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		fieldErrors[key] = append(fieldErrors[key], fmt.Sprintf("Invalid field value for field %q.", key))
		return def
	}
	if err := ValidateRadius(f); err != nil {
		fieldErrors[key] = append(fieldErrors[key], err.Error())
		return def
	}
	return f
}

// Selection is the pair of inputs every dashboard output is computed from.
type Selection struct {
	Range    exoplanet.RadiusRange
	Category exoplanet.SizeCategory
}

// ParseSelection reads lo, hi and category from the query. Missing bounds
// default to the full dataset range and a missing category to big. The
// returned map is empty when the selection is valid.
func ParseSelection(params url.Values, bounds exoplanet.Bounds) (Selection, map[string][]string) {
	fieldErrors := make(map[string][]string)

	sel := Selection{
		Range: exoplanet.RadiusRange{
			Lo: ParseFloatParam(params, "lo", bounds.Min, fieldErrors),
			Hi: ParseFloatParam(params, "hi", bounds.Max, fieldErrors),
		},
	}

	c, err := ValidateCategory(params.Get("category"))
	if err != nil {
		fieldErrors["category"] = append(fieldErrors["category"], err.Error())
	}
	sel.Category = c

	if len(fieldErrors["lo"]) == 0 && len(fieldErrors["hi"]) == 0 {
		if err := ValidateRange(sel.Range); err != nil {
			fieldErrors["lo"] = append(fieldErrors["lo"], err.Error())
		}
	}

	return sel, fieldErrors
}

// Query encodes the selection back into URL query parameters.
func (s Selection) Query() url.Values {
	v := url.Values{}
	v.Set("lo", strconv.FormatFloat(s.Range.Lo, 'f', -1, 64))
	v.Set("hi", strconv.FormatFloat(s.Range.Hi, 'f', -1, 64))
	v.Set("category", string(s.Category))
	return v
}
