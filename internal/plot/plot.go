// Package plot renders the dashboard's scatter plots as SVG.
package plot

import (
	"errors"
	"fmt"
	"io"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/exodash/exodash/internal/exoplanet"
)

// ErrNoData is returned when there is nothing to draw.
var ErrNoData = errors.New("plot: no records to render")

const (
	defaultWidth  = 720
	defaultHeight = 420
	rangePadding  = 0.05
)

// Axis picks one numeric column from a record.
type Axis struct {
	Name  string
	Value func(exoplanet.PlanetRecord) float64
}

var (
	PlanetRadius      = Axis{Name: "RPLANET", Value: func(r exoplanet.PlanetRecord) float64 { return r.PlanetRadius }}
	PlanetTemperature = Axis{Name: "TPLANET", Value: func(r exoplanet.PlanetRecord) float64 { return r.PlanetTemperature }}
	StarRadius        = Axis{Name: "RSTAR", Value: func(r exoplanet.PlanetRecord) float64 { return r.StarRadius }}
	StarMass          = Axis{Name: "MSTAR", Value: func(r exoplanet.PlanetRecord) float64 { return r.StarMass }}
)

// Spec describes one of the dashboard plots.
type Spec struct {
	Name        string
	TitlePrefix string
	X, Y        Axis
}

// Title formats the plot title for the selected category.
func (s Spec) Title(c exoplanet.SizeCategory) string {
	return fmt.Sprintf("%s: %s", s.TitlePrefix, c.Label())
}

// Specs lists the dashboard plots in page order.
var Specs = []Spec{
	{Name: "scatter", TitlePrefix: "Size Category", X: PlanetRadius, Y: PlanetTemperature},
	{Name: "radius-relationship", TitlePrefix: "Planet vs Star Radius", X: PlanetRadius, Y: StarRadius},
	{Name: "mass-size", TitlePrefix: "Mass vs Temp", X: PlanetTemperature, Y: StarMass},
}

// Lookup finds a plot spec by name.
func Lookup(name string) (Spec, bool) {
	for _, s := range Specs {
		if s.Name == name {
			return s, true
		}
	}
	return Spec{}, false
}

var categoryColors = map[exoplanet.SizeCategory]drawing.Color{
	exoplanet.Big:      drawing.ColorFromHex("EF4444"),
	exoplanet.SameSize: drawing.ColorFromHex("F59E0B"),
	exoplanet.Small:    drawing.ColorFromHex("4F46E5"),
}

// pointStyle renders points only, with no connecting line.
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    4,
		DotColor:    col,
	}
}

// axisRange pads [min, max] and widens degenerate ranges so go-chart never
// sees a zero-width axis.
func axisRange(values []float64) *chart.ContinuousRange {
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	span := hi - lo
	if span == 0 {
		span = math.Max(math.Abs(lo), 1)
	}
	pad := span * rangePadding
	if hi == lo {
		pad = span / 2
	}
	return &chart.ContinuousRange{Min: lo - pad, Max: hi + pad}
}

// Build assembles the chart for records already filtered to category c.
func Build(spec Spec, records []exoplanet.PlanetRecord, c exoplanet.SizeCategory) (chart.Chart, error) {
	if len(records) == 0 {
		return chart.Chart{}, ErrNoData
	}

	xs := make([]float64, len(records))
	ys := make([]float64, len(records))
	for i, rec := range records {
		xs[i] = spec.X.Value(rec)
		ys[i] = spec.Y.Value(rec)
	}

	col, ok := categoryColors[c]
	if !ok {
		col = chart.ColorBlue
	}

	return chart.Chart{
		Title:      spec.Title(c),
		Width:      defaultWidth,
		Height:     defaultHeight,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      chart.XAxis{Name: spec.X.Name, Range: axisRange(xs)},
		YAxis:      chart.YAxis{Name: spec.Y.Name, Range: axisRange(ys)},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    string(c),
				Style:   pointStyle(col),
				XValues: xs,
				YValues: ys,
			},
		},
	}, nil
}

// RenderSVG writes the plot for records as SVG.
func RenderSVG(w io.Writer, spec Spec, records []exoplanet.PlanetRecord, c exoplanet.SizeCategory) error {
	graph, err := Build(spec, records, c)
	if err != nil {
		return err
	}
	if err := graph.Render(chart.SVG, w); err != nil {
		return fmt.Errorf("error rendering %s plot: %w", spec.Name, err)
	}
	return nil
}
