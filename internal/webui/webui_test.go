package webui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exodash/exodash/internal/app"
	"github.com/exodash/exodash/internal/appconf"
	"github.com/exodash/exodash/internal/catalog"
	"github.com/exodash/exodash/internal/exoplanet"
	"github.com/exodash/exodash/internal/metrics"
)

func createTestWebUI(t *testing.T) (*WebUI, *httprouter.Router) {
	catalogConfig := catalog.DefaultConfig()
	catalogConfig.DatasetURL = filepath.Join("../../testdata", "kepler.json")

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	manager, err := catalog.InitManager(context.Background(), catalogConfig, logger)
	require.NoError(t, err)

	webUI := NewWebUI(&app.Application{
		Config:        appconf.Config{Port: 4000, Env: appconf.Test},
		CatalogConfig: catalogConfig,
		Logger:        logger,
		Catalog:       manager,
		Metrics:       metrics.New(),
	})

	router := httprouter.New()
	webUI.SetWebUIRoutes(router)
	return webUI, router
}

func get(t *testing.T, router http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestDashboardDefaults(t *testing.T) {
	_, router := createTestWebUI(t)

	rec := get(t, router, "/")
	body := rec.Body.String()

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, body, "EXOPLANET DATA VISUALIZATION")
	assert.Contains(t, body, "Read about exoplanets")
	assert.Contains(t, body, `<option value="big" selected>Big</option>`)
	assert.Contains(t, body, `<option value="same-size">Same Size</option>`)
	assert.Contains(t, body, `<option value="small">Small</option>`)
	assert.Contains(t, body, `min="0.5"`)
	assert.Contains(t, body, `max="16.4"`)
	assert.Contains(t, body, `value="16.4"`)
	assert.Contains(t, body, `step="0.1"`)
	assert.Contains(t, body, `<option value="16" label="16">`)
	assert.Contains(t, body, "You have selected big")
	assert.Contains(t, body, "5 of 10 planets match.")
	assert.Contains(t, body, `src="/plots/scatter.svg?`)
	assert.Contains(t, body, `src="/plots/radius-relationship.svg?`)
	assert.Contains(t, body, `src="/plots/mass-size.svg?`)
	assert.NotContains(t, body, "About This Site")
}

func TestDashboardSelection(t *testing.T) {
	_, router := createTestWebUI(t)

	rec := get(t, router, "/?category=small&lo=0.5&hi=1")
	body := rec.Body.String()

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, `<option value="small" selected>Small</option>`)
	assert.Contains(t, body, "You have selected small")
	assert.Contains(t, body, "2 of 10 planets match.")
	assert.Contains(t, body, `value="0.5"`)
	assert.Contains(t, body, `value="1"`)
}

func TestDashboardSliderReachesBothEnds(t *testing.T) {
	webUI, router := createTestWebUI(t)

	body := get(t, router, "/").Body.String()
	lo := attr(t, body, `name="lo"`, "min")
	hi := attr(t, body, `name="hi"`, "max")
	step := attr(t, body, `name="lo"`, "step")

	steps := (hi - lo) / step
	assert.InDelta(t, math.Round(steps), steps, 1e-6, "slider max must sit on the step grid")
	assert.Equal(t, lo, attr(t, body, `name="lo"`, "value"))
	assert.Equal(t, hi, attr(t, body, `name="hi"`, "value"))

	// resubmitting the untouched slider keeps every planet
	total := 0
	for _, c := range exoplanet.Categories {
		total += len(webUI.Catalog.Filter(exoplanet.RadiusRange{Lo: lo, Hi: hi}, c))
	}
	assert.Equal(t, len(webUI.Catalog.Records()), total)

	query := fmt.Sprintf("/?category=small&lo=%v&hi=%v", lo, hi)
	assert.Contains(t, get(t, router, query).Body.String(), "2 of 10 planets match.")
}

// attr reads a numeric attribute from the input tag containing marker.
func attr(t *testing.T, body, marker, name string) float64 {
	t.Helper()
	start := strings.Index(body, marker)
	require.GreaterOrEqual(t, start, 0, "missing %s", marker)
	tagStart := strings.LastIndex(body[:start], "<")
	tag := body[tagStart : start+strings.Index(body[start:], ">")]

	m := regexp.MustCompile(`\b` + name + `="([^"]+)"`).FindStringSubmatch(tag)
	require.Len(t, m, 2, "missing %s on %s", name, marker)
	v, err := strconv.ParseFloat(m[1], 64)
	require.NoError(t, err)
	return v
}

func TestDashboardAboutTab(t *testing.T) {
	_, router := createTestWebUI(t)

	rec := get(t, router, "/?tab=about")
	body := rec.Body.String()

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, "About This Site")
	assert.Contains(t, body, "Kepler mission")
	assert.NotContains(t, body, "<img")
}

func TestDashboardInvalidSelection(t *testing.T) {
	webUI, router := createTestWebUI(t)

	rec := get(t, router, "/?category=huge&lo=9&hi=2")
	body := rec.Body.String()

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, body, `class="errors"`)
	assert.Contains(t, body, "category must be one of")
	// falls back to the default selection
	assert.Contains(t, body, "You have selected big")
	assert.Equal(t, 1.0, testutil.ToFloat64(webUI.Metrics.RequestsTotal.WithLabelValues("GET", "/", "400")))
}

func TestPlotHandler(t *testing.T) {
	webUI, router := createTestWebUI(t)

	for _, name := range []string{"scatter", "radius-relationship", "mass-size"} {
		t.Run(name, func(t *testing.T) {
			rec := get(t, router, "/plots/"+name+".svg?category=big")

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
			assert.Contains(t, rec.Body.String(), "<svg")
		})
	}

	assert.Equal(t, 1.0, testutil.ToFloat64(webUI.Metrics.PlotRenders.WithLabelValues("scatter", "ok")))
}

func TestPlotHandlerEmptySelection(t *testing.T) {
	webUI, router := createTestWebUI(t)

	rec := get(t, router, "/plots/scatter.svg?category=small&lo=10&hi=12")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "Size Category: Small")
	assert.Contains(t, rec.Body.String(), "No planets match the current selection")
	assert.Equal(t, 1.0, testutil.ToFloat64(webUI.Metrics.PlotRenders.WithLabelValues("scatter", "empty")))
}

func TestPlotHandlerErrors(t *testing.T) {
	_, router := createTestWebUI(t)

	tests := []struct {
		name   string
		target string
		status int
	}{
		{"unknown plot", "/plots/histogram.svg", http.StatusNotFound},
		{"invalid plot name", "/plots/Scatter.svg", http.StatusBadRequest},
		{"invalid category", "/plots/scatter.svg?category=huge", http.StatusBadRequest},
		{"inverted range", "/plots/scatter.svg?lo=5&hi=1", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, get(t, router, tt.target).Code)
		})
	}
}

func TestPlotHandlerErrorMessageIsStable(t *testing.T) {
	_, router := createTestWebUI(t)

	target := "/plots/scatter.svg?category=huge&lo=abc&hi=xyz"
	first := get(t, router, target)
	require.Equal(t, http.StatusBadRequest, first.Code)

	msg := first.Body.String()
	assert.Less(t, strings.Index(msg, "category:"), strings.Index(msg, "hi:"))
	assert.Less(t, strings.Index(msg, "hi:"), strings.Index(msg, "lo:"))

	for i := 0; i < 20; i++ {
		assert.Equal(t, msg, get(t, router, target).Body.String())
	}
}

func TestStaticAssets(t *testing.T) {
	_, router := createTestWebUI(t)

	css := get(t, router, "/static/dashboard.css")
	assert.Equal(t, http.StatusOK, css.Code)
	assert.Contains(t, css.Body.String(), ".tabs")

	js := get(t, router, "/static/dashboard.js")
	assert.Equal(t, http.StatusOK, js.Code)
	assert.Contains(t, js.Body.String(), "form.submit()")
}

func TestDebugIndexHandler(t *testing.T) {
	_, router := createTestWebUI(t)

	tests := []struct {
		dataType string
		title    string
		contains string
	}{
		{"records", "Dataset - Records", "PlanetRadius"},
		{"bounds", "Dataset - Radius Bounds", "16.39"},
		{"summary", "Dataset - Category Summary", "same-size"},
		{"config", "Server - Configuration", "kepler.json"},
		{"", "Choose a data type", "Please use one of the following"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			rec := get(t, router, "/debug/?dataType="+tt.dataType)
			body := rec.Body.String()

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, body, "<title>"+tt.title+"</title>")
			assert.Contains(t, body, tt.contains)
		})
	}
}
