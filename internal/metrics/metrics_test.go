package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exodash/exodash/internal/exoplanet"
)

func TestRecordDataset(t *testing.T) {
	m := New()

	m.RecordDataset(exoplanet.Summary{
		Total: 6,
		ByCategory: map[exoplanet.SizeCategory]int{
			exoplanet.Big:      1,
			exoplanet.SameSize: 2,
			exoplanet.Small:    3,
		},
	})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.DatasetRecords.WithLabelValues("big")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.DatasetRecords.WithLabelValues("same-size")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.DatasetRecords.WithLabelValues("small")))
}

func TestObservePlotAndFilter(t *testing.T) {
	m := New()

	m.ObservePlot("scatter", "ok")
	m.ObservePlot("scatter", "ok")
	m.ObservePlot("mass-size", "empty")
	m.ObserveFilter(exoplanet.Small, 12)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.PlotRenders.WithLabelValues("scatter", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PlotRenders.WithLabelValues("mass-size", "empty")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.FilterResults))
}

func TestInstrument(t *testing.T) {
	m := New()
	handler := m.Instrument("/api/planets.json", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))

	for i := 0; i < 3; i++ {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/api/planets.json", nil))
	}

	assert.Equal(t, 3.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/api/planets.json", "400")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.RequestDuration))
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := New()
	m.ObservePlot("scatter", "ok")

	server := httptest.NewServer(m.Handler())
	defer server.Close()

	resp, err := http.Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `exodash_plot_renders_total{outcome="ok",plot="scatter"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}
