// Package metrics exposes Prometheus collectors for the dashboard server.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/exodash/exodash/internal/exoplanet"
)

// Metrics owns a private registry so tests can build independent instances.
type Metrics struct {
	registry *prometheus.Registry

	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	FilterResults   *prometheus.HistogramVec
	PlotRenders     *prometheus.CounterVec
	DatasetRecords  *prometheus.GaugeVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exodash_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "exodash_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"method", "route"},
		),
		FilterResults: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "exodash_filter_result_records",
				Help:    "Number of records returned by a range and category filter",
				Buckets: prometheus.ExponentialBuckets(1, 4, 7),
			},
			[]string{"category"},
		),
		PlotRenders: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exodash_plot_renders_total",
				Help: "Scatter plot renders by plot and outcome",
			},
			[]string{"plot", "outcome"},
		),
		DatasetRecords: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "exodash_dataset_records",
				Help: "Records loaded at startup by size category",
			},
			[]string{"category"},
		),
	}
}

// RecordDataset publishes the per-category record counts.
func (m *Metrics) RecordDataset(summary exoplanet.Summary) {
	for c, n := range summary.ByCategory {
		m.DatasetRecords.WithLabelValues(string(c)).Set(float64(n))
	}
}

// ObserveFilter records the size of one filter result.
func (m *Metrics) ObserveFilter(c exoplanet.SizeCategory, n int) {
	m.FilterResults.WithLabelValues(string(c)).Observe(float64(n))
}

func (m *Metrics) ObservePlot(plot, outcome string) {
	m.PlotRenders.WithLabelValues(plot, outcome).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Instrument wraps next with request counting and latency tracking under
// the given route label.
func (m *Metrics) Instrument(route string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		m.RequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).Inc()
		m.RequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
