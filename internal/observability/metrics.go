package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// dashboard service.
type Metrics struct {
	HTTPRequests *prometheus.CounterVec // labels: method, path, status

	// Filter/aggregate pipeline metrics.
	PipelineRuns   prometheus.Counter
	FilterDuration prometheus.Histogram

	// Dataset gauges, set once after the initial load.
	DatasetRows    prometheus.Gauge
	DatasetSpecies prometheus.Gauge
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()

	prometheus.MustRegister(
		m.HTTPRequests,
		m.PipelineRuns,
		m.FilterDuration,
		m.DatasetRows,
		m.DatasetSpecies,
	)

	return m
}

// NewMetricsForTesting creates Metrics without touching the default
// registry, to avoid "already registered" panics across tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "seabirds",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "path", "status"}),
		PipelineRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "seabirds",
			Name:      "pipeline_runs_total",
			Help:      "Full filter-aggregate pipeline executions.",
		}),
		FilterDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "seabirds",
			Name:      "filter_duration_seconds",
			Help:      "Duration of one filter-aggregate pass over the dataset.",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}),
		DatasetRows: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "seabirds",
			Name:      "dataset_rows",
			Help:      "Number of sighting rows in the loaded dataset.",
		}),
		DatasetSpecies: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "seabirds",
			Name:      "dataset_species",
			Help:      "Number of distinct species in the loaded dataset.",
		}),
	}
}
