package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric name prefix: champions_selector_*.
const (
	namespace = "champions"
	subsystem = "selector"
)

// latency buckets in milliseconds; selections are in-memory and fast.
var latencyBuckets = []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 50, 100, 500} //nolint:gochecknoglobals // read-only defaults

// Selection carries the counters of one selection run.
type Selection struct {
	Entrants   int
	Categories int
	Draws      int
	Candidates int
	Eliminated int
	Champions  int
	Duration   time.Duration
}

// Manager manages all Prometheus metrics for champion selection.
type Manager struct {
	enabled      bool
	customLabels map[string]string
	registry     *prometheus.Registry

	// Selection throughput
	runs        prometheus.Counter
	entrants    prometheus.Counter
	draws       prometheus.Counter
	candidates  prometheus.Counter
	eliminated  prometheus.Counter
	champions   prometheus.Counter
	latency     prometheus.Histogram
	loadErrors  *prometheus.CounterVec
	outputBytes prometheus.Counter

	// Last run snapshot
	lastCategories prometheus.Gauge
	lastChampions  prometheus.Gauge
	lastRunUnix    prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager. Without WithPrometheusRegistry
// a private registry is used.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		enabled:      true,
		customLabels: make(map[string]string),
	}

	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
	}

	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)
	labels := prometheus.Labels(m.customLabels)

	counter := func(name, help string) prometheus.Counter {
		return auto.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   subsystem,
			Name:        name,
			Help:        help,
			ConstLabels: labels,
		})
	}
	gauge := func(name, help string) prometheus.Gauge {
		return auto.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Subsystem:   subsystem,
			Name:        name,
			Help:        help,
			ConstLabels: labels,
		})
	}

	m.runs = counter("runs_total", "Total number of selection runs")
	m.entrants = counter("entrants_total", "Total number of entrants fed into selection")
	m.draws = counter("draws_total", "Total number of same-category draw pairs detected")
	m.candidates = counter("candidates_total", "Total number of deduplicated championship candidates")
	m.eliminated = counter("eliminations_total", "Total number of candidates eliminated by a younger category")
	m.champions = counter("champions_total", "Total number of champions selected")
	m.outputBytes = counter("output_bytes_total", "Total bytes of rendered results")

	m.latency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   namespace,
		Subsystem:   subsystem,
		Name:        "selection_latency_milliseconds",
		Help:        "Histogram of selection latency in milliseconds",
		Buckets:     latencyBuckets,
		ConstLabels: labels,
	})

	m.loadErrors = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   namespace,
		Subsystem:   subsystem,
		Name:        "roster_load_errors_total",
		Help:        "Total number of roster load failures by reason",
		ConstLabels: labels,
	}, []string{"reason"})

	m.lastCategories = gauge("last_run_categories", "Distinct categories seen in the last run")
	m.lastChampions = gauge("last_run_champions", "Champions selected in the last run")
	m.lastRunUnix = gauge("last_run_timestamp_seconds", "Unix time the last run finished")
}

// Registry returns the registry backing this manager.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// RecordSelection records the outcome of one selection run.
func (m *Manager) RecordSelection(s Selection) {
	if !m.enabled {
		return
	}
	m.runs.Inc()
	m.entrants.Add(float64(s.Entrants))
	m.draws.Add(float64(s.Draws))
	m.candidates.Add(float64(s.Candidates))
	m.eliminated.Add(float64(s.Eliminated))
	m.champions.Add(float64(s.Champions))
	m.latency.Observe(float64(s.Duration) / float64(time.Millisecond))
	m.lastCategories.Set(float64(s.Categories))
	m.lastChampions.Set(float64(s.Champions))
	m.lastRunUnix.SetToCurrentTime()
}

// RecordRosterLoadError counts a roster that could not be loaded.
func (m *Manager) RecordRosterLoadError(reason string) {
	if !m.enabled {
		return
	}
	m.loadErrors.WithLabelValues(reason).Inc()
}

// RecordOutputBytes counts bytes written for rendered results.
func (m *Manager) RecordOutputBytes(n int) {
	if !m.enabled || n <= 0 {
		return
	}
	m.outputBytes.Add(float64(n))
}

// WriteTextfile writes all gathered metrics to path in the text exposition
// format, atomically, for a node-exporter textfile collector.
func (m *Manager) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("%w: %w", ErrExport, err)
	}
	return nil
}

// Default returns the global manager.
func Default() *Manager {
	return globalManager
}
