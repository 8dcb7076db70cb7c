package telemetry

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics provides Prometheus self-metrics for the configuration
// resolution core.
type Metrics struct {
	config MetricsConfig

	// Resolution pass metrics
	resolutionPasses   prometheus.Counter
	resolutionDuration prometheus.Histogram

	// Per-setting metrics
	settingsResolved *prometheus.CounterVec
	parseFailures    *prometheus.CounterVec

	// Server URL list metrics
	serverURLsDropped prometheus.Counter

	registry *prometheus.Registry
}

// Setting resolution outcomes recorded in the settings_resolved_total
// counter.
const (
	OutcomeValue   = "value"
	OutcomeDefault = "default"
	OutcomeAbsent  = "absent"
)

// NewMetrics creates a new metrics collector with the given configuration.
func NewMetrics(cfg MetricsConfig) (*Metrics, error) {
	if !cfg.Enabled {
		// Return a no-op metrics instance
		return &Metrics{config: cfg}, nil
	}

	namespace := cfg.Namespace

	// Create a new registry
	registry := prometheus.NewRegistry()

	m := &Metrics{
		config:   cfg,
		registry: registry,

		resolutionPasses: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "config_resolution_passes_total",
				Help:      "Total number of configuration resolution passes",
			},
		),
		resolutionDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "config_resolution_duration_seconds",
				Help:      "Duration of configuration resolution passes in seconds",
				Buckets:   prometheus.DefBuckets,
			},
		),

		settingsResolved: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "config_settings_resolved_total",
				Help:      "Total number of settings resolved, by key and outcome",
			},
			[]string{"key", "outcome"},
		),
		parseFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "config_parse_failures_total",
				Help:      "Total number of raw values that failed parsing, by key",
			},
			[]string{"key"},
		),

		serverURLsDropped: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "config_server_urls_dropped_total",
				Help:      "Total number of invalid server URLs dropped from the configured list",
			},
		),
	}

	// Register all metrics
	registry.MustRegister(
		m.resolutionPasses,
		m.resolutionDuration,
		m.settingsResolved,
		m.parseFailures,
		m.serverURLsDropped,
	)

	return m, nil
}

// RecordResolutionPass records one completed resolution pass.
func (m *Metrics) RecordResolutionPass(duration time.Duration) {
	if m.resolutionPasses == nil {
		return
	}
	m.resolutionPasses.Inc()
	m.resolutionDuration.Observe(duration.Seconds())
}

// RecordSettingResolved records the outcome of resolving one setting.
func (m *Metrics) RecordSettingResolved(key, outcome string) {
	if m.settingsResolved == nil {
		return
	}
	m.settingsResolved.WithLabelValues(key, outcome).Inc()
}

// RecordParseFailure records a raw value that failed parsing.
func (m *Metrics) RecordParseFailure(key string) {
	if m.parseFailures == nil {
		return
	}
	m.parseFailures.WithLabelValues(key).Inc()
}

// RecordServerURLDropped records an invalid server URL dropped from the
// configured list.
func (m *Metrics) RecordServerURLDropped() {
	if m.serverURLsDropped == nil {
		return
	}
	m.serverURLsDropped.Inc()
}

// Timer provides a convenient way to time operations.
type Timer struct {
	start time.Time
}

// NewTimer creates a new timer.
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Duration returns the elapsed time since the timer was created.
func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}

// Handler returns an HTTP handler for the metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	if m.registry == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// StartMetricsServer starts an HTTP server to expose metrics.
func (m *Metrics) StartMetricsServer() error {
	if !m.config.Enabled {
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle(m.config.Path, m.Handler())

	server := &http.Server{
		Addr:              m.config.ListenAddress,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			// Log error but don't fail the application
			fmt.Printf("metrics server error: %v\n", err)
		}
	}()

	return nil
}
