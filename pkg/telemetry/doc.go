// Package telemetry provides observability instrumentation for the Pulse
// agent's configuration core.
//
// The telemetry package integrates structured logging (zerolog) and
// self-metrics (Prometheus) used by the configuration reader to report
// fallback diagnostics and resolution statistics.
//
// # Structured Logging
//
// Logger wraps zerolog with component child loggers and field helpers.
// The configuration reader logs every defaulted setting through it, so a
// host embedding the agent decides once where those diagnostics go:
//
//	logger, err := telemetry.NewLogger(telemetry.LoggingConfig{
//	    Level:  "info",
//	    Format: "json",
//	    Output: "stderr",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cfgLogger := logger.NewComponentLogger("config")
//
// Tests that assert on log content inject a buffer:
//
//	var buf bytes.Buffer
//	logger := telemetry.NewWriterLogger(&buf, "debug")
//
// # Self-Metrics
//
// Metrics counts resolution passes, per-key parse failures and dropped
// server URLs. When disabled it is a no-op, so library users pay nothing:
//
//	metrics, err := telemetry.NewMetrics(telemetry.MetricsConfig{
//	    Enabled:       true,
//	    ListenAddress: ":9090",
//	    Path:          "/metrics",
//	    Namespace:     "pulse",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = metrics.StartMetricsServer()
//
// # Thread Safety
//
// Logger and Metrics are safe for concurrent use.
package telemetry
