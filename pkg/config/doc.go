// Package config resolves the Pulse agent's tunable parameters from a
// flat, string-valued source into strongly validated, typed runtime
// configuration.
//
// # Overview
//
// Every value arrives as an untyped string that may be absent, malformed,
// or out of range. Resolution is total: a bad value never crashes the
// host process. It falls back to the setting's compiled-in default and
// emits one structured diagnostic through the reader's logger.
//
// # Components
//
// Source: a read-only key/value mapping. EnvSource snapshots the process
// environment; MapSource injects an in-memory map in tests.
//
// Setting: one named, typed, defaulted configuration item, combining a
// primitive parser with an optional post-validation predicate. Absent
// keys take the default silently; rejected values take the default with
// exactly one log line ("Failed parsing <setting> from <origin>"). The
// server URL list is the one exception, logging each invalid element
// individually while keeping the valid ones.
//
// SanitizeServiceName: repairs a free-text service name into the allowed
// character set (letters, digits, space, underscore, dash).
//
// CallChainInspector: supplies the active call chain for default identity
// resolution. When no service name is configured, the reader walks the
// chain for the first module whose publisher token is not in the trusted
// set and derives the default service name from it.
//
// Reader: aggregates everything into one immutable Config, resolved
// eagerly and synchronously at construction of the agent.
//
// # Usage Example
//
//	logger, err := telemetry.NewLogger(config.DefaultLoggingConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	reader := config.NewReader(config.ReaderOptions{Logger: logger})
//	cfg := reader.Resolve()
//
//	fmt.Println(cfg.ServiceName, cfg.ServerURLs[0])
//
// # Recognized Settings
//
// Settings are read from PULSE_-prefixed keys: PULSE_SERVER_URLS,
// PULSE_SECRET_TOKEN, PULSE_CAPTURE_HEADERS,
// PULSE_TRANSACTION_SAMPLE_RATE, PULSE_LOG_LEVEL, PULSE_METRICS_INTERVAL,
// PULSE_SPAN_FRAMES_MIN_DURATION, PULSE_STACK_TRACE_LIMIT and
// PULSE_SERVICE_NAME.
//
// Duration literals accept ms, s and m suffixes; a bare number means
// seconds. Negative durations clamp to zero. MetricsInterval additionally
// collapses sub-second values to zero, disabling metrics collection; the
// floor is a policy of that setting, not of the duration parser.
//
// # Error Handling
//
// ParseError carries the setting name, the offending raw string and the
// cause. It triggers default substitution and one log line, and is never
// propagated to the agent's caller.
//
// # Thread Safety
//
// Parsers and the sanitizer are pure functions. A resolved Config is
// immutable and safe to share. Concurrent resolution passes are safe as
// long as the underlying raw source is not mutated mid-pass.
package config
