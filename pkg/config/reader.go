package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/pulseapm/pulseapm/pkg/telemetry"
)

// External keys recognized in a configuration source.
const (
	EnvServerURLs            = "PULSE_SERVER_URLS"
	EnvSecretToken           = "PULSE_SECRET_TOKEN"
	EnvCaptureHeaders        = "PULSE_CAPTURE_HEADERS"
	EnvTransactionSampleRate = "PULSE_TRANSACTION_SAMPLE_RATE"
	EnvLogLevel              = "PULSE_LOG_LEVEL"
	EnvMetricsInterval       = "PULSE_METRICS_INTERVAL"
	EnvSpanFramesMinDuration = "PULSE_SPAN_FRAMES_MIN_DURATION"
	EnvStackTraceLimit       = "PULSE_STACK_TRACE_LIMIT"
	EnvServiceName           = "PULSE_SERVICE_NAME"
)

// Compiled-in defaults.
const (
	DefaultCaptureHeaders        = true
	DefaultTransactionSampleRate = 1.0
	DefaultLogLevel              = LevelError
	DefaultMetricsInterval       = 30 * time.Second
	DefaultSpanFramesMinDuration = 5 * time.Millisecond
	DefaultStackTraceLimit       = 50

	// MetricsIntervalFloor is the policy minimum for MetricsInterval.
	// Parsed intervals below it collapse to 0, which disables metrics
	// collection. The floor applies to this setting only.
	MetricsIntervalFloor = time.Second
)

// validate runs the post-validation predicates attached to settings.
var validate = validator.New()

// Config is the fully resolved, typed agent configuration. It is built
// once per resolution pass and never mutated afterwards.
type Config struct {
	// ServerURLs is the ordered list of collector endpoints.
	ServerURLs []ServerURL

	// SecretToken authenticates the agent against the collector.
	SecretToken string

	// CaptureHeaders controls whether HTTP headers are captured on
	// transactions and errors.
	CaptureHeaders bool

	// TransactionSampleRate is the fraction of transactions to sample,
	// between 0 and 1.
	TransactionSampleRate float64

	// LogLevel is the agent's own log verbosity.
	LogLevel Level

	// MetricsInterval is the period between metrics reports. Zero
	// disables metrics collection.
	MetricsInterval time.Duration

	// SpanFramesMinDuration is the minimum span duration for which stack
	// frames are collected.
	SpanFramesMinDuration time.Duration

	// StackTraceLimit is the maximum number of stack frames captured per
	// trace.
	StackTraceLimit int

	// ServiceName identifies this service in the collector. Always
	// satisfies the sanitized character set.
	ServiceName string
}

var (
	settingSecretToken = Setting[string]{
		Name:    "SecretToken",
		Key:     EnvSecretToken,
		Default: "",
		Parse:   func(raw string) (string, error) { return raw, nil },
	}

	settingCaptureHeaders = Setting[bool]{
		Name:    "CaptureHeaders",
		Key:     EnvCaptureHeaders,
		Default: DefaultCaptureHeaders,
		Parse:   parseBool,
	}

	settingTransactionSampleRate = Setting[float64]{
		Name:    "TransactionSampleRate",
		Key:     EnvTransactionSampleRate,
		Default: DefaultTransactionSampleRate,
		Parse:   parseRate,
		Validate: func(rate float64) error {
			return validate.Var(rate, "gte=0,lte=1")
		},
	}

	settingLogLevel = Setting[Level]{
		Name:    "LogLevel",
		Key:     EnvLogLevel,
		Default: DefaultLogLevel,
		Parse:   ParseLevel,
	}

	settingMetricsInterval = Setting[time.Duration]{
		Name:    "MetricsInterval",
		Key:     EnvMetricsInterval,
		Default: DefaultMetricsInterval,
		Parse:   parseDuration,
	}

	settingSpanFramesMinDuration = Setting[time.Duration]{
		Name:    "SpanFramesMinDuration",
		Key:     EnvSpanFramesMinDuration,
		Default: DefaultSpanFramesMinDuration,
		Parse:   parseDuration,
	}

	settingStackTraceLimit = Setting[int]{
		Name:    "StackTraceLimit",
		Key:     EnvStackTraceLimit,
		Default: DefaultStackTraceLimit,
		Parse:   parseInt,
	}
)

// ReaderOptions configures a Reader. Zero-value fields fall back to the
// process environment, a stderr logger, no self-metrics, and the runtime
// call-chain inspector.
type ReaderOptions struct {
	Source    Source
	Logger    *telemetry.Logger
	Metrics   *telemetry.Metrics
	Inspector CallChainInspector
}

// Reader resolves all recognized settings from one Source into a Config.
// It owns the logger used for fallback diagnostics, so every failure
// during a pass is attributable to one reader instance.
type Reader struct {
	source    Source
	log       *telemetry.Logger
	metrics   *telemetry.Metrics
	inspector CallChainInspector
	id        uuid.UUID
}

// NewReader creates a Reader over the given options.
func NewReader(opts ReaderOptions) *Reader {
	source := opts.Source
	if source == nil {
		source = NewEnvSource()
	}
	base := opts.Logger
	if base == nil {
		base, _ = telemetry.NewLogger(DefaultLoggingConfig())
	}
	inspector := opts.Inspector
	if inspector == nil {
		inspector = runtimeInspector{}
	}

	id := uuid.New()
	return &Reader{
		source:    source,
		log:       base.NewComponentLogger("config").WithReaderID(id.String()),
		metrics:   opts.Metrics,
		inspector: inspector,
		id:        id,
	}
}

// DefaultLoggingConfig is the logging configuration used when no logger is
// supplied to NewReader.
func DefaultLoggingConfig() telemetry.LoggingConfig {
	return telemetry.LoggingConfig{
		Level:  "info",
		Format: "json",
		Output: "stderr",
	}
}

// ID returns the reader's attribution ID, present as reader_id on every
// diagnostic the reader emits.
func (r *Reader) ID() uuid.UUID {
	return r.id
}

// Resolve reads every recognized setting eagerly and synchronously and
// returns the resolved configuration. Resolution is total: it always
// succeeds, substituting defaults for absent or rejected values. Resolving
// the same unchanged source twice yields identical configurations and
// identical diagnostics.
func (r *Reader) Resolve() *Config {
	timer := telemetry.NewTimer()

	cfg := &Config{
		ServerURLs:            r.resolveServerURLs(),
		SecretToken:           resolveSetting(r, settingSecretToken),
		CaptureHeaders:        resolveSetting(r, settingCaptureHeaders),
		TransactionSampleRate: resolveSetting(r, settingTransactionSampleRate),
		LogLevel:              resolveSetting(r, settingLogLevel),
		MetricsInterval:       r.resolveDuration(settingMetricsInterval, MetricsIntervalFloor),
		SpanFramesMinDuration: r.resolveDuration(settingSpanFramesMinDuration, 0),
		StackTraceLimit:       resolveSetting(r, settingStackTraceLimit),
		ServiceName:           r.resolveServiceName(),
	}

	if r.metrics != nil {
		r.metrics.RecordResolutionPass(timer.Duration())
	}
	return cfg
}

// resolveDuration resolves a duration setting and applies its per-setting
// floor policy: a positive result below floor collapses to 0 (disabled).
// The floor is a normalization, not a failure, so no failure diagnostic is
// emitted for it.
func (r *Reader) resolveDuration(s Setting[time.Duration], floor time.Duration) time.Duration {
	value := resolveSetting(r, s)
	if floor > 0 && value > 0 && value < floor {
		// Chained fields keep diagnostic output deterministic across
		// passes; map-valued fields would not.
		r.log.WithField("key", s.Key).
			WithField("value", value.String()).
			WithField("minimum", floor.String()).
			Debugf("%s below minimum, using 0 (disabled)", s.Name)
		return 0
	}
	return value
}

// resolveServerURLs resolves the collector endpoint list. Each invalid
// list element is reported individually; the default endpoint stands in
// when the key is absent or nothing valid survives.
func (r *Reader) resolveServerURLs() []ServerURL {
	raw, ok := r.source.Lookup(EnvServerURLs)
	if !ok {
		r.recordOutcome(EnvServerURLs, telemetry.OutcomeAbsent)
		return []ServerURL{mustServerURL(DefaultServerURL)}
	}

	urls := parseServerURLs(raw, func(piece string, err error) {
		r.reportFailure("ServerUrls", EnvServerURLs, piece, DefaultServerURL, err)
		if r.metrics != nil {
			r.metrics.RecordServerURLDropped()
		}
	})
	if len(urls) == 0 {
		r.recordOutcome(EnvServerURLs, telemetry.OutcomeDefault)
		return []ServerURL{mustServerURL(DefaultServerURL)}
	}

	r.recordOutcome(EnvServerURLs, telemetry.OutcomeValue)
	return urls
}

// resolveServiceName resolves the configured service name, sanitizing it
// into the allowed character set. With no configured name, the default
// identity resolver derives one from the first foreign frame on the call
// chain.
func (r *Reader) resolveServiceName() string {
	raw, ok := r.source.Lookup(EnvServiceName)
	if !ok || strings.TrimSpace(raw) == "" {
		name := defaultServiceName(r.inspector)
		r.recordOutcome(EnvServiceName, telemetry.OutcomeAbsent)
		r.log.WithField("key", EnvServiceName).
			WithServiceName(name).
			Debug("No service name configured, derived default from call chain")
		return name
	}

	raw = strings.TrimSpace(raw)
	sanitized := SanitizeServiceName(raw)
	if sanitized != raw {
		r.log.WithField("key", EnvServiceName).
			WithField("value", raw).
			WithField("sanitized", sanitized).
			Info("Service name adjusted to the allowed character set")
	}
	r.recordOutcome(EnvServiceName, telemetry.OutcomeValue)
	return sanitized
}

// reportFailure emits the single structured diagnostic for a rejected raw
// value and substitutes nothing itself; the caller returns the default.
func (r *Reader) reportFailure(name, key, raw, substituted string, err error) {
	origin := r.source.Origin()
	r.log.WithField("origin", origin).
		WithField("key", key).
		WithField("value", raw).
		WithField("default", substituted).
		WithError(err).
		Error(fmt.Sprintf("Failed parsing %s from %s", name, origin))

	if r.metrics != nil {
		r.metrics.RecordParseFailure(key)
	}
}

func (r *Reader) recordOutcome(key, outcome string) {
	if r.metrics != nil {
		r.metrics.RecordSettingResolved(key, outcome)
	}
}
