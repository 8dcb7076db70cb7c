package config

import (
	"os"
	"strings"
)

// Source is a flat, read-only mapping from setting keys to raw string
// values. Implementations must be immutable for the duration of a
// resolution pass.
type Source interface {
	// Lookup returns the raw value for key and whether the key is present.
	Lookup(key string) (string, bool)

	// Origin returns a short label identifying the source, used in
	// fallback diagnostics.
	Origin() string
}

// EnvSource is a Source backed by a snapshot of the process environment.
// The snapshot is taken once at construction, so later mutations of the
// real environment do not affect an in-flight resolution pass.
type EnvSource struct {
	values map[string]string
}

// NewEnvSource snapshots the current process environment.
func NewEnvSource() *EnvSource {
	values := make(map[string]string)
	for _, kv := range os.Environ() {
		if kv == "" {
			continue
		}
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return &EnvSource{values: values}
}

// Lookup returns the snapshotted value for key.
func (s *EnvSource) Lookup(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Origin returns the diagnostic label for environment-backed sources.
func (s *EnvSource) Origin() string {
	return "environment"
}

// MapSource is an in-memory Source for tests and embedding hosts that
// supply configuration programmatically.
type MapSource struct {
	values map[string]string
	origin string
}

// NewMapSource creates a Source over the given map. The map is copied, so
// the caller may reuse or mutate its map afterwards.
func NewMapSource(origin string, values map[string]string) *MapSource {
	copied := make(map[string]string, len(values))
	for k, v := range values {
		copied[k] = v
	}
	return &MapSource{values: copied, origin: origin}
}

// Lookup returns the value for key.
func (s *MapSource) Lookup(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Origin returns the label given at construction.
func (s *MapSource) Origin() string {
	return s.origin
}
