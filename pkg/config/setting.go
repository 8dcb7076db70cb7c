package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pulseapm/pulseapm/pkg/telemetry"
)

// Setting is one named, typed, defaulted configuration item. A Setting
// always yields a valid value: either the parsed raw string or Default.
type Setting[T any] struct {
	// Name is the human-readable setting name used in diagnostics.
	Name string

	// Key is the external key the raw value is read from.
	Key string

	// Default is the compiled-in value substituted when the key is absent
	// or its value is rejected.
	Default T

	// Parse converts a trimmed raw string into the setting's type.
	Parse func(string) (T, error)

	// Validate is an optional post-validation predicate. A predicate
	// failure is handled exactly like a parse failure.
	Validate func(T) error
}

// resolveSetting resolves one setting against the reader's source. Absent
// keys take the default silently; rejected values take the default and
// emit exactly one diagnostic.
func resolveSetting[T any](r *Reader, s Setting[T]) T {
	raw, ok := r.source.Lookup(s.Key)
	if !ok {
		r.recordOutcome(s.Key, telemetry.OutcomeAbsent)
		return s.Default
	}

	raw = strings.TrimSpace(raw)
	value, err := s.Parse(raw)
	if err == nil && s.Validate != nil {
		if verr := s.Validate(value); verr != nil {
			err = &ParseError{Raw: raw, Cause: "value rejected by validation", Err: verr}
		}
	}
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Setting = s.Name
			pe.Key = s.Key
		}
		r.reportFailure(s.Name, s.Key, raw, fmt.Sprint(s.Default), err)
		r.recordOutcome(s.Key, telemetry.OutcomeDefault)
		return s.Default
	}

	r.recordOutcome(s.Key, telemetry.OutcomeValue)
	return value
}
