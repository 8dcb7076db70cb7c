package config

import "fmt"

// ParseError describes one raw value that could not be converted into its
// setting's type. It carries no recovery action: the resolver substitutes
// the setting's default and logs the error, and resolution continues.
type ParseError struct {
	// Setting is the human-readable setting name (e.g. "MetricsInterval").
	Setting string

	// Key is the external key the raw value was read from.
	Key string

	// Raw is the offending raw string.
	Raw string

	// Cause describes why the value was rejected.
	Cause string

	// Err is the underlying error, if the failure came from a lower-level
	// parse routine.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: invalid value %q: %s: %v", e.Setting, e.Raw, e.Cause, e.Err)
	}
	return fmt.Sprintf("%s: invalid value %q: %s", e.Setting, e.Raw, e.Cause)
}

// Unwrap returns the underlying error for error chain inspection.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// newParseError creates a ParseError for a raw value. Setting and Key are
// filled in by the resolver, which knows which setting was being resolved.
func newParseError(raw, cause string, err error) *ParseError {
	return &ParseError{Raw: raw, Cause: cause, Err: err}
}
