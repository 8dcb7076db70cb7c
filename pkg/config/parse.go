package config

import (
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// Duration literal units. A literal without a suffix is interpreted as
// seconds; any other suffix (including "h") is rejected rather than
// silently truncated.
var durationUnits = []struct {
	suffix string
	factor time.Duration
}{
	{"ms", time.Millisecond},
	{"s", time.Second},
	{"m", time.Minute},
}

// parseDuration converts a literal like "30s", "500ms", "5m" or "10" into
// a duration with millisecond granularity. The numeric portion is a signed
// decimal and may be fractional ("-0.3s"). Negative results clamp to zero.
func parseDuration(raw string) (time.Duration, error) {
	if raw == "" {
		return 0, newParseError(raw, "empty duration literal", nil)
	}

	num := raw
	factor := time.Second
	matched := false
	for _, unit := range durationUnits {
		if strings.HasSuffix(raw, unit.suffix) {
			num = raw[:len(raw)-len(unit.suffix)]
			factor = unit.factor
			matched = true
			break
		}
	}
	if !matched {
		if last := rune(raw[len(raw)-1]); unicode.IsLetter(last) {
			return 0, newParseError(raw, "unsupported duration unit", nil)
		}
	}

	value, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, newParseError(raw, "not a decimal number", err)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, newParseError(raw, "not a finite number", nil)
	}

	millis := int64(value * float64(factor/time.Millisecond))
	d := time.Duration(millis) * time.Millisecond
	if d < 0 {
		d = 0
	}
	return d, nil
}

// parseRate converts a literal like "0.25" into a float. The decimal
// separator is always the dot: a comma literal ("0,25") fails regardless
// of the host locale.
func parseRate(raw string) (float64, error) {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, newParseError(raw, "not a decimal number", err)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, newParseError(raw, "not a finite number", nil)
	}
	return value, nil
}

// parseInt converts a signed 32-bit decimal literal.
func parseInt(raw string) (int, error) {
	value, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, newParseError(raw, "not a 32-bit integer", err)
	}
	return int(value), nil
}

// parseBool converts a boolean literal as accepted by strconv.ParseBool.
func parseBool(raw string) (bool, error) {
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, newParseError(raw, "not a boolean", err)
	}
	return value, nil
}
