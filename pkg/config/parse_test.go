package config

import (
	"testing"
	"time"
)

func TestParseDuration_Valid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want time.Duration
	}{
		{"seconds with suffix", "10s", 10 * time.Second},
		{"milliseconds", "500ms", 500 * time.Millisecond},
		{"milliseconds above a second", "1500ms", 1500 * time.Millisecond},
		{"minutes", "1m", time.Minute},
		{"sixty minutes", "60m", time.Hour},
		{"no suffix means seconds", "10", 10 * time.Second},
		{"fractional seconds", "1.5s", 1500 * time.Millisecond},
		{"negative clamps to zero", "-1", 0},
		{"negative fractional clamps to zero", "-0.3s", 0},
		{"negative minutes clamp to zero", "-5m", 0},
		{"negative milliseconds clamp to zero", "-5ms", 0},
		{"zero", "0", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDuration(tt.raw)
			if err != nil {
				t.Fatalf("parseDuration(%q) unexpected error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("parseDuration(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseDuration_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"unsupported unit hours", "1h"},
		{"bare unsupported unit", "h"},
		{"no digits", "ms"},
		{"empty", ""},
		{"comma decimal", "1,5s"},
		{"trailing garbage", "10s9"},
		{"garbage before unit", "10xs"},
		{"not a number", "soon"},
		{"nan", "NaNs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseDuration(tt.raw); err == nil {
				t.Errorf("parseDuration(%q) expected error, got none", tt.raw)
			}
		})
	}
}

func TestParseRate(t *testing.T) {
	got, err := parseRate("0.789")
	if err != nil {
		t.Fatalf("parseRate(\"0.789\") unexpected error: %v", err)
	}
	if got != 0.789 {
		t.Errorf("parseRate(\"0.789\") = %v, want 0.789", got)
	}
}

func TestParseRate_CommaSeparatorFails(t *testing.T) {
	// The decimal separator is always the dot, never locale-dependent.
	if _, err := parseRate("0,789"); err == nil {
		t.Error("parseRate(\"0,789\") expected error, got none")
	}
}

func TestParseRate_Invalid(t *testing.T) {
	for _, raw := range []string{"", "high", "NaN", "+Inf"} {
		if _, err := parseRate(raw); err == nil {
			t.Errorf("parseRate(%q) expected error, got none", raw)
		}
	}
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{"50", 50, false},
		{"-1", -1, false},
		{"0", 0, false},
		{"2147483647", 2147483647, false},
		{"2147483648", 0, true},
		{"1.5", 0, true},
		{"ten", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := parseInt(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parseInt(%q) expected error, got %d", tt.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseInt(%q) unexpected error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("parseInt(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseBool(t *testing.T) {
	for _, raw := range []string{"true", "TRUE", "1"} {
		got, err := parseBool(raw)
		if err != nil || !got {
			t.Errorf("parseBool(%q) = %v, %v, want true", raw, got, err)
		}
	}
	for _, raw := range []string{"false", "0"} {
		got, err := parseBool(raw)
		if err != nil || got {
			t.Errorf("parseBool(%q) = %v, %v, want false", raw, got, err)
		}
	}
	if _, err := parseBool("yes"); err == nil {
		t.Error("parseBool(\"yes\") expected error, got none")
	}
}
