package config

import (
	"regexp"
	"testing"
)

var allowedServiceName = regexp.MustCompile(`^[a-zA-Z0-9 _-]+$`)

func TestSanitizeServiceName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"dots become underscores", "My.Service.Test", "My_Service_Test"},
		{"forbidden chars become underscores", "MyService123!", "MyService123_"},
		{"already clean", "my-service_1 prod", "my-service_1 prod"},
		{"unknown sentinel passes through", UnknownServiceName, UnknownServiceName},
		{"slash", "acme/checkout", "acme_checkout"},
		{"unicode", "sérvice", "s_rvice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeServiceName(tt.in)
			if got != tt.want {
				t.Errorf("SanitizeServiceName(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if !allowedServiceName.MatchString(got) {
				t.Errorf("SanitizeServiceName(%q) = %q violates the allowed charset", tt.in, got)
			}
		})
	}
}

func TestSanitizeServiceName_NeverRejects(t *testing.T) {
	// Arbitrary garbage is repaired, not refused.
	for _, in := range []string{"!!!", "...", "a.b!c@d", "\t\n"} {
		got := SanitizeServiceName(in)
		if len(got) != 0 && !allowedServiceName.MatchString(got) {
			t.Errorf("SanitizeServiceName(%q) = %q violates the allowed charset", in, got)
		}
	}
}
