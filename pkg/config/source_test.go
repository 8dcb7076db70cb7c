package config

import (
	"os"
	"testing"
)

func TestEnvSource_Snapshot(t *testing.T) {
	t.Setenv("PULSE_TEST_SNAPSHOT", "before")
	src := NewEnvSource()

	if got, ok := src.Lookup("PULSE_TEST_SNAPSHOT"); !ok || got != "before" {
		t.Fatalf("Lookup = %q, %v, want \"before\"", got, ok)
	}

	// Later environment mutation must not leak into an existing snapshot.
	os.Setenv("PULSE_TEST_SNAPSHOT", "after")
	if got, _ := src.Lookup("PULSE_TEST_SNAPSHOT"); got != "before" {
		t.Errorf("snapshot mutated: got %q", got)
	}

	if src.Origin() != "environment" {
		t.Errorf("Origin = %q, want environment", src.Origin())
	}
}

func TestEnvSource_AbsentKey(t *testing.T) {
	src := NewEnvSource()
	if _, ok := src.Lookup("PULSE_TEST_DEFINITELY_ABSENT"); ok {
		t.Error("absent key reported present")
	}
}

func TestMapSource_CopiesValues(t *testing.T) {
	values := map[string]string{"K": "v"}
	src := NewMapSource("inmem", values)
	values["K"] = "mutated"

	if got, ok := src.Lookup("K"); !ok || got != "v" {
		t.Errorf("Lookup = %q, %v, want \"v\"", got, ok)
	}
	if src.Origin() != "inmem" {
		t.Errorf("Origin = %q, want inmem", src.Origin())
	}
	if _, ok := src.Lookup("missing"); ok {
		t.Error("absent key reported present")
	}
}
