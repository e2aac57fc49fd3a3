// File: entry_test.go
// Title: Log Entry Unit Tests
// Description: Tests for the Fields type helpers and log entry
//              construction.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial test suite

package log

import (
	"errors"
	"testing"
)

func TestField(t *testing.T) {
	f := Field("key", 42)
	if len(f) != 1 || f["key"] != 42 {
		t.Errorf("Field() = %v, want single key=42", f)
	}
}

func TestErr(t *testing.T) {
	err := errors.New("boom")
	f := Err(err)
	if f["error"] != err {
		t.Errorf("Err() = %v, want error field", f)
	}
}

func TestFields_Merge(t *testing.T) {
	a := Fields{"x": 1, "y": 2}
	b := Fields{"y": 3, "z": 4}

	merged := a.Merge(b)
	if merged["x"] != 1 || merged["y"] != 3 || merged["z"] != 4 {
		t.Errorf("Merge() = %v", merged)
	}

	// Originals stay untouched
	if a["y"] != 2 {
		t.Error("Merge() modified the receiver")
	}
}

func TestFields_With(t *testing.T) {
	f := Fields{"a": 1}.With("b", 2)
	if f["a"] != 1 || f["b"] != 2 {
		t.Errorf("With() = %v", f)
	}

	// With on nil Fields allocates
	var nilFields Fields
	f = nilFields.With("k", "v")
	if f["k"] != "v" {
		t.Errorf("With() on nil = %v", f)
	}
}

func TestFields_Clone(t *testing.T) {
	original := Fields{"a": 1}
	clone := original.Clone()

	clone["b"] = 2
	if _, ok := original["b"]; ok {
		t.Error("Clone() shares storage with the original")
	}

	var nilFields Fields
	if nilFields.Clone() != nil {
		t.Error("Clone() of nil Fields is non-nil")
	}
}

func TestNewEntry(t *testing.T) {
	entry := NewEntry(LevelWarn, "careful")

	if entry.Level != LevelWarn {
		t.Errorf("Level = %s, want warn", entry.Level)
	}
	if entry.Message != "careful" {
		t.Errorf("Message = %q", entry.Message)
	}
	if entry.Timestamp.IsZero() {
		t.Error("Timestamp not set")
	}
	if entry.Fields == nil {
		t.Error("Fields not initialized")
	}
}
