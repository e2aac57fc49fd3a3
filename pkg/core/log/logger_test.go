// File: logger_test.go
// Title: Core Logger Unit Tests
// Description: Tests for logger construction, clone-based context
//              building, level filtering, and output behavior.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial test suite

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

// newTestLogger returns a JSON logger writing into the returned buffer
func newTestLogger(level Level) (*Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := NewWithConfig(Config{
		Level:  level,
		Format: FormatJSON,
		Output: buf,
	})
	return logger, buf
}

// lastEntry decodes the final JSON log line in the buffer
func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	var data map[string]interface{}
	if err := json.Unmarshal([]byte(lines[len(lines)-1]), &data); err != nil {
		t.Fatalf("invalid JSON log line %q: %v", lines[len(lines)-1], err)
	}
	return data
}

func TestLogger_LevelFiltering(t *testing.T) {
	logger, buf := newTestLogger(LevelWarn)

	logger.Debug("hidden")
	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("messages below minimum level were written: %q", buf.String())
	}

	logger.Warn("visible")
	if buf.Len() == 0 {
		t.Error("warn message was filtered")
	}
}

func TestLogger_WithField(t *testing.T) {
	logger, buf := newTestLogger(LevelInfo)

	logger.WithField("component", "parser").Info("ready")

	data := lastEntry(t, buf)
	if data["component"] != "parser" {
		t.Errorf("component = %v, want parser", data["component"])
	}
}

func TestLogger_CloneIsolation(t *testing.T) {
	logger, buf := newTestLogger(LevelInfo)

	child := logger.WithField("k", "child")
	logger.Info("parent message")

	data := lastEntry(t, buf)
	if _, ok := data["k"]; ok {
		t.Error("child field leaked into parent logger")
	}

	buf.Reset()
	child.Info("child message")
	data = lastEntry(t, buf)
	if data["k"] != "child" {
		t.Errorf("k = %v, want child", data["k"])
	}
}

func TestLogger_WithFields(t *testing.T) {
	logger, buf := newTestLogger(LevelInfo)

	logger.WithFields(Fields{"a": 1, "b": "two"}).Info("m")

	data := lastEntry(t, buf)
	if data["a"] != float64(1) || data["b"] != "two" {
		t.Errorf("fields = %v", data)
	}
}

func TestLogger_WithRequestID(t *testing.T) {
	logger, buf := newTestLogger(LevelInfo)

	logger.WithRequestID("req-42").Info("handled")

	data := lastEntry(t, buf)
	if data["request_id"] != "req-42" {
		t.Errorf("request_id = %v", data["request_id"])
	}
}

func TestLogger_WithName(t *testing.T) {
	logger, buf := newTestLogger(LevelInfo)

	logger.WithName("compiler").Info("done")

	data := lastEntry(t, buf)
	if data["logger"] != "compiler" {
		t.Errorf("logger = %v", data["logger"])
	}
}

func TestLogger_PerCallFields(t *testing.T) {
	logger, buf := newTestLogger(LevelInfo)

	logger.Info("counted", Fields{"n": 3})

	data := lastEntry(t, buf)
	if data["n"] != float64(3) {
		t.Errorf("n = %v, want 3", data["n"])
	}
}

func TestLogger_PerCallOverridesContext(t *testing.T) {
	logger, buf := newTestLogger(LevelInfo)

	logger.WithField("k", "context").Info("m", Fields{"k": "call"})

	data := lastEntry(t, buf)
	if data["k"] != "call" {
		t.Errorf("k = %v, per-call field must win", data["k"])
	}
}

func TestLogger_ErrorWithErr(t *testing.T) {
	logger, buf := newTestLogger(LevelInfo)

	logger.ErrorWithErr("failed", errors.New("io problem"))

	data := lastEntry(t, buf)
	if data["error"] != "io problem" {
		t.Errorf("error = %v", data["error"])
	}
	if data["level"] != "error" {
		t.Errorf("level = %v", data["level"])
	}
}

func TestLogger_WarnWithErr(t *testing.T) {
	logger, buf := newTestLogger(LevelInfo)

	logger.WarnWithErr("degraded", errors.New("slow"))

	data := lastEntry(t, buf)
	if data["level"] != "warn" {
		t.Errorf("level = %v", data["level"])
	}
}

func TestLogger_WithLevel(t *testing.T) {
	logger, buf := newTestLogger(LevelError)

	logger.WithLevel(LevelDebug).Debug("now visible")
	if buf.Len() == 0 {
		t.Error("WithLevel clone did not lower the threshold")
	}

	// The original keeps its level
	buf.Reset()
	logger.Debug("still hidden")
	if buf.Len() != 0 {
		t.Error("WithLevel modified the original logger")
	}
}

func TestLogger_IsLevelEnabled(t *testing.T) {
	logger, _ := newTestLogger(LevelWarn)

	if logger.IsLevelEnabled(LevelDebug) {
		t.Error("debug enabled at warn threshold")
	}
	if !logger.IsLevelEnabled(LevelError) {
		t.Error("error not enabled at warn threshold")
	}
	if logger.GetLevel() != LevelWarn {
		t.Errorf("GetLevel() = %s, want warn", logger.GetLevel())
	}
}

func TestDefaultLogger(t *testing.T) {
	original := GetDefault()
	defer SetDefault(original)

	buf := &bytes.Buffer{}
	SetDefault(NewWithConfig(Config{Level: LevelInfo, Format: FormatJSON, Output: buf}))

	Info("via default")
	if !strings.Contains(buf.String(), "via default") {
		t.Errorf("default logger output = %q", buf.String())
	}
}
