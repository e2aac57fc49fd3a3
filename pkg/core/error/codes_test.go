// File: codes_test.go
// Title: Error Code Unit Tests
// Description: Tests for error code validity, categories, and HTTP
//              status mappings.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial test suite

package error

import "testing"

func TestCode_IsValid(t *testing.T) {
	valid := []Code{
		CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput, CodeTimeout,
		CodeDatabaseError, CodeConnectionFailed,
		CodeServiceUnavailable, CodeNetworkError, CodeExternalServiceError,
		CodeCompileInput, CodeCompileInternal,
		CodeGenerateFailed, CodeProviderUnavailable,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeValidationFailed, CodeRequiredField, CodeInvalidFormat,
	}
	for _, c := range valid {
		if !c.IsValid() {
			t.Errorf("IsValid() = false for %s", c)
		}
	}

	if Code("MADE_UP").IsValid() {
		t.Error("IsValid() = true for unknown code")
	}
}

func TestCode_Category(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{CodeDatabaseError, "storage"},
		{CodeNetworkError, "service"},
		{CodeCompileInput, "compile"},
		{CodeGenerateFailed, "generate"},
		{CodeProviderUnavailable, "generate"},
		{CodeConfigError, "configuration"},
		{CodeValidationFailed, "validation"},
		{CodeUnknown, "generic"},
		{CodeInternal, "generic"},
	}

	for _, tt := range tests {
		if got := tt.code.Category(); got != tt.want {
			t.Errorf("%s.Category() = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestCode_HTTPStatus(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{CodeNotFound, 404},
		{CodeInvalidInput, 400},
		{CodeCompileInput, 400},
		{CodeTimeout, 408},
		{CodeServiceUnavailable, 503},
		{CodeProviderUnavailable, 503},
		{CodeGenerateFailed, 502},
		{CodeInternal, 500},
		{CodeUnknown, 500},
	}

	for _, tt := range tests {
		if got := tt.code.HTTPStatus(); got != tt.want {
			t.Errorf("%s.HTTPStatus() = %d, want %d", tt.code, got, tt.want)
		}
	}
}
