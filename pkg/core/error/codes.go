// File: codes.go
// Title: Error Code Definitions
// Description: Defines structured error codes for categorizing errors
//              across the MiniPy services, with category and HTTP status
//              mappings.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial error codes

package error

// Code represents a structured error code for categorizing errors
type Code string

// Core error codes for the MiniPy platform
const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeTimeout      Code = "TIMEOUT"

	// Storage
	CodeDatabaseError    Code = "DATABASE_ERROR"
	CodeConnectionFailed Code = "CONNECTION_FAILED"

	// Service and network
	CodeServiceUnavailable   Code = "SERVICE_UNAVAILABLE"
	CodeNetworkError         Code = "NETWORK_ERROR"
	CodeExternalServiceError Code = "EXTERNAL_SERVICE_ERROR"

	// Compilation (operational failures around the pipeline,
	// not the diagnostics themselves)
	CodeCompileInput    Code = "COMPILE_INPUT"
	CodeCompileInternal Code = "COMPILE_INTERNAL"

	// Code generation backend
	CodeGenerateFailed      Code = "GENERATE_FAILED"
	CodeProviderUnavailable Code = "PROVIDER_UNAVAILABLE"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeRequiredField    Code = "REQUIRED_FIELD"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput, CodeTimeout,
		CodeDatabaseError, CodeConnectionFailed,
		CodeServiceUnavailable, CodeNetworkError, CodeExternalServiceError,
		CodeCompileInput, CodeCompileInternal,
		CodeGenerateFailed, CodeProviderUnavailable,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeValidationFailed, CodeRequiredField, CodeInvalidFormat:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeDatabaseError, CodeConnectionFailed:
		return "storage"
	case CodeServiceUnavailable, CodeNetworkError, CodeExternalServiceError:
		return "service"
	case CodeCompileInput, CodeCompileInternal:
		return "compile"
	case CodeGenerateFailed, CodeProviderUnavailable:
		return "generate"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	case CodeValidationFailed, CodeRequiredField, CodeInvalidFormat:
		return "validation"
	default:
		return "generic"
	}
}

// HTTPStatus returns the appropriate HTTP status code for this error code
func (c Code) HTTPStatus() int {
	switch c {
	case CodeNotFound:
		return 404
	case CodeInvalidInput, CodeCompileInput, CodeValidationFailed,
		CodeRequiredField, CodeInvalidFormat:
		return 400
	case CodeTimeout:
		return 408
	case CodeServiceUnavailable, CodeProviderUnavailable,
		CodeDatabaseError, CodeConnectionFailed:
		return 503
	case CodeGenerateFailed, CodeExternalServiceError:
		return 502
	default:
		return 500
	}
}
