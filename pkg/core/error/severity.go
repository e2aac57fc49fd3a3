// File: severity.go
// Title: Error Severity Definitions
// Description: Defines severity levels for errors and the mapping from
//              error codes to default severities.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error that doesn't affect core
	// functionality, such as invalid user input
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but
	// has workarounds, such as an unavailable generation backend
	SeverityMedium

	// SeverityHigh indicates a serious error that significantly impacts
	// functionality, such as storage failures
	SeverityHigh

	// SeverityCritical indicates a critical error that makes the
	// service unusable
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines the default severity for an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeServiceUnavailable:
		return SeverityCritical

	case CodeDatabaseError, CodeConnectionFailed, CodeCompileInternal,
		CodeConfigError, CodeInvalidConfig:
		return SeverityHigh

	case CodeTimeout, CodeNetworkError, CodeExternalServiceError,
		CodeGenerateFailed, CodeProviderUnavailable, CodeMissingConfig:
		return SeverityMedium

	case CodeInvalidInput, CodeNotFound, CodeCompileInput,
		CodeValidationFailed, CodeRequiredField, CodeInvalidFormat:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
