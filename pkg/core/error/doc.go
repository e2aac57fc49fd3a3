// File: doc.go
// Title: Core Error Package Documentation
// Description: Provides structured error handling for all MiniPy
//              components with error codes, severities, and contextual
//              details.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial error package

/*
Package error implements structured errors for MiniPy services.

Errors carry a message, an optional wrapped cause, a categorizing code,
a severity, and arbitrary key-value details. They integrate with the
standard library's errors.Is/errors.As via Unwrap.

Note that compiler diagnostics (syntax and semantic findings) are NOT
errors in this sense. They are ordinary result data returned to the
caller. This package covers operational failures: configuration
problems, storage failures, unreachable generation backends.
*/
package error
