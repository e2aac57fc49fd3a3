// File: doc.go
// Title: Core Logging Package Documentation
// Description: Provides structured logging for all MiniPy components
//              with leveled output, contextual fields, and multiple
//              output formats.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial logging package

/*
Package log implements structured logging for MiniPy.

Loggers are immutable: every With* method returns a clone, so a logger
can be shared freely across goroutines. Entries carry a level, message,
logger name, request ID, and arbitrary key-value fields, and are
rendered by a pluggable formatter (JSON for services, console for
interactive use).

A package-level default logger is provided for code without an injected
logger instance.
*/
package log
