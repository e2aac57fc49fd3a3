// ============================================================================
// minipy - MiniPy Compiler Platform
// ============================================================================
//
// Package:     version
// Description: Central version management for all components
// Author:      Mike Stoffels with Claude
// Created:     2026-02-18
// License:     MIT
// ============================================================================

package version

import "fmt"

// Version constants for all minipy components
const (
	// Platform version
	Platform = "1.0.0"

	// Component versions
	Compiler  = "1.0.0"
	Server    = "1.0.0"
	Generator = "1.0.0"
	Language  = "0.1"
)

// Build information, set at link time via -ldflags
var (
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "compiler":
		return Compiler
	case "server":
		return Server
	case "generator":
		return Generator
	case "language":
		return Language
	default:
		return Platform
	}
}

// Full returns the platform version with build metadata
func Full() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Platform, GitCommit, BuildDate)
}
