// ============================================================================
// minipy - MiniPy Compiler Platform
// ============================================================================
//
// Package:     playground
// Description: Message types for async operations in the playground
// Author:      Mike Stoffels with Claude
// Created:     2026-02-18
// License:     MIT
// ============================================================================

package playground

import (
	"time"

	minicompiler "github.com/msto63/minipy/pkg/minilang/compiler"
)

// Message types for tea.Cmd async operations

// compileResultMsg is sent when a compile run finishes
type compileResultMsg struct {
	result *minicompiler.Result
}

// generateResultMsg is sent when code generation finishes
type generateResultMsg struct {
	code     string
	provider string
	model    string
	duration time.Duration
	err      error
}
