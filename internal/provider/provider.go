// ============================================================================
// minipy - MiniPy Compiler Platform
// ============================================================================
//
// Package:     provider
// Description: Code generation provider abstraction for multi-backend support
// Author:      Mike Stoffels with Claude
// Created:     2026-02-18
// License:     MIT
// ============================================================================

package provider

import (
	"context"
	"strings"
	"time"
)

// SystemPrompt constrains generation to the subset the compiler accepts.
const SystemPrompt = "You are a helpful assistant that writes short Python 3 code using only " +
	"variables, arithmetic, print, and simple if/else. Do not include imports."

// Provider represents a code generation backend
type Provider interface {
	// Name returns the provider name
	Name() string

	// Generate produces source code from a natural language prompt
	Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error)

	// Available reports whether the backend is reachable
	Available(ctx context.Context) bool
}

// GenerateRequest represents a code generation request
type GenerateRequest struct {
	Prompt      string
	Model       string
	MaxTokens   int
	Temperature float64
}

// GenerateResponse represents a code generation response
type GenerateResponse struct {
	Code          string
	Model         string
	Provider      string
	TotalDuration time.Duration
}

// ProviderType represents the type of provider
type ProviderType string

const (
	ProviderOllama   ProviderType = "ollama"
	ProviderOpenAI   ProviderType = "openai"
	ProviderFallback ProviderType = "fallback"
)

// CleanCode strips markdown code fences that chat models tend to wrap
// their output in.
func CleanCode(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	lines := strings.Split(text, "\n")
	if len(lines) == 1 {
		return strings.Trim(strings.TrimSpace(strings.Trim(text, "`")), "\n")
	}

	// Drop the opening fence line (possibly "```python") and a closing fence
	lines = lines[1:]
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "```" {
		lines = lines[:len(lines)-1]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
