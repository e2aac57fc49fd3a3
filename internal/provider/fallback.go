// ============================================================================
// minipy - MiniPy Compiler Platform
// ============================================================================
//
// Package:     provider
// Description: Deterministic offline fallback generator
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

// FallbackProvider produces canned programs so the platform works without
// any reachable model backend.
type FallbackProvider struct{}

// NewFallbackProvider creates the offline fallback provider
func NewFallbackProvider() *FallbackProvider {
	return &FallbackProvider{}
}

// Name returns the provider name
func (p *FallbackProvider) Name() string {
	return "fallback"
}

// Generate returns a small heuristic program matching the prompt
func (p *FallbackProvider) Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error) {
	start := time.Now()
	prompt := strings.ToLower(req.Prompt)

	var code string
	switch {
	case strings.Contains(prompt, "hello"):
		code = `print("Hello from the offline generator!")`
	case strings.Contains(prompt, "sum"):
		code = "x = 2\ny = 3\nprint(x + y)"
	default:
		code = "x = 5\n" +
			"y = x + 2\n" +
			"if y > 5:\n" +
			"    print(\"Value is big\")\n" +
			"else:\n" +
			"    print(\"Value is small\")\n"
	}

	return &GenerateResponse{
		Code:          code,
		Model:         "offline",
		Provider:      p.Name(),
		TotalDuration: time.Since(start),
	}, nil
}

// Available always reports true
func (p *FallbackProvider) Available(ctx context.Context) bool {
	return true
}
