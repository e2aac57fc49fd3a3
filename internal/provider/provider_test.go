// ============================================================================
// minipy - MiniPy Compiler Platform
// ============================================================================
//
// Package:     provider
// Description: Tests for provider helpers and the offline fallback
// Author:      Mike Stoffels with Claude
// Created:     2026-02-18
// License:     MIT
// ============================================================================

package provider

import (
	"context"
	"strings"
	"testing"
)

func TestCleanCode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain code untouched",
			input: "x = 5\nprint(x)",
			want:  "x = 5\nprint(x)",
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "\n  x = 5\nprint(x)  \n\n",
			want:  "x = 5\nprint(x)",
		},
		{
			name:  "bare fences stripped",
			input: "```\nx = 5\nprint(x)\n```",
			want:  "x = 5\nprint(x)",
		},
		{
			name:  "language tag stripped",
			input: "```python\nx = 5\nprint(x)\n```",
			want:  "x = 5\nprint(x)",
		},
		{
			name:  "missing closing fence",
			input: "```python\nx = 5\nprint(x)",
			want:  "x = 5\nprint(x)",
		},
		{
			name:  "single line fence",
			input: "```x = 5```",
			want:  "x = 5",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanCode(tt.input); got != tt.want {
				t.Errorf("CleanCode(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFallbackProvider_Generate(t *testing.T) {
	p := NewFallbackProvider()
	ctx := context.Background()

	tests := []struct {
		name     string
		prompt   string
		contains string
	}{
		{"hello prompt", "Say hello to me", "Hello from the offline generator!"},
		{"hello case insensitive", "PRINT HELLO WORLD", "Hello from the offline generator!"},
		{"sum prompt", "print the sum of two numbers", "print(x + y)"},
		{"default prompt", "do something interesting", "Value is big"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := p.Generate(ctx, &GenerateRequest{Prompt: tt.prompt})
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			if !strings.Contains(resp.Code, tt.contains) {
				t.Errorf("Code = %q, want substring %q", resp.Code, tt.contains)
			}
			if resp.Provider != "fallback" {
				t.Errorf("Provider = %q, want fallback", resp.Provider)
			}
			if resp.Model != "offline" {
				t.Errorf("Model = %q, want offline", resp.Model)
			}
		})
	}
}

func TestFallbackProvider_Deterministic(t *testing.T) {
	p := NewFallbackProvider()
	ctx := context.Background()

	first, _ := p.Generate(ctx, &GenerateRequest{Prompt: "anything"})
	second, _ := p.Generate(ctx, &GenerateRequest{Prompt: "anything"})

	if first.Code != second.Code {
		t.Error("fallback output is not deterministic")
	}
}

func TestFallbackProvider_Available(t *testing.T) {
	if !NewFallbackProvider().Available(context.Background()) {
		t.Error("fallback provider must always be available")
	}
}

func TestOpenAIProvider_RequiresKey(t *testing.T) {
	cfg := DefaultOpenAIConfig()
	cfg.APIKey = ""

	if _, err := NewOpenAIProvider(cfg); err == nil {
		t.Error("NewOpenAIProvider accepted an empty API key")
	}
}
