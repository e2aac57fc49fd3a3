// ============================================================================
// minipy - MiniPy Compiler Platform
// ============================================================================
//
// Package:     provider
// Description: Provider manager with availability-based fallback
// Author:      Mike Stoffels with Claude
// Created:     2026-02-18
// License:     MIT
// ============================================================================

package provider

import (
	"context"
	"sync"
	"time"

	minierror "github.com/msto63/minipy/pkg/core/error"
	minilog "github.com/msto63/minipy/pkg/core/log"
)

// Manager manages the configured generation providers
type Manager struct {
	providers       map[ProviderType]Provider
	defaultProvider ProviderType
	logger          *minilog.Logger
	mu              sync.RWMutex
}

// ManagerConfig holds manager configuration
type ManagerConfig struct {
	// Ollama config (local backend, no API key required)
	OllamaEnabled bool
	OllamaURL     string
	OllamaModel   string

	// OpenAI config (optional)
	OpenAIEnabled bool
	OpenAIKey     string
	OpenAIURL     string
	OpenAIModel   string

	Timeout         time.Duration
	DefaultProvider string
}

// NewManager creates a new provider manager. The offline fallback is
// always registered so generation never fails outright.
func NewManager(cfg ManagerConfig) *Manager {
	logger := minilog.GetDefault().WithField("component", "provider-manager")
	m := &Manager{
		providers:       make(map[ProviderType]Provider),
		defaultProvider: ProviderFallback,
		logger:          logger,
	}

	m.providers[ProviderFallback] = NewFallbackProvider()

	if cfg.OllamaEnabled {
		ollamaCfg := DefaultOllamaConfig()
		if cfg.OllamaURL != "" {
			ollamaCfg.BaseURL = cfg.OllamaURL
		}
		if cfg.OllamaModel != "" {
			ollamaCfg.DefaultModel = cfg.OllamaModel
		}
		if cfg.Timeout > 0 {
			ollamaCfg.Timeout = cfg.Timeout
		}

		m.providers[ProviderOllama] = NewOllamaProvider(ollamaCfg)
		m.defaultProvider = ProviderOllama
		logger.Info("Ollama provider initialized", minilog.Fields{"url": ollamaCfg.BaseURL})
	}

	if cfg.OpenAIEnabled && cfg.OpenAIKey != "" {
		openAICfg := DefaultOpenAIConfig()
		openAICfg.APIKey = cfg.OpenAIKey
		if cfg.OpenAIURL != "" {
			openAICfg.BaseURL = cfg.OpenAIURL
		}
		if cfg.OpenAIModel != "" {
			openAICfg.DefaultModel = cfg.OpenAIModel
		}
		if cfg.Timeout > 0 {
			openAICfg.Timeout = cfg.Timeout
		}

		openAIProvider, err := NewOpenAIProvider(openAICfg)
		if err != nil {
			logger.WarnWithErr("Failed to create OpenAI provider", err)
		} else {
			m.providers[ProviderOpenAI] = openAIProvider
			logger.Info("OpenAI provider initialized", minilog.Fields{"model": openAICfg.DefaultModel})
		}
	}

	switch cfg.DefaultProvider {
	case "openai":
		if _, ok := m.providers[ProviderOpenAI]; ok {
			m.defaultProvider = ProviderOpenAI
		}
	case "ollama":
		if _, ok := m.providers[ProviderOllama]; ok {
			m.defaultProvider = ProviderOllama
		}
	case "fallback":
		m.defaultProvider = ProviderFallback
	}

	logger.Info("Provider manager initialized", minilog.Fields{
		"providers": len(m.providers),
		"default":   string(m.defaultProvider),
	})

	return m
}

// GetProvider returns a provider by type
func (m *Manager) GetProvider(providerType ProviderType) (Provider, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.providers[providerType]
	if !ok {
		return nil, minierror.Newf("provider not available: %s", providerType).
			WithCode(minierror.CodeProviderUnavailable)
	}
	return p, nil
}

// DefaultProvider returns the configured default provider
func (m *Manager) DefaultProvider() Provider {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.providers[m.defaultProvider]
}

// Generate runs the default provider, falling back to the offline
// generator when the default is unreachable.
func (m *Manager) Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error) {
	p := m.DefaultProvider()

	if !p.Available(ctx) {
		m.logger.Warn("Provider unavailable, using offline fallback", minilog.Fields{
			"provider": p.Name(),
		})
		p = m.providers[ProviderFallback]
	}

	resp, err := p.Generate(ctx, req)
	if err != nil {
		if p.Name() != "fallback" {
			m.logger.WarnWithErr("Generation failed, using offline fallback", err, minilog.Fields{
				"provider": p.Name(),
			})
			return m.providers[ProviderFallback].Generate(ctx, req)
		}
		return nil, minierror.Wrap(err, "code generation failed").
			WithCode(minierror.CodeGenerateFailed)
	}

	return resp, nil
}

// ListProviders returns the names of all registered providers
func (m *Manager) ListProviders() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.providers))
	for p := range m.providers {
		names = append(names, string(p))
	}
	return names
}

// HealthCheck reports availability per provider
func (m *Manager) HealthCheck(ctx context.Context) map[string]bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	results := make(map[string]bool, len(m.providers))
	for name, p := range m.providers {
		results[string(name)] = p.Available(ctx)
	}
	return results
}
