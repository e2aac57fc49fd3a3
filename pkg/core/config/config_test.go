package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDuration_UnmarshalText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{"seconds", "30s", 30 * time.Second, false},
		{"minutes", "5m", 5 * time.Minute, false},
		{"hours", "2h", 2 * time.Hour, false},
		{"complex", "1h30m", 90 * time.Minute, false},
		{"milliseconds", "100ms", 100 * time.Millisecond, false},
		{"invalid", "invalid", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalText([]byte(tt.input))

			if (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalText() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr && d.Duration != tt.expected {
				t.Errorf("UnmarshalText() = %v, want %v", d.Duration, tt.expected)
			}
		})
	}
}

func TestDuration_MarshalText(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{"seconds", 30 * time.Second, "30s"},
		{"minutes", 5 * time.Minute, "5m0s"},
		{"hours", 2 * time.Hour, "2h0m0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Duration{tt.duration}
			result, err := d.MarshalText()

			if err != nil {
				t.Errorf("MarshalText() error = %v", err)
				return
			}

			if string(result) != tt.expected {
				t.Errorf("MarshalText() = %v, want %v", string(result), tt.expected)
			}
		})
	}
}

func TestConfig_applyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	// General defaults
	if cfg.General.Name != "minipy" {
		t.Errorf("General.Name = %v, want minipy", cfg.General.Name)
	}
	if cfg.General.Environment != "development" {
		t.Errorf("General.Environment = %v, want development", cfg.General.Environment)
	}
	if cfg.General.DataDir != "./data" {
		t.Errorf("General.DataDir = %v, want ./data", cfg.General.DataDir)
	}
	if cfg.General.LogLevel != "info" {
		t.Errorf("General.LogLevel = %v, want info", cfg.General.LogLevel)
	}

	// Server defaults
	if cfg.Server.Port != 8090 {
		t.Errorf("Server.Port = %v, want 8090", cfg.Server.Port)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %v, want 0.0.0.0", cfg.Server.Host)
	}
	if cfg.Server.ReadTimeout.Duration != 30*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want 30s", cfg.Server.ReadTimeout.Duration)
	}

	// Compiler defaults
	if cfg.Compiler.MaxInputLength != 65536 {
		t.Errorf("Compiler.MaxInputLength = %v, want 65536", cfg.Compiler.MaxInputLength)
	}

	// Generator defaults
	if cfg.Generator.DefaultProvider != "ollama" {
		t.Errorf("Generator.DefaultProvider = %v, want ollama", cfg.Generator.DefaultProvider)
	}
	if cfg.Generator.DefaultModel != "mistral:7b" {
		t.Errorf("Generator.DefaultModel = %v, want mistral:7b", cfg.Generator.DefaultModel)
	}
	if cfg.Generator.Providers.Ollama.BaseURL != "http://localhost:11434" {
		t.Errorf("Ollama.BaseURL = %v, want http://localhost:11434", cfg.Generator.Providers.Ollama.BaseURL)
	}

	// History defaults
	if cfg.History.Path != filepath.Join("./data", "history.db") {
		t.Errorf("History.Path = %v, want ./data/history.db", cfg.History.Path)
	}
	if cfg.History.RetentionDays != 30 {
		t.Errorf("History.RetentionDays = %v, want 30", cfg.History.RetentionDays)
	}
	if cfg.History.MaxEntries != 1000 {
		t.Errorf("History.MaxEntries = %v, want 1000", cfg.History.MaxEntries)
	}
}

func TestConfig_ServerAddress(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	if got := cfg.ServerAddress(); got != "0.0.0.0:8090" {
		t.Errorf("ServerAddress() = %v, want 0.0.0.0:8090", got)
	}

	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = 9999
	if got := cfg.ServerAddress(); got != "127.0.0.1:9999" {
		t.Errorf("ServerAddress() = %v, want 127.0.0.1:9999", got)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/path/config.toml")
	if err == nil {
		t.Error("Load() expected error for non-existent file")
	}
}

func TestLoad_ValidTOML(t *testing.T) {
	// Create temp config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	configContent := `
[general]
name = "minipy-test"
environment = "test"

[server]
port = 9999
host = "127.0.0.1"

[generator]
default_model = "test-model"

[generator.providers.ollama]
enabled = true
base_url = "http://localhost:11434"
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.General.Name != "minipy-test" {
		t.Errorf("General.Name = %v, want minipy-test", cfg.General.Name)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("Server.Port = %v, want 9999", cfg.Server.Port)
	}
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("Server.Host = %v, want 127.0.0.1", cfg.Server.Host)
	}
	if cfg.Generator.DefaultModel != "test-model" {
		t.Errorf("Generator.DefaultModel = %v, want test-model", cfg.Generator.DefaultModel)
	}

	// Check defaults were applied for missing values
	if cfg.Compiler.MaxInputLength != 65536 {
		t.Errorf("Compiler.MaxInputLength = %v, want 65536 (default)", cfg.Compiler.MaxInputLength)
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
general:
  name: minipy-yaml
  environment: test
server:
  port: 8888
generator:
  default_provider: openai
  providers:
    openai:
      enabled: true
      model: gpt-4o
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.General.Name != "minipy-yaml" {
		t.Errorf("General.Name = %v, want minipy-yaml", cfg.General.Name)
	}
	if cfg.Server.Port != 8888 {
		t.Errorf("Server.Port = %v, want 8888", cfg.Server.Port)
	}
	if cfg.Generator.DefaultProvider != "openai" {
		t.Errorf("Generator.DefaultProvider = %v, want openai", cfg.Generator.DefaultProvider)
	}
	if !cfg.Generator.Providers.OpenAI.Enabled {
		t.Error("OpenAI.Enabled = false, want true")
	}
	if cfg.Generator.Providers.OpenAI.Model != "gpt-4o" {
		t.Errorf("OpenAI.Model = %v, want gpt-4o", cfg.Generator.Providers.OpenAI.Model)
	}

	// Defaults fill the rest
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %v, want 0.0.0.0 (default)", cfg.Server.Host)
	}
}

func TestConfig_expandEnvVars(t *testing.T) {
	os.Setenv("TEST_API_KEY", "secret-key-123")
	defer os.Unsetenv("TEST_API_KEY")

	cfg := &Config{
		Generator: GeneratorConfig{
			Providers: ProvidersConfig{
				OpenAI: ProviderConfig{
					APIKey: "$TEST_API_KEY",
				},
			},
		},
	}

	cfg.expandEnvVars()

	if cfg.Generator.Providers.OpenAI.APIKey != "secret-key-123" {
		t.Errorf("APIKey = %v, want secret-key-123", cfg.Generator.Providers.OpenAI.APIKey)
	}
}

func TestConfig_applyEnvOverrides(t *testing.T) {
	os.Setenv("MINIPY_LOG_LEVEL", "debug")
	os.Setenv("MINIPY_PORT", "7070")
	defer os.Unsetenv("MINIPY_LOG_LEVEL")
	defer os.Unsetenv("MINIPY_PORT")

	cfg := &Config{}
	cfg.applyDefaults()
	cfg.applyEnvOverrides()

	if cfg.General.LogLevel != "debug" {
		t.Errorf("General.LogLevel = %v, want debug", cfg.General.LogLevel)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("Server.Port = %v, want 7070", cfg.Server.Port)
	}
}

func TestLoadFromEnv_NoConfigFile(t *testing.T) {
	// Temporarily unset MINIPY_CONFIG
	original := os.Getenv("MINIPY_CONFIG")
	os.Unsetenv("MINIPY_CONFIG")
	defer func() {
		if original != "" {
			os.Setenv("MINIPY_CONFIG", original)
		}
	}()

	// Change to a temp directory without config files
	originalWd, _ := os.Getwd()
	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	defer os.Chdir(originalWd)

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}

	// Defaults apply when no file exists
	if cfg.Server.Port != 8090 {
		t.Errorf("Server.Port = %v, want 8090", cfg.Server.Port)
	}
}
