package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config holds the complete application configuration
type Config struct {
	General   GeneralConfig   `toml:"general" yaml:"general"`
	Server    ServerConfig    `toml:"server" yaml:"server"`
	Compiler  CompilerConfig  `toml:"compiler" yaml:"compiler"`
	Generator GeneratorConfig `toml:"generator" yaml:"generator"`
	History   HistoryConfig   `toml:"history" yaml:"history"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name        string `toml:"name" yaml:"name"`
	Environment string `toml:"environment" yaml:"environment"`
	DataDir     string `toml:"data_dir" yaml:"data_dir"`
	LogLevel    string `toml:"log_level" yaml:"log_level"`
	LogFormat   string `toml:"log_format" yaml:"log_format"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port           int        `toml:"port" yaml:"port"`
	Host           string     `toml:"host" yaml:"host"`
	ReadTimeout    Duration   `toml:"read_timeout" yaml:"read_timeout"`
	WriteTimeout   Duration   `toml:"write_timeout" yaml:"write_timeout"`
	MaxRequestSize int64      `toml:"max_request_size" yaml:"max_request_size"`
	CORS           CORSConfig `toml:"cors" yaml:"cors"`
}

// CORSConfig holds CORS settings
type CORSConfig struct {
	Enabled        bool     `toml:"enabled" yaml:"enabled"`
	AllowedOrigins []string `toml:"allowed_origins" yaml:"allowed_origins"`
	AllowedMethods []string `toml:"allowed_methods" yaml:"allowed_methods"`
}

// CompilerConfig holds compiler pipeline settings
type CompilerConfig struct {
	MaxInputLength int `toml:"max_input_length" yaml:"max_input_length"`
}

// GeneratorConfig holds code generation configuration
type GeneratorConfig struct {
	DefaultProvider    string          `toml:"default_provider" yaml:"default_provider"`
	DefaultModel       string          `toml:"default_model" yaml:"default_model"`
	DefaultTemperature float32         `toml:"default_temperature" yaml:"default_temperature"`
	DefaultMaxTokens   int             `toml:"default_max_tokens" yaml:"default_max_tokens"`
	Timeout            Duration        `toml:"timeout" yaml:"timeout"`
	Providers          ProvidersConfig `toml:"providers" yaml:"providers"`
}

// ProvidersConfig holds generation provider configurations
type ProvidersConfig struct {
	Ollama ProviderConfig `toml:"ollama" yaml:"ollama"`
	OpenAI ProviderConfig `toml:"openai" yaml:"openai"`
}

// ProviderConfig holds a single provider's configuration
type ProviderConfig struct {
	Enabled bool   `toml:"enabled" yaml:"enabled"`
	BaseURL string `toml:"base_url" yaml:"base_url"`
	APIKey  string `toml:"api_key" yaml:"api_key"`
	Model   string `toml:"model" yaml:"model"`
}

// HistoryConfig holds compile history storage settings
type HistoryConfig struct {
	Enabled       bool   `toml:"enabled" yaml:"enabled"`
	Path          string `toml:"path" yaml:"path"`
	RetentionDays int    `toml:"retention_days" yaml:"retention_days"`
	MaxEntries    int    `toml:"max_entries" yaml:"max_entries"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Load loads configuration from a TOML or YAML file, chosen by extension
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	// Check if file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	default:
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Apply defaults
	cfg.applyDefaults()

	// Expand environment variables in sensitive fields
	cfg.expandEnvVars()

	// Environment variables override file values
	cfg.applyEnvOverrides()

	return &cfg, nil
}

// LoadFromEnv loads configuration from the MINIPY_CONFIG environment variable
func LoadFromEnv() (*Config, error) {
	path := os.Getenv("MINIPY_CONFIG")
	if path == "" {
		// Try default locations
		defaultPaths := []string{
			"./configs/config.toml",
			"./configs/config.yaml",
			"./config.toml",
			filepath.Join(os.Getenv("HOME"), ".config/minipy/config.toml"),
		}
		for _, p := range defaultPaths {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		// No file is fine, every setting has a default
		cfg := &Config{}
		cfg.applyDefaults()
		cfg.applyEnvOverrides()
		return cfg, nil
	}

	return Load(path)
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.Name == "" {
		c.General.Name = "minipy"
	}
	if c.General.Environment == "" {
		c.General.Environment = "development"
	}
	if c.General.DataDir == "" {
		c.General.DataDir = "./data"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "info"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "console"
	}

	// Server
	if c.Server.Port == 0 {
		c.Server.Port = 8090
	}
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.ReadTimeout.Duration == 0 {
		c.Server.ReadTimeout.Duration = 30 * time.Second
	}
	if c.Server.WriteTimeout.Duration == 0 {
		c.Server.WriteTimeout.Duration = 120 * time.Second
	}
	if c.Server.MaxRequestSize == 0 {
		c.Server.MaxRequestSize = 1 << 20
	}

	// Compiler
	if c.Compiler.MaxInputLength == 0 {
		c.Compiler.MaxInputLength = 65536
	}

	// Generator
	if c.Generator.DefaultProvider == "" {
		c.Generator.DefaultProvider = "ollama"
	}
	if c.Generator.DefaultModel == "" {
		c.Generator.DefaultModel = "mistral:7b"
	}
	if c.Generator.DefaultTemperature == 0 {
		c.Generator.DefaultTemperature = 0.2
	}
	if c.Generator.DefaultMaxTokens == 0 {
		c.Generator.DefaultMaxTokens = 1024
	}
	if c.Generator.Timeout.Duration == 0 {
		c.Generator.Timeout.Duration = 120 * time.Second
	}
	if c.Generator.Providers.Ollama.BaseURL == "" {
		c.Generator.Providers.Ollama.BaseURL = "http://localhost:11434"
	}
	if c.Generator.Providers.OpenAI.BaseURL == "" {
		c.Generator.Providers.OpenAI.BaseURL = "https://api.openai.com/v1"
	}
	if c.Generator.Providers.OpenAI.Model == "" {
		c.Generator.Providers.OpenAI.Model = "gpt-4o-mini"
	}

	// History
	if c.History.Path == "" {
		c.History.Path = filepath.Join(c.General.DataDir, "history.db")
	}
	if c.History.RetentionDays == 0 {
		c.History.RetentionDays = 30
	}
	if c.History.MaxEntries == 0 {
		c.History.MaxEntries = 1000
	}
}

// expandEnvVars expands environment variables in configuration values
func (c *Config) expandEnvVars() {
	c.Generator.Providers.OpenAI.APIKey = os.ExpandEnv(c.Generator.Providers.OpenAI.APIKey)
	c.General.DataDir = os.ExpandEnv(c.General.DataDir)
	c.History.Path = os.ExpandEnv(c.History.Path)
}

// applyEnvOverrides lets MINIPY_* environment variables override file values
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("MINIPY_LOG_LEVEL"); v != "" {
		c.General.LogLevel = v
	}
	if v := os.Getenv("MINIPY_LOG_FORMAT"); v != "" {
		c.General.LogFormat = v
	}
	if v := os.Getenv("MINIPY_HOST"); v != "" {
		c.Server.Host = v
	}
	if v := os.Getenv("MINIPY_PORT"); v != "" {
		var port int
		if _, err := fmt.Sscanf(v, "%d", &port); err == nil && port > 0 {
			c.Server.Port = port
		}
	}
	if v := os.Getenv("MINIPY_PROVIDER"); v != "" {
		c.Generator.DefaultProvider = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" && c.Generator.Providers.OpenAI.APIKey == "" {
		c.Generator.Providers.OpenAI.APIKey = v
	}
}

// ServerAddress returns the host:port address of the HTTP server
func (c *Config) ServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
