package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/minipy/internal/provider"
	"github.com/msto63/minipy/pkg/core/config"
	minilog "github.com/msto63/minipy/pkg/core/log"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "minipy",
	Short: "minipy - MiniPy Compiler Platform",
	Long: `minipy kompiliert eine minimale, einrückungssensitive
Python-Teilsprache: Zuweisungen, Arithmetik, print und if/else.

Befehle:
  check     - Quelltext prüfen (Lexer, Parser, Semantik)
  generate  - Code aus einer Beschreibung generieren
  play      - Interaktiver Playground (TUI)
  serve     - HTTP-Server starten
  version   - Versionsinformation anzeigen`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (default: ./configs/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose Output")
}

// loadConfig loads the configuration and applies the logging settings
func loadConfig() *config.Config {
	var cfg *config.Config
	var err error

	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		fmt.Printf("Warnung: Config nicht geladen (%v), nutze Defaults\n", err)
		cfg = &config.Config{}
	}

	level := minilog.DefaultLevel()
	if verbose {
		level = minilog.LevelDebug
	} else if l, perr := minilog.ParseLevel(cfg.General.LogLevel); perr == nil {
		level = l
	}
	format, ferr := minilog.ParseFormat(cfg.General.LogFormat)
	if ferr != nil {
		format = minilog.FormatConsole
	}

	minilog.SetDefault(minilog.New().WithLevel(level).WithFormat(format))

	return cfg
}

// buildProviderManager wires the generation backends from configuration
func buildProviderManager(cfg *config.Config) *provider.Manager {
	return provider.NewManager(provider.ManagerConfig{
		OllamaEnabled:   cfg.Generator.Providers.Ollama.Enabled,
		OllamaURL:       cfg.Generator.Providers.Ollama.BaseURL,
		OllamaModel:     cfg.Generator.Providers.Ollama.Model,
		OpenAIEnabled:   cfg.Generator.Providers.OpenAI.Enabled,
		OpenAIKey:       cfg.Generator.Providers.OpenAI.APIKey,
		OpenAIURL:       cfg.Generator.Providers.OpenAI.BaseURL,
		OpenAIModel:     cfg.Generator.Providers.OpenAI.Model,
		Timeout:         cfg.Generator.Timeout.Duration,
		DefaultProvider: cfg.Generator.DefaultProvider,
	})
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Fehler: %s: %v\n", msg, err)
}
