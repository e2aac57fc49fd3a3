package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/minipy/internal/provider"
	minicompiler "github.com/msto63/minipy/pkg/minilang/compiler"
)

var (
	generateModel string
	generateCheck bool
)

var generateCmd = &cobra.Command{
	Use:   "generate <beschreibung>",
	Short: "Code aus einer Beschreibung generieren",
	Long: `Generiert MiniPy-Code aus einer natürlichsprachigen Beschreibung.
Nutzt den konfigurierten Provider (Ollama, OpenAI) und fällt bei
Nichtverfügbarkeit auf den Offline-Generator zurück.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateModel, "model", "", "Modell überschreiben")
	generateCmd.Flags().BoolVar(&generateCheck, "check", false, "Generierten Code direkt prüfen")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	manager := buildProviderManager(cfg)

	prompt := strings.Join(args, " ")

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Generator.Timeout.Duration)
	defer cancel()

	resp, err := manager.Generate(ctx, &provider.GenerateRequest{
		Prompt:      prompt,
		Model:       generateModel,
		MaxTokens:   cfg.Generator.DefaultMaxTokens,
		Temperature: float64(cfg.Generator.DefaultTemperature),
	})
	if err != nil {
		printError("Generierung fehlgeschlagen", err)
		return err
	}

	fmt.Printf("# Provider: %s, Modell: %s\n", resp.Provider, resp.Model)
	fmt.Println(resp.Code)

	if generateCheck {
		fmt.Println()
		result := minicompiler.Compile(resp.Code)
		for _, e := range result.SyntaxErrors {
			fmt.Printf("  [Syntax]   %s\n", e)
		}
		for _, e := range result.SemanticErrors {
			fmt.Printf("  [Semantik] %s\n", e)
		}
		if result.Valid() {
			fmt.Println("Programm ist gültig")
		}
	}

	return nil
}
