package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/minipy/internal/tui/playground"
)

var playCmd = &cobra.Command{
	Use:   "play [datei]",
	Short: "Interaktiver Playground (TUI)",
	Long: `Startet den interaktiven MiniPy-Playground: Editor mit
Live-Prüfung, AST-Ansicht und Code-Generierung.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	source := ""
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			printError("Datei konnte nicht gelesen werden", err)
			return err
		}
		source = string(data)
	}

	return playground.Run(playground.Config{
		Providers: buildProviderManager(cfg),
		Timeout:   cfg.Generator.Timeout.Duration,
		Source:    source,
	})
}
