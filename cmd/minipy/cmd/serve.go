package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/msto63/minipy/internal/server"
	"github.com/msto63/minipy/internal/store"
	"github.com/msto63/minipy/pkg/core/version"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "HTTP-Server starten",
	Long: `Startet den minipy HTTP-Server mit REST-API, WebSocket-Endpoint
und eingebetteter Web-Oberfläche.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	fmt.Println("minipy Server wird gestartet...")
	fmt.Println()

	manager := buildProviderManager(cfg)

	var history store.HistoryStore
	if cfg.History.Enabled {
		s, err := store.NewSQLiteHistoryStore(store.SQLiteHistoryConfig{Path: cfg.History.Path})
		if err != nil {
			printError("History-Store konnte nicht geöffnet werden", err)
			fmt.Println("  [-] History deaktiviert")
		} else {
			history = s
			fmt.Printf("  [+] History in %s\n", cfg.History.Path)
			if cfg.History.RetentionDays > 0 {
				olderThan := time.Duration(cfg.History.RetentionDays) * 24 * time.Hour
				if _, err := s.Prune(cmd.Context(), olderThan); err != nil {
					printError("History-Bereinigung fehlgeschlagen", err)
				}
			}
		}
	}

	srv := server.New(server.Config{
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		ReadTimeout:    cfg.Server.ReadTimeout.Duration,
		WriteTimeout:   cfg.Server.WriteTimeout.Duration,
		MaxInputLength: cfg.Compiler.MaxInputLength,
		Version:        version.Server,
	}, manager, history)

	srv.StartAsync()
	fmt.Printf("  [+] HTTP-Server auf %s\n", srv.Address())
	fmt.Printf("  [+] Provider: %v\n", manager.ListProviders())
	fmt.Println()
	fmt.Println("Server läuft. Beenden mit Ctrl+C.")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	fmt.Println()
	fmt.Println("Server wird beendet...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Stop(ctx); err != nil {
		printError("Shutdown fehlgeschlagen", err)
		return err
	}

	fmt.Println("Server beendet.")
	return nil
}
