package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/minipy/pkg/core/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Versionsinformation anzeigen",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("minipy %s\n", version.Full())
		fmt.Printf("  Compiler:  %s\n", version.Compiler)
		fmt.Printf("  Server:    %s\n", version.Server)
		fmt.Printf("  Generator: %s\n", version.Generator)
		fmt.Printf("  Sprache:   MiniPy %s\n", version.Language)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
