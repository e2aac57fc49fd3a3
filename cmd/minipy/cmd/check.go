package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	minicompiler "github.com/msto63/minipy/pkg/minilang/compiler"
)

var (
	checkShowAST bool
	checkJSON    bool
)

var (
	checkErrStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	checkOKStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
)

var checkCmd = &cobra.Command{
	Use:   "check [datei]",
	Short: "Quelltext prüfen",
	Long: `Prüft MiniPy-Quelltext: Lexer, Parser und semantische Analyse.
Liest aus einer Datei oder von stdin, wenn keine Datei (oder "-")
angegeben ist. Exit-Code 1 bei Fehlern im Programm.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&checkShowAST, "ast", false, "AST-Dump ausgeben")
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "Ergebnis als JSON ausgeben")
	rootCmd.AddCommand(checkCmd)
}

// checkOutput is the --json shape, matching the compile API response.
type checkOutput struct {
	Valid          bool     `json:"valid"`
	SyntaxErrors   []string `json:"syntax_errors"`
	SemanticErrors []string `json:"semantic_errors"`
	AST            string   `json:"ast,omitempty"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	loadConfig()

	var source []byte
	var err error
	if len(args) == 0 || args[0] == "-" {
		source, err = io.ReadAll(os.Stdin)
		if err != nil {
			printError("stdin konnte nicht gelesen werden", err)
			return err
		}
	} else {
		source, err = os.ReadFile(args[0])
		if err != nil {
			printError("Datei konnte nicht gelesen werden", err)
			return err
		}
	}

	result := minicompiler.Compile(string(source))

	if checkJSON {
		out := checkOutput{
			Valid:          result.Valid(),
			SyntaxErrors:   result.SyntaxErrors,
			SemanticErrors: result.SemanticErrors,
		}
		if out.SyntaxErrors == nil {
			out.SyntaxErrors = []string{}
		}
		if out.SemanticErrors == nil {
			out.SemanticErrors = []string{}
		}
		if checkShowAST && result.AST != nil {
			out.AST = result.DumpAST()
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return err
		}
		if !result.Valid() {
			cmd.SilenceUsage = true
			cmd.SilenceErrors = true
			return fmt.Errorf("%d Fehler", len(out.SyntaxErrors)+len(out.SemanticErrors))
		}
		return nil
	}

	for _, e := range result.SyntaxErrors {
		fmt.Printf("  %s %s\n", checkErrStyle.Render("[Syntax]  "), e)
	}
	for _, e := range result.SemanticErrors {
		fmt.Printf("  %s %s\n", checkErrStyle.Render("[Semantik]"), e)
	}

	if checkShowAST && result.AST != nil {
		fmt.Println()
		fmt.Println(result.DumpAST())
	}

	if !result.Valid() {
		total := len(result.SyntaxErrors) + len(result.SemanticErrors)
		fmt.Printf("\n%s\n", checkErrStyle.Render(fmt.Sprintf("%d Fehler gefunden", total)))
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return fmt.Errorf("%d Fehler", total)
	}

	fmt.Println(checkOKStyle.Render("Programm ist gültig"))
	return nil
}
