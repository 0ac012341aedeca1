package cmd

import (
	"fmt"
	"os"

	"github.com/fieldlang/fieldc/internal/diag"
	"github.com/fieldlang/fieldc/internal/semantic"
	"github.com/fieldlang/fieldc/pkg/ast"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <program.json>",
	Short: "Type-check a JSON-encoded program",
	Long: `Load an untyped program from its JSON wire representation, run the
semantic checker over it, and report either success or the full
diagnostic list.

Examples:
  fieldc check program.json`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	filename := args[0]

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		fmt.Fprintf(os.Stderr, "Checking %s...\n", filename)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	program, err := ast.DecodeProgram(data)
	if err != nil {
		exitWithError("invalid program: %v", err)
	}

	checker := semantic.New()
	typed, err := checker.Check(program, nil)
	if err != nil {
		list, ok := err.(diag.List)
		if !ok {
			return err
		}
		for _, d := range list {
			fmt.Fprintln(os.Stderr, d.Error())
		}
		return fmt.Errorf("semantic analysis failed with %d error(s)", len(list))
	}

	fmt.Printf("ok: %d function(s) checked\n", len(typed.Functions))
	return nil
}
