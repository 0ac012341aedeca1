package cmd

import (
	"fmt"
	"strconv"

	"github.com/fieldlang/fieldc/internal/builtins"
	"github.com/fieldlang/fieldc/internal/types"
	"github.com/spf13/cobra"
)

var synthBits int

var synthCmd = &cobra.Command{
	Use:   "synth <split|cast>",
	Short: "Print the canonical flat definition of a built-in primitive",
	Long: `Invoke the built-in synthesizer directly and pretty-print the resulting
flat function, for inspecting the canonical split/cast definitions outside
of the lowering pass that normally consumes them.

Examples:
  fieldc synth split --bits 8
  fieldc synth cast`,
	Args: cobra.ExactArgs(1),
	RunE: runSynth,
}

func init() {
	rootCmd.AddCommand(synthCmd)
	synthCmd.Flags().IntVar(&synthBits, "bits", 8, "bit width for split (number of bits required to represent the field's order)")
}

func runSynth(_ *cobra.Command, args []string) error {
	switch args[0] {
	case "split":
		if synthBits <= 0 {
			exitWithError("--bits must be positive, got %s", strconv.Itoa(synthBits))
		}
		prog := builtins.Split(synthBits)
		for _, fn := range prog.Functions {
			fmt.Print(fn.String())
		}
		return nil
	case "cast":
		fn := builtins.Cast(types.Bool(), types.Field())
		fmt.Print(fn.String())
		return nil
	default:
		exitWithError("unknown synthesizer %q, expected \"split\" or \"cast\"", args[0])
		return nil
	}
}
