// Package cmd wires the fieldc command-line front-end, built the way the
// teacher's cmd/dwscript/cmd package wires dwscript's root command:
// spf13/cobra, the same Version/GitCommit/BuildDate var trio, and a
// SetVersionTemplate call in init.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "fieldc",
	Short: "Semantic checker and built-in synthesizer for a field-arithmetic circuit language",
	Long: `fieldc type-checks programs for a small domain-specific language that
describes arithmetic circuits over a prime field, and can print the
canonical flat definitions of the primitives the language can't express
itself (bit-decomposition and boolean-to-field casting).`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
