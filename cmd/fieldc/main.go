// Command fieldc is the CLI front-end for the semantic checker and
// built-in synthesizer.
package main

import (
	"os"

	"github.com/fieldlang/fieldc/cmd/fieldc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
