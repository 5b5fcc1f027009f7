// Command plzerocli is the command-line front end for the PL/0
// compiler: lexing, parsing, and full compilation to p-code.
package main

import (
	"os"

	"github.com/plzero/pl0c/cmd/plzerocli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
