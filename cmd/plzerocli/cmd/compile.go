package cmd

import (
	"fmt"
	"os"

	compilererrors "github.com/plzero/pl0c/internal/errors"
	"github.com/plzero/pl0c/pkg/instrfmt"
	"github.com/spf13/cobra"
)

var compileCmd = &cobra.Command{
	Use:   "compile <file>",
	Short: "Compile a PL/0 source file to p-code",
	Long: `Compile lexes, parses, and generates p-code for a PL/0 source file.

Verbosity levels (-v, --verbose):
  0  instructions only, numeric three-column format (the default, and
     the format 'plzerocli compile' output round-trips through
     instrfmt.Parse)
  1  instructions annotated with their opcode mnemonic
  2  also dumps the token stream to stderr
  3  also dumps the parse tree to stderr
  4  also dumps the original source to stderr`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := readSource(args[0])
		if err != nil {
			return err
		}

		if verbose >= 4 {
			fmt.Fprintln(os.Stderr, "--- source ---")
			fmt.Fprintln(os.Stderr, source)
		}

		tokens, lexErrs := runLexer(source)
		if verbose >= 2 {
			fmt.Fprintln(os.Stderr, "--- tokens ---")
			for _, tok := range tokens {
				fmt.Fprintf(os.Stderr, "%-14s %q\n", tok.Type, tok.Literal)
			}
		}
		if len(lexErrs) > 0 {
			return reportLexErrors(lexErrs, source, args[0])
		}

		tree, _, err := runParser(source, args[0])
		if err != nil {
			return err
		}
		if verbose >= 3 {
			fmt.Fprintln(os.Stderr, "--- parse tree ---")
			printTree(os.Stderr, tree, 0)
		}

		ins, genErrs := compileToInstructions(tree)
		if len(genErrs) > 0 {
			compilerErrs := compilererrors.FromStringErrors(genErrs, source, args[0])
			fmt.Fprintln(os.Stderr, compilererrors.FormatErrors(compilerErrs, false))
			return fmt.Errorf("code generation failed with %d error(s)", len(genErrs))
		}

		if verbose >= 1 {
			return instrfmt.PrintAnnotated(os.Stdout, ins)
		}
		return instrfmt.Print(os.Stdout, ins)
	},
}
