package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var lexCmd = &cobra.Command{
	Use:   "lex <file>",
	Short: "Print the lexeme stream for a PL/0 source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := readSource(args[0])
		if err != nil {
			return err
		}

		tokens, lexErrs := runLexer(source)
		for _, tok := range tokens {
			if verbose > 0 {
				fmt.Printf("%-14s %-20q %s\n", tok.Type, tok.Literal, tok.Pos)
			} else {
				fmt.Printf("%-14s %q\n", tok.Type, tok.Literal)
			}
		}
		if len(lexErrs) > 0 {
			return reportLexErrors(lexErrs, source, args[0])
		}
		return nil
	},
}
