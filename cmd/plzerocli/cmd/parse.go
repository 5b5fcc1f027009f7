package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Print the parse tree for a PL/0 source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := readSource(args[0])
		if err != nil {
			return err
		}

		tree, _, err := runParser(source, args[0])
		if err != nil {
			printTree(os.Stderr, tree, 0)
			return err
		}

		printTree(os.Stdout, tree, 0)
		return nil
	},
}
