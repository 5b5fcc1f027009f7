package cmd

import (
	"github.com/spf13/cobra"
)

var verbose int

var rootCmd = &cobra.Command{
	Use:   "plzerocli",
	Short: "plzerocli lexes, parses, and compiles PL/0 source to p-code",
}

// Execute runs the root command, returning any error the chosen
// subcommand reported.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&verbose, "verbose", "v", 0, "verbosity level 0-4 (compile uses all levels, see plzerocli compile -h; lex prints positions above 0)")
	rootCmd.AddCommand(lexCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(compileCmd)
	rootCmd.AddCommand(versionCmd)
}
