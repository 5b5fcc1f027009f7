package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is set at release time; it stays "dev" for local builds.
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the plzerocli version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("plzerocli " + Version)
		return nil
	},
}
