package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/solarpath/solcal/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the solcal version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "solcal "+version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
