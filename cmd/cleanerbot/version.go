package main

import (
	"fmt"

	"github.com/aretw0/cleanerbot"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of cleanerbot",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "cleanerbot version %s\n", cleanerbot.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
