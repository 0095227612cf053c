package main

import (
	"fmt"

	"github.com/aretw0/cleanerbot/pkg/strategy"
	"github.com/spf13/cobra"
)

var strategiesCmd = &cobra.Command{
	Use:   "strategies",
	Short: "List the available cleaning strategies",
	Run: func(cmd *cobra.Command, args []string) {
		for i, name := range strategy.Names() {
			fmt.Fprintf(cmd.OutOrStdout(), "%d) %s\n", i+1, name)
		}
	},
}

func init() {
	rootCmd.AddCommand(strategiesCmd)
}
