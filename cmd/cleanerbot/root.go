package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cleanerbot",
	Short: "Cleanerbot simulates a cleaning robot on a grid",
	Long: `Cleanerbot drives a robot across a grid of dirt and obstacles with a chosen
traversal strategy (perimeter, spiral or zigzag) and animates every step in the console.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging to stderr")
}
