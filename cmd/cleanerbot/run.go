package main

import (
	"github.com/aretw0/cleanerbot/internal/cli"
	"github.com/aretw0/cleanerbot/internal/presentation/tui"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [scenario.yaml]",
	Short: "Run a cleaning simulation",
	Long: `Builds the grid from a scenario file (or the built-in layout), lets the robot
clean it with the selected strategy, and prints a report when it is done.

Without --strategy the scenario's strategy is used; failing that, an interactive
terminal is asked, and otherwise the perimeter strategy runs.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := cli.DefaultRunOptions()
		opts.ScenarioPath, _ = cmd.Flags().GetString("scenario")
		if !cmd.Flags().Changed("scenario") && len(args) > 0 {
			opts.ScenarioPath = args[0]
		}
		opts.Strategy, _ = cmd.Flags().GetString("strategy")
		opts.Delay, _ = cmd.Flags().GetDuration("delay")
		opts.Headless, _ = cmd.Flags().GetBool("headless")
		opts.NoColor, _ = cmd.Flags().GetBool("no-color")
		opts.Metrics, _ = cmd.Flags().GetBool("metrics")
		opts.Debug, _ = cmd.Flags().GetBool("debug")
		opts.Stdin = cmd.InOrStdin()
		opts.Stdout = cmd.OutOrStdout()

		return cli.Execute(opts)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("scenario", "f", "", "Scenario file (YAML)")
	runCmd.Flags().StringP("strategy", "s", "", "Strategy: perimeter, spiral or zigzag")
	runCmd.Flags().Duration("delay", tui.DefaultDelay, "Pause between frames (0 disables)")
	runCmd.Flags().Bool("headless", false, "No banner, prompt or animation; print the report only")
	runCmd.Flags().Bool("no-color", false, "Disable colored output")
	runCmd.Flags().Bool("metrics", false, "Print run metrics in Prometheus text format")

	// 'run' is the default if no command is provided.
	rootCmd.RunE = runCmd.RunE
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
}
