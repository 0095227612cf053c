package cli

import (
	"context"
	"fmt"

	"github.com/aretw0/cleanerbot"
	"github.com/aretw0/cleanerbot/internal/presentation/tui"
	"github.com/aretw0/cleanerbot/pkg/metrics"
	"github.com/aretw0/cleanerbot/pkg/robot"
	"github.com/aretw0/cleanerbot/pkg/scenario"
	"github.com/aretw0/cleanerbot/pkg/strategy"
	"github.com/muesli/termenv"
)

// Execute handles the 'run' command: it wires signals to the run and
// turns an interruption into a clean exit.
func Execute(opts RunOptions) error {
	opts.normalize()
	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	err := Run(sigCtx, opts)
	if sig := sigCtx.Signal(); sig != nil {
		printSystemMessage(opts.Stdout, "Interrupted by %s.", sig)
	}
	return handleExecutionError(err)
}

// Run builds the scenario, runs the simulation and prints the report.
func Run(ctx context.Context, opts RunOptions) error {
	opts.normalize()
	logger := createLogger(opts.Debug)
	out := opts.Stdout
	interactive := !opts.Headless && isTerminal(out)

	sc, err := loadScenario(opts.ScenarioPath)
	if err != nil {
		return err
	}

	strat, err := resolveStrategy(opts, sc)
	if err != nil {
		return err
	}

	g, err := sc.Build()
	if err != nil {
		return err
	}

	profile := termenv.Ascii
	if interactive && !opts.NoColor {
		profile = termenv.EnvColorProfile()
	}

	if !opts.Headless {
		tui.PrintBanner(out, profile, cleanerbot.Version)
	}

	collector := metrics.NewCollector()
	simOpts := []cleanerbot.Option{
		cleanerbot.WithName(sc.Name),
		cleanerbot.WithStrategy(strat),
		cleanerbot.WithLogger(logger),
		cleanerbot.WithLifecycleHooks(collector.Hooks()),
	}
	if !opts.Headless {
		display := tui.NewDisplay(out, g,
			tui.WithDelay(opts.Delay),
			tui.WithClearScreen(interactive),
			tui.WithProfile(profile),
			tui.WithInterruptSource(ctx.Done()),
		)
		simOpts = append(simOpts, cleanerbot.WithLifecycleHooks(display.Hooks()))
	}
	if opts.Debug {
		simOpts = append(simOpts, cleanerbot.WithLifecycleHooks(createDebugHooks(logger)))
	}

	sim, err := cleanerbot.New(g, simOpts...)
	if err != nil {
		return err
	}

	logger.Info("Simulation ready", "scenario", sc.Name, "strategy", strat.Name(),
		"width", g.Width(), "height", g.Height(), "dirt", g.DirtRemaining())

	report, runErr := sim.Run(ctx)
	if runErr != nil && !isInterrupted(runErr) {
		return runErr
	}

	if isInterrupted(runErr) {
		printSystemMessage(out, "Run interrupted at %s.", report.Position)
	} else {
		fmt.Fprintln(out, "Done.")
	}

	render := tui.NewReportRenderer(interactive && !opts.NoColor)
	rendered, err := render(tui.ReportMarkdown(report))
	if err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	fmt.Fprintln(out, rendered)

	if opts.Metrics {
		if err := collector.WriteText(out); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return runErr
}

func loadScenario(path string) (scenario.Scenario, error) {
	if path == "" {
		return scenario.Default(), nil
	}
	return scenario.Load(path)
}

// resolveStrategy picks, in order: the --strategy flag, the scenario's strategy,
// an interactive prompt, and finally the perimeter strategy.
func resolveStrategy(opts RunOptions, sc scenario.Scenario) (robot.Strategy, error) {
	switch {
	case opts.Strategy != "":
		return strategy.Lookup(opts.Strategy)
	case sc.Strategy != "":
		return strategy.Lookup(sc.Strategy)
	case !opts.Headless && isTerminal(opts.Stdin):
		return PromptStrategy(opts.Stdin, opts.Stdout), nil
	default:
		return strategy.PerimeterHugger{}, nil
	}
}
