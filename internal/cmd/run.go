package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/triad/internal/config"
	"github.com/katalvlaran/triad/internal/logging"
	"github.com/katalvlaran/triad/internal/render"
	"github.com/katalvlaran/triad/observe"
	"github.com/katalvlaran/triad/roster"
	"github.com/katalvlaran/triad/triad"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Generate random preferences and match them into teams",
	Long: `Run draws a random preference order for every individual, runs the
proposal protocol to its fixed point and prints the resulting teams.

Examples:
  # Match the default population of 30 with a random seed
  triad run

  # Reproduce a run and show every proposal
  triad run --seed 42 --trace

  # Export counters for the node_exporter textfile collector
  triad run --metrics-textfile /var/lib/node_exporter/triad.prom`,
	Args:    cobra.NoArgs,
	PreRunE: bindRunFlags,
	RunE:    runRun,
}

// flag name -> config key
var runFlagKeys = map[string]string{
	"population":       "run.population",
	"seed":             "run.seed",
	"max-proposals":    "run.max_proposals",
	"verify":           "run.verify",
	"trace":            "output.trace",
	"log-level":        "logging.level",
	"log-file":         "logging.file",
	"metrics-textfile": "metrics.textfile",
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().IntP("population", "n", triad.DefaultPopulation, "Number of individuals (positive multiple of 3)")
	runCmd.Flags().Int64P("seed", "s", 0, "Preference seed (0 picks one from the clock)")
	runCmd.Flags().Int("max-proposals", 0, "Stop after this many proposals (0 for no limit)")
	runCmd.Flags().Bool("verify", false, "Check team consistency after every formation")
	runCmd.Flags().BoolP("trace", "t", false, "Print every proposal attempt")
	runCmd.Flags().Bool("no-color", false, "Disable colored output")
	runCmd.Flags().String("log-level", "", "Minimum log level (debug/info/warn/error)")
	runCmd.Flags().String("log-file", "", "Write JSON logs to this file instead of stderr")
	runCmd.Flags().String("metrics-textfile", "", "Write Prometheus metrics to this .prom file")
}

// bindRunFlags binds the flags per invocation so that a viper reset between
// invocations does not drop them.
func bindRunFlags(cmd *cobra.Command, _ []string) error {
	for name, key := range runFlagKeys {
		if err := viper.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return fmt.Errorf("bind --%s: %w", name, err)
		}
	}

	return nil
}

func runRun(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	// --no-color overrides output.color for this invocation only.
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		cfg.Output.Color = false
	}

	seed := cfg.Run.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	base, err := logging.Open(cfg.Logging.File, cfg.Logging.Level)
	if err != nil {
		return err
	}
	defer func() { _ = base.Close() }()
	logger := base.WithRun(seed, cfg.Run.Population)

	registry := prometheus.NewRegistry()
	metrics, err := observe.NewMetrics(registry)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printer := render.NewPrinter(out, cfg.Output.Color, cfg.Output.Trace)

	opts := []triad.Option{
		triad.WithPopulation(cfg.Run.Population),
		triad.WithSeed(seed),
		triad.WithObserver(observe.Multi(
			printer,
			metrics,
			observe.NewLogObserver(logger.WithComponent("matcher")),
		)),
	}
	if cfg.Run.MaxProposals > 0 {
		opts = append(opts, triad.WithMaxProposals(cfg.Run.MaxProposals))
	}
	if cfg.Run.Verify {
		opts = append(opts, triad.WithVerify())
	}

	m, err := triad.New(opts...)
	if err != nil {
		logger.Error("failed to build matcher", "error", err.Error())
		return err
	}

	res, runErr := m.Run()
	switch {
	case runErr == nil:
	case errors.Is(runErr, triad.ErrProposalLimit):
		logger.Warn("run stopped at proposal limit", "limit", cfg.Run.MaxProposals)
	default:
		logger.Error("run aborted", "error", runErr.Error(), "proposals", res.Proposals)
		return runErr
	}

	if err := printer.Report(res); err != nil {
		return err
	}
	fmt.Fprintf(out, "Seed: %d\n", seed)
	if !res.Complete() {
		fmt.Fprintf(out, "Unmatched: %d of %d individuals\n", unmatched(res), len(res.Assignments))
	}

	if cfg.Metrics.Textfile != "" {
		if err := prometheus.WriteToTextfile(cfg.Metrics.Textfile, registry); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		logger.Info("metrics written", "path", cfg.Metrics.Textfile)
	}

	return nil
}

func unmatched(res triad.Result) int {
	n := 0
	for _, slot := range res.Assignments {
		if slot == roster.None {
			n++
		}
	}

	return n
}
