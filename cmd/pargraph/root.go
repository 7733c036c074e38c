package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pargraph/engine"
	"github.com/katalvlaran/pargraph/internal/config"
	"github.com/katalvlaran/pargraph/internal/logging"
)

// app carries flag values and the state built in PersistentPreRunE.
type app struct {
	cfgPath    string
	threads    int
	seed       int64
	logLevel   string
	logFormat  string
	cpuProfile string

	cfg      *config.Config
	log      *slog.Logger
	engine   *engine.Engine
	stopProf func()
}

// newRootCmd wires the command tree onto a. Callers must invoke
// a.stopProfile once Execute returns, whatever its result.
func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "pargraph",
		Short: "Sequential and parallel graph algorithms with timing reports",
		Long: `pargraph builds a weighted graph, either random (seeded) or listed edge by edge
in the YAML config, and runs Floyd-Warshall, connected components or Kruskal on it.
The compare command runs sequential and parallel variants side by side and reports
speedup and efficiency.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	f := root.PersistentFlags()
	f.StringVar(&a.cfgPath, "config", "", "path to YAML config file")
	f.IntVar(&a.threads, "threads", 0, "worker goroutines for parallel runs (0 = all CPUs)")
	f.Int64Var(&a.seed, "seed", 0, "random seed for generated graphs")
	f.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	f.StringVar(&a.logFormat, "log-format", "", "log format: text or json")
	f.StringVar(&a.cpuProfile, "cpuprofile", "", "write a CPU profile into this directory")

	root.AddCommand(
		newGenerateCmd(a),
		newAPSPCmd(a),
		newComponentsCmd(a),
		newMSTCmd(a),
		newCompareCmd(a),
	)
	return root
}

// setup loads the config, applies flag overrides and builds the logger and
// engine. Flags win over the file, which wins over the environment.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("threads") {
		if a.threads < 0 {
			return fmt.Errorf("--threads must be >= 0, got %d", a.threads)
		}
		cfg.Threads = a.threads
	}
	if flags.Changed("seed") {
		cfg.Seed = a.seed
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Logging.Format = a.logFormat
	}
	a.cfg = cfg

	a.log = logging.New(cfg.Logging, cmd.ErrOrStderr())
	a.engine = engine.New(
		engine.WithThreads(cfg.Threads),
		engine.WithLogger(a.log),
		engine.WithDetailLimit(cfg.Report.DetailLimit),
	)

	if a.cpuProfile != "" {
		if err := os.MkdirAll(a.cpuProfile, 0o755); err != nil {
			return fmt.Errorf("creating profile directory: %w", err)
		}
		a.stopProf = profile.Start(
			profile.CPUProfile,
			profile.ProfilePath(a.cpuProfile),
			profile.NoShutdownHook,
			profile.Quiet,
		).Stop
		a.log.Info("cpu profiling enabled", "dir", a.cpuProfile)
	}
	return nil
}

// stopProfile flushes the CPU profile, if one was started. Cobra skips
// post-run hooks when RunE fails, so this runs after Execute instead.
func (a *app) stopProfile() {
	if a.stopProf != nil {
		a.stopProf()
		a.stopProf = nil
	}
}
