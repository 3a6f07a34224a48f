package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/on-the-ground/kosmos/internal/config"
	"github.com/on-the-ground/kosmos/shared/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	passStyle  = color.New(color.FgGreen, color.Bold)
	failStyle  = color.New(color.FgRed, color.Bold)
	xfailStyle = color.New(color.FgYellow, color.Bold)
	nameStyle  = color.New(color.FgCyan, color.Bold)
	dimStyle   = color.New(color.FgHiBlack)
)

// app carries the state shared by the subcommands of one invocation.
type app struct {
	cfgFile string
	logJSON bool
	flags   config.Config

	cfg    config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "kosmos",
		Short:        "kosmos - memoized integer sequences and algebraic law checking",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "configuration file (default "+config.DefaultPath+" if present)")
	pf.IntVar(&a.flags.Samples, "samples", 0, "passing samples required per law")
	pf.Int64Var(&a.flags.Seed, "seed", 0, "random seed, 0 for time-derived")
	pf.IntVar(&a.flags.MaxShrinks, "max-shrinks", 0, "shrink steps per counterexample")
	pf.IntVar(&a.flags.Workers, "workers", 0, "goroutines drawing samples")
	pf.IntVar(&a.flags.DepthBudget, "depth-budget", 0, "native recursion depth before deferral")
	pf.StringVar(&a.flags.Cache, "cache", "", "memo table: map, rotating or ristretto")
	pf.IntVar(&a.flags.CacheSize, "cache-size", 0, "entries held by a bounded memo table")
	pf.StringVar(&a.flags.LogLevel, "log-level", "", "debug, info, warn or error")
	pf.BoolVar(&a.flags.NoColor, "no-color", false, "disable colored output")
	pf.BoolVar(&a.logJSON, "log-json", false, "write logs as JSON")

	root.AddCommand(newSeqCmd(a))
	root.AddCommand(newLatticeCmd(a))
	root.AddCommand(newLawsCmd(a))
	root.AddCommand(newListCmd())
	root.AddCommand(newInitCmd(a))
	return root
}

// setup loads the configuration file and overlays the flags that were set.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	changed := cmd.Flags().Changed
	if changed("samples") {
		cfg.Samples = a.flags.Samples
	}
	if changed("seed") {
		cfg.Seed = a.flags.Seed
	}
	if changed("max-shrinks") {
		cfg.MaxShrinks = a.flags.MaxShrinks
	}
	if changed("workers") {
		cfg.Workers = a.flags.Workers
	}
	if changed("depth-budget") {
		cfg.DepthBudget = a.flags.DepthBudget
	}
	if changed("cache") {
		cfg.Cache = a.flags.Cache
	}
	if changed("cache-size") {
		cfg.CacheSize = a.flags.CacheSize
	}
	if changed("log-level") {
		cfg.LogLevel = a.flags.LogLevel
	}
	if changed("no-color") {
		cfg.NoColor = a.flags.NoColor
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	if a.logJSON {
		logger, err := logging.New(cfg.LogLevel)
		if err != nil {
			return err
		}
		a.logger = logger
	} else {
		level, err := zapcore.ParseLevel(cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("log level: %w", err)
		}
		a.logger = logging.NewConsole(level)
	}
	if cfg.NoColor {
		color.NoColor = true
	}
	return nil
}
