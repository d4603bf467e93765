// SPDX-License-Identifier: MIT
package main

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/isograph/searchstats"
)

// app holds the state shared by every subcommand of one invocation.
type app struct {
	cfg    Config
	logger *slog.Logger
	stats  *searchstats.Collector
	runID  string

	configPath  string
	logLevel    string
	logFormat   string
	metricsFile string
	logOut      io.Writer
}

func newRootCmd(logOut io.Writer) *cobra.Command {
	a := &app{stats: searchstats.NewCollector(), logOut: logOut}

	root := &cobra.Command{
		Use:           "isograph",
		Short:         "Exact graph isomorphism, subgraph search and motif discovery",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.finish()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error")
	pf.StringVar(&a.logFormat, "log-format", "", "text or json")
	pf.StringVar(&a.metricsFile, "metrics-file", "", "write Prometheus text metrics here on exit")

	root.AddCommand(
		newIsoCmd(a),
		newFindCmd(a),
		newMotifCmd(a),
		newGenCmd(a),
		newCheckCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := loadConfig(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = a.logFormat
	}
	if flags.Changed("metrics-file") {
		cfg.MetricsFile = a.metricsFile
	}

	logger, err := newLogger(a.logOut, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.runID = uuid.NewString()
	a.logger = logger.With("run_id", a.runID, "command", cmd.Name())
	a.logger.Debug("configuration loaded", "config", a.configPath)
	return nil
}

func (a *app) finish() error {
	r := a.stats.Snapshot()
	a.logger.Info("done",
		"tests", r.Tests, "succeeded", r.Succeeded(),
		"steps", r.Steps, "backtracks", r.Backtracks, "mappings", r.Mappings)
	if a.cfg.MetricsFile == "" {
		return nil
	}
	return writeMetrics(a.cfg.MetricsFile, a.stats)
}
