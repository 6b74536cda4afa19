// Package main provides the qutrit CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/qutrit/internal/config"
	"github.com/katalvlaran/qutrit/internal/logging"
)

// Version is the current qutrit CLI version
var Version = "0.3.0"

// app carries state shared by every subcommand.
type app struct {
	// Global flags
	configPath string
	verbose    bool
	logFormat  string

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:     "qutrit",
		Short:   "qutrit - gate matrices, spectra and state preparation for three-level systems",
		Long: `qutrit builds the canonical matrices of qutrit gates (TShift, TClock, TAdd,
TSWAP, TCNOT and the subspace gates TX, TY, TZ, TH, TS, TT), prepares basis and
amplitude states on labelled wires, and evaluates small circuits described in YAML.

Configuration comes from QUTRIT_* environment variables, optionally overlaid by
a YAML file passed with --config.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			if a.verbose {
				cfg.Debug = true
			}
			if cmd.Flags().Changed("log-format") {
				cfg.LogFormat = a.logFormat
			}
			logger, err := logging.New(cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.cfg, a.logger = cfg, logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML config file overlaying QUTRIT_* variables")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "console", "Log encoding: console or json")

	root.AddCommand(
		a.matrixCmd(),
		a.eigvalsCmd(),
		a.adjointCmd(),
		a.powCmd(),
		a.basisCmd(),
		a.vectorCmd(),
		a.runCmd(),
		a.inspectCmd(),
	)

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
