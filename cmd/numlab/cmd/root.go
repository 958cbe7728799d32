// SPDX-License-Identifier: MIT

// Package cmd wires the numlab subcommands.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/numlab/internal/config"
	"github.com/katalvlaran/numlab/internal/report"
)

// flags shared by every subcommand.
type rootFlags struct {
	configFile string
	format     string
	logLevel   string
}

// app is the state a subcommand runs with once flags and config are resolved.
type app struct {
	cfg    config.Config
	format report.Format
	logger log.Logger
	out    io.Writer
}

// Execute runs the numlab root command against os.Args.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := NewRootCmd(os.Stdout, os.Stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return err
	}

	return nil
}

// NewRootCmd builds the command tree writing results to out and logs to errOut.
func NewRootCmd(out, errOut io.Writer) *cobra.Command {
	var flags rootFlags

	root := &cobra.Command{
		Use:   "numlab",
		Short: "Numerical methods on three circuit and sensor exercises",
		Long: `numlab runs classical numerical methods on small physical models:

  roots   - RLC resonance: the resistance that tunes f(R) to a target (bisection, Newton-Raphson)
  linear  - mesh currents of a resistor network (Gaussian, Gauss-Jordan, determinant, adjugate, inverse)
  diff    - thermistor dR/dT by forward, backward, central and Richardson differences
  all     - the three in order

Parameters come from built-in defaults, optionally overridden by a TOML file (--config).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configFile, "config", "", "TOML config file (default: built-in parameters)")
	pf.StringVar(&flags.format, "format", string(report.FormatTable), "output format: table, yaml or json")
	pf.StringVar(&flags.logLevel, "log-level", "", "log threshold: debug, info, warn or error (default: from config)")

	// setup resolves config, format and logger for the subcommands.
	setup := func(cmd *cobra.Command) (*app, error) {
		cfg := config.Default()
		if flags.configFile != "" {
			var err error
			if cfg, err = config.Load(flags.configFile); err != nil {
				return nil, err
			}
		}
		if flags.logLevel != "" {
			cfg.Log.Level = flags.logLevel
			if err := cfg.Validate(); err != nil {
				return nil, err
			}
		}
		format, err := report.ParseFormat(flags.format)
		if err != nil {
			return nil, err
		}

		return &app{
			cfg:    cfg,
			format: format,
			logger: newLogger(cmd.ErrOrStderr(), cfg.Log.Level),
			out:    cmd.OutOrStdout(),
		}, nil
	}

	root.AddCommand(
		newRootsCmd(setup),
		newLinearCmd(setup),
		newDiffCmd(setup),
		newAllCmd(setup),
		newConfigCmd(),
	)

	return root
}

type setupFunc func(*cobra.Command) (*app, error)

// newLogger returns a logfmt logger on w that drops records below lvl.
func newLogger(w io.Writer, lvl string) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)

	return level.NewFilter(logger, allow(lvl))
}

func allow(lvl string) level.Option {
	switch lvl {
	case "debug":
		return level.AllowDebug()
	case "warn":
		return level.AllowWarn()
	case "error":
		return level.AllowError()
	default:
		return level.AllowInfo()
	}
}

// emit writes doc in the selected format.
func (a *app) emit(doc report.Document) error {
	return report.Write(a.out, a.format, doc)
}

func newDocument() report.Document {
	return report.NewDocument(time.Now())
}
