// SPDX-License-Identifier: MIT

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/numlab/internal/exercise"
	"github.com/katalvlaran/numlab/internal/report"
)

func newRootsCmd(setup setupFunc) *cobra.Command {
	var target float64
	var derivative string

	c := &cobra.Command{
		Use:   "roots",
		Short: "Find the resistance that tunes an RLC circuit to a target frequency",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("target") {
				a.cfg.Resonance.Target = target
			}
			if cmd.Flags().Changed("derivative") {
				a.cfg.Resonance.Derivative = derivative
			}
			doc := newDocument()
			if err = runRoots(cmd, a, &doc); err != nil {
				return err
			}

			return a.emit(doc)
		},
	}
	c.Flags().Float64Var(&target, "target", 0, "target frequency in Hz (overrides config)")
	c.Flags().StringVar(&derivative, "derivative", "", "Newton derivative: analytic or dual (overrides config)")

	return c
}

func newLinearCmd(setup setupFunc) *cobra.Command {
	var strategy string

	c := &cobra.Command{
		Use:   "linear",
		Short: "Solve the mesh currents of a resistor network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("strategy") {
				a.cfg.Circuit.Strategy = strategy
			}
			doc := newDocument()
			if err = runLinear(a, &doc); err != nil {
				return err
			}

			return a.emit(doc)
		},
	}
	c.Flags().StringVar(&strategy, "strategy", "", "determinant/inverse strategy: cofactor or lu (overrides config)")

	return c
}

func newDiffCmd(setup setupFunc) *cobra.Command {
	var derivative string
	var workers int

	c := &cobra.Command{
		Use:   "diff",
		Short: "Differentiate a thermistor curve with four difference schemes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("derivative") {
				a.cfg.Thermistor.Derivative = derivative
			}
			if cmd.Flags().Changed("workers") {
				a.cfg.Thermistor.Workers = workers
			}
			doc := newDocument()
			if err = runDiff(cmd, a, &doc); err != nil {
				return err
			}

			return a.emit(doc)
		},
	}
	c.Flags().StringVar(&derivative, "derivative", "", "exact derivative: analytic or dual (overrides config)")
	c.Flags().IntVar(&workers, "workers", 0, "concurrent grid points, 0 = GOMAXPROCS (overrides config)")

	return c
}

func newAllCmd(setup setupFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Run roots, linear and diff in order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}
			doc := newDocument()
			if err = runRoots(cmd, a, &doc); err != nil {
				return err
			}
			if err = runLinear(a, &doc); err != nil {
				return err
			}
			if err = runDiff(cmd, a, &doc); err != nil {
				return err
			}

			return a.emit(doc)
		},
	}
}

func runRoots(cmd *cobra.Command, a *app, doc *report.Document) error {
	if err := a.cfg.Validate(); err != nil {
		return err
	}
	res, err := exercise.Roots(cmd.Context(), a.cfg.Resonance, a.logger)
	if err != nil {
		return err
	}
	doc.Roots = &res

	return nil
}

func runLinear(a *app, doc *report.Document) error {
	if err := a.cfg.Validate(); err != nil {
		return err
	}
	res, err := exercise.Linear(a.cfg.Circuit, a.logger)
	if err != nil {
		return err
	}
	doc.Linear = &res

	return nil
}

func runDiff(cmd *cobra.Command, a *app, doc *report.Document) error {
	if err := a.cfg.Validate(); err != nil {
		return err
	}
	res, err := exercise.Differentiate(cmd.Context(), a.cfg.Thermistor, a.logger)
	if err != nil {
		return err
	}
	doc.Diff = &res

	return nil
}
