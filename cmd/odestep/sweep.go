package main

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/odestep/internal/experiment"
	"github.com/san-kum/odestep/internal/optim"
	"github.com/san-kum/odestep/internal/viz"
)

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if levels < 2 {
		return fmt.Errorf("need at least 2 levels, got %d", levels)
	}

	base := experiment.Config{
		Problem: cfg.Problem,
		Methods: []string{sweepMethod},
		Params:  cfg.Params(),
	}
	sweep, err := optim.NewStepSweep(optim.Halving(cfg.H, levels)).Run(cmd.Context(), base, experiment.NewRegistry())
	if err != nil {
		return err
	}

	fmt.Println(viz.Title.Render(sweep.Method))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "H\tSTEPS\tF EVALS\tRESULT\tMAX ERROR")
	for _, p := range sweep.Points {
		fmt.Fprintf(w, "%g\t%d\t%d\t%.4f\t%.4f\n", p.H, p.Steps, p.Evaluations, p.Result, p.Error)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if order := sweep.ObservedOrder(); !math.IsNaN(order) {
		fmt.Printf("\nobserved order: %.2f\n", order)
	} else {
		fmt.Println("\nobserved order: n/a (errors below display precision)")
	}

	if tolerance > 0 {
		if p, ok := sweep.Coarsest(tolerance); ok {
			fmt.Printf("coarsest h within %g: %g (%d steps)\n", tolerance, p.H, p.Steps)
		} else {
			fmt.Printf("no step size reached %g\n", tolerance)
		}
	}
	return nil
}
