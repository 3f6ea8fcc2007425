package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/odestep/internal/compare"
	"github.com/san-kum/odestep/internal/config"
	"github.com/san-kum/odestep/internal/dynamo"
	"github.com/san-kum/odestep/internal/experiment"
	"github.com/san-kum/odestep/internal/logger"
	"github.com/san-kum/odestep/internal/problems"
	"github.com/san-kum/odestep/internal/storage"
	"github.com/san-kum/odestep/internal/tui"
	"github.com/san-kum/odestep/internal/viz"
)

type runOptions struct {
	record bool
	plot   bool
	rank   bool
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	return execute(cmd.Context(), os.Stdout, cfg, splitMethods(cfg.Method), runOptions{
		record: record,
		plot:   showPlot,
	})
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	names := args
	if len(names) == 0 {
		names = []string{"all"}
	}
	cfg.Trace = false
	cfg.Compare = true
	cfg.SaveCSV = false
	return execute(cmd.Context(), os.Stdout, cfg, names, runOptions{rank: true})
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	prob, err := problems.Get(cfg.Problem)
	if err != nil {
		return err
	}

	sel, err := tui.Run(cfg, prob.Equation, experiment.NewRegistry())
	if errors.Is(err, tui.ErrAborted) {
		return nil
	}
	if err != nil {
		return err
	}
	if sel.Invalid {
		fmt.Printf("\nInvalid option! Please choose a number between 1 and %d.\n", experiment.ChoiceAll)
		return nil
	}

	cfg.X0, cfg.Y0, cfg.XTarget, cfg.H = sel.Params.X0, sel.Params.Y0, sel.Params.XTarget, sel.Params.H
	cfg.CompareExact = sel.CompareExact
	cfg.SaveCSV = sel.SaveCSV
	cfg.Compare = sel.Compare

	// "all" runs quietly and always ends with the comparison table
	if sel.Choice == experiment.ChoiceAll {
		cfg.Trace = false
		cfg.Compare = true
	}

	return execute(cmd.Context(), os.Stdout, cfg, sel.Methods, runOptions{record: true})
}

func splitMethods(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		out = []string{config.DefaultMethod}
	}
	return out
}

// execute solves, then writes whatever output cfg asks for.
func execute(ctx context.Context, w io.Writer, cfg *config.Config, names []string, opts runOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	ecfg := experiment.Config{
		Problem:      cfg.Problem,
		Methods:      names,
		Params:       cfg.Params(),
		CompareExact: cfg.CompareExact,
	}
	if cfg.Trace {
		ecfg.Observer = viz.NewTracer(w, time.Duration(cfg.DelayMS)*time.Millisecond)
	}

	exp, err := experiment.New(ecfg, experiment.NewRegistry())
	if err != nil {
		return err
	}
	logger.Section(exp.Problem().Equation)
	if cfg.CompareExact && exp.Exact() == nil {
		logger.Warn("%s has no exact solution, exact comparison disabled", exp.Problem().Equation)
	}

	start := time.Now()
	solved, err := exp.Run(ctx)
	if err != nil {
		return err
	}
	logger.Info("solved %d method(s) in %v", len(solved), time.Since(start))

	if !cfg.Trace {
		printSummary(w, solved)
	}

	csvExact := exp.Exact()
	if !cfg.CompareExact {
		csvExact = nil
	}
	if cfg.SaveCSV {
		if err := saveResults(w, cfg.OutDir, solved, csvExact); err != nil {
			return err
		}
	}

	if cfg.Compare {
		if err := printComparison(w, solved, exp.Exact(), opts.rank); err != nil {
			return err
		}
	}

	if opts.plot {
		series := make([]viz.Series, 0, len(solved)+1)
		for _, m := range solved {
			series = append(series, viz.Series{Name: m.Info().Key, Traj: m.Trajectory()})
		}
		if exact := exp.Exact(); exact != nil && len(solved) > 0 {
			series = append(series, viz.ExactSeries(solved[0].Trajectory(), exact))
		}
		if chart := viz.PlotTrajectories(series, viz.PlotOptions{Caption: exp.Problem().Equation}); chart != "" {
			fmt.Fprintln(w)
			fmt.Fprintln(w, chart)
		}
	}

	if opts.record {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		id, err := st.Save(storage.RunMetadata{
			Problem:      exp.Problem().Name,
			Equation:     exp.Problem().Equation,
			Params:       cfg.Params(),
			CompareExact: cfg.CompareExact,
		}, solved, exp.Exact())
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "\n%s %s\n", viz.Label.Render("run id:"), id)
	}

	return nil
}

func printSummary(w io.Writer, solved []dynamo.Method) {
	fmt.Fprintln(w)
	for _, m := range solved {
		result, err := m.Result()
		if err != nil {
			continue
		}
		line := fmt.Sprintf("%-32s y(%.4f) = %s", m.Name(), m.Params().XTarget, viz.Highlight.Render(fmt.Sprintf("%.4f", result)))
		if m.CompareExact() {
			if maxErr, err := m.MaxError(); err == nil {
				line += viz.Label.Render(fmt.Sprintf("   max error %.4f", maxErr))
			}
		}
		fmt.Fprintln(w, line)
	}
}

func saveResults(w io.Writer, dir string, solved []dynamo.Method, exact dynamo.Exact) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &dynamo.FileError{Path: dir, Wrapped: err}
	}
	for _, m := range solved {
		path := filepath.Join(dir, storage.ResultsFile(m.Info().Key))
		if err := storage.ExportCSV(path, m.Trajectory(), exact); err != nil {
			return err
		}
		fmt.Fprintf(w, "Results saved to %s\n", path)
	}
	return nil
}

func printComparison(w io.Writer, solved []dynamo.Method, exact dynamo.Exact, rank bool) error {
	rows, err := compare.Compare(solved, exact)
	if errors.Is(err, dynamo.ErrNoExact) {
		fmt.Fprintln(w, viz.Subtle.Render("\nno exact solution for this problem, comparison skipped"))
		return nil
	}
	if err != nil {
		return err
	}
	if rank {
		rows = compare.Rank(rows)
	}
	fmt.Fprintln(w)
	fmt.Fprint(w, viz.ComparisonTable(rows))
	return nil
}
