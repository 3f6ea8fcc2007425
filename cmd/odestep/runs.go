package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/odestep/internal/dynamo"
	"github.com/san-kum/odestep/internal/experiment"
	"github.com/san-kum/odestep/internal/export"
	"github.com/san-kum/odestep/internal/problems"
	"github.com/san-kum/odestep/internal/storage"
	"github.com/san-kum/odestep/internal/viz"
)

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPROBLEM\tTIME\tX0\tY0\tTARGET\tH\tMETHODS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.4f\t%.4f\t%.4f\t%.4f\t%d\n",
			run.ID,
			run.Problem,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Params.X0,
			run.Params.Y0,
			run.Params.XTarget,
			run.Params.H,
			len(run.Methods),
		)
	}

	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	if len(meta.Methods) == 0 {
		return fmt.Errorf("no data to plot")
	}

	series := make([]viz.Series, 0, len(meta.Methods))
	for _, m := range meta.Methods {
		traj, err := st.LoadTrajectory(runID, m.Key)
		if err != nil {
			return err
		}
		series = append(series, viz.Series{Name: m.Key, Traj: traj})
	}

	var exact dynamo.Exact
	if prob, err := problems.Get(meta.Problem); err == nil {
		exact = prob.ExactFor(meta.Params.X0, meta.Params.Y0)
	}

	if plotOut != "" {
		if err := export.SavePlot(plotOut, meta.Equation, series, exact); err != nil {
			return err
		}
		fmt.Printf("plot saved to %s\n", plotOut)
		return nil
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("problem: %s\n\n", meta.Equation)

	if exact != nil {
		series = append(series, viz.ExactSeries(series[0].Traj, exact))
	}
	graph := viz.PlotTrajectories(series, viz.PlotOptions{
		Height:  15,
		Width:   80,
		Caption: "y(x)",
	})
	if graph == "" {
		return fmt.Errorf("no data to plot")
	}
	fmt.Println(graph)
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID, name := args[0], args[1]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	key, err := methodKey(name)
	if err != nil {
		return err
	}
	traj, err := st.LoadTrajectory(runID, key)
	if err != nil {
		return err
	}

	var exact dynamo.Exact
	if meta.CompareExact {
		if prob, err := problems.Get(meta.Problem); err == nil {
			exact = prob.ExactFor(meta.Params.X0, meta.Params.Y0)
		}
	}
	return storage.WriteCSV(os.Stdout, traj, exact)
}

// methodKey maps a registry name or alias to the key used in result files.
func methodKey(name string) (string, error) {
	m, err := experiment.NewRegistry().Get(name)
	if err != nil {
		return "", err
	}
	return m.Info().Key, nil
}
