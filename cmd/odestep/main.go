package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/san-kum/odestep/internal/config"
	"github.com/san-kum/odestep/internal/logger"
	"github.com/san-kum/odestep/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	problem    string
	verbose    bool
	theme      string
	noColor    bool

	x0, y0, xTarget, stepSize float64

	methods      []string
	compareExact bool
	saveCSV      bool
	showCompare  bool
	trace        bool
	delayMS      int
	outDir       string
	record       bool
	showPlot     bool

	plotOut string

	sweepMethod string
	levels      int
	tolerance   float64
)

// main registers commands and flags, runs the interactive menu when no
// subcommand is given, and exits with status 1 if a command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:   "odestep",
		Short: "fixed-step ODE solver lab",
		Long: "Solve dy/dx = f(x, y), y(x0) = y0 with Euler, Modified Euler, RK2, RK4\n" +
			"and Adams-Bashforth, trace every step and compare the results.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.SetVerbose(verbose)
			viz.SetColor(!noColor)
			if theme != "" {
				viz.SetTheme(theme)
			}
		},
		RunE: runInteractive,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	pf.StringVar(&configFile, "config", "", "config file path (yaml or toml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration for the problem")
	pf.StringVar(&problem, "problem", config.DefaultProblem, "differential equation (see 'problems')")
	pf.BoolVarP(&verbose, "verbose", "v", false, "print diagnostics to stderr")
	pf.StringVar(&theme, "theme", "", "colour theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	pf.BoolVar(&noColor, "no-color", false, "disable coloured output")
	pf.IntVar(&delayMS, "delay", config.DefaultDelayMS, "pause between traced steps in ms")
	pf.StringVar(&outDir, "out", config.DefaultOutDir, "directory for CSV results")

	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "solve with one or more methods",
		RunE:  runSolve,
	}
	addParamFlags(solveCmd)
	solveCmd.Flags().StringSliceVarP(&methods, "method", "m", []string{config.DefaultMethod}, "methods to run (euler, heun, rk2, rk4, ab4, all)")
	solveCmd.Flags().BoolVar(&compareExact, "exact", false, "show exact solution and error per step")
	solveCmd.Flags().BoolVar(&saveCSV, "csv", false, "save <method>_results.csv files")
	solveCmd.Flags().BoolVar(&showCompare, "compare", false, "print the comparison table")
	solveCmd.Flags().BoolVar(&trace, "trace", true, "print the step-by-step trace")
	solveCmd.Flags().BoolVar(&record, "record", true, "record the run in the data directory")
	solveCmd.Flags().BoolVar(&showPlot, "plot", false, "draw an ascii chart of the trajectories")

	compareCmd := &cobra.Command{
		Use:   "compare [method...]",
		Short: "compare methods against the exact solution",
		RunE:  runCompare,
	}
	addParamFlags(compareCmd)

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "measure error and observed order while halving h",
		RunE:  runSweep,
	}
	addParamFlags(sweepCmd)
	sweepCmd.Flags().StringVarP(&sweepMethod, "method", "m", "rk4", "method to study")
	sweepCmd.Flags().IntVar(&levels, "levels", 4, "number of step sizes")
	sweepCmd.Flags().Float64Var(&tolerance, "tol", 0, "report the coarsest h with max error within tol")

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "print run metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVarP(&plotOut, "output", "o", "", "write an image instead (.png, .svg, .pdf)")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id] [method]",
		Short: "write a recorded trajectory as CSV to stdout",
		Args:  cobra.ExactArgs(2),
		RunE:  exportCSV,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [problem]",
		Short: "list available presets for a problem",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listPresets,
	}

	problemsCmd := &cobra.Command{
		Use:   "problems",
		Short: "list differential equations",
		RunE:  listProblems,
	}

	methodsCmd := &cobra.Command{
		Use:   "methods",
		Short: "list numerical methods",
		RunE:  listMethods,
	}

	rootCmd.AddCommand(solveCmd, compareCmd, sweepCmd, runsCmd, showCmd, plotCmd, exportCSVCmd, presetsCmd, problemsCmd, methodsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addParamFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&x0, "x0", config.DefaultX0, "initial x")
	cmd.Flags().Float64Var(&y0, "y0", config.DefaultY0, "initial y")
	cmd.Flags().Float64Var(&xTarget, "target", config.DefaultXTarget, "target x")
	cmd.Flags().Float64Var(&stepSize, "h", config.DefaultH, "step size")
}

// resolveConfig layers defaults, preset, config file and explicit flags, in
// that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(problem, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(problem))
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("problem") || (preset == "" && configFile == "") {
		cfg.Problem = problem
	}
	if flags.Changed("x0") {
		cfg.X0 = x0
	}
	if flags.Changed("y0") {
		cfg.Y0 = y0
	}
	if flags.Changed("target") {
		cfg.XTarget = xTarget
	}
	if flags.Changed("h") {
		cfg.H = stepSize
	}
	if flags.Changed("exact") {
		cfg.CompareExact = compareExact
	}
	if flags.Changed("csv") {
		cfg.SaveCSV = saveCSV
	}
	if flags.Changed("compare") {
		cfg.Compare = showCompare
	}
	if flags.Changed("trace") {
		cfg.Trace = trace
	}
	if flags.Changed("delay") {
		cfg.DelayMS = delayMS
	}
	if flags.Changed("out") {
		cfg.OutDir = outDir
	}
	if flags.Changed("method") {
		cfg.Method = strings.Join(methods, ",")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug("config: %+v", *cfg)
	return cfg, nil
}
