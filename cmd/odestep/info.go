package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/odestep/internal/config"
	"github.com/san-kum/odestep/internal/experiment"
	"github.com/san-kum/odestep/internal/problems"
)

func listPresets(cmd *cobra.Command, args []string) error {
	name := problem
	if len(args) > 0 {
		name = args[0]
	}

	presets := config.ListPresets(name)
	if len(presets) == 0 {
		fmt.Printf("no presets for problem: %s\n", name)
		return nil
	}
	fmt.Printf("presets for %s:\n", name)
	for _, p := range presets {
		cfg := config.GetPreset(name, p)
		fmt.Printf("  %-10s x0=%g y0=%g target=%g h=%g\n", p, cfg.X0, cfg.Y0, cfg.XTarget, cfg.H)
	}
	return nil
}

func listProblems(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tEQUATION\tEXACT")
	for _, name := range problems.Names() {
		p, err := problems.Get(name)
		if err != nil {
			return err
		}
		exact := "no"
		if p.HasExact() {
			exact = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", p.Name, p.Equation, exact)
	}
	return w.Flush()
}

func listMethods(cmd *cobra.Command, args []string) error {
	registry := experiment.NewRegistry()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tNAME\tMETHOD\tORDER\tSTAGES")
	for i, name := range registry.Names() {
		m, err := registry.Get(name)
		if err != nil {
			return err
		}
		info := m.Info()
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\n", i+1, name, info.Name, info.Order, info.Stages)
	}
	fmt.Fprintf(w, "%d\tall\tAll Methods\t\t\n", experiment.ChoiceAll)
	return w.Flush()
}
