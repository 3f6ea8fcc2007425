package viz

import (
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/odestep/internal/dynamo"
)

// Series is one named line on a chart.
type Series struct {
	Name string
	Traj dynamo.Trajectory
}

type PlotOptions struct {
	Width   int
	Height  int
	Caption string
}

// PlotTrajectories draws y against step index for every series. Series with
// fewer than two points are skipped; an empty string means nothing to plot.
func PlotTrajectories(series []Series, opts PlotOptions) string {
	if opts.Height <= 0 {
		opts.Height = 12
	}
	if opts.Width <= 0 {
		opts.Width = 72
	}

	var (
		data    [][]float64
		legends []string
		colors  []asciigraph.AnsiColor
	)
	palette := CurrentTheme.Series
	for _, s := range series {
		if len(s.Traj) < 2 {
			continue
		}
		data = append(data, s.Traj.Ys())
		legends = append(legends, s.Name)
		c := asciigraph.Default
		if len(palette) > 0 {
			c = palette[(len(data)-1)%len(palette)]
		}
		colors = append(colors, c)
	}
	if len(data) == 0 {
		return ""
	}

	options := []asciigraph.Option{
		asciigraph.Height(opts.Height),
		asciigraph.Width(opts.Width),
		asciigraph.Precision(4),
	}
	if opts.Caption != "" {
		options = append(options, asciigraph.Caption(opts.Caption))
	}
	// asciigraph legends always carry escape codes
	if !colorOn {
		return asciigraph.PlotMany(data, options...) + "\n\n" + strings.Join(legends, "   ")
	}
	options = append(options,
		asciigraph.SeriesColors(colors...),
		asciigraph.SeriesLegends(legends...),
	)
	return asciigraph.PlotMany(data, options...)
}

// ExactSeries samples exact at the x values of traj.
func ExactSeries(traj dynamo.Trajectory, exact dynamo.Exact) Series {
	pts := make(dynamo.Trajectory, len(traj))
	for i, p := range traj {
		pts[i] = dynamo.Point{X: p.X, Y: exact(p.X)}
	}
	return Series{Name: "exact", Traj: pts}
}
