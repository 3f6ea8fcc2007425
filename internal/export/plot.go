// Package export writes trajectories out as image files.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/san-kum/odestep/internal/dynamo"
	"github.com/san-kum/odestep/internal/viz"
)

const (
	DefaultWidth  = 6 * vg.Inch
	DefaultHeight = 4 * vg.Inch
)

var formats = map[string]bool{
	"png": true, "svg": true, "pdf": true, "eps": true,
	"jpg": true, "jpeg": true, "tif": true, "tiff": true,
}

// Format returns the image format implied by path's extension.
func Format(path string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if !formats[ext] {
		return "", fmt.Errorf("%w: unsupported plot format %q", dynamo.ErrInvalidInput, filepath.Ext(path))
	}
	return ext, nil
}

// NewPlot builds a y(x) line chart with one line per series. If exact is
// non-nil it is drawn dashed over the x values of the first series.
func NewPlot(title string, series []viz.Series, exact dynamo.Exact) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Legend.Top = true
	p.Legend.Left = true
	p.Add(plotter.NewGrid())

	if len(series) == 0 {
		return nil, fmt.Errorf("%w: nothing to plot", dynamo.ErrInvalidInput)
	}

	for i, s := range series {
		line, points, err := plotter.NewLinePoints(xys(s.Traj))
		if err != nil {
			return nil, fmt.Errorf("series %s: %w", s.Name, err)
		}
		line.Color = plotutil.Color(i)
		points.Color = plotutil.Color(i)
		points.Shape = plotutil.Shape(i)
		p.Add(line, points)
		p.Legend.Add(s.Name, line, points)
	}

	if exact != nil {
		ref := viz.ExactSeries(series[0].Traj, exact)
		line, err := plotter.NewLine(xys(ref.Traj))
		if err != nil {
			return nil, fmt.Errorf("exact: %w", err)
		}
		line.Color = plotutil.Color(len(series))
		line.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		line.Width = vg.Points(1)
		p.Add(line)
		p.Legend.Add(ref.Name, line)
	}

	return p, nil
}

// SavePlot renders series to path. The format follows the extension.
func SavePlot(path, title string, series []viz.Series, exact dynamo.Exact) error {
	format, err := Format(path)
	if err != nil {
		return err
	}
	p, err := NewPlot(title, series, exact)
	if err != nil {
		return err
	}

	wt, err := p.WriterTo(DefaultWidth, DefaultHeight, format)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return &dynamo.FileError{Path: path, Wrapped: err}
	}
	if _, err := wt.WriteTo(f); err != nil {
		f.Close()
		return &dynamo.FileError{Path: path, Wrapped: err}
	}
	if err := f.Close(); err != nil {
		return &dynamo.FileError{Path: path, Wrapped: err}
	}
	return nil
}

func xys(traj dynamo.Trajectory) plotter.XYs {
	pts := make(plotter.XYs, len(traj))
	for i, p := range traj {
		pts[i].X = p.X
		pts[i].Y = p.Y
	}
	return pts
}
