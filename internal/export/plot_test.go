package export

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/odestep/internal/dynamo"
	"github.com/san-kum/odestep/internal/integrators"
	"github.com/san-kum/odestep/internal/viz"
)

func solvedSeries(t *testing.T) []viz.Series {
	t.Helper()
	p := dynamo.Params{X0: 0, Y0: 1, XTarget: 1, H: 0.1}

	var series []viz.Series
	for _, m := range []dynamo.Method{integrators.NewEuler(), integrators.NewRK4()} {
		require.NoError(t, m.Configure(p))
		require.NoError(t, m.Solve())
		series = append(series, viz.Series{Name: m.Info().Key, Traj: m.Trajectory()})
	}
	return series
}

func TestFormat(t *testing.T) {
	for path, want := range map[string]string{
		"out.png":     "png",
		"OUT.SVG":     "svg",
		"a/b/run.pdf": "pdf",
	} {
		got, err := Format(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}

	_, err := Format("out.gif")
	assert.True(t, errors.Is(err, dynamo.ErrInvalidInput))
	_, err = Format("noext")
	assert.True(t, errors.Is(err, dynamo.ErrInvalidInput))
}

func TestSavePlotPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plot.png")
	require.NoError(t, SavePlot(path, "dy/dx = x + y", solvedSeries(t), dynamo.DefaultExact))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "\x89PNG"), "png signature")
}

func TestSavePlotSVG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plot.svg")
	require.NoError(t, SavePlot(path, "", solvedSeries(t), nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}

func TestNewPlotLegend(t *testing.T) {
	p, err := NewPlot("t", solvedSeries(t), dynamo.DefaultExact)
	require.NoError(t, err)
	assert.Equal(t, "t", p.Title.Text)
	assert.Equal(t, "x", p.X.Label.Text)
}

func TestSavePlotErrors(t *testing.T) {
	dir := t.TempDir()

	err := SavePlot(filepath.Join(dir, "plot.bmp"), "", solvedSeries(t), nil)
	assert.True(t, errors.Is(err, dynamo.ErrInvalidInput))

	err = SavePlot(filepath.Join(dir, "empty.png"), "", nil, nil)
	assert.True(t, errors.Is(err, dynamo.ErrInvalidInput))

	err = SavePlot(filepath.Join(dir, "missing", "plot.png"), "", solvedSeries(t), nil)
	assert.True(t, errors.Is(err, dynamo.ErrFileWrite))
	var fe *dynamo.FileError
	assert.True(t, errors.As(err, &fe))
}
