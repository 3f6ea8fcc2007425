package storage

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/san-kum/odestep/internal/dynamo"
)

// WriteCSV writes traj as "Step,x,y" rows, adding ",exact,error" columns when
// exact is non-nil. Every value has exactly four decimals.
func WriteCSV(w io.Writer, traj dynamo.Trajectory, exact dynamo.Exact) error {
	cw := csv.NewWriter(w)

	header := []string{"Step", "x", "y"}
	if exact != nil {
		header = append(header, "exact", "error")
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i, p := range traj {
		row := []string{strconv.Itoa(i), format4(p.X), format4(p.Y)}
		if exact != nil {
			e := exact(p.X)
			row = append(row, format4(e), format4(math.Abs(e-p.Y)))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ExportCSV writes traj to path. Any failure is reported as a *dynamo.FileError.
func ExportCSV(path string, traj dynamo.Trajectory, exact dynamo.Exact) error {
	f, err := os.Create(path)
	if err != nil {
		return &dynamo.FileError{Path: path, Wrapped: err}
	}

	if err := WriteCSV(f, traj, exact); err != nil {
		f.Close()
		return &dynamo.FileError{Path: path, Wrapped: err}
	}
	if err := f.Close(); err != nil {
		return &dynamo.FileError{Path: path, Wrapped: err}
	}
	return nil
}

// ReadCSV parses a file produced by WriteCSV back into a trajectory.
func ReadCSV(r io.Reader) (dynamo.Trajectory, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return dynamo.Trajectory{}, nil
	}

	traj := make(dynamo.Trajectory, 0, len(records)-1)
	for i, rec := range records[1:] {
		if len(rec) < 3 {
			return nil, fmt.Errorf("row %d: expected at least 3 columns, got %d", i+1, len(rec))
		}
		x, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		y, err := strconv.ParseFloat(rec[2], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		traj = append(traj, dynamo.Point{X: x, Y: y})
	}
	return traj, nil
}

func format4(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
