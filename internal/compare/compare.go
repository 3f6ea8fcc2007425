// Package compare tabulates already-solved methods against an exact solution.
package compare

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/san-kum/odestep/internal/dynamo"
	"github.com/san-kum/odestep/internal/metrics"
)

// finalXTolerance bounds how far apart the methods' final x may drift.
const finalXTolerance = 1e-9

type Row struct {
	Method   string
	Key      string
	Result   float64
	Exact    float64
	AbsError float64

	// MaxError is the global truncation error; HasMaxError is false when the
	// method carries no exact solution of its own.
	MaxError    float64
	HasMaxError bool

	// MeanError and RMSError are taken over every point against the
	// comparator's exact solution.
	MeanError   float64
	RMSError    float64
	Evaluations int
}

// Compare evaluates exact once at the common final x and reports every
// method's result, the exact value and their absolute difference, all
// rounded to four decimals. Methods are only read.
func Compare(methods []dynamo.Method, exact dynamo.Exact) ([]Row, error) {
	if len(methods) == 0 {
		return nil, fmt.Errorf("%w: no methods to compare", dynamo.ErrInvalidInput)
	}
	if exact == nil {
		return nil, dynamo.ErrNoExact
	}

	first, ok := methods[0].Trajectory().Last()
	if !ok {
		return nil, fmt.Errorf("%s: %w", methods[0].Name(), dynamo.ErrNotSolved)
	}
	want := dynamo.Round4(exact(first.X))

	rows := make([]Row, 0, len(methods))
	for _, m := range methods {
		result, err := m.Result()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", m.Name(), err)
		}

		last, _ := m.Trajectory().Last()
		if math.Abs(last.X-first.X) > finalXTolerance {
			return nil, fmt.Errorf("%w: %s ends at x=%g, expected %g",
				dynamo.ErrInvalidInput, m.Name(), last.X, first.X)
		}

		result = dynamo.Round4(result)
		errs := metrics.Evaluate(m.Trajectory(), metrics.NewMeanAbsError(exact), metrics.NewRMSError(exact))
		row := Row{
			Method:      m.Name(),
			Key:         m.Info().Key,
			Result:      result,
			Exact:       want,
			AbsError:    dynamo.Round4(math.Abs(want - result)),
			MeanError:   dynamo.Round4(errs["mean_abs_error"]),
			RMSError:    dynamo.Round4(errs["rms_error"]),
			Evaluations: m.Stats().Evaluations,
		}

		maxErr, err := m.MaxError()
		switch {
		case err == nil:
			row.MaxError = dynamo.Round4(maxErr)
			row.HasMaxError = true
		case !errors.Is(err, dynamo.ErrNoExact):
			return nil, fmt.Errorf("%s: %w", m.Name(), err)
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// Rank returns a copy of rows ordered by absolute error, ties kept in input order.
func Rank(rows []Row) []Row {
	ranked := make([]Row, len(rows))
	copy(ranked, rows)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].AbsError < ranked[j].AbsError
	})
	return ranked
}
