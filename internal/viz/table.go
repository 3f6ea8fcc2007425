package viz

import (
	"fmt"
	"strings"

	"github.com/san-kum/odestep/internal/compare"
)

const (
	methodWidth = 32
	numWidth    = 14
)

// ComparisonTable renders comparator rows in the order given.
func ComparisonTable(rows []compare.Row) string {
	var b strings.Builder

	b.WriteString(Title.Render("=== Comparison of All Methods ===") + "\n")

	header := fmt.Sprintf("%-*s%-*s%-*s%-*s%-*s%-*s%-*s%s",
		methodWidth, "Method",
		numWidth, "Result",
		numWidth, "Exact",
		numWidth, "Abs Error",
		numWidth, "Max Error",
		numWidth, "Mean Error",
		numWidth, "RMS Error",
		"f evals")
	b.WriteString(Header.Render(header) + "\n")
	b.WriteString(Subtle.Render(strings.Repeat("-", len(header))) + "\n")

	best := bestError(rows)
	for _, r := range rows {
		maxErr := "n/a"
		if r.HasMaxError {
			maxErr = format4(r.MaxError)
		}
		errStyle := Bad
		if r.AbsError == best {
			errStyle = Good
		}
		b.WriteString(fmt.Sprintf("%-*s", methodWidth, r.Method))
		b.WriteString(Value.Render(fmt.Sprintf("%-*s", numWidth, format4(r.Result))))
		b.WriteString(fmt.Sprintf("%-*s", numWidth, format4(r.Exact)))
		b.WriteString(errStyle.Render(fmt.Sprintf("%-*s", numWidth, format4(r.AbsError))))
		b.WriteString(fmt.Sprintf("%-*s", numWidth, maxErr))
		b.WriteString(fmt.Sprintf("%-*s", numWidth, format4(r.MeanError)))
		b.WriteString(fmt.Sprintf("%-*s", numWidth, format4(r.RMSError)))
		b.WriteString(fmt.Sprintf("%d", r.Evaluations))
		b.WriteString("\n")
	}
	return b.String()
}

func bestError(rows []compare.Row) float64 {
	if len(rows) == 0 {
		return 0
	}
	best := rows[0].AbsError
	for _, r := range rows[1:] {
		if r.AbsError < best {
			best = r.AbsError
		}
	}
	return best
}
