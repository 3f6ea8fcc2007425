package viz

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/san-kum/odestep/internal/dynamo"
)

// Tracer prints each step of a solve as it happens. It implements
// dynamo.RunObserver.
type Tracer struct {
	w     io.Writer
	delay time.Duration
	sleep func(time.Duration)
}

// NewTracer writes to w. A non-zero delay pauses after every printed step so
// the trace can be followed live; it never affects the numbers.
func NewTracer(w io.Writer, delay time.Duration) *Tracer {
	return &Tracer{w: w, delay: delay, sleep: time.Sleep}
}

func (t *Tracer) OnStart(info dynamo.Info, p dynamo.Params) {
	fmt.Fprintln(t.w)
	fmt.Fprintln(t.w, Title.Render("=== "+info.Name+" ==="))
	fmt.Fprintf(t.w, "%s x0 = %s, y0 = %s\n", Label.Render("Initial values:"), num(p.X0), num(p.Y0))
	fmt.Fprintf(t.w, "%s h = %s\n", Label.Render("Step size:"), num(p.H))
	fmt.Fprintf(t.w, "%s %s\n", Label.Render("Target x:"), num(p.XTarget))
}

func (t *Tracer) OnStep(ev dynamo.StepEvent) {
	if ev.Bootstrap {
		fmt.Fprintf(t.w, "%s x = %s, y = %s\n",
			Subtle.Render(fmt.Sprintf("Initial point %d (RK4):", ev.Step)), num(ev.X), num(ev.Y))
	} else {
		fmt.Fprintln(t.w)
		fmt.Fprintln(t.w, Header.Render(fmt.Sprintf("Step %d:", ev.Step)))
		for _, term := range ev.Terms {
			fmt.Fprintf(t.w, "  %s = %s\n", Label.Render(term.Name), num(term.Value))
		}
		fmt.Fprintf(t.w, "  %s = %s at x = %s\n", Label.Render("y"), Highlight.Render(format4(ev.Y)), num(ev.X))
	}
	if ev.HasExact {
		t.exact(ev.Exact, ev.Y)
	}
	if t.delay > 0 {
		t.sleep(t.delay)
	}
}

func (t *Tracer) OnFinish(info dynamo.Info, last dynamo.Point) {
	fmt.Fprintf(t.w, "\n%s y(%s) = %s\n", Label.Render("Final result:"), num(last.X), Highlight.Render(format4(last.Y)))
}

func (t *Tracer) exact(exact, y float64) {
	fmt.Fprintf(t.w, "  %s = %s, %s = %s\n",
		Label.Render("exact"), num(exact),
		Label.Render("error"), Bad.Render(format4(dynamo.Round4(math.Abs(exact-y)))))
}

func num(v float64) string {
	return Value.Render(format4(v))
}

func format4(v float64) string {
	s := fmt.Sprintf("%.4f", v)
	if s == "-0.0000" {
		return "0.0000"
	}
	return s
}
