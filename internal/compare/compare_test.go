package compare_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/odestep/internal/compare"
	"github.com/san-kum/odestep/internal/dynamo"
	"github.com/san-kum/odestep/internal/integrators"
)

// fixed is a solved method with a canned trajectory.
type fixed struct {
	name string
	traj dynamo.Trajectory
}

func (f *fixed) Configure(dynamo.Params) error  { return nil }
func (f *fixed) Solve() error                   { return nil }
func (f *fixed) Trajectory() dynamo.Trajectory  { return f.traj.Clone() }
func (f *fixed) Name() string                   { return f.name }
func (f *fixed) Info() dynamo.Info              { return dynamo.Info{Key: f.name, Name: f.name} }
func (f *fixed) MaxError() (float64, error)     { return 0, dynamo.ErrNoExact }
func (f *fixed) CompareExact() bool             { return false }
func (f *fixed) Params() dynamo.Params          { return dynamo.Params{} }
func (f *fixed) Steps() int                     { return len(f.traj) - 1 }
func (f *fixed) Stats() dynamo.Stats            { return dynamo.Stats{Steps: len(f.traj) - 1} }
func (f *fixed) Result() (float64, error) {
	last, ok := f.traj.Last()
	if !ok {
		return 0, dynamo.ErrNotSolved
	}
	return last.Y, nil
}

func ending(name string, x, y float64) *fixed {
	return &fixed{name: name, traj: dynamo.Trajectory{{X: 0, Y: 0}, {X: x, Y: y}}}
}

var _ = Describe("Compare", func() {
	constant := func(v float64) dynamo.Exact {
		return func(float64) float64 { return v }
	}

	Context("with known results", func() {
		It("reports |exact - result| rounded to four decimals", func() {
			a := ending("a", 1, 2.5)
			b := ending("b", 1, 2.98766)

			rows, err := compare.Compare([]dynamo.Method{a, b}, constant(3))
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(2))

			Expect(rows[0].Method).To(Equal("a"))
			Expect(rows[0].Exact).To(Equal(3.0))
			Expect(rows[0].AbsError).To(Equal(0.5))

			Expect(rows[1].Result).To(Equal(2.9877))
			Expect(rows[1].AbsError).To(Equal(dynamo.Round4(math.Abs(3 - 2.9877))))
		})

		It("reports mean and RMS error over the whole trajectory", func() {
			rows, err := compare.Compare([]dynamo.Method{ending("a", 1, 2.5)}, constant(3))
			Expect(err).NotTo(HaveOccurred())

			// pointwise errors are 3 and 0.5
			Expect(rows[0].MeanError).To(Equal(1.75))
			Expect(rows[0].RMSError).To(Equal(dynamo.Round4(math.Sqrt(4.625))))
		})

		It("does not depend on reporting order", func() {
			a := ending("a", 1, 2.5)
			b := ending("b", 1, 2.98766)

			forward, err := compare.Compare([]dynamo.Method{a, b}, constant(3))
			Expect(err).NotTo(HaveOccurred())
			reverse, err := compare.Compare([]dynamo.Method{b, a}, constant(3))
			Expect(err).NotTo(HaveOccurred())

			Expect(reverse[0]).To(Equal(forward[1]))
			Expect(reverse[1]).To(Equal(forward[0]))
		})

		It("leaves the methods untouched", func() {
			a := ending("a", 1, 2.12345)
			before := a.Trajectory()

			_, err := compare.Compare([]dynamo.Method{a}, constant(3))
			Expect(err).NotTo(HaveOccurred())
			Expect(a.Trajectory()).To(Equal(before))
		})
	})

	Context("with invalid input", func() {
		It("rejects an empty set", func() {
			_, err := compare.Compare(nil, constant(1))
			Expect(err).To(MatchError(dynamo.ErrInvalidInput))
		})

		It("requires an exact solution", func() {
			_, err := compare.Compare([]dynamo.Method{ending("a", 1, 1)}, nil)
			Expect(err).To(MatchError(dynamo.ErrNoExact))
		})

		It("rejects methods that end at different x", func() {
			_, err := compare.Compare([]dynamo.Method{ending("a", 1, 1), ending("b", 2, 1)}, constant(1))
			Expect(err).To(MatchError(dynamo.ErrInvalidInput))
		})

		It("rejects unsolved methods", func() {
			m := integrators.NewEuler()
			Expect(m.Configure(dynamo.Params{X0: 0, Y0: 1, XTarget: 1, H: 0.1})).To(Succeed())

			_, err := compare.Compare([]dynamo.Method{m}, dynamo.DefaultExact)
			Expect(err).To(MatchError(dynamo.ErrNotSolved))
		})
	})

	Context("with real solvers", func() {
		var methods []dynamo.Method

		BeforeEach(func() {
			methods = integrators.All(integrators.WithExact(dynamo.DefaultExact))
			for _, m := range methods {
				Expect(m.Configure(dynamo.Params{X0: 0, Y0: 1, XTarget: 1, H: 0.1})).To(Succeed())
				Expect(m.Solve()).To(Succeed())
			}
		})

		It("shares one exact value across rows", func() {
			rows, err := compare.Compare(methods, dynamo.DefaultExact)
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(5))

			for _, r := range rows {
				Expect(r.Exact).To(Equal(dynamo.Round4(dynamo.DefaultExact(1))))
				Expect(r.HasMaxError).To(BeTrue())
				Expect(r.MaxError).To(BeNumerically(">=", r.AbsError-1e-4))
				Expect(r.Evaluations).To(BeNumerically(">", 0))
				Expect(r.MeanError).To(BeNumerically("<=", r.RMSError))
				Expect(r.RMSError).To(BeNumerically("<=", r.MaxError+1e-4))
			}
		})

		It("ranks higher-order methods ahead of Euler", func() {
			rows, err := compare.Compare(methods, dynamo.DefaultExact)
			Expect(err).NotTo(HaveOccurred())

			ranked := compare.Rank(rows)
			Expect(ranked[len(ranked)-1].Key).To(Equal("euler"))
			Expect(rows[0].Key).To(Equal("euler"))
		})
	})
})
