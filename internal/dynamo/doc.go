// Package dynamo provides the core primitives for fixed-step integration of
// first-order ordinary differential equations dy/dx = f(x, y).
//
// The package defines the shared vocabulary used by every stepping
// algorithm:
//
//   - [Func]: the differential function f(x, y)
//   - [Exact]: an optional closed-form solution used for error comparison
//   - [Params]: initial point, target and step size of one solve
//   - [Trajectory]: ordered (x, y) samples produced by a solve
//   - [Method]: capability interface implemented by each algorithm
//   - [Observer]: receives per-step diagnostics while a method solves
//
// # Example
//
//	m := integrators.NewRK4(integrators.WithExact(dynamo.DefaultExact))
//	if err := m.Configure(dynamo.Params{X0: 0, Y0: 1, XTarget: 0.2, H: 0.1}); err != nil {
//	    return err
//	}
//	if err := m.Solve(); err != nil {
//	    return err
//	}
//	y, _ := m.Result()
//
// # Thread Safety
//
// Method instances own their trajectory exclusively and are NOT safe for
// concurrent use. Independent instances may be solved in any order.
package dynamo
