// Package integrators implements the fixed-step algorithms for
// dy/dx = f(x, y):
//
//   - [Euler]: explicit first-order method
//   - [ModifiedEuler]: Heun predictor-corrector
//   - [RK2]: second-order Runge-Kutta
//   - [RK4]: classical fourth-order Runge-Kutta
//   - [AdamsBashforth]: four-step multi-step method bootstrapped by RK4
//
// Every method rounds each new y (and the increments that build it) to four
// decimal places as it goes. That rounding is part of the observable result:
// trajectories are reproducible bit for bit, rounding error included.
package integrators
