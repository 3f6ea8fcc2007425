// Package problems is a catalogue of differential equations dy/dx = f(x, y).
//
// Each [Problem] carries its right-hand side and, where one exists, the
// closed-form solution through an arbitrary initial point:
//
//   - linear:    y' = x + y      (default)
//   - quadratic: y' = x² + y
//   - product:   y' = x·y
//   - growth:    y' = y
//   - logistic:  y' = y(1 - y)
//   - trig:      y' = sin x + cos y  (no closed form)
//
// For linear through (0, 1) the solution is exactly [dynamo.DefaultExact].
package problems
