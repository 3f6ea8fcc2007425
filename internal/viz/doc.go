// Package viz renders solver output in the terminal.
//
//   - [Tracer]: a step observer printing each method's intermediate terms
//   - [ComparisonTable]: the side-by-side result table
//   - [PlotTrajectories]: an ASCII chart of one or more trajectories
//
// Colours come from the active [Theme]; [SetTheme] switches it and
// [SetColor] turns styling off for piped output.
package viz
