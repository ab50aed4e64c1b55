// Package simplex solves linear programs that are already expressed in
// standard slack-augmented maximization form, using the tableau-based
// primal simplex method.
//
// 🚀 What is simplex?
//
//	A small, pure-Go engine that takes a rectangular matrix — one
//	objective row followed by constraint rows, each ending in its
//	right-hand side — and pivots it to optimality:
//	  • Dantzig entering rule: leftmost maximum positive coefficient
//	  • Minimum-ratio leaving rule with a lowest-index tie-break
//	  • Unboundedness detection before any division is attempted
//	  • Solution read-off from the basic columns of the final tableau
//
// ✨ Why choose this module?
//
//   - Pure state machine — the engine never prints; diagnostics flow
//     through an OnPivot hook the caller may attach
//   - Explicit statuses — Optimal and Unbounded are results, not panics
//   - Guarded arithmetic — non-positive pivot entries are rejected up
//     front, never divided by
//
// Everything is organized under three subpackages plus a thin CLI:
//
//	tableau/ — the Tableau data model: construction, pivoting, solution
//	solver/  — entering/leaving selection, unboundedness, the main loop
//	reader/  — comma-separated matrix files → the grid tableau consumes
//	cmd/     — the simplex command-line front end
//
// Quick example:
//
//	t, err := tableau.NewFromMatrix([][]float64{
//	  {3, 2, 0, 0},   // maximize 3x₁ + 2x₂
//	  {1, 1, 1, 10},  // x₁ + x₂ ≤ 10 (slack-augmented)
//	})
//	status, err := solver.Solve(t, nil)
//	values, objective := t.Solution(solver.DefaultEpsilon)
//
// See each subpackage's doc.go for details.
package simplex
