// Package solver drives a tableau.Tableau to a terminal state with the
// primal simplex method, exposed as a pure state machine.
//
// 🚀 How it works
//
//	Starting from Running, each iteration:
//	  1. EnteringColumn — Dantzig rule: the leftmost maximum among
//	     strictly positive objective-row coefficients. None → Optimal.
//	  2. IsUnbounded — if the entering column is ≤ 0 in every constraint
//	     row (all-zero columns included), stop with Unbounded before any
//	     division is attempted; the tableau is left as-is.
//	  3. LeavingRow — minimum-ratio test over rows with a strictly
//	     positive entering-column entry, lowest index on ties; a ratio of
//	     exactly 0 is a legitimate minimum.
//	  4. Pivot and continue.
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/simplex/solver"
//	  "github.com/katalvlaran/simplex/tableau"
//	)
//
//	t, _ := tableau.NewFromMatrix(grid)
//	opts := solver.DefaultOptions()
//	opts.OnPivot = func(s solver.PivotStep) { /* trace */ }
//
//	status, err := solver.Solve(t, &opts)
//	if err != nil {
//	  // ErrNilTableau, ErrNegativeEpsilon, ErrIterationLimit, ErrNoPivotRow
//	}
//	if status == solver.Optimal {
//	  values, objective := t.Solution(opts.Epsilon)
//	  ...
//	}
//
// The engine performs no I/O and keeps no hidden state: diagnostics flow
// through the OnPivot hook, and Unbounded is a status, not an error.
// Degenerate ties can in principle cycle forever (no Bland's rule — the
// deterministic tie-breaks above are part of the contract); set
// Options.MaxIterations for an opt-in guard.
package solver
