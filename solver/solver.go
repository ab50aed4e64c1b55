package solver

import (
	"math"

	"github.com/katalvlaran/simplex/tableau"
)

// EnteringColumn applies the Dantzig rule to t's objective row: among the
// variable columns (RHS excluded) whose coefficient exceeds epsilon, it
// selects the one with the greatest value, first occurrence winning ties.
// ok is false when no coefficient is strictly positive — the tableau is
// then optimal.
func EnteringColumn(t *tableau.Tableau, epsilon float64) (col int, ok bool) {
	col = -1
	best := 0.0
	for j := 0; j < t.Variables(); j++ {
		if v := t.Objective(j); v > epsilon && (col < 0 || v > best) {
			col, best = j, v
		}
	}
	return col, col >= 0
}

// IsUnbounded reports whether entering column col certifies an unbounded
// LP: every constraint-row entry in it is ≤ epsilon. An all-zero column
// qualifies — the entering variable can then grow without ever driving a
// basic variable to zero.
func IsUnbounded(t *tableau.Tableau, col int, epsilon float64) bool {
	for i := 1; i < t.Rows(); i++ {
		if t.At(i, col) > epsilon {
			return false
		}
	}
	return true
}

// LeavingRow runs the minimum-ratio test for entering column col: among
// constraint rows whose entry in col is strictly positive (> epsilon),
// it selects the row minimizing RHS/entry, lowest index winning ties.
// A ratio of exactly 0 (degenerate row) is a legitimate minimum.
// ok is false when no row qualifies; after a negative IsUnbounded that is
// an invariant violation, and Solve reports it as ErrNoPivotRow.
//
// Rows with zero or negative entries are excluded outright, never ranked:
// a non-positive entry cannot bound the entering variable, and a ratio
// computed from it would be meaningless or sign-flipped.
func LeavingRow(t *tableau.Tableau, col int, epsilon float64) (row int, ok bool) {
	row = -1
	best := math.Inf(1)
	for i := 1; i < t.Rows(); i++ {
		entry := t.At(i, col)
		if entry <= epsilon {
			continue
		}
		if ratio := t.RHS(i) / entry; ratio < best {
			row, best = i, ratio
		}
	}
	return row, row >= 0
}

// Solve iterates {entering column, unboundedness check, ratio test, pivot}
// on t until a terminal status is reached.
//
// State machine:
//
//	Running → Optimal    when no objective coefficient is > epsilon
//	Running → Unbounded  when the entering column is ≤ epsilon in every
//	                     constraint row; no pivot is performed
//	Running → Running    otherwise: pivot on (LeavingRow, EnteringColumn)
//
// opts may be nil, meaning DefaultOptions. On error the returned status
// is Running and t may hold a partially solved tableau.
//
// Solving an already-Optimal tableau performs zero pivots and zero
// mutations, so Solve is idempotent on terminal-Optimal tableaux.
func Solve(t *tableau.Tableau, opts *Options) (Status, error) {
	if t == nil {
		return Running, ErrNilTableau
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Epsilon < 0 {
		return Running, ErrNegativeEpsilon
	}

	for iter := 0; ; {
		col, ok := EnteringColumn(t, o.Epsilon)
		if !ok {
			return Optimal, nil
		}
		if IsUnbounded(t, col, o.Epsilon) {
			return Unbounded, nil
		}
		if o.MaxIterations > 0 && iter >= o.MaxIterations {
			return Running, ErrIterationLimit
		}

		row, ok := LeavingRow(t, col, o.Epsilon)
		if !ok {
			return Running, ErrNoPivotRow
		}
		if err := t.Pivot(row, col); err != nil {
			return Running, err
		}

		iter++
		if o.OnPivot != nil {
			o.OnPivot(PivotStep{Iteration: iter, Row: row, Col: col})
		}
	}
}
