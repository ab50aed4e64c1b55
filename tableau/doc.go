// Package tableau defines the Tableau data model for the simplex method:
// an objective row, one row per constraint, and a trailing right-hand-side
// column, stored as a dense matrix of float64.
//
// A Tableau is constructed once — from a rectangular grid of numeric
// strings (New) or of float64 values (NewFromMatrix) — and its shape is
// fixed for its lifetime. Pivot is the only mutating operation; Solution
// reads variable values and the objective off the current grid without
// modifying it.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/simplex/tableau"
//
//	t, err := tableau.New([][]string{
//	  {"3", "2", "0", "0"},
//	  {"1", "1", "1", "10"},
//	})
//	if err != nil {
//	  // *ParseError, ErrEmptyTableau or ErrRaggedRows
//	}
//	err = t.Pivot(1, 0)                      // row-reduce around (1, 0)
//	values, objective := t.Solution(1e-9)    // read off the solution
//
// Conventions:
//   - Row 0 holds the negated objective coefficients; its trailing entry
//     is the negated current objective value.
//   - Rows 1..Constraints() are constraint rows ending in their RHS.
//   - A column is basic when it is zero in the objective row and exactly
//     one constraint row holds a non-zero entry in it; the variable's
//     value is then RHS/entry for that row. Every other column is free,
//     held at 0.
package tableau
