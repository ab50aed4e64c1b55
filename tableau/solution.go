package tableau

import "math"

// BasicRow reports whether variable column j is basic — its objective-row
// entry is zero and exactly one constraint row holds an entry of magnitude
// greater than epsilon — and returns that row's index when it is.
func (t *Tableau) BasicRow(j int, epsilon float64) (int, bool) {
	if math.Abs(t.grid.At(0, j)) > epsilon {
		return -1, false
	}
	row := -1
	for i := 1; i < t.rows; i++ {
		if math.Abs(t.grid.At(i, j)) > epsilon {
			if row >= 0 {
				return -1, false
			}
			row = i
		}
	}
	return row, row >= 0
}

// Solution reads the current basic solution off the tableau:
// each basic variable takes RHS/entry from its defining row, every free
// (non-basic) variable is 0, and the objective value is the negated
// trailing entry of the objective row.
//
// Solution never mutates the tableau and may be called in any state.
// Before solving, or after an Unbounded stop, it simply snapshots
// whatever the grid currently holds; checking the solver's terminal
// status first is the caller's responsibility.
func (t *Tableau) Solution(epsilon float64) ([]float64, float64) {
	values := make([]float64, t.cols-1)
	for j := 0; j < t.cols-1; j++ {
		if i, ok := t.BasicRow(j, epsilon); ok {
			values[j] = t.RHS(i) / t.grid.At(i, j)
		}
	}
	return values, t.ObjectiveValue()
}
