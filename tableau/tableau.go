package tableau

import (
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// Tableau is the matrix encoding of an LP in standard slack-augmented
// maximization form. Row 0 is the objective row, rows 1..rows-1 the
// constraint rows; the last column holds each row's RHS. The shape is
// fixed at construction; Pivot mutates entries in place.
type Tableau struct {
	grid *mat.Dense
	rows int // 1 objective row + number of constraints
	cols int // number of variables + 1 RHS column
}

// New constructs a Tableau from a rectangular grid of numeric strings.
//
// Validation stages:
//  1. Shape: at least two rows (objective + one constraint) and two
//     columns (one variable + RHS), all rows of equal length —
//     ErrEmptyTableau / ErrRaggedRows otherwise.
//  2. Content: every cell must parse as a float64 — *ParseError pinning
//     the offending cell otherwise.
//
// On any failure no Tableau is returned.
func New(cells [][]string) (*Tableau, error) {
	rows := len(cells)
	if rows < 2 || len(cells[0]) < 2 {
		return nil, ErrEmptyTableau
	}
	cols := len(cells[0])

	data := make([]float64, 0, rows*cols)
	for i, row := range cells {
		if len(row) != cols {
			return nil, ErrRaggedRows
		}
		for j, cell := range row {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, &ParseError{Row: i, Col: j, Cell: cell, Err: err}
			}
			data = append(data, v)
		}
	}

	return &Tableau{grid: mat.NewDense(rows, cols, data), rows: rows, cols: cols}, nil
}

// NewFromMatrix constructs a Tableau from an already-numeric grid.
// The input is copied; later mutations of rows do not affect the Tableau.
// Shape validation matches New.
func NewFromMatrix(rows [][]float64) (*Tableau, error) {
	n := len(rows)
	if n < 2 || len(rows[0]) < 2 {
		return nil, ErrEmptyTableau
	}
	cols := len(rows[0])

	data := make([]float64, 0, n*cols)
	for _, row := range rows {
		if len(row) != cols {
			return nil, ErrRaggedRows
		}
		data = append(data, row...)
	}

	return &Tableau{grid: mat.NewDense(n, cols, data), rows: n, cols: cols}, nil
}

// Rows returns the total row count (objective row included).
func (t *Tableau) Rows() int { return t.rows }

// Cols returns the total column count (RHS column included).
func (t *Tableau) Cols() int { return t.cols }

// Constraints returns the number of constraint rows.
func (t *Tableau) Constraints() int { return t.rows - 1 }

// Variables returns the number of decision+slack variable columns.
func (t *Tableau) Variables() int { return t.cols - 1 }

// At returns the entry at row i, column j.
func (t *Tableau) At(i, j int) float64 { return t.grid.At(i, j) }

// RHS returns the right-hand-side value of row i.
func (t *Tableau) RHS(i int) float64 { return t.grid.At(i, t.cols-1) }

// Objective returns the objective-row coefficient of variable column j.
func (t *Tableau) Objective(j int) float64 { return t.grid.At(0, j) }

// ObjectiveValue returns the current objective value, i.e. the negated
// trailing entry of the objective row.
func (t *Tableau) ObjectiveValue() float64 { return 0 - t.grid.At(0, t.cols-1) }

// Clone returns an independent deep copy of the Tableau.
func (t *Tableau) Clone() *Tableau {
	return &Tableau{grid: mat.DenseCopyOf(t.grid), rows: t.rows, cols: t.cols}
}

// Equal reports whether t and u have identical shape and entries.
func (t *Tableau) Equal(u *Tableau) bool {
	return t.rows == u.rows && t.cols == u.cols && mat.Equal(t.grid, u.grid)
}

// Pivot row-reduces the tableau around constraint row r and variable
// column c:
//  1. Row r is divided by its pivot entry, making that entry 1.
//  2. Every other row i (objective row included) gets tableau[i][c] × row r
//     subtracted from it, zeroing column c outside row r.
//
// All columns participate, RHS included. The pivot entry must be strictly
// positive; ErrPivotEntry is returned — and nothing is mutated — otherwise.
func (t *Tableau) Pivot(r, c int) error {
	if r < 1 || r >= t.rows || c < 0 || c >= t.cols-1 {
		return ErrPivotIndex
	}

	pivotRow := t.grid.RawRowView(r)
	entry := pivotRow[c]
	if entry <= 0 {
		return ErrPivotEntry
	}

	for j := range pivotRow {
		pivotRow[j] /= entry
	}

	for i := 0; i < t.rows; i++ {
		if i == r {
			continue
		}
		row := t.grid.RawRowView(i)
		factor := row[c]
		if factor == 0 {
			continue
		}
		for j := range row {
			row[j] -= factor * pivotRow[j]
		}
	}

	return nil
}
