// Package tableau sentinel errors and structured error types.
package tableau

import (
	"errors"
	"fmt"
)

// Sentinel errors for tableau construction and pivoting.
var (
	// ErrEmptyTableau indicates the input grid is too small to encode an LP:
	// it needs at least an objective row, one constraint row and an RHS column.
	ErrEmptyTableau = errors.New("tableau: input must have at least two rows and two columns")
	// ErrRaggedRows indicates rows of differing lengths.
	ErrRaggedRows = errors.New("tableau: all rows must have the same length")
	// ErrPivotIndex indicates a pivot position outside the constraint rows
	// or variable columns.
	ErrPivotIndex = errors.New("tableau: pivot position out of range")
	// ErrPivotEntry indicates an attempt to pivot on a non-positive entry.
	// A correct ratio test never selects such an entry; this error surfaces
	// the contract breach instead of dividing by it.
	ErrPivotEntry = errors.New("tableau: pivot entry must be strictly positive")
)

// ParseError reports the exact cell that failed numeric parsing.
type ParseError struct {
	Row, Col int    // zero-based position in the input grid
	Cell     string // offending cell content
	Err      error  // underlying strconv error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("tableau: cell (%d,%d) %q is not a valid number: %v", e.Row, e.Col, e.Cell, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
