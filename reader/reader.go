// Package reader loads comma-separated matrix files into the string grid
// the tableau package consumes: one line per tableau row, the objective
// first, each constraint ending in its RHS.
//
// The reader does no numeric or shape validation of its own — rectangular
// shape and numeric content are the tableau's contract, and it reports
// the offending cell far more precisely than a CSV layer could.
package reader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/simplex/tableau"
)

// ErrEmptyFile indicates the input contained no rows at all.
var ErrEmptyFile = errors.New("reader: input contains no rows")

// Reader reads a matrix file into tableau input.
type Reader struct {
	filename string
}

// NewReader returns a Reader for the given file.
func NewReader(filename string) *Reader {
	return &Reader{filename: filename}
}

// Read returns the file's cells as a grid of whitespace-trimmed strings.
func (r *Reader) Read() ([][]string, error) {
	f, err := os.Open(r.filename)
	if err != nil {
		return nil, fmt.Errorf("reader: %w", err)
	}
	defer f.Close()

	return ReadFrom(f)
}

// ReadTableau reads the file and constructs a tableau from it.
func (r *Reader) ReadTableau() (*tableau.Tableau, error) {
	cells, err := r.Read()
	if err != nil {
		return nil, err
	}
	return tableau.New(cells)
}

// ReadFrom parses comma-separated rows from src. Rows may differ in
// length here; the tableau constructor rejects ragged input itself.
func ReadFrom(src io.Reader) ([][]string, error) {
	cr := csv.NewReader(src)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reader: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyFile
	}

	for _, row := range rows {
		for j, cell := range row {
			row[j] = strings.TrimSpace(cell)
		}
	}
	return rows, nil
}
