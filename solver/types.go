// Package solver types, options, and sentinel errors.
package solver

import "errors"

// DefaultEpsilon is the comparison tolerance used when Options.Epsilon is
// left at its default. Entries within ±DefaultEpsilon of zero are treated
// as zero by the optimality, unboundedness and ratio tests.
const DefaultEpsilon = 1e-9

// Sentinel errors for Solve.
var (
	// ErrNilTableau indicates Solve was handed a nil tableau.
	ErrNilTableau = errors.New("solver: tableau must be non-nil")
	// ErrNegativeEpsilon indicates Options.Epsilon < 0.
	ErrNegativeEpsilon = errors.New("solver: epsilon must be non-negative")
	// ErrNoPivotRow indicates the ratio test found no qualifying row even
	// though the unboundedness check reported a bounded column. The two
	// predicates are complementary; seeing this error means the tableau
	// was mutated behind the solver's back.
	ErrNoPivotRow = errors.New("solver: no positive entry in entering column despite bounded signal")
	// ErrIterationLimit indicates Options.MaxIterations pivots were spent
	// without reaching a terminal state.
	ErrIterationLimit = errors.New("solver: iteration limit reached before termination")
)

// Status is the state of the solving loop.
type Status int

const (
	// Running is the initial, non-terminal state. Solve only returns it
	// alongside a non-nil error.
	Running Status = iota
	// Optimal is terminal: every objective-row coefficient is ≤ 0.
	Optimal
	// Unbounded is terminal: the objective can grow without limit along
	// the entering column. The tableau is left untouched by this stop.
	Unbounded
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case Running:
		return "Running"
	case Optimal:
		return "Optimal"
	case Unbounded:
		return "Unbounded"
	default:
		return "Unknown"
	}
}

// PivotStep describes one completed pivot, as delivered to OnPivot.
type PivotStep struct {
	Iteration int // 1-based pivot counter
	Row       int // leaving (pivot) row
	Col       int // entering (pivot) column
}

// Options configures Solve.
//
//   - Epsilon       — tolerance for all strict-positivity tests; 0 means
//     exact arithmetic. Must be non-negative.
//   - MaxIterations — abort with ErrIterationLimit after this many pivots;
//     0 imposes no bound (a degenerate cycling input may then loop forever).
//   - OnPivot       — optional hook invoked after every pivot; the engine
//     itself never logs or prints.
type Options struct {
	Epsilon       float64
	MaxIterations int
	OnPivot       func(PivotStep)
}

// DefaultOptions returns Options with Epsilon=DefaultEpsilon, no iteration
// bound, and no pivot hook.
func DefaultOptions() Options {
	return Options{Epsilon: DefaultEpsilon}
}
