// Command simplex solves a linear program stored as a comma-separated
// matrix file: one objective row followed by slack-augmented constraint
// rows, each ending in its RHS.
//
// Usage:
//
//	simplex [flags] <matrix-file>
//
//	--verbose          log every pivot step
//	--epsilon          comparison tolerance (default 1e-9)
//	--max-iterations   abort after this many pivots (0 = no limit)
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/katalvlaran/simplex/reader"
	"github.com/katalvlaran/simplex/solver"
)

func main() {
	verbose := pflag.BoolP("verbose", "v", false, "log every pivot step")
	epsilon := pflag.Float64("epsilon", solver.DefaultEpsilon, "comparison tolerance for the optimality, unboundedness and ratio tests")
	maxIter := pflag.Int("max-iterations", 0, "abort after this many pivots (0 = no limit)")
	pflag.Parse()

	if pflag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: simplex [flags] <matrix-file>")
		pflag.PrintDefaults()
		os.Exit(2)
	}

	if err := run(pflag.Arg(0), *verbose, *epsilon, *maxIter); err != nil {
		fmt.Fprintf(os.Stderr, "simplex: %v\n", err)
		os.Exit(1)
	}
}

func run(filename string, verbose bool, epsilon float64, maxIter int) error {
	logger := zap.NewNop()
	if verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		logger = l
	}
	defer logger.Sync()

	t, err := reader.NewReader(filename).ReadTableau()
	if err != nil {
		return err
	}
	logger.Info("tableau loaded",
		zap.String("file", filename),
		zap.Int("constraints", t.Constraints()),
		zap.Int("variables", t.Variables()))

	opts := solver.DefaultOptions()
	opts.Epsilon = epsilon
	opts.MaxIterations = maxIter
	opts.OnPivot = func(step solver.PivotStep) {
		logger.Info("pivot",
			zap.Int("iteration", step.Iteration),
			zap.Int("row", step.Row),
			zap.Int("col", step.Col))
	}

	status, err := solver.Solve(t, &opts)
	if err != nil {
		return err
	}
	if status == solver.Unbounded {
		fmt.Println("Unbounded LP - no solution")
		return nil
	}

	values, objective := t.Solution(opts.Epsilon)
	fmt.Println(formatSolution(values, objective))
	return nil
}

// formatSolution renders "Solution is: (v1, v2, ...) and the objective
// value is V" with the shortest exact float representation.
func formatSolution(values []float64, objective float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return fmt.Sprintf("Solution is: (%s) and the objective value is %s",
		strings.Join(parts, ", "), strconv.FormatFloat(objective, 'g', -1, 64))
}
