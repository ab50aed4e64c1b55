package solver_test

import (
	"fmt"

	"github.com/katalvlaran/simplex/solver"
	"github.com/katalvlaran/simplex/tableau"
)

// ExampleSolve walks a two-variable LP to optimality and reads the
// solution off the final tableau.
//
// Maximize 5x₁ + 6x₂ subject to 3x₁ + 4x₂ ≤ 108 and 5x₁ + 4x₂ ≤ 140.
func ExampleSolve() {
	t, err := tableau.NewFromMatrix([][]float64{
		{5, 6, 0, 0, 0},
		{3, 4, 1, 0, 108},
		{5, 4, 0, 1, 140},
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	status, err := solver.Solve(t, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	values, objective := t.Solution(solver.DefaultEpsilon)
	fmt.Println(status)
	fmt.Printf("x1=%g x2=%g objective=%g\n", values[0], values[1], objective)
	// Output:
	// Optimal
	// x1=16 x2=15 objective=170
}

// ExampleSolve_unbounded shows the Unbounded terminal status: the x₁
// column is zero in every constraint row, so the objective grows without
// limit and no pivot is performed.
func ExampleSolve_unbounded() {
	t, err := tableau.NewFromMatrix([][]float64{
		{1, 1, 0, 0},
		{0, 1, 1, 5},
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	status, _ := solver.Solve(t, nil)
	fmt.Println(status)
	// Output:
	// Unbounded
}
