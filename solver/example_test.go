package solver_test

import (
	"fmt"
	"os"

	"github.com/akobaz/libkes/solver"
	"github.com/akobaz/libkes/starter"
)

// ExampleSolve demonstrates the circular shortcut: for e = 0 the mean
// and eccentric anomalies coincide and no iteration runs.
func ExampleSolve() {
	rec := solver.NewRecord()

	x, err := solver.Solve(0.0, 1.234, starter.S1, solver.NewtonRaphson, &rec)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("E = %.3f after %d iterations\n", x, rec.Iterations)
	// Output:
	// E = 1.234 after 0 iterations
}

// ExampleNewRecord demonstrates the builder with a subset of the
// recognized options; unset fields keep their defaults.
func ExampleNewRecord() {
	rec := solver.NewRecord(solver.WithMaxIter(20))

	fmt.Println(rec.TolF())
	fmt.Println(rec.MaxIter())
	// Output:
	// 1e-15
	// 20
}

// ExampleShowSolver demonstrates the human-readable kernel catalog.
func ExampleShowSolver() {
	solver.ShowSolver(os.Stdout, solver.Mikkola)
	solver.ShowSolver(os.Stdout, solver.DanbyBurkardt5)
	// Output:
	// solver: method #10 = Mikkola method
	// solver: method #6 = Danby-Burkardt method of order 5
}
