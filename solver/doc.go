// Package solver contains the iteration kernels for the elliptic Kepler
// Equation and the dispatcher that composes them with the starter
// catalog.
//
// 🚀 What is in here?
//
//   - Record — the caller-owned value carrying tolerances and iteration
//     budget in, and solution, residuals and counters out
//   - Twelve kernels behind one closed Method enumeration:
//     bracketing (Bisection, Secant, WegsteinSecant), fixed-point,
//     Newton-series iterations (NewtonRaphson, Halley, DanbyBurkardt4,
//     DanbyBurkardt5), Laguerre–Conway, and the composite non-iterative
//     methods of Mikkola, Markley and Nijenhuis
//   - Solve — validate, classify the eccentricity, reduce the mean
//     anomaly to [0, π], seed from the chosen starter, run the chosen
//     kernel, restore symmetry
//
// Every iterative kernel obeys the same convergence contract: the loop
// continues while errDX > tolx AND errDF > tolf AND count < maxiter,
// where errDX = |x(n+1) − x(n)| and errDF = |f(x(n+1))| · e/(1−e) (the
// scale factor converts the function residual into an upper bound on
// the angular error). Fixed-point drops the errDX clause because its
// two residuals lag each other by one step.
//
// ⚙️ Usage:
//
//	rec := solver.NewRecord(solver.WithTolF(1e-12))
//	x, err := solver.Solve(0.567, 1.234, starter.S1, solver.NewtonRaphson, &rec)
//	if err != nil {
//	  // libkes sentinels; see libkes.CodeOf for the numeric taxonomy
//	}
//	_ = rec.Iterations // diagnostics live in the record
//
// Concurrency: all functions are re-entrant. Distinct goroutines may
// call Solve concurrently on distinct records; sharing one record
// across goroutines is forbidden. No function allocates on the solve
// path, performs I/O, or retains the record after return.
package solver
