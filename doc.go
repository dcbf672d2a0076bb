// Package libkes is a library of numerical methods for solving Kepler's
// Equation — the transcendental relation between mean anomaly M and
// eccentric anomaly E of a body on a Keplerian orbit.
//
// 🚀 What is libkes?
//
//	A pure-Go toolbox that brings together:
//		• Equation evaluators: elliptic, hyperbolic and parabolic residuals
//		• A catalog of fifteen closed-form starters (S0…S14)
//		• Iteration cores: Newton–Raphson, Halley, Danby–Burkardt 4/5
//		• Solver kernels: bracketing, fixed-point, Laguerre–Conway and the
//		  composite methods of Mikkola, Markley and Nijenhuis
//		• A dispatcher that validates, classifies, reduces, solves and
//		  restores symmetry — any starter composes with any kernel
//
// ✨ Why choose libkes?
//
//   - Deterministic – no global mutable state, no hidden randomness
//   - Re-entrant – state flows only through caller-owned records
//   - Allocation-free – every solve runs on stack values
//   - Instrumented – optional per-iteration trace and evaluation counters
//
// Everything is organized under four subpackages:
//
//	kepeq/    — equation residuals, angle utilities, regime classification
//	starter/  — closed-form first approximations S0…S14
//	itercore/ — shared Newton-series single-step cores of order 2…5
//	solver/   — iteration records, solver kernels and the dispatcher
//
// This root package carries the pieces shared by all of them: the error
// taxonomy with stable numeric codes, and the library version query.
//
// ⚙️ Quick start:
//
//	rec := solver.NewRecord()
//	x, err := solver.Solve(0.567, 1.234, starter.S1, solver.NewtonRaphson, &rec)
//	if err != nil {
//	  // handle libkes.ErrBadEccentricity, libkes.ErrBadValue, ...
//	}
//	fmt.Println("E =", x, "after", rec.Iterations, "iterations")
package libkes
