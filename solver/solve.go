// Package solver - unified dispatcher for the Kepler Equation kernels.
//
// This file provides the canonical entry point Solve: validate inputs,
// classify the eccentricity regime, reduce the mean anomaly into the
// canonical half-period, seed from the chosen starter, run the chosen
// kernel, and map the result back through the applied symmetry.
//
// Design principles:
//   - Deterministic: no global mutable state beyond two read-only tables.
//   - Strict sentinels: only errors from the libkes root; no fmt.Errorf.
//   - Hot-path discipline: no allocations, no I/O inside kernels.
package solver

import (
	"fmt"
	"io"
	"math"

	"github.com/akobaz/libkes"
	"github.com/akobaz/libkes/kepeq"
	"github.com/akobaz/libkes/starter"
)

// twoPi is 2π, the symmetry period for restoring negative anomalies.
const twoPi = 2 * math.Pi

// kernelEntry pairs a kernel with its human-readable description for
// the read-only dispatch table.
type kernelEntry struct {
	fn   kernelFunc
	text string
}

// kernelTable maps Method values to kernels. Read-only after init; the
// None slot carries no function and is rejected before lookup.
var kernelTable = [Total]kernelEntry{
	None:           {nil, "invalid solver method"},
	Bisection:      {bisect, "Bisection method (interval halving)"},
	FixedPoint:     {fixedp, "Fixed-point iteration"},
	NewtonRaphson:  {newrap, "Newton-Raphson method"},
	Halley:         {halley, "Halley method"},
	DanbyBurkardt4: {danbur4, "Danby-Burkardt method of order 4"},
	DanbyBurkardt5: {danbur5, "Danby-Burkardt method of order 5"},
	LaguerreConway: {lagcon, "Laguerre-Conway method"},
	Secant:         {secant, "Secant method"},
	WegsteinSecant: {wegsec, "Wegstein's secant modification"},
	Mikkola:        {mikkola, "Mikkola method"},
	Markley:        {markley, "Markley method"},
	Nijenhuis:      {nijenhuis, "Nijenhuis method"},
}

// ShowSolver writes the description of method m to w, one line per
// call. Out-of-range methods are described as invalid.
func ShowSolver(w io.Writer, m Method) {
	text := kernelTable[None].text
	if m > None && m < Total {
		text = kernelTable[m].text
	}
	fmt.Fprintf(w, "solver: method #%d = %s\n", int(m), text)
}

// Solve computes the eccentric anomaly for eccentricity ecc and mean
// anomaly ma (radians), seeding from starter method init and refining
// with kernel method m. Diagnostics land in rec; the solution is both
// returned and stored in rec.Result.
//
// Contracts:
//   - ecc and ma must be finite, else (0, libkes.ErrBadValue).
//   - rec must be non-nil; configuration failing its predicate is
//     clamped to defaults before dispatch.
//   - Circular regime short-circuits to (ma, nil) with zero iterations.
//   - Parabolic and hyperbolic regimes are declared but not implemented:
//     (0, libkes.ErrBadEccentricity).
//   - An unknown starter falls back to x0 = M+e and continues; the
//     returned error is libkes.ErrBadStarter even though rec holds a
//     valid solution.
//   - An unknown kernel yields (0, libkes.ErrBadSolver).
//
// Complexity: O(maxiter) kernel passes, O(1) everything else; no
// allocations.
func Solve(ecc, ma float64, init starter.Method, m Method, rec *Record) (float64, error) {
	// Stage 1 - inputs must be ordinary numbers.
	if kepeq.Finite(ecc) != nil || kepeq.Finite(ma) != nil {
		return 0.0, libkes.ErrBadValue
	}

	// Stage 2 - clamp {tolf, tolx, maxiter}; the warning count is
	// deliberately dropped.
	_ = rec.clampDefaults()

	// Stage 3 - route by eccentricity regime.
	regime, err := kepeq.Classify(ecc)
	rec.Result = 0.0
	rec.Iterations = 0

	switch regime {
	case kepeq.Circular:
		// E = M, exactly
		rec.Result = ma

		return ma, nil

	case kepeq.Elliptic:
		return solveEll(ecc, ma, init, m, rec)

	case kepeq.Parabolic, kepeq.Hyperbolic:
		// declared in the regime enumeration, not implemented here
		return 0.0, libkes.ErrBadEccentricity

	default:
		// Invalid; err is libkes.ErrBadEccentricity
		return 0.0, err
	}
}

// solveEll is the elliptic branch of Solve: reduce, fold, seed, refine,
// unfold.
func solveEll(ecc, ma float64, init starter.Method, m Method, rec *Record) (float64, error) {
	// reduce mean anomaly to [-π, π), then fold onto [0, π] tracking
	// the applied symmetry
	redma := kepeq.Reduce(ma)
	side := 1
	if redma < 0.0 {
		side = -1
		redma = -redma
	}

	// Nijenhuis is tied to the S7 envelope starter.
	if m == Nijenhuis {
		init = starter.S7
	}

	var status error
	x0, err := starter.Eval(ecc, redma, init)
	if err != nil {
		// recover locally: keep the status, continue from the cheap
		// fallback seed
		status = libkes.ErrBadStarter
		x0 = redma + ecc
	}
	rec.Starter = x0

	if m <= None || m >= Total {
		return 0.0, libkes.ErrBadSolver
	}

	rec.Iterations = kernelTable[m].fn(ecc, redma, x0, rec)

	// restore symmetry: x(-M) = 2π − x(M)
	if side < 0 {
		rec.Result = twoPi - rec.Result
	}

	return rec.Result, status
}
