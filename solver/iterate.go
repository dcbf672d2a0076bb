package solver

import (
	"math"

	"github.com/akobaz/libkes/itercore"
	"github.com/akobaz/libkes/kepeq"
)

// iterate is the shared convergence loop wrapping a single-step core
// from the itercore package. It runs step from x0 until either the
// iterate gap or the scaled function residual dips below its tolerance,
// or the budget runs out, then writes Result/ErrDX/ErrDF into rec and
// returns the iteration count.
//
// Termination is the conjunction contract from the package doc: the
// loop continues only while errDX > tolx AND errDF > tolf AND
// count < maxiter.
func iterate(step func(ecc, ma, x0 float64) float64, name string, ecc, ma, x0 float64, rec *Record) int {
	// converts |f(x)| into an upper bound on the angular error
	corr := ecc / (1.0 - ecc)

	count := 0
	deltaX, deltaF := 0.0, 0.0
	rec.resetCounters()

	xnew := x0
	for {
		xold := xnew
		xnew = step(ecc, ma, xold)
		rec.tally(1, 1, 1)

		fx := kepeq.Ell(ecc, ma, xnew)
		rec.tally(1, 0, 1)

		count++
		deltaX = math.Abs(xnew - xold)
		deltaF = math.Abs(fx) * corr
		rec.traceIter(name, count, deltaX, deltaF)

		if deltaX <= rec.tolx || deltaF <= rec.tolf || count >= rec.maxiter {
			break
		}
	}

	rec.Result = xnew
	rec.ErrDF = deltaF
	rec.ErrDX = deltaX

	return count
}

// newrap is the Newton–Raphson kernel: the order-2 core in the shared
// loop. Quadratic convergence.
func newrap(ecc, ma, x0 float64, rec *Record) int {
	return iterate(itercore.Step2, "newrap", ecc, ma, x0, rec)
}

// halley is the Halley kernel: the order-3 core in the shared loop.
// Cubic convergence.
func halley(ecc, ma, x0 float64, rec *Record) int {
	return iterate(itercore.Step3, "halley", ecc, ma, x0, rec)
}

// danbur4 is the Danby–Burkardt order-4 kernel. Quartic convergence.
func danbur4(ecc, ma, x0 float64, rec *Record) int {
	return iterate(itercore.Step4, "danbur4", ecc, ma, x0, rec)
}

// danbur5 is the Danby–Burkardt order-5 kernel. Quintic convergence.
func danbur5(ecc, ma, x0 float64, rec *Record) int {
	return iterate(itercore.Step5, "danbur5", ecc, ma, x0, rec)
}
