package solver

import (
	"math"

	"github.com/akobaz/libkes/kepeq"
)

// bisect solves by interval halving on the bracket [M, M+e], which is
// guaranteed to contain the elliptic solution for M ∈ [0, π]. The given
// starter is ignored. Linear convergence; the iteration count is
// bounded by ⌈log₂(e/tolx)⌉.
func bisect(ecc, ma, _ float64, rec *Record) int {
	corr := ecc / (1.0 - ecc)

	count := 0
	deltaF := 0.0
	rec.resetCounters()

	// bracket endpoints, overriding the starter
	xl := ma
	xr := ma + ecc
	deltaX := math.Abs(xr - xl)

	// bracket already narrower than the target gap
	if deltaX < rec.tolx {
		rec.Result = 0.5 * (xl + xr)
		rec.ErrDX = deltaX
		rec.ErrDF = 0.0

		return 1
	}

	// endpoint pre-checks
	fl := kepeq.Ell(ecc, ma, xl)
	rec.tally(1, 0, 1)
	if math.Abs(fl) < rec.tolf {
		rec.Result = xl
		rec.ErrDX = deltaX
		rec.ErrDF = math.Abs(fl) * corr

		return 1
	}

	fr := kepeq.Ell(ecc, ma, xr)
	rec.tally(1, 0, 1)
	if math.Abs(fr) < rec.tolf {
		rec.Result = xr
		rec.ErrDX = deltaX
		rec.ErrDF = math.Abs(fr) * corr

		return 1
	}

	var x, fx float64
	for {
		x = 0.5 * (xl + xr)
		fx = kepeq.Ell(ecc, ma, x)
		rec.tally(1, 0, 1)

		if fl*fx < 0.0 {
			xr, fr = x, fx
		} else {
			xl, fl = x, fx
		}

		count++
		deltaX = math.Abs(xr - xl)
		deltaF = math.Abs(fx) * corr
		rec.traceIter("bisect", count, deltaX, deltaF)

		if deltaX <= rec.tolx || deltaF <= rec.tolf || count >= rec.maxiter {
			break
		}
	}

	rec.Result = x
	rec.ErrDF = deltaF
	rec.ErrDX = deltaX

	return count
}
