package solver

import (
	"math"

	"github.com/akobaz/libkes/kepeq"
)

// fixedp solves by direct fixed-point iteration x ← M + e·sin x.
// Linear convergence with contraction factor e; diverges for e ≥ 1.
//
// The termination test omits the errDX clause: deltaX(n+1) equals the
// unscaled residual |f(x(n))| behind deltaF(n), so testing both would
// stop one step late on the same information.
func fixedp(ecc, ma, x0 float64, rec *Record) int {
	corr := ecc / (1.0 - ecc)

	count := 0
	deltaX, deltaF := 0.0, 0.0
	rec.resetCounters()

	x := x0
	for {
		xsave := x
		x = ma + ecc*math.Sin(xsave)

		fx := kepeq.Ell(ecc, ma, x)
		rec.tally(2, 0, 1)

		count++
		deltaX = math.Abs(x - xsave)
		deltaF = math.Abs(fx) * corr
		rec.traceIter("fixedp", count, deltaX, deltaF)

		if deltaF <= rec.tolf || count >= rec.maxiter {
			break
		}
	}

	rec.Result = x
	rec.ErrDF = deltaF
	rec.ErrDX = deltaX

	return count
}
