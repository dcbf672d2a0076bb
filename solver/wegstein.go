package solver

import (
	"math"

	"github.com/akobaz/libkes/kepeq"
)

// wegsec solves by Wegstein's secant modification of the fixed-point
// map g(x) = M + e·sin x: the secant update runs on (x, g(x)) pairs,
// which damps the fixed-point iteration into super-linear convergence.
//
// Reference: Wegstein (1958), Comm. ACM 1(6), p.9; update per the
// equations on page 176 of the iterative-methods survey it seeded.
func wegsec(ecc, ma, x0 float64, rec *Record) int {
	corr := ecc / (1.0 - ecc)

	count := 0
	deltaX, deltaF := 0.0, 0.0
	rec.resetCounters()

	// two seeds: the starter and one fixed-point image
	xa := x0
	ya := ma + ecc*math.Sin(xa)
	rec.tally(1, 0, 0)

	xb := ya
	yb := ma + ecc*math.Sin(xb)
	rec.tally(1, 0, 0)

	var xc float64
	for {
		xc = xb + (xb-xa)/((xa-ya)/(xb-yb)-1.0)
		yc := ma + ecc*math.Sin(xc)
		rec.tally(1, 0, 0)

		count++
		deltaX = math.Abs(xb - xc)
		deltaF = math.Abs(kepeq.Ell(ecc, ma, xc)) * corr
		rec.tally(1, 0, 1)
		rec.traceIter("wegsec", count, deltaX, deltaF)

		xa, ya = xb, yb
		xb, yb = xc, yc

		if deltaX <= rec.tolx || deltaF <= rec.tolf || count >= rec.maxiter {
			break
		}
	}

	rec.Result = xc
	rec.ErrDF = deltaF
	rec.ErrDX = deltaX

	return count
}
