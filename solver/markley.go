package solver

import (
	"math"

	"github.com/akobaz/libkes/itercore"
	"github.com/akobaz/libkes/kepeq"
)

// markley solves non-iteratively: a Padé-based cubic in M gives a
// starter with relative error below 1e-4 everywhere, then a single
// order-5 polish lands within target tolerance. The given starter is
// ignored; the internal seed is written back to rec.Starter.
//
// With α = 3π²/(π²−6) + (1.6π/(π²−6))·(π−M)/(1+e) (eq. 20) and
// d = 3(1−e) + α·e (eq. 5), the cubic d·x³ … reduces to the resolvent
// q = 2αd(1−e) − M² (eq. 9), r = 3αd(d−1+e)M + M³ (eq. 10), solved via
// w = ∛(|r| + √(q³+r²))² and x = (2rw/(w²+qw+q²) + M)/d (eq. 14f).
//
// Reference: Markley (1995), Celest. Mech. Dyn. Astron. 63, 101–111.
func markley(ecc, ma, _ float64, rec *Record) int {
	const piSq = math.Pi * math.Pi

	corr := ecc / (1.0 - ecc)
	rec.resetCounters()

	ad := 1.0 / (piSq - 6.0)
	ak := 1.6 * math.Pi * ad
	ad *= 3.0 * piSq

	alpha := ad + ak*(math.Pi-ma)/(1.0+ecc)
	d := 3.0*(1.0-ecc) + alpha*ecc

	q := 2.0*alpha*d*(1.0-ecc) - ma*ma
	r := 3.0*alpha*d*(d-1.0+ecc)*ma + ma*ma*ma

	w := math.Cbrt(math.Abs(r) + math.Sqrt(q*q*q+r*r))
	w *= w

	x := 0.0
	if w > 0.0 {
		x = (2.0*r*w/(w*w+q*w+q*q) + ma) / d
	}
	rec.Starter = x
	rec.traceIter("markley", 1, w, x)

	// single fifth-order polish
	x = itercore.Step5(ecc, ma, x)
	rec.tally(1, 1, 1)

	deltaX := math.Abs(x - rec.Starter)
	deltaF := math.Abs(kepeq.Ell(ecc, ma, x)) * corr
	rec.tally(1, 0, 1)

	rec.Result = x
	rec.ErrDF = deltaF
	rec.ErrDX = deltaX

	return 1
}
