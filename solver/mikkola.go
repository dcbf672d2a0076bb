package solver

import (
	"math"

	"github.com/akobaz/libkes/itercore"
	"github.com/akobaz/libkes/kepeq"
)

// mikkola solves non-iteratively in two steps: an auxiliary cubic gives
// a starter accurate to ~1e-4 over the whole (e, M) plane, then a
// single order-5 polish lands within target tolerance. The given
// starter is ignored; the internal seed is written back to rec.Starter.
//
// Step 1 solves s³ + 3·a·s − 2·b = 0 for s ≈ sin(E/3) with
// a = (1−e)/(0.5+4e), b = M/(2(0.5+4e)), applies the quintic correction
// −0.078·s⁵/(1+e), and seeds x = M + e·s·(3 − 4s²).
//
// The cubic root uses the direct form s = c − a/c, which cancels for
// small M at high e; Nijenhuis' algebraically equivalent resistant form
// (see nijenhuis.go) avoids that and could replace it.
//
// Reference: Mikkola (1987), Celestial Mechanics 40, 329–334.
func mikkola(ecc, ma, _ float64, rec *Record) int {
	corr := ecc / (1.0 - ecc)
	rec.resetCounters()

	// coefficients of the auxiliary cubic
	a := 1.0 / (0.5 + 4.0*ecc)
	b := 0.5 * ma * a
	a *= 1.0 - ecc
	c := math.Cbrt(math.Sqrt(a*a*a+b*b) + b)

	s := 0.0
	if c > 0.0 {
		s = c - a/c
	}

	// correction term O(s^5)
	s -= 0.078 * s * s * s * s * s / (1.0 + ecc)

	x := ma + ecc*s*(3.0-4.0*s*s)
	rec.Starter = x
	rec.traceIter("mikkola", 1, c, x)

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
