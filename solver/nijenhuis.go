package solver

import (
	"math"

	"github.com/akobaz/libkes/kepeq"
)

// nijenhuisDepth is the fixed depth of the generalized Newton polish.
const nijenhuisDepth = 3

// snx approximates sin(x) on [0, π] by the odd polynomial
// x·(1 + a·x² + b·x⁴), folded through sn(π−x) = sn(x) beyond π/2.
func snx(x float64) float64 {
	const (
		a = -0.16605 // Taylor coeff. O(x^3)
		b = 0.00761  // Taylor coeff. O(x^5)
	)

	if x > 0.5*math.Pi {
		return snx(math.Pi - x)
	}
	x2 := x * x

	return x * (1.0 + x2*(a+b*x2))
}

// snxd is the derivative of snx, folded through sn'(π−x) = −sn'(x).
func snxd(x float64) float64 {
	const (
		a = -0.49815 // Taylor coeff. O(x^2)
		b = 0.03805  // Taylor coeff. O(x^4)
	)

	if x > 0.5*math.Pi {
		return -snxd(math.Pi - x)
	}
	x2 := x * x

	return 1.0 + x2*(a+b*x2)
}

// nijenhuis solves by the region-split composite method: a cheap rough
// starter per (e, M) region, one refinement step, then a generalized
// Newton polish of fixed depth. Returns iteration count 1; the refined
// starter is written back to rec.Starter.
//
// Region D (M < 0.4, e > 0.6, ad hoc boundaries): a Mikkola-like cubic
// seed in the cancellation-resistant form s = 2q/(z + p + p²/z),
// followed by one Newton step on the quintic
// g(s) = (3/40)s⁵ + ((4e+0.5)/3)s³ + (1−e)s − M/3.
//
// Regions A, B, C: the S7 envelope starter (the dispatcher pins it),
// refined by one Halley step on the modified equation built from the
// sn(x) polynomial approximants above.
//
// The polish evaluates the Taylor coefficients f₀…f₃ once and runs the
// nested recurrence h_i = f₀/(f₁ + h_{i−1}·(f₂ + h_{i−2}·(… + h₁·f_i)));
// the final increment h₃ is added only for x > 0 (the source leaves the
// reason unstated).
//
// Reference: Nijenhuis (1991), Celest. Mech. Dyn. Astron. 51, 319–330.
func nijenhuis(ecc, ma, x0 float64, rec *Record) int {
	e1 := 1.0 - ecc
	corr := ecc / e1

	rec.resetCounters()

	var x float64
	if ma < 0.4 && ecc > 0.6 {
		// region D: rough cubic seed, resistant form
		frac := 1.0 / (0.5 + 4.0*ecc)
		p := e1 * frac
		q := 0.5 * ma * frac
		z := math.Cbrt(math.Sqrt(p*p*p+q*q) + q)
		z *= z

		s := 0.0
		if z > 0.0 {
			s = 2.0 * q / (z + p + p*p/z)
		}

		// refined seed: one Newton step on the quintic g(s)
		if s > 0.0 {
			s2 := s * s
			s -= 0.075 * s * s2 * s2 / (e1 + s2*(1.0/frac+0.375*s2))
		}

		x = ma + ecc*s*(3.0-4.0*s*s)
	} else {
		// regions A, B, C: S7 seed refined by one Halley step on the
		// polynomial-approximant equation
		x = x0

		f2 := ecc * snx(x)
		f0 := x - f2 - ma
		f1 := 1.0 - ecc*snxd(x)

		x -= f0 / (f1 - 0.5*f0*f2/f1)
	}

	rec.Starter = x
	rec.traceIter("nijenh", 1, x0, x)

	// final correction: generalized Newton polish of fixed depth
	esin, ecos := kepeq.SinCos(x, ecc)
	rec.tally(1, 1, 0)

	var f, h [nijenhuisDepth + 1]float64
	f[0] = ma - x + esin
	f[1] = 1.0 - ecos
	f[2] = 0.5 * esin
	f[3] = ecos / 6.0

	for i := 1; i <= nijenhuisDepth; i++ {
		d := f[i]
		for j := 1; j <= i-1; j++ {
			d = d*h[j] + f[i-j]
		}
		h[i] = f[0] / d
	}

	if x > 0.0 {
		x += h[nijenhuisDepth]
	}

	deltaX := math.Abs(x - rec.Starter)
	deltaF := math.Abs(kepeq.Ell(ecc, ma, x)) * corr
	rec.tally(1, 0, 1)

	rec.Result = x
	rec.ErrDF = deltaF
	rec.ErrDX = deltaX

	return 1
}
