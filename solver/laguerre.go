package solver

import (
	"math"

	"github.com/akobaz/libkes/kepeq"
)

// lagcon solves by the Laguerre–Conway step
//
//	Δ = 5·f₀ / (f₁ + √|16·f₁² − 20·f₀·e·sin x|), x ← x − Δ
//
// with f₀ = x − e·sin x − M and f₁ = 1 − e·cos x. Cubic convergence
// even from poor starters; the absolute value under the root keeps the
// step defined when the discriminant goes negative, which is what makes
// the method robust for high eccentricities.
//
// Reference: Conway (1986), Celest. Mech. 39, 199–211, eq. (16).
func lagcon(ecc, ma, x0 float64, rec *Record) int {
	corr := ecc / (1.0 - ecc)

	count := 0
	deltaX, deltaF := 0.0, 0.0
	rec.resetCounters()

	x := x0
	for {
		esin, ecos := kepeq.SinCos(x, ecc)

		f0 := x - esin - ma
		f1 := 1.0 - ecos
		rec.tally(1, 1, 1)

		dx := 5.0 * f0 / (f1 + math.Sqrt(math.Abs(16.0*f1*f1-20.0*f0*esin)))
		x -= dx

		count++
		deltaX = math.Abs(dx)
		deltaF = math.Abs(kepeq.Ell(ecc, ma, x)) * corr
		rec.tally(1, 0, 1)
		rec.traceIter("lagcon", count, deltaX, deltaF)

		if deltaX <= rec.tolx || deltaF <= rec.tolf || count >= rec.maxiter {
			break
		}
	}

	rec.Result = x
	rec.ErrDF = deltaF
	rec.ErrDX = deltaX

	return count
}
