package starter

import (
	"math"

	"github.com/akobaz/libkes"
	"github.com/akobaz/libkes/kepeq"
)

// Eval computes the starting value x0 = S(ecc, ma) for the chosen
// method. The mean anomaly ma is expected in [0, π]; the eccentricity
// in the open elliptic range.
//
// Contracts:
//   - An unknown method yields (0, libkes.ErrBadStarter); the dispatcher
//     applies its own fallback and carries on.
//   - No starter fails on admissible numeric input: the singular points
//     of S9 (e=1 or M=0), S10 (e=0) and S11 (e=1, and e→1 with M→0
//     where its cube-root denominator vanishes) degenerate to returning M.
//
// Complexity: O(1), at most five transcendental calls (S13).
func Eval(ecc, ma float64, m Method) (float64, error) {
	switch m {
	case S0:
		return s0(ecc, ma), nil
	case S1:
		return s1(ecc, ma), nil
	case S2:
		return s2(ecc, ma), nil
	case S3:
		return s3(ecc, ma), nil
	case S4:
		return s4(ecc, ma), nil
	case S5:
		return s5(ecc, ma), nil
	case S6:
		return s6(ecc, ma), nil
	case S7:
		return s7(ecc, ma), nil
	case S8:
		return s8(ecc, ma), nil
	case S9:
		return s9(ecc, ma), nil
	case S10:
		return s10(ecc, ma), nil
	case S11:
		return s11(ecc, ma), nil
	case S12:
		return s12(ecc, ma), nil
	case S13:
		return s13(ecc, ma), nil
	case S14:
		return s14(ecc, ma), nil
	default:
		return 0.0, libkes.ErrBadStarter
	}
}

// s0: x0 = π. Order e⁰.
func s0(_, _ float64) float64 {
	return math.Pi
}

// s1: x0 = M. Order e¹. Odell & Gooding (1986).
func s1(_, ma float64) float64 {
	return ma
}

// s2: x0 = M + e·sin M. Order e². Odell & Gooding (1986).
func s2(ecc, ma float64) float64 {
	return ma + ecc*math.Sin(ma)
}

// s3: x0 = M + e·sin M·(1 + e·cos M). Order e³. Odell & Gooding (1986).
func s3(ecc, ma float64) float64 {
	esin, ecos := kepeq.SinCos(ma, ecc)

	return ma + esin*(1.0+ecos)
}

// s4: x0 = M + e. Order e¹. Odell & Gooding (1986).
func s4(ecc, ma float64) float64 {
	return ma + ecc
}

// s5: x0 = M + e·sin M / (1 − sin(M+e) + sin M). Order e³.
// Smith (1979), Celestial Mechanics 19, 163–166.
func s5(ecc, ma float64) float64 {
	sin := math.Sin(ma)

	return ma + ecc*sin/(1.0-math.Sin(ma+ecc)+sin)
}

// s6: x0 = M + e·(π − M)/(1 + e) = (M + e·π)/(1 + e). Order e¹.
// Odell & Gooding (1986).
func s6(ecc, ma float64) float64 {
	return (ma + ecc*math.Pi) / (1.0 + ecc)
}

// s7: x0 = min{M/(1−e), S4, S6}. Order e¹. Odell & Gooding (1986).
// M/(1−e) is the small-M tangent; S4 and S6 cap it away from the
// singularity as e→1.
func s7(ecc, ma float64) float64 {
	tangent := ma / (1.0 - ecc)

	return math.Min(tangent, math.Min(s4(ecc, ma), s6(ecc, ma)))
}

// s8: x0 = S3 + (e⁴/20π)·(π − S3). Order e³. Odell & Gooding (1986).
func s8(ecc, ma float64) float64 {
	const lambda = 0.05 / math.Pi

	x := s3(ecc, ma)
	e2 := ecc * ecc

	return x + lambda*e2*e2*(math.Pi-x)
}

// s9: x0 = M + e·sin M/√(1 − 2e·cos M + e²). Order e⁴.
// Odell & Gooding (1986). Degenerates to M at the singular point
// (e=1, M=0) where the root expression vanishes.
func s9(ecc, ma float64) float64 {
	if ecc >= 1.0 || ma <= 0.0 {
		return ma
	}

	esin, ecos := kepeq.SinCos(ma, ecc)

	return ma + esin/math.Sqrt(1.0-2.0*ecos+ecc*ecc)
}

// s10: Ng's cubic starter. With q = 2(1−e)/e, r = 3M/e and
// s = ∛(r + √(q³+r²)) the starting value is s − q/s. Order e⁰.
// Ng (1979), Celestial Mechanics 20, 243–249. At e=0 the coefficients
// diverge; return M.
func s10(ecc, ma float64) float64 {
	if ecc <= 0.0 {
		return ma
	}

	q := 2.0 * (1.0 - ecc) / ecc
	r := 3.0 * ma / ecc
	s := math.Cbrt(math.Sqrt(q*q*q+r*r) + r)

	return s - q/s
}

// s11: Odell–Gooding quartic expansion. Order e⁴. Degenerates to M at
// e=1 where the cube-root denominator loses its meaning, and wherever
// that denominator rounds to zero or below (e→1, M→0).
func s11(ecc, ma float64) float64 {
	// (a, b, c) = -(3^(1/3) - 8/9)/6 * (1, -9, 2)
	const (
		a = -0.922267802364199155721e-1
		b = 0.830041022127779240149e+0
		c = -0.184453560472839831144e+0
	)

	if ecc >= 1.0 {
		return ma
	}

	sin, cos := kepeq.SinCos(ma, -1.0)

	e1 := 1.0 - ecc
	cos2 := 2.0*cos*cos - 1.0
	ecos := ecc * cos
	esin := ecc * sin

	den := math.Cbrt(1.0 - (1.0+ecc*e1*(1.0+e1)*(1.0+e1))*ecos)
	if den <= 0.0 {
		return ma
	}

	return ma + esin*(1.0+
		ecos*2.0/3.0+
		ecc*ecc*(1.0-48.0*cos+19.0*cos2)/36.0+
		ecc*ecc*ecc*(a+b*cos+c*cos2))/den
}

// s12: x0 = e·E(M; e=1) + (1−e)·M with the e=1 solution approximated by
// the rational form π − a·w/(b − w), w = π − M. Order e¹.
// Odell & Gooding (1986).
func s12(ecc, ma float64) float64 {
	const (
		a = (math.Pi - 1.0) * (math.Pi - 1.0) / (math.Pi + 2.0/3.0)
		b = 2.0 * (math.Pi - 1.0/6.0) * (math.Pi - 1.0/6.0) / (math.Pi + 2.0/3.0)
	)

	w := math.Pi - ma

	return ecc*(math.Pi-a*w/(b-w)) + (1.0-ecc)*ma
}

// s13: Encke's double-arctan scheme. Order e⁶.
//
//	x  = arctan(e·sin M / (1 − e·cos M))
//	y  = M + sin(x) − x
//	x0 = arctan(sin y / (cos y − e))
//
// Encke (1850), Astron. Nachr. 30, 277–292; see also Neutsch & Scherer
// (1992).
func s13(ecc, ma float64) float64 {
	esin, ecos := kepeq.SinCos(ma, ecc)
	x := math.Atan2(esin, 1.0-ecos)
	y := ma + math.Sin(x) - x
	sin, cos := kepeq.SinCos(y, -1.0)

	return math.Atan2(sin, cos-ecc)
}

// s14: x0 = M + e·(∛(π²·M) − π·sin M/15 − M). Order e¹.
// Charles & Tatum (1998), Cel. Mech. Dyn. Astron. 69, 357–372.
func s14(ecc, ma float64) float64 {
	const piSq = math.Pi * math.Pi

	return ma + ecc*(math.Cbrt(piSq*ma)-math.Pi*math.Sin(ma)/15.0-ma)
}
