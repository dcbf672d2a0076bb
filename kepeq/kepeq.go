package kepeq

import "math"

// Ell evaluates the elliptic Kepler Equation residual
//
//	f(x) = x − e·sin(x) − M
//
// at the candidate eccentric anomaly x (radians), for eccentricity
// 0 ≤ ecc < 1 and mean anomaly ma (radians). The root of f is the
// eccentric anomaly belonging to ma.
//
// Complexity: one sin evaluation, O(1).
func Ell(ecc, ma, x float64) float64 {
	return x - ecc*math.Sin(x) - ma
}

// Hyp evaluates the hyperbolic Kepler Equation residual
//
//	f(x) = e·sinh(x) − x − M
//
// at the candidate hyperbolic anomaly x, for eccentricity ecc > 1 and
// mean anomaly ma (radians).
//
// Complexity: one sinh evaluation, O(1).
func Hyp(ecc, ma, x float64) float64 {
	return ecc*math.Sinh(x) - x - ma
}

// Par evaluates Barker's Equation residual for the parabolic case,
//
//	f(ν) = s + s³/3 − M, s = tan(ν/2)
//
// at the candidate true anomaly nu (radians) for mean anomaly ma. The
// expression is undefined at nu = ±π where tan(ν/2) diverges; callers
// must keep nu away from that pole.
//
// Complexity: one tan evaluation, O(1).
func Par(ma, nu float64) float64 {
	s := math.Tan(0.5 * nu)

	return s + s*s*s/3.0 - ma
}
