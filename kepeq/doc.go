// Package kepeq evaluates Kepler's Equation for every eccentricity
// regime and provides the small numeric utilities the solver kernels
// lean on.
//
// 🚀 What is in here?
//
//   - Residual evaluators for the three conic regimes:
//     Ell(e,M,x) = x − e·sin x − M          (elliptic)
//     Hyp(e,M,x) = e·sinh x − x − M         (hyperbolic)
//     Par(M,ν)   = s + s³/3 − M, s=tan(ν/2) (parabolic, Barker's Equation)
//   - Regime classification over {Invalid, Circular, Elliptic,
//     Parabolic, Hyperbolic} with the ε_c = 1e-10 threshold
//   - Angle reduction into [−π, π)
//   - Joint sine/cosine via the half-angle tangent (one transcendental
//     call yields both values, optionally pre-scaled by e)
//   - True anomaly conversion for the elliptic and hyperbolic cases
//
// All functions are pure and stateless; none allocates. The residual
// evaluators perform no argument checking — callers own input sanity.
//
// ⚙️ Usage:
//
//	regime, err := kepeq.Classify(0.567)   // Elliptic, nil
//	f := kepeq.Ell(0.567, 1.234, x)        // residual at candidate x
//	sin, cos := kepeq.SinCos(x, 0.567)     // e·sin x, e·cos x
//
// Errors: Classify returns libkes.ErrBadEccentricity for a non-finite
// or negative eccentricity; Finite returns libkes.ErrBadValue for NaN
// or Inf. Nothing else in this package fails.
package kepeq
