// Package itercore holds the single-step update functions shared by the
// iterative solver kernels and the composite methods.
//
// All four cores expand the elliptic Kepler Equation in a Newton series
// around the current iterate x₀,
//
//	f₀ = M − x₀ + e·sin x₀     f₁ = 1 − e·cos x₀ + ε_z
//	f₂ = e·sin x₀ / 2          f₃ = e·cos x₀ / 6     f₄ = −e·sin x₀ / 24
//
// and refine the Newton increment Δ through the Danby–Burkardt
// recurrence: each order re-divides f₀ by a denominator that folds the
// previous Δ back in. Step2 is plain Newton–Raphson, Step3 Halley,
// Step4 and Step5 the quartic and quintic Danby–Burkardt updates; the
// quintic denominator nests math.FMA for single-rounding accumulation.
//
// The tiny addend ε_z = 1e-19 on f₁ removes the vanishing-derivative
// singularity at (e, x₀) = (1, 0).
//
// Cores are invoked once by the composite kernels (Mikkola, Markley)
// and in a loop by the iterative ones. Each core costs exactly one
// tan(x/2) evaluation via kepeq.SinCos.
//
// Reference: Danby & Burkardt (1983), Celestial Mechanics 31, 95–107,
// eqs. (16)–(19).
package itercore
