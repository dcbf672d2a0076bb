package itercore

import (
	"math"

	"github.com/akobaz/libkes/kepeq"
)

// addZero is the tiny increment ε_z added to the first derivative. It
// fixes the division by zero for the vanishing derivative at
// (x₀, e) = (0, 1) without disturbing any non-degenerate iterate.
const addZero = 1.0e-19

// Step2 performs one Newton–Raphson update (quadratic convergence):
//
//	Δ = f₀/f₁, returns x₀ + Δ
func Step2(ecc, ma, x0 float64) float64 {
	esin, ecos := kepeq.SinCos(x0, ecc)

	f0 := ma - x0 + esin
	f1 := 1.0 - ecos + addZero

	return x0 + f0/f1
}

// Step3 performs one Halley update (cubic convergence): the order-2
// increment is folded into the denominator,
//
//	Δ ← f₀/(f₁ + f₂·Δ), returns x₀ + Δ
func Step3(ecc, ma, x0 float64) float64 {
	esin, ecos := kepeq.SinCos(x0, ecc)

	f0 := ma - x0 + esin
	f1 := 1.0 - ecos + addZero
	dx := f0 / f1

	f2 := 0.5 * esin
	dx = f0 / (f1 + f2*dx)

	return x0 + dx
}

// Step4 performs one Danby–Burkardt order-4 update (quartic
// convergence), seeding from the order-3 increment:
//
//	Δ ← f₀/(f₁ + f₂·Δ + f₃·Δ²), returns x₀ + Δ
func Step4(ecc, ma, x0 float64) float64 {
	esin, ecos := kepeq.SinCos(x0, ecc)

	f0 := ma - x0 + esin
	f1 := 1.0 - ecos + addZero
	dx := f0 / f1

	f2 := 0.5 * esin
	dx = f0 / (f1 + f2*dx)

	f3 := ecos / 6.0
	dx = f0 / (f1 + f2*dx + f3*dx*dx)

	return x0 + dx
}

// Step5 performs one Danby–Burkardt order-5 update (quintic
// convergence), seeding from the order-4 increment:
//
//	Δ ← f₀/(f₁ + f₂·Δ + f₃·Δ² + f₄·Δ³), returns x₀ + Δ
//
// The denominators accumulate through nested fused multiply-adds: each
// fma rounds once, which keeps the higher-order corrections from being
// swamped near the f₁ → 0 corner.
func Step5(ecc, ma, x0 float64) float64 {
	esin, ecos := kepeq.SinCos(x0, ecc)

	f0 := ma - x0 + esin
	f1 := 1.0 - ecos + addZero
	dx := f0 / f1

	f2 := 0.5 * esin
	dx = f0 / math.FMA(dx, f2, f1)

	f3 := ecos / 6.0
	dx = f0 / math.FMA(dx, math.FMA(dx, f3, f2), f1)

	f4 := -esin / 24.0
	dx = f0 / math.FMA(dx, math.FMA(dx, math.FMA(dx, f4, f3), f2), f1)

	return x0 + dx
}
