package kepeq

import "math"

// twoPi is 2π, the reduction period for mean anomalies.
const twoPi = 2 * math.Pi

// Reduce maps an angle x (radians) into the canonical interval [−π, π).
// The reduction is x − ⌊x/2π⌋·2π followed by a single fold at ±π, and
// is idempotent on [−π, π). Non-finite input is returned unchanged; the
// dispatcher rejects such values before reduction.
//
// Complexity: O(1).
func Reduce(x float64) float64 {
	if Finite(x) != nil {
		return x
	}

	// fast path keeps the reduction exactly idempotent: values already
	// inside the principal interval pass through bit-for-bit
	if x >= -math.Pi && x < math.Pi {
		return x
	}

	x -= math.Floor(x/twoPi) * twoPi
	if x >= math.Pi {
		x -= twoPi
	}
	if x < -math.Pi {
		x += twoPi
	}

	return x
}

// SinCos computes sin(x) and cos(x) together from a single tan(x/2)
// evaluation:
//
//	t = tan(x/2), d = 1/(1+t²)  ⇒  sin x = 2td, cos x = (1−t²)d
//
// If c ≥ 0 both values are scaled by c, so SinCos(x, ecc) yields
// (e·sin x, e·cos x) in one transcendental call — the form every
// iteration core consumes. Pass c < 0 for the unscaled pair.
//
// Reference: Press et al., Numerical Recipes.
func SinCos(x, c float64) (sin, cos float64) {
	t := math.Tan(0.5 * x)
	d := 1.0 / (1.0 + t*t)

	sin = 2.0 * t * d
	cos = (1.0 - t*t) * d

	if c >= 0.0 {
		sin *= c
		cos *= c
	}

	return sin, cos
}
