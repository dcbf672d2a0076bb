package kepeq

import "math"

// TrueAnomaly converts an eccentric anomaly x (radians) to the true
// anomaly ν measured from the focus:
//
//	e < 1: ν = 2·atan(√((1+e)/(1−e)) · tan(x/2))   (Stumpff 1958, II;14)
//	e ≥ 1: ν = 2·atan(√((e+1)/(e−1)) · tanh(x/2))  (Stumpff 1958, III;50)
//
// The circular case degenerates to ν = x and the parabolic case is not
// covered by either branch; both are caller-handled.
//
// Complexity: O(1).
func TrueAnomaly(ecc, x float64) float64 {
	if ecc < 1.0 {
		return 2.0 * math.Atan(math.Sqrt((1.0+ecc)/(1.0-ecc))*math.Tan(0.5*x))
	}

	return 2.0 * math.Atan(math.Sqrt((ecc+1.0)/(ecc-1.0))*math.Tanh(0.5*x))
}
