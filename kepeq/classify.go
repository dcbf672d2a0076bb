package kepeq

import (
	"math"

	"github.com/akobaz/libkes"
)

// EccThreshold is the minimum distance ε_c separating the eccentricity
// regimes: |e| ≤ ε_c counts as circular and |e−1| ≤ ε_c as parabolic.
// The value is a design choice, not a derived quantity; it is fixed for
// the lifetime of the library because regime boundaries are part of the
// observable behavior.
const EccThreshold = 1e-10

// Regime tags the eccentricity domain of a conic orbit.
type Regime int

const (
	// Invalid marks a non-finite or negative eccentricity.
	Invalid Regime = iota

	// Circular marks 0 ≤ e ≤ ε_c.
	Circular

	// Elliptic marks ε_c < e < 1−ε_c.
	Elliptic

	// Parabolic marks |e−1| ≤ ε_c.
	Parabolic

	// Hyperbolic marks e > 1+ε_c.
	Hyperbolic

	// regimeTotal terminates the enumeration.
	regimeTotal
)

// regimeNames holds the Stringer texts, indexed by Regime.
var regimeNames = [regimeTotal]string{
	Invalid:    "Invalid",
	Circular:   "Circular",
	Elliptic:   "Elliptic",
	Parabolic:  "Parabolic",
	Hyperbolic: "Hyperbolic",
}

// String implements fmt.Stringer.
func (r Regime) String() string {
	if r < Invalid || r >= regimeTotal {
		return "Regime(?)"
	}

	return regimeNames[r]
}

// Classify decides the eccentricity regime of ecc. The error is nil
// exactly when the regime is not Invalid; otherwise it is
// libkes.ErrBadEccentricity.
//
// Complexity: O(1).
func Classify(ecc float64) (Regime, error) {
	if Finite(ecc) != nil {
		return Invalid, libkes.ErrBadEccentricity
	}

	switch {
	case ecc > EccThreshold && ecc < 1.0-EccThreshold:
		return Elliptic, nil
	case ecc > 1.0+EccThreshold:
		return Hyperbolic, nil
	case ecc > EccThreshold:
		// between 1−ε_c and 1+ε_c
		return Parabolic, nil
	case ecc < 0.0:
		return Invalid, libkes.ErrBadEccentricity
	default:
		// 0 ≤ ecc ≤ ε_c
		return Circular, nil
	}
}

// Finite reports whether x is an ordinary floating-point number. It
// returns nil for finite x and libkes.ErrBadValue for NaN or ±Inf.
func Finite(x float64) error {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return libkes.ErrBadValue
	}

	return nil
}
