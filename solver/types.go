package solver

import "fmt"

// Method names one solver kernel. The zero value None is not a valid
// input; Total terminates iteration over the enumeration:
//
//	for m := solver.Bisection; m < solver.Total; m++ { ... }
type Method int

const (
	// None is the unidentified (void) solver method.
	None Method = iota

	// Bisection is interval halving on [M, M+e]. Linear convergence,
	// guaranteed.
	Bisection

	// FixedPoint iterates x ← M + e·sin x. Linear convergence with
	// contraction factor e.
	FixedPoint

	// NewtonRaphson wraps the order-2 core. Quadratic convergence.
	NewtonRaphson

	// Halley wraps the order-3 core. Cubic convergence.
	Halley

	// DanbyBurkardt4 wraps the order-4 core. Quartic convergence.
	DanbyBurkardt4

	// DanbyBurkardt5 wraps the order-5 core. Quintic convergence.
	DanbyBurkardt5

	// LaguerreConway iterates the Laguerre–Conway step. Cubic
	// convergence even from poor starters; robust for high e.
	LaguerreConway

	// Secant is the secant update on the bracket [M, M+e].
	// Super-linear convergence of order ≈1.618.
	Secant

	// WegsteinSecant is Wegstein's damped secant acceleration of the
	// fixed-point map.
	WegsteinSecant

	// Mikkola is the non-iterative cubic seed + order-5 polish.
	Mikkola

	// Markley is the non-iterative Padé seed + order-5 polish.
	Markley

	// Nijenhuis is the region-split composite with a generalized
	// Newton polish of fixed depth.
	Nijenhuis

	// Total terminates the enumeration; it is not a valid method.
	Total
)

// kernelFunc is the shared kernel contract: refine starter x0 for the
// reduced mean anomaly ma, write Result/ErrDX/ErrDF into rec, and
// return the number of iterations performed.
type kernelFunc func(ecc, ma, x0 float64, rec *Record) int

// methodNames holds the Stringer texts, indexed by Method.
var methodNames = [Total]string{
	None:           "None",
	Bisection:      "Bisection",
	FixedPoint:     "FixedPoint",
	NewtonRaphson:  "NewtonRaphson",
	Halley:         "Halley",
	DanbyBurkardt4: "DanbyBurkardt4",
	DanbyBurkardt5: "DanbyBurkardt5",
	LaguerreConway: "LaguerreConway",
	Secant:         "Secant",
	WegsteinSecant: "WegsteinSecant",
	Mikkola:        "Mikkola",
	Markley:        "Markley",
	Nijenhuis:      "Nijenhuis",
}

// String implements fmt.Stringer.
func (m Method) String() string {
	if m < None || m >= Total {
		return fmt.Sprintf("Method(%d)", int(m))
	}

	return methodNames[m]
}
