package starter

import "fmt"

// Method names one starter function from the catalog. The zero value
// None is not a valid input; Total terminates iteration over the
// enumeration:
//
//	for m := starter.S0; m < starter.Total; m++ { ... }
type Method int

const (
	// None is the unidentified (void) starter method.
	None Method = iota

	// S0 is the constant starter x0 = π. Order e⁰.
	S0

	// S1 is the identity starter x0 = M. Order e¹.
	S1

	// S2 is x0 = M + e·sin M. Order e².
	S2

	// S3 is x0 = M + e·sin M·(1 + e·cos M). Order e³.
	S3

	// S4 is x0 = M + e. Order e¹.
	S4

	// S5 is Smith's starter x0 = M + e·sin M / (1 − sin(M+e) + sin M).
	// Order e³.
	S5

	// S6 is x0 = (M + e·π)/(1 + e). Order e¹.
	S6

	// S7 is the envelope min{M/(1−e), S4, S6}. Order e¹.
	S7

	// S8 is S3 pulled toward π by (e⁴/20π)·(π − S3). Order e³.
	S8

	// S9 is x0 = M + e·sin M/√(1 − 2e·cos M + e²). Order e⁴.
	S9

	// S10 is Ng's cubic-equation starter. Order e⁰.
	S10

	// S11 is the Odell–Gooding quartic expansion. Order e⁴.
	S11

	// S12 is the Odell–Gooding rational blend of M and the e=1 solution.
	// Order e¹.
	S12

	// S13 is Encke's double-arctan scheme. Order e⁶.
	S13

	// S14 is the Charles–Tatum cube-root starter. Order e¹.
	S14

	// Total terminates the enumeration; it is not a valid method.
	Total

	// Hyperbolic and parabolic starter families reserve identifiers
	// above Total once implemented.
)

// methodOrder records the advertised asymptotic order in e for each
// elliptic starter: |S(e,M) − x_true| = O(e^k).
var methodOrder = [Total]int{
	S0: 0, S1: 1, S2: 2, S3: 3, S4: 1, S5: 3, S6: 1, S7: 1,
	S8: 3, S9: 4, S10: 0, S11: 4, S12: 1, S13: 6, S14: 1,
}

// Order returns the advertised asymptotic order in e of the starter, or
// -1 for None and out-of-range values.
func (m Method) Order() int {
	if m <= None || m >= Total {
		return -1
	}

	return methodOrder[m]
}

// String implements fmt.Stringer.
func (m Method) String() string {
	switch {
	case m == None:
		return "None"
	case m > None && m < Total:
		return fmt.Sprintf("S%d", int(m)-1)
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}
