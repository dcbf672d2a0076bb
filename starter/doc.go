// Package starter provides the catalog of closed-form first
// approximations for the elliptic Kepler Equation.
//
// Each starter is a pure map x₀ = S(e, M) intended for mean anomalies
// M ∈ [0, π] (the dispatcher folds negative anomalies onto that range
// before calling in). The catalog collects fifteen starters S0…S14 of
// increasing asymptotic order in e, most of them from Odell & Gooding
// (1986, Celestial Mechanics 38, 307–334), plus the schemes of Smith
// (1979), Ng (1979), Encke (1850) and Charles & Tatum (1998).
//
// Picking a starter trades evaluation cost against initial residual: S1
// is free, S13 costs several transcendental calls but starts within
// O(e⁶) of the root. Composite kernels bring their own seeds and ignore
// the catalog; the Nijenhuis kernel is pinned to S7 by the dispatcher.
//
// ⚙️ Usage:
//
//	x0, err := starter.Eval(0.567, 1.234, starter.S7)
//	if err != nil {
//	  // libkes.ErrBadStarter: unknown method identifier
//	}
//
// Hyperbolic and parabolic starter families are declared future members
// of the enumeration but have no entries yet.
package starter
