package solver

import (
	"github.com/akobaz/libkes"
	"github.com/akobaz/libkes/kepeq"
)

// TraceFunc receives one line of per-iteration diagnostics: the kernel
// name, the iteration count and the two residuals. The composite kernels
// (Mikkola, Markley, Nijenhuis) call it once, before their polish, with
// an intermediate quantity of their seed construction and the seed
// itself in place of the residuals. Kernels call it only when
// installed, so the zero value of Record traces nothing.
type TraceFunc func(kernel string, iter int, errDX, errDF float64)

// Record is the caller-facing iteration state: configuration flows in
// through tolf/tolx/maxiter, diagnostics flow out through the exported
// fields. The zero value is usable — the dispatcher substitutes
// defaults for unset configuration. A Record owns no resources and must
// not be shared across goroutines during a solve.
type Record struct {
	// configuration; read through TolF/TolX/MaxIter, written through
	// the validating setters or clamped by the dispatcher
	tolf    float64
	tolx    float64
	maxiter int

	// instrumentation switches
	count bool
	trace TraceFunc

	// Result is the computed eccentric anomaly (radians).
	Result float64

	// Starter is the starting value actually used; composite kernels
	// override it with their internal seed.
	Starter float64

	// ErrDF is the final scaled function residual |f(x)|·e/(1−e).
	ErrDF float64

	// ErrDX is the final successive-iterate gap |x(n+1) − x(n)|.
	ErrDX float64

	// Iterations is the number of loop passes performed.
	Iterations int

	// SinEvals, CosEvals and FktEvals count transcendental and residual
	// evaluations. Maintained only when the counter switch is on.
	SinEvals int
	CosEvals int
	FktEvals int
}

// TolF returns the convergence target on |f(x)|.
func (r *Record) TolF() float64 { return r.tolf }

// TolX returns the convergence target on the successive-iterate gap.
func (r *Record) TolX() float64 { return r.tolx }

// MaxIter returns the iteration budget.
func (r *Record) MaxIter() int { return r.maxiter }

// SetTolF installs a new convergence target for |f(x)|. The value must
// be finite and inside (DefaultTol, 1); anything else is rejected with
// libkes.ErrBadTolerance and the record is left unchanged.
func (r *Record) SetTolF(tol float64) error {
	if kepeq.Finite(tol) != nil || tol <= DefaultTol || tol >= 1.0 {
		return libkes.ErrBadTolerance
	}
	r.tolf = tol

	return nil
}

// SetTolX installs a new convergence target for |x(n+1) − x(n)| under
// the same predicate as SetTolF.
func (r *Record) SetTolX(tol float64) error {
	if kepeq.Finite(tol) != nil || tol <= DefaultTol || tol >= 1.0 {
		return libkes.ErrBadTolerance
	}
	r.tolx = tol

	return nil
}

// SetMaxIter installs a new iteration budget. The value must lie in
// [1, 10·DefaultMaxIter); anything else is rejected with
// libkes.ErrBadValue and the record is left unchanged.
func (r *Record) SetMaxIter(n int) error {
	if n <= 0 || n >= 10*DefaultMaxIter {
		return libkes.ErrBadValue
	}
	r.maxiter = n

	return nil
}

// clampDefaults replaces configuration values that fail their
// predicates with the defaults and returns the number of replacements
// (the warning count; the dispatcher currently ignores it).
func (r *Record) clampDefaults() int {
	warn := 0

	if kepeq.Finite(r.tolf) != nil || r.tolf < DefaultTol || r.tolf >= 1.0 {
		r.tolf = DefaultTol
		warn++
	}
	if kepeq.Finite(r.tolx) != nil || r.tolx < DefaultTol || r.tolx >= 1.0 {
		r.tolx = DefaultTol
		warn++
	}
	if r.maxiter <= 0 || r.maxiter > 10*DefaultMaxIter {
		r.maxiter = DefaultMaxIter
		warn++
	}

	return warn
}

// resetCounters zeroes the evaluation counters at kernel entry when
// counting is on.
func (r *Record) resetCounters() {
	if r.count {
		r.SinEvals, r.CosEvals, r.FktEvals = 0, 0, 0
	}
}

// tally bumps the evaluation counters when counting is on.
func (r *Record) tally(sin, cos, fkt int) {
	if r.count {
		r.SinEvals += sin
		r.CosEvals += cos
		r.FktEvals += fkt
	}
}

// traceIter emits one diagnostic line when a trace sink is installed.
func (r *Record) traceIter(kernel string, iter int, dx, df float64) {
	if r.trace != nil {
		r.trace(kernel, iter, dx, df)
	}
}
