package solver

// DEFAULTS - single source of truth for zero-value behavior. The
// dispatcher substitutes these whenever a record field fails its
// predicate.
const (
	// DefaultTol is the default convergence target for both residuals,
	// and at the same time the smallest admissible tolerance ε_min.
	DefaultTol = 1e-15

	// DefaultMaxIter is the default iteration budget. Setters accept
	// budgets below ten times this value.
	DefaultMaxIter = 100
)

// Option mutates a Record under construction. Recognized options are
// exactly {WithTolF, WithTolX, WithMaxIter} for configuration plus the
// instrumentation switches {WithCounters, WithTrace}.
type Option func(*Record)

// WithTolF sets the convergence target on |f(x)|. A value outside
// (DefaultTol, 1) is ignored and the default stays — the same clamping
// the dispatcher applies.
func WithTolF(tol float64) Option {
	return func(r *Record) { _ = r.SetTolF(tol) }
}

// WithTolX sets the convergence target on the successive-iterate gap,
// with the same clamping as WithTolF.
func WithTolX(tol float64) Option {
	return func(r *Record) { _ = r.SetTolX(tol) }
}

// WithMaxIter sets the iteration budget. A value outside
// [1, 10·DefaultMaxIter) is ignored and the default stays.
func WithMaxIter(n int) Option {
	return func(r *Record) { _ = r.SetMaxIter(n) }
}

// WithCounters turns on the SinEvals/CosEvals/FktEvals instrumentation.
// Counting costs a branch per evaluation and is off by default.
func WithCounters() Option {
	return func(r *Record) { r.count = true }
}

// WithTrace installs a per-iteration diagnostic sink. Kernels invoke it
// once per loop pass; nil (the default) traces nothing.
func WithTrace(fn TraceFunc) Option {
	return func(r *Record) { r.trace = fn }
}

// NewRecord returns a Record with all configuration at defaults, then
// applies the given options in order.
//
// Example:
//
//	rec := solver.NewRecord(solver.WithTolF(1e-12), solver.WithMaxIter(20))
func NewRecord(opts ...Option) Record {
	r := Record{
		tolf:    DefaultTol,
		tolx:    DefaultTol,
		maxiter: DefaultMaxIter,
	}
	for _, opt := range opts {
		opt(&r)
	}

	return r
}
