package solver_test

import (
	"math"
	"strings"
	"testing"

	"github.com/akobaz/libkes"
	"github.com/akobaz/libkes/kepeq"
	"github.com/akobaz/libkes/solver"
	"github.com/akobaz/libkes/starter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoPi mirrors the symmetry period used by the dispatcher.
const twoPi = 2 * math.Pi

// kernels lists every valid method for whole-catalog sweeps.
var kernels = []solver.Method{
	solver.Bisection,
	solver.FixedPoint,
	solver.NewtonRaphson,
	solver.Halley,
	solver.DanbyBurkardt4,
	solver.DanbyBurkardt5,
	solver.LaguerreConway,
	solver.Secant,
	solver.WegsteinSecant,
	solver.Mikkola,
	solver.Markley,
	solver.Nijenhuis,
}

// TestSolve_CircularShortcut is scenario 1: e = 0 returns M unchanged
// with zero iterations.
func TestSolve_CircularShortcut(t *testing.T) {
	rec := solver.NewRecord()

	x, err := solver.Solve(0.0, 1.234, starter.S1, solver.NewtonRaphson, &rec)

	require.NoError(t, err)
	assert.Equal(t, 1.234, x, "circular regime returns M exactly")
	assert.Equal(t, 1.234, rec.Result)
	assert.Zero(t, rec.Iterations)
}

// TestSolve_NewtonElliptic is scenario 2: the Newton–Raphson kernel
// from the S1 starter must satisfy the defining equation to target
// tolerance within ten iterations.
func TestSolve_NewtonElliptic(t *testing.T) {
	const (
		ecc = 0.567
		ma  = 1.234
	)
	rec := solver.NewRecord()

	x, err := solver.Solve(ecc, ma, starter.S1, solver.NewtonRaphson, &rec)

	require.NoError(t, err)
	assert.InDelta(t, 1.7877132, x, 1e-5, "root of x − 0.567·sin x = 1.234")
	assert.InDelta(t, 0.0, kepeq.Ell(ecc, ma, x), 1e-13, "residual at the solution")
	assert.LessOrEqual(t, rec.Iterations, 10)
	assert.LessOrEqual(t, rec.ErrDF, 1e-14, "scaled residual at target tolerance")
}

// TestSolve_Symmetry is scenario 3 and invariant 2: solutions for ±M
// mirror through 2π.
func TestSolve_Symmetry(t *testing.T) {
	const ecc = 0.567

	for _, ma := range []float64{0.1, 1.234, 2.9} {
		recPos := solver.NewRecord()
		recNeg := solver.NewRecord()

		xPos, errPos := solver.Solve(ecc, ma, starter.S1, solver.NewtonRaphson, &recPos)
		xNeg, errNeg := solver.Solve(ecc, -ma, starter.S1, solver.NewtonRaphson, &recNeg)

		require.NoError(t, errPos)
		require.NoError(t, errNeg)
		assert.InDelta(t, twoPi, xPos+xNeg, 1e-12, "x(−M) + x(M) = 2π at M=%v", ma)
	}
}

// TestSolve_LaguerreNearParabolic is scenario 4: Laguerre–Conway with
// the S7 starter converges quickly despite e = 0.9 and tiny M.
func TestSolve_LaguerreNearParabolic(t *testing.T) {
	const (
		ecc = 0.9
		ma  = 0.01
	)
	rec := solver.NewRecord()

	x, err := solver.Solve(ecc, ma, starter.S7, solver.LaguerreConway, &rec)

	require.NoError(t, err)
	assert.InDelta(t, 0.0, kepeq.Ell(ecc, ma, x), 1e-12, "residual at the solution")
	assert.Less(t, rec.Iterations, 10, "cubic convergence despite near-parabolic e")
}

// TestSolve_MikkolaRoundTrip is scenario 5: the non-iterative method
// recovers a reference anomaly in a single pass.
func TestSolve_MikkolaRoundTrip(t *testing.T) {
	const ecc = 0.5
	xRef := math.Pi / 3
	ma := xRef - ecc*math.Sin(xRef)
	rec := solver.NewRecord()

	x, err := solver.Solve(ecc, ma, starter.S1, solver.Mikkola, &rec)

	require.NoError(t, err)
	assert.InDelta(t, xRef, x, 1e-14)
	assert.Equal(t, 1, rec.Iterations, "non-iterative method counts one pass")
}

// TestSolve_NegativeEccentricity is scenario 6.
func TestSolve_NegativeEccentricity(t *testing.T) {
	rec := solver.NewRecord()

	x, err := solver.Solve(-0.1, 1.0, starter.S1, solver.NewtonRaphson, &rec)

	assert.ErrorIs(t, err, libkes.ErrBadEccentricity)
	assert.Zero(t, x)
}

// TestSolve_NaNMeanAnomaly is scenario 7.
func TestSolve_NaNMeanAnomaly(t *testing.T) {
	rec := solver.NewRecord()

	x, err := solver.Solve(0.5, math.NaN(), starter.S1, solver.NewtonRaphson, &rec)

	assert.ErrorIs(t, err, libkes.ErrBadValue)
	assert.Zero(t, x)
}

// TestSolve_BadSolver is scenario 8: out-of-range kernel identifiers
// are rejected after starter evaluation.
func TestSolve_BadSolver(t *testing.T) {
	rec := solver.NewRecord()

	x, err := solver.Solve(0.5, 1.0, starter.S1, solver.Total+1, &rec)

	assert.ErrorIs(t, err, libkes.ErrBadSolver)
	assert.Zero(t, x)

	_, err = solver.Solve(0.5, 1.0, starter.S1, solver.None, &rec)
	assert.ErrorIs(t, err, libkes.ErrBadSolver)
}

// TestSolve_UnimplementedRegimes verifies the parabolic and hyperbolic
// branches fail with the eccentricity sentinel rather than iterating.
func TestSolve_UnimplementedRegimes(t *testing.T) {
	for _, ecc := range []float64{1.0, 1.5} {
		rec := solver.NewRecord()

		x, err := solver.Solve(ecc, 1.0, starter.S1, solver.NewtonRaphson, &rec)

		assert.ErrorIs(t, err, libkes.ErrBadEccentricity, "e=%v is not implemented", ecc)
		assert.Zero(t, x)
	}
}

// TestSolve_RoundTripAllKernels is invariant 3 across the whole kernel
// catalog: reconstruct x_ref from M = x_ref − e·sin x_ref.
//
// Fixed-point is capped at e ≤ 0.5: its contraction factor is e, and
// higher eccentricities exhaust the default budget before reaching
// target tolerance.
func TestSolve_RoundTripAllKernels(t *testing.T) {
	xRefs := []float64{0.2, 0.7, 1.2, 2.0, 2.8}
	eccs := []float64{0.1, 0.4, 0.7, 0.9}

	for _, m := range kernels {
		t.Run(m.String(), func(t *testing.T) {
			for _, ecc := range eccs {
				if m == solver.FixedPoint && ecc > 0.5 {
					continue
				}
				for _, xRef := range xRefs {
					ma := xRef - ecc*math.Sin(xRef)
					rec := solver.NewRecord()

					x, err := solver.Solve(ecc, ma, starter.S7, m, &rec)

					require.NoError(t, err, "(e=%v, xRef=%v)", ecc, xRef)
					assert.InDelta(t, xRef, x, 1e-12, "(e=%v, xRef=%v)", ecc, xRef)
					assert.LessOrEqual(t, rec.Iterations, rec.MaxIter(), "budget respected")
				}
			}
		})
	}
}

// TestSolve_ResultRange verifies results land in [0, 2π) for anomalies
// of either sign and arbitrary winding.
func TestSolve_ResultRange(t *testing.T) {
	const ecc = 0.6

	for _, ma := range []float64{-9.5, -2.0, -0.3, 0.4, 2.5, 8.0, 40.0} {
		rec := solver.NewRecord()

		x, err := solver.Solve(ecc, ma, starter.S3, solver.Halley, &rec)

		require.NoError(t, err, "M=%v", ma)
		assert.GreaterOrEqual(t, x, 0.0, "M=%v", ma)
		assert.Less(t, x, twoPi, "M=%v", ma)
	}
}

// TestSolve_ReductionInvariance verifies adding whole periods to M
// leaves the solution unchanged up to reduction noise.
func TestSolve_ReductionInvariance(t *testing.T) {
	const (
		ecc = 0.3
		ma  = 1.0
	)

	recBase := solver.NewRecord()
	base, err := solver.Solve(ecc, ma, starter.S1, solver.NewtonRaphson, &recBase)
	require.NoError(t, err)

	recWound := solver.NewRecord()
	wound, err := solver.Solve(ecc, ma+3*twoPi, starter.S1, solver.NewtonRaphson, &recWound)
	require.NoError(t, err)

	assert.InDelta(t, base, wound, 1e-12)
}

// TestSolve_StarterFallback verifies the local recovery path: an
// unknown starter surfaces libkes.ErrBadStarter while the kernel still
// converges from the fallback seed x0 = M + e.
func TestSolve_StarterFallback(t *testing.T) {
	const (
		ecc = 0.5
		ma  = 1.0
	)
	rec := solver.NewRecord()

	x, err := solver.Solve(ecc, ma, starter.None, solver.NewtonRaphson, &rec)

	assert.ErrorIs(t, err, libkes.ErrBadStarter, "status survives the recovery")
	assert.Equal(t, ma+ecc, rec.Starter, "fallback seed is M + e")
	assert.InDelta(t, 0.0, kepeq.Ell(ecc, ma, x), 1e-13, "solution is still valid")
}

// TestSolve_NijenhuisPinnedStarter verifies the Nijenhuis kernel runs
// from the S7 seed regardless of the caller's choice, in both regions
// of its split.
func TestSolve_NijenhuisPinnedStarter(t *testing.T) {
	cases := []struct {
		name string
		ecc  float64
		ma   float64
	}{
		{"region D", 0.9, 0.2},
		{"regions ABC", 0.4, 2.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			recNone := solver.NewRecord()
			xNone, err := solver.Solve(tc.ecc, tc.ma, starter.S0, solver.Nijenhuis, &recNone)
			require.NoError(t, err)

			recS7 := solver.NewRecord()
			xS7, err := solver.Solve(tc.ecc, tc.ma, starter.S7, solver.Nijenhuis, &recS7)
			require.NoError(t, err)

			assert.Equal(t, xS7, xNone, "caller's starter choice must not matter")
			assert.InDelta(t, 0.0, kepeq.Ell(tc.ecc, tc.ma, xNone), 1e-12)
			assert.Equal(t, 1, recNone.Iterations)
		})
	}
}

// TestSolve_CompositeOverrideStarter verifies Mikkola and Markley
// replace the catalog seed in the record with their internal one.
func TestSolve_CompositeOverrideStarter(t *testing.T) {
	const (
		ecc = 0.5
		ma  = 1.0
	)

	s1Seed, err := starter.Eval(ecc, ma, starter.S1)
	require.NoError(t, err)

	for _, m := range []solver.Method{solver.Mikkola, solver.Markley} {
		rec := solver.NewRecord()

		_, err := solver.Solve(ecc, ma, starter.S1, m, &rec)

		require.NoError(t, err)
		assert.NotEqual(t, s1Seed, rec.Starter, "%v brings its own seed", m)
	}
}

// TestSolve_IterationBudget verifies a tight budget truncates the loop.
func TestSolve_IterationBudget(t *testing.T) {
	rec := solver.NewRecord(solver.WithMaxIter(3))

	_, err := solver.Solve(0.95, 0.05, starter.S1, solver.Bisection, &rec)

	require.NoError(t, err)
	assert.LessOrEqual(t, rec.Iterations, 3)
}

// TestShowSolver verifies the description emitter for valid and
// out-of-range methods.
func TestShowSolver(t *testing.T) {
	var sb strings.Builder

	solver.ShowSolver(&sb, solver.LaguerreConway)
	assert.Contains(t, sb.String(), "Laguerre-Conway")

	sb.Reset()
	solver.ShowSolver(&sb, solver.Total+7)
	assert.Contains(t, sb.String(), "invalid solver method")
}

// TestMethod_String covers the Stringer surface.
func TestMethod_String(t *testing.T) {
	assert.Equal(t, "None", solver.None.String())
	assert.Equal(t, "Nijenhuis", solver.Nijenhuis.String())
	assert.Contains(t, (solver.Total + 1).String(), "Method(")
}
