package kepeq_test

import (
	"math"
	"testing"

	"github.com/akobaz/libkes"
	"github.com/akobaz/libkes/kepeq"
	"github.com/stretchr/testify/assert"
)

// TestEll_KnownRoots verifies the elliptic residual vanishes at points
// constructed from the defining relation M = x − e·sin x.
func TestEll_KnownRoots(t *testing.T) {
	for _, ecc := range []float64{0.0, 0.1, 0.5, 0.9, 0.99} {
		for _, x := range []float64{0.0, 0.3, 1.0, math.Pi / 2, 2.5, math.Pi} {
			ma := x - ecc*math.Sin(x)
			assert.InDelta(t, 0.0, kepeq.Ell(ecc, ma, x), 1e-15,
				"residual must vanish at the constructed root (e=%v, x=%v)", ecc, x)
		}
	}
}

// TestEll_SignChange verifies f is negative below and positive above
// the root, the bracket property the bisection kernel relies on.
func TestEll_SignChange(t *testing.T) {
	const (
		ecc = 0.5
		ma  = 1.0
	)

	assert.Negative(t, kepeq.Ell(ecc, ma, ma), "f(M) < 0 for 0 < M < π")
	assert.Positive(t, kepeq.Ell(ecc, ma, ma+ecc), "f(M+e) > 0 for 0 < M < π")
}

// TestHyp_KnownRoots verifies the hyperbolic residual vanishes at
// points constructed from M = e·sinh x − x.
func TestHyp_KnownRoots(t *testing.T) {
	for _, ecc := range []float64{1.1, 2.0, 5.0} {
		for _, x := range []float64{0.0, 0.5, 1.0, 2.0} {
			ma := ecc*math.Sinh(x) - x
			assert.InDelta(t, 0.0, kepeq.Hyp(ecc, ma, x), 1e-12,
				"residual must vanish at the constructed root (e=%v, x=%v)", ecc, x)
		}
	}
}

// TestPar_KnownRoots verifies Barker's residual vanishes at points
// constructed from M = s + s³/3, s = tan(ν/2).
func TestPar_KnownRoots(t *testing.T) {
	for _, nu := range []float64{0.0, 0.5, 1.0, 2.0} {
		s := math.Tan(0.5 * nu)
		ma := s + s*s*s/3.0
		assert.InDelta(t, 0.0, kepeq.Par(ma, nu), 1e-14,
			"residual must vanish at the constructed root (nu=%v)", nu)
	}
}

// TestSinCos_MatchesStdlib verifies the half-angle-tangent evaluation
// against math.Sin/math.Cos, both unscaled and eccentricity-scaled.
func TestSinCos_MatchesStdlib(t *testing.T) {
	for _, x := range []float64{-2.5, -1.0, -0.1, 0.0, 0.3, 1.0, 2.0, 3.0} {
		sin, cos := kepeq.SinCos(x, -1.0)
		assert.InDelta(t, math.Sin(x), sin, 1e-13, "sin at x=%v", x)
		assert.InDelta(t, math.Cos(x), cos, 1e-13, "cos at x=%v", x)

		const ecc = 0.7
		esin, ecos := kepeq.SinCos(x, ecc)
		assert.InDelta(t, ecc*math.Sin(x), esin, 1e-13, "e·sin at x=%v", x)
		assert.InDelta(t, ecc*math.Cos(x), ecos, 1e-13, "e·cos at x=%v", x)
	}
}

// TestReduce_Range verifies reduced angles land in [−π, π) for inputs
// many periods away from the principal interval.
func TestReduce_Range(t *testing.T) {
	for _, x := range []float64{-100.0, -7.0, -math.Pi, -0.5, 0.0, 0.5, 3.0, 7.0, 100.0, 1e6} {
		red := kepeq.Reduce(x)
		assert.GreaterOrEqual(t, red, -math.Pi, "lower bound at x=%v", x)
		assert.LessOrEqual(t, red, math.Pi, "upper bound at x=%v", x)

		// the reduction is a shift by an integer number of periods
		k := (x - red) / (2 * math.Pi)
		assert.InDelta(t, math.Round(k), k, 1e-9, "must shift by whole periods at x=%v", x)
	}
}

// TestReduce_Idempotent verifies reduce(reduce(x)) = reduce(x).
func TestReduce_Idempotent(t *testing.T) {
	for _, x := range []float64{-20.0, -3.0, -0.1, 0.0, 1.0, 4.0, 40.0} {
		red := kepeq.Reduce(x)
		assert.Equal(t, red, kepeq.Reduce(red), "idempotence at x=%v", x)
	}
}

// TestReduce_NonFinite verifies non-finite input passes through
// unchanged rather than looping or fabricating a value.
func TestReduce_NonFinite(t *testing.T) {
	assert.True(t, math.IsNaN(kepeq.Reduce(math.NaN())), "NaN passes through")
	assert.True(t, math.IsInf(kepeq.Reduce(math.Inf(1)), 1), "+Inf passes through")
}

// TestClassify_Regimes walks every regime and its error signal.
func TestClassify_Regimes(t *testing.T) {
	cases := []struct {
		name string
		ecc  float64
		want kepeq.Regime
		ok   bool
	}{
		{"zero", 0.0, kepeq.Circular, true},
		{"below threshold", 0.5e-10, kepeq.Circular, true},
		{"at threshold", 1e-10, kepeq.Circular, true},
		{"elliptic low", 1.1e-10, kepeq.Elliptic, true},
		{"elliptic mid", 0.5, kepeq.Elliptic, true},
		{"elliptic high", 1.0 - 1.1e-10, kepeq.Elliptic, true},
		{"parabolic low", 1.0 - 0.9e-10, kepeq.Parabolic, true},
		{"parabolic exact", 1.0, kepeq.Parabolic, true},
		{"parabolic high", 1.0 + 0.9e-10, kepeq.Parabolic, true},
		{"hyperbolic low", 1.0 + 1.1e-10, kepeq.Hyperbolic, true},
		{"hyperbolic", 5.0, kepeq.Hyperbolic, true},
		{"negative", -0.1, kepeq.Invalid, false},
		{"nan", math.NaN(), kepeq.Invalid, false},
		{"inf", math.Inf(1), kepeq.Invalid, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			regime, err := kepeq.Classify(tc.ecc)
			assert.Equal(t, tc.want, regime)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, libkes.ErrBadEccentricity)
			}
		})
	}
}

// TestFinite verifies the NaN/Inf rejection helper.
func TestFinite(t *testing.T) {
	assert.NoError(t, kepeq.Finite(0.0))
	assert.NoError(t, kepeq.Finite(-1e300))
	assert.ErrorIs(t, kepeq.Finite(math.NaN()), libkes.ErrBadValue)
	assert.ErrorIs(t, kepeq.Finite(math.Inf(-1)), libkes.ErrBadValue)
}

// TestTrueAnomaly_Elliptic cross-checks the half-angle form against the
// atan2 form ν = atan2(√(1−e²)·sin E, cos E − e).
func TestTrueAnomaly_Elliptic(t *testing.T) {
	for _, ecc := range []float64{0.1, 0.5, 0.9} {
		for _, x := range []float64{0.1, 1.0, 2.0, 3.0} {
			want := math.Atan2(math.Sqrt(1.0-ecc*ecc)*math.Sin(x), math.Cos(x)-ecc)
			assert.InDelta(t, want, kepeq.TrueAnomaly(ecc, x), 1e-12,
				"atan2 cross-check (e=%v, x=%v)", ecc, x)
		}
	}
}

// TestTrueAnomaly_Hyperbolic spot-checks the hyperbolic branch formula.
func TestTrueAnomaly_Hyperbolic(t *testing.T) {
	const (
		ecc = 2.0
		x   = 1.0
	)

	want := 2.0 * math.Atan(math.Sqrt((ecc+1.0)/(ecc-1.0))*math.Tanh(0.5*x))
	assert.InDelta(t, want, kepeq.TrueAnomaly(ecc, x), 1e-15)
}

// TestTrueAnomaly_Monotone verifies ν grows with E across the upper
// half-orbit for a moderate eccentricity.
func TestTrueAnomaly_Monotone(t *testing.T) {
	const ecc = 0.4

	prev := kepeq.TrueAnomaly(ecc, 0.01)
	for x := 0.1; x < 3.0; x += 0.1 {
		nu := kepeq.TrueAnomaly(ecc, x)
		assert.Greater(t, nu, prev, "true anomaly must increase at x=%v", x)
		prev = nu
	}
}
