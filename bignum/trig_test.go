package bignum_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/katalvlaran/bicross/bignum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const trigPrec = 256

// assertWithinBits fails unless |want − got| ≤ 2^(−bits).
func assertWithinBits(t *testing.T, want, got *big.Float, bits int, msg string) {
	t.Helper()
	diff := new(big.Float).SetPrec(want.Prec() + 64).Sub(want, got)
	diff.Abs(diff)
	one := new(big.Float).SetInt64(1)
	bound := new(big.Float).SetMantExp(one, -bits)
	assert.LessOrEqual(t, diff.Cmp(bound), 0, "%s: |want−got|=%s exceeds 2^-%d", msg, diff.Text('e', 6), bits)
}

// TestCos_ZeroIsExactlyOne verifies the seed degenerates exactly at 0.
func TestCos_ZeroIsExactlyOne(t *testing.T) {
	got := bignum.Cos(bignum.NewFloat(0, trigPrec))
	assert.Zero(t, got.Cmp(bignum.NewFloat(1, trigPrec)), "cos(0) must be exactly 1")
}

// TestCos_AtPi verifies cos(π) ≈ −1 to nearly full precision, which
// exercises the π literal and the doubling loop together.
func TestCos_AtPi(t *testing.T) {
	got := bignum.Cos(bignum.Pi(trigPrec))
	assertWithinBits(t, bignum.NewFloat(-1, trigPrec), got, trigPrec-10, "cos(π)")
}

// TestCos_PiOverThree verifies the exact landmark cos(π/3) = 1/2.
func TestCos_PiOverThree(t *testing.T) {
	arg := new(big.Float).SetPrec(trigPrec).Quo(bignum.Pi(trigPrec), bignum.NewFloat(3, trigPrec))
	got := bignum.Cos(arg)
	assertWithinBits(t, bignum.NewFloat(0.5, trigPrec), got, trigPrec-10, "cos(π/3)")
}

// TestCos_MatchesFloat64 cross-checks against math.Cos on moderate
// arguments.
func TestCos_MatchesFloat64(t *testing.T) {
	for _, x := range []float64{0.1, 0.5, 1.0, 1.5, 2.0, 2.5, 3.0, -0.7, -2.9} {
		got, _ := bignum.Cos(bignum.NewFloat(x, trigPrec)).Float64()
		assert.InDelta(t, math.Cos(x), got, 1e-13, "cos(%v)", x)
	}
}

// TestCos_EvenSymmetry verifies cos(−x) is bit-identical to cos(x); the
// seed squares the scaled argument, so the sign must vanish exactly.
func TestCos_EvenSymmetry(t *testing.T) {
	x := bignum.NewFloat(1.234567, trigPrec)
	nx := new(big.Float).SetPrec(trigPrec).Neg(x)
	assert.Zero(t, bignum.Cos(x).Cmp(bignum.Cos(nx)), "cos must be even bit for bit")
}

// TestCos_PeriodReduction verifies arguments beyond [−π, π] reduce to
// the principal value.
func TestCos_PeriodReduction(t *testing.T) {
	x := bignum.NewFloat(0.75, trigPrec)
	shifted := new(big.Float).SetPrec(trigPrec).SetMantExp(bignum.Pi(trigPrec), 3) // 8π
	shifted.Add(shifted, x)
	assertWithinBits(t, bignum.Cos(x), bignum.Cos(shifted), trigPrec-20, "cos(x+8π)")
}

// TestSin_Landmarks verifies sin at 0, π/6 and π/2.
func TestSin_Landmarks(t *testing.T) {
	zero := bignum.NewFloat(0, trigPrec)
	assertWithinBits(t, zero, bignum.Sin(zero), trigPrec-10, "sin(0)")

	sixth := new(big.Float).SetPrec(trigPrec).Quo(bignum.Pi(trigPrec), bignum.NewFloat(6, trigPrec))
	assertWithinBits(t, bignum.NewFloat(0.5, trigPrec), bignum.Sin(sixth), trigPrec-10, "sin(π/6)")

	half := new(big.Float).SetPrec(trigPrec).SetMantExp(bignum.Pi(trigPrec), -1)
	assertWithinBits(t, bignum.NewFloat(1, trigPrec), bignum.Sin(half), trigPrec-10, "sin(π/2)")
}

// TestSin_PythagoreanIdentity verifies sin²x + cos²x = 1 across a spread
// of arguments.
func TestSin_PythagoreanIdentity(t *testing.T) {
	one := bignum.NewFloat(1, trigPrec)
	for _, x := range []float64{0.2, 0.9, 1.4, 2.2, 3.0, -1.1} {
		arg := bignum.NewFloat(x, trigPrec)
		s := bignum.Sin(arg)
		c := bignum.Cos(arg)
		sum := new(big.Float).SetPrec(trigPrec).Mul(s, s)
		cc := new(big.Float).SetPrec(trigPrec).Mul(c, c)
		sum.Add(sum, cc)
		assertWithinBits(t, one, sum, trigPrec-12, "sin²+cos² at x")
	}
}

// TestArcCos_Endpoints verifies the exact endpoint shortcuts.
func TestArcCos_Endpoints(t *testing.T) {
	atOne := bignum.ArcCos(bignum.NewFloat(1, trigPrec))
	assert.Zero(t, atOne.Sign(), "arccos(1) must be exactly 0")

	atMinusOne := bignum.ArcCos(bignum.NewFloat(-1, trigPrec))
	assert.Zero(t, atMinusOne.Cmp(bignum.Pi(trigPrec)), "arccos(−1) must be exactly π")
}

// TestArcCos_Zero verifies arccos(0) = π/2.
func TestArcCos_Zero(t *testing.T) {
	want := new(big.Float).SetPrec(trigPrec).SetMantExp(bignum.Pi(trigPrec), -1)
	got := bignum.ArcCos(bignum.NewFloat(0, trigPrec))
	assertWithinBits(t, want, got, trigPrec-10, "arccos(0)")
}

// TestArcCos_MatchesFloat64 cross-checks against math.Acos away from the
// endpoints.
func TestArcCos_MatchesFloat64(t *testing.T) {
	for _, x := range []float64{-0.9, -0.5, -0.1, 0.0, 0.3, 0.7, 0.95} {
		got, _ := bignum.ArcCos(bignum.NewFloat(x, trigPrec)).Float64()
		assert.InDelta(t, math.Acos(x), got, 1e-13, "arccos(%v)", x)
	}
}

// TestArcCos_RoundTripNearOne exercises the small-angle seed branch,
// where the float64 route would collapse onto the endpoint: choosing a
// grid-perturbation-sized argument, cos(arccos(a)) must recover a.
func TestArcCos_RoundTripNearOne(t *testing.T) {
	for _, lit := range []string{"0.9999999999999995", "0.999999999999999", "0.9999"} {
		a, err := bignum.ParseFloat(lit, trigPrec)
		require.NoError(t, err)

		back := bignum.Cos(bignum.ArcCos(a))
		assertWithinBits(t, a, back, trigPrec-24, "cos(arccos("+lit+"))")
	}
}

// TestArcCos_NegativeReflection verifies arccos(−a) = π − arccos(a).
func TestArcCos_NegativeReflection(t *testing.T) {
	a := bignum.NewFloat(0.37, trigPrec)
	na := new(big.Float).SetPrec(trigPrec).Neg(a)

	want := new(big.Float).SetPrec(trigPrec).Sub(bignum.Pi(trigPrec), bignum.ArcCos(a))
	assertWithinBits(t, want, bignum.ArcCos(na), trigPrec-12, "arccos reflection")
}

// TestArcCos_PanicsOutsideDomain verifies |x| > 1 is treated as a
// programmer error.
func TestArcCos_PanicsOutsideDomain(t *testing.T) {
	assert.Panics(t, func() { bignum.ArcCos(bignum.NewFloat(1.5, trigPrec)) }, "x > 1 must panic")
	assert.Panics(t, func() { bignum.ArcCos(bignum.NewFloat(-1.0001, trigPrec)) }, "x < −1 must panic")
}

// TestTrig_Deterministic verifies repeated evaluation is bit-identical,
// the property the solver's reproducibility contract rests on.
func TestTrig_Deterministic(t *testing.T) {
	x := bignum.NewFloat(0.8125, trigPrec)
	assert.Zero(t, bignum.Cos(x).Cmp(bignum.Cos(x)), "Cos must be deterministic")
	assert.Zero(t, bignum.Sin(x).Cmp(bignum.Sin(x)), "Sin must be deterministic")

	a := bignum.NewFloat(0.5625, trigPrec)
	assert.Zero(t, bignum.ArcCos(a).Cmp(bignum.ArcCos(a)), "ArcCos must be deterministic")
}

// TestTrig_InfinityPanics verifies non-finite arguments are rejected.
func TestTrig_InfinityPanics(t *testing.T) {
	inf := new(big.Float).SetPrec(trigPrec).SetInf(false)
	assert.Panics(t, func() { bignum.Cos(inf) }, "Cos(+Inf) must panic")
	assert.Panics(t, func() { bignum.Sin(inf) }, "Sin(+Inf) must panic")
	assert.Panics(t, func() { bignum.ArcCos(inf) }, "ArcCos(+Inf) must panic")
}
