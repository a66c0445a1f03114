package cross

import (
	"math/big"

	"github.com/katalvlaran/bicross/bignum"
)

// Point is a selected pivot: one candidate-grid coordinate pair.
// Coordinates are read-only by convention; mutating them corrupts the
// recurrence they were selected under.
type Point struct {
	X *big.Float
	Y *big.Float
}

// Func is a target function f(x, y) on [−1, 1]². Implementations must be
// pure and deterministic: the memoization and reproducibility guarantees
// of the solver are only as good as the function behind them. The result
// is expected at the precision of the arguments.
type Func func(x, y *big.Float) *big.Float

// DefaultTarget is the classic cross-approximation experiment target.
// With u = (x+1)/2 and d = (y+1)/2:
//
//	f(x, y) = sin((1−u)·acos(d)) / sqrt(1 − d²)
//
// The candidate grid keeps |y| strictly below 1, so d never reaches the
// ±1 boundary where the denominator vanishes. Evaluating there anyway is
// a construction bug and panics.
func DefaultTarget(x, y *big.Float) *big.Float {
	prec := x.Prec()
	if p := y.Prec(); p > prec {
		prec = p
	}
	one := bignum.NewFloat(1, prec)

	// u = (x+1)/2, d = (y+1)/2; halving is exact in binary.
	u := new(big.Float).SetPrec(prec).Add(x, one)
	u.SetMantExp(u, -1)
	d := new(big.Float).SetPrec(prec).Add(y, one)
	d.SetMantExp(d, -1)

	// sin((1−u)·acos(d))
	arg := new(big.Float).SetPrec(prec).Sub(one, u)
	arg.Mul(arg, bignum.ArcCos(d))
	num := bignum.Sin(arg)

	// sqrt(1 − d²)
	den := new(big.Float).SetPrec(prec).Mul(d, d)
	den.Sub(one, den)
	if den.Sign() == 0 {
		panic("cross: target evaluated at the |d| = 1 domain boundary")
	}
	den.Sqrt(den)

	return num.Quo(num, den)
}
