package bignum

import (
	"math"
	"math/big"
)

// Cos computes cos(x) at x's precision.
//
// Algorithm Outline (Johansson 2018, iterative half-angle doubling):
//  1. Reduce x by whole periods into [−π, π].
//  2. Seed s ≈ 2·(1 − cos(x/2^(k−1))) with the small-angle square
//     s = (x·2^(1−k))², an exact power-of-two scaling.
//  3. Double the angle k−1 times via s ← s·(4 − s), which follows from
//     1 − cos(2θ) = 2·(1 − cos θ)·(1 + cos θ).
//  4. cos(x) = 1 − s/2.
//
// The error after k doublings decays like 2^(−2k), so k is tied to the
// working precision. All arithmetic runs at x's precision plus guard
// bits; the result is rounded back exactly once.
//
// Complexity: O(prec) big.Float multiplications.
func Cos(x *big.Float) *big.Float {
	if x.IsInf() {
		panic("bignum: trigonometric argument must be finite")
	}
	prec := x.Prec()
	wprec := prec + guardBits

	z := reducePeriod(x, wprec)

	// Step 2 - seed: s = (z·2^(1−k))², scaling is exact in binary.
	k := int(wprec/2) + 8
	zt := new(big.Float).SetPrec(wprec).SetMantExp(z, 1-k)
	s := new(big.Float).SetPrec(wprec).Mul(zt, zt)

	// Step 3 - k−1 angle doublings.
	four := new(big.Float).SetPrec(wprec).SetInt64(4)
	tmp := new(big.Float).SetPrec(wprec)
	for i := 1; i < k; i++ {
		tmp.Sub(four, s)
		s.Mul(s, tmp)
	}

	// Step 4 - cos = 1 − s/2 (halving is exact).
	s.SetMantExp(s, -1)
	res := new(big.Float).SetPrec(wprec).SetInt64(1)
	res.Sub(res, s)

	return res.SetPrec(prec)
}

// Sin computes sin(x) at x's precision via the phase shift
// sin(x) = cos(x − π/2).
func Sin(x *big.Float) *big.Float {
	if x.IsInf() {
		panic("bignum: trigonometric argument must be finite")
	}
	prec := x.Prec()
	wprec := prec + guardBits

	halfPi := Pi(wprec)
	halfPi.SetMantExp(halfPi, -1)
	arg := new(big.Float).SetPrec(wprec).Sub(x, halfPi)

	return Cos(arg).SetPrec(prec)
}

// ArcCos computes arccos(x) at x's precision for x in [−1, 1].
//
// Algorithm Outline:
//  1. Endpoints are exact: arccos(1) = 0, arccos(−1) = π. Arguments
//     outside [−1, 1] are a programmer error and panic.
//  2. Work on a = |x|. Seed t₀ with math.Acos(float64) away from 1;
//     near 1, where the float64 route can collapse onto the endpoint,
//     seed with the small-angle expansion arccos(1−δ) ≈ √(2δ)·(1+δ/12).
//  3. Refine by Newton on cos(t) = a: t ← t + (cos t − a)/sin t.
//     The step count is fixed from the seed's worst-case accuracy
//     (≥10 bits), so the result is deterministic.
//  4. For negative x, arccos(x) = π − arccos(−x).
//
// Complexity: O(log prec) Cos/Sin evaluations.
func ArcCos(x *big.Float) *big.Float {
	if x.IsInf() {
		panic("bignum: arccos argument must be finite")
	}
	prec := x.Prec()
	wprec := prec + guardBits

	one := new(big.Float).SetPrec(wprec).SetInt64(1)
	a := new(big.Float).SetPrec(wprec).Abs(x)

	// Step 1 - domain check and exact endpoints.
	switch a.Cmp(one) {
	case 1:
		panic("bignum: arccos argument outside [-1, 1]")
	case 0:
		if x.Sign() > 0 {
			return new(big.Float).SetPrec(prec)
		}

		return Pi(prec)
	}

	// Step 2 - hybrid seed.
	t := new(big.Float).SetPrec(wprec)
	if f, _ := a.Float64(); f <= 0.98 {
		t.SetFloat64(math.Acos(f))
	} else {
		delta := new(big.Float).SetPrec(wprec).Sub(one, a)
		root := new(big.Float).SetPrec(wprec).SetMantExp(delta, 1)
		root.Sqrt(root)
		corr := new(big.Float).SetPrec(wprec).SetInt64(12)
		corr.Quo(delta, corr)
		corr.Add(corr, one)
		t.Mul(root, corr)
	}

	// Step 3 - Newton refinement; each step doubles the correct bits.
	steps := 1
	for bits := uint(10); bits < wprec; bits *= 2 {
		steps++
	}
	corr := new(big.Float).SetPrec(wprec)
	for i := 0; i < steps; i++ {
		corr.Sub(Cos(t), a)
		corr.Quo(corr, Sin(t))
		t.Add(t, corr)
	}

	// Step 4 - reflect for negative arguments.
	if x.Sign() < 0 {
		res := Pi(wprec)
		res.Sub(res, t)

		return res.SetPrec(prec)
	}

	return t.SetPrec(prec)
}

// reducePeriod returns x shifted by a whole number of 2π periods into
// [−π, π], computed at wprec. Arguments already inside the interval are
// returned as-is (modulo precision extension), keeping the common case
// exact.
func reducePeriod(x *big.Float, wprec uint) *big.Float {
	z := new(big.Float).SetPrec(wprec).Set(x)
	pi := Pi(wprec)
	if new(big.Float).Abs(z).Cmp(pi) <= 0 {
		return z
	}

	twoPi := new(big.Float).SetPrec(wprec).SetMantExp(pi, 1)
	q := new(big.Float).SetPrec(wprec).Quo(z, twoPi)

	// Round q half away from zero to the nearest whole period count.
	half := new(big.Float).SetPrec(wprec).SetMantExp(new(big.Float).SetPrec(wprec).SetInt64(1), -1)
	if q.Signbit() {
		q.Sub(q, half)
	} else {
		q.Add(q, half)
	}
	n, _ := q.Int(nil)
	if n.Sign() != 0 {
		shift := new(big.Float).SetPrec(wprec).SetInt(n)
		shift.Mul(shift, twoPi)
		z.Sub(z, shift)
	}

	return z
}
