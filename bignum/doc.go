// Package bignum provides the arbitrary-precision arithmetic collaborators
// behind the cross-approximation solver: π, Cos, Sin and ArcCos on
// math/big.Float values at a caller-chosen binary precision.
//
// 🚀 Why not math.* ?
//
//	The solver telescopes residuals through dozens of rank-one updates;
//	at float64 precision the later pivots drown in rounding noise long
//	before the recurrence stops improving.  Everything here therefore
//	runs on big.Float, where the standard library already covers
//	+, −, ×, ÷ (Quo signals 0/0 by panicking with ErrNaN), Sqrt, Abs,
//	Cmp and decimal-string construction.  This package fills the
//	transcendental gap.
//
// ✨ What you get:
//   - NewFloat / ParseFloat — construction at explicit precision
//   - Pi — π from an embedded 1000-digit decimal literal
//   - Cos — Johansson's iterative half-angle doubling (2018)
//   - Sin — phase shift of Cos
//   - ArcCos — Newton refinement of a hybrid float64 / small-angle seed
//
// ⚙️ Contracts:
//
//	All functions are pure: the same input value at the same precision
//	always yields the bit-identical result.  Internal work carries a
//	fixed number of guard bits and rounds to the caller's precision
//	exactly once, at return.  Arguments must be finite; ArcCos arguments
//	must lie in [−1, 1].  Violations are programmer errors and panic.
//
// Precision is capped at MaxPrec (the π literal bounds it); validate
// user-supplied precisions against MaxPrec before calling in.
package bignum
