// Package cross implements greedy bivariate cross approximation: a
// rank-k surrogate of a target function f(x, y) over [−1, 1]², grown one
// pivot at a time by scanning a Chebyshev-like candidate grid for the
// point where the current residual is largest in magnitude.
//
// 🚀 How it works
//
//	Starting from e₀ = f, each iteration picks the pivot (xₖ, yₖ) that
//	maximizes |eₖ| over the grid and telescopes
//
//	    eₖ₊₁(x, y) = eₖ(x, y) − eₖ(xₖ, y)·eₖ(x, yₖ) / eₖ(xₖ, yₖ)
//
//	The solver never materializes eₖ pointwise; it maintains a
//	coefficient matrix M and the pivot list so that
//
//	    eₖ(x, y) = f(x, y) + Σᵢ Σⱼ M[j][i]·f(xᵢ, y)·f(x, yⱼ)
//
//	holds exactly, and refreshes M with one rank-one update per pivot.
//
// ✨ Key features:
//   - arbitrary-precision arithmetic (math/big.Float, configurable bits)
//   - memoized target evaluation: each coordinate pair is computed once
//   - fully deterministic: scan order and tie-break are part of the
//     contract, so identical runs reproduce pivots bit for bit
//   - optional parallel grid scan that preserves the serial result
//   - pluggable target function; the classic sin/acos/sqrt experiment
//     target ships as the default
//
// ⚙️ Usage:
//
//	opts := cross.DefaultOptions()
//	opts.GridSize = 33
//	opts.Iters = 6
//
//	s, err := cross.New(opts)
//	if err != nil { ... }
//	if err := s.Run(); err != nil { ... } // ErrDegeneratePivot = exact fit
//	pivots := s.Pivots()
//
// Performance:
//
//   - Scan:   O(GridSize²·k²) cached target lookups per iteration
//   - Update: O(k²) big.Float multiplications per iteration
//   - Memory: O(Iters²) matrix entries plus the evaluation cache, which
//     grows monotonically and is never evicted
//
// The solver itself is not safe for concurrent use; drive Step/Run from
// one goroutine. Workers > 1 parallelizes only the internal grid scan.
package cross
