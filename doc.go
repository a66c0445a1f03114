// Package bicross approximates a bivariate function by greedy cross
// approximation — pick the worst point, cancel it with a rank-one
// cross, repeat — and emits the resulting error-function recurrence as
// a gnuplot script.
//
// 🚀 What is bicross?
//
//	An arbitrary-precision solver for the 2D analogue of a Remez
//	exchange step. Each iteration:
//		• scans a perturbed Chebyshev candidate grid for the residual of
//		  largest magnitude,
//		• pins that pivot and updates a coefficient matrix so the new
//		  error function is exactly zero there,
//		• keeps every target evaluation memoized, bit-for-bit stable.
//
// ✨ Why choose bicross?
//
//   - Exact bookkeeping – the coefficient matrix reproduces every error
//     function at working precision, verifiable through public accessors
//   - Deterministic – identical inputs give identical pivots and bytes,
//     serial or parallel
//   - Self-contained numerics – big.Float trigonometry lives in bignum/,
//     no float64 shortcuts inside the loop
//
// Under the hood, everything is organized under five packages:
//
//	bignum/   — big.Float Cos, Sin, ArcCos and π at configurable precision
//	cross/    — candidate grid, evaluation cache, solver loop
//	gnuplot/  — symbolic recurrence emitter (pivot list in, script out)
//	residual/ — grid-wide residual statistics for logs and tests
//	logging/  — shared zap construction (stderr, prod/dev profiles)
//
// Quick start:
//
//	opts := cross.DefaultOptions()
//	s, err := cross.New(opts)
//	if err != nil { ... }
//	if err := s.Run(); err != nil { ... }
//	script, _ := gnuplot.Script(s.Pivots(), gnuplot.DefaultOptions())
//
// Or run the CLI and pipe it straight to a plotter:
//
//	go run ./cmd/bicross -grid-size 33 -iters 6 | gnuplot -p
package bicross
