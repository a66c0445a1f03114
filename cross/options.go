// SPDX-License-Identifier: MIT
// Package cross: solver configuration.

package cross

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/bicross/bignum"
)

const (
	// DefaultGridSize matches the classic experiment setup: 34 candidate
	// nodes per axis.
	DefaultGridSize = 33

	// DefaultIters is the classic pivot budget.
	DefaultIters = 6

	// DefaultPrec is the default working precision in bits, comfortably
	// beyond float64 so late pivots stay above the rounding floor.
	DefaultPrec = 512

	// minPrec is the float64 mantissa width; the working precision must
	// strictly exceed it.
	minPrec = 53
)

// Options configures a Solver.
//
// Fields:
//   - GridSize — n in the node formula; the grid carries n+1 nodes per
//     axis. Must be ≥ 1.
//   - Iters    — pivot budget; sizes the Iters×Iters coefficient matrix.
//     Must be ≥ 0 (0 builds a solver that selects nothing).
//   - Prec     — big.Float precision in bits, in (53, bignum.MaxPrec].
//   - Workers  — goroutines for the grid scan. Values below 1 are
//     treated as 1. Any value preserves the serial pivot selection bit
//     for bit.
//   - Function — target f(x, y); nil selects DefaultTarget.
//   - Logger   — iteration progress sink; nil selects zap.NewNop().
//
// Example:
//
//	opts := cross.DefaultOptions()
//	opts.Iters = 8
//	opts.Logger = logger
//	s, err := cross.New(opts)
type Options struct {
	GridSize int
	Iters    int
	Prec     uint
	Workers  int
	Function Func
	Logger   *zap.Logger
}

// DefaultOptions returns the classic experiment configuration:
// 34×34 candidate grid, 6 pivots, 512-bit arithmetic, serial scan.
func DefaultOptions() Options {
	return Options{
		GridSize: DefaultGridSize,
		Iters:    DefaultIters,
		Prec:     DefaultPrec,
		Workers:  1,
		Function: nil,
		Logger:   nil,
	}
}

// validate rejects configurations the solver cannot honor.
// Capacity is fixed here, at construction time, not discovered later.
func (o Options) validate() error {
	if o.GridSize < 1 {
		return ErrGridSize
	}
	if o.Iters < 0 {
		return ErrIterCount
	}
	if o.Prec <= minPrec || o.Prec > bignum.MaxPrec {
		return ErrPrecision
	}

	return nil
}
