// SPDX-License-Identifier: MIT
// Package cross: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the cross
// package. Operations return these sentinels and tests check them via
// errors.Is. No algorithm panics on user-triggered error conditions; panics
// are reserved for programmer errors (domain violations the grid makes
// unreachable).

package cross

import "errors"

var (
	// ErrGridSize is returned when the requested grid size is below 1;
	// the node formula divides by it.
	ErrGridSize = errors.New("cross: grid size must be at least 1")

	// ErrIterCount is returned when the pivot budget is negative.
	// Zero is legal and yields a solver that selects nothing.
	ErrIterCount = errors.New("cross: iteration count must be non-negative")

	// ErrPrecision is returned when the working precision does not exceed
	// float64 (53 bits) or exceeds what the π literal supports.
	ErrPrecision = errors.New("cross: precision must exceed 53 bits and not exceed bignum.MaxPrec")

	// ErrCapacity is returned by Step once the pivot list has reached the
	// Iters budget the coefficient matrix was sized for at construction.
	ErrCapacity = errors.New("cross: pivot capacity exhausted")

	// ErrDegeneratePivot is returned when the maximal residual over the
	// candidate grid is exactly zero: the approximation already
	// reproduces the target on the grid and 1/0 would poison the update.
	// Callers decide whether that is success or failure.
	ErrDegeneratePivot = errors.New("cross: maximal grid residual is exactly zero")

	// ErrGridIndex indicates a node index outside [0, Len).
	ErrGridIndex = errors.New("cross: grid node index out of range")

	// ErrCoeffIndex indicates a coefficient index outside the Iters×Iters
	// matrix.
	ErrCoeffIndex = errors.New("cross: coefficient index out of range")
)
