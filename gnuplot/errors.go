// SPDX-License-Identifier: MIT
// Package gnuplot: sentinel error set.
// Emission has one failure mode of its own (a malformed pivot); writer
// errors pass through unwrapped so callers keep the io error they know.

package gnuplot

import "errors"

// ErrPivotNil reports a pivot with a nil X or Y coordinate. Pivot lists
// produced by the solver never contain one; hand-built lists might.
var ErrPivotNil = errors.New("gnuplot: pivot coordinate is nil")
