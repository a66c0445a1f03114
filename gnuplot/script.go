// SPDX-License-Identifier: MIT
// Package: gnuplot
//
// Purpose:
//  - Turn a pivot list into the textual recurrence an external plotter
//    can evaluate: one statement per line, UTF-8, trailing newline.
//  - Keep emission byte-deterministic: same pivots, same bytes.
//
// Determinism & Performance:
//  - Literals use big.Float.Text('g', -1): the minimal digit string
//    that reproduces the stored value exactly at its precision.
//  - The whole script is assembled in memory first, so a writer error
//    cannot leave a half-emitted statement behind.

package gnuplot

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/bicross/cross"
)

// Script renders the recurrence for the given pivot list and returns it
// as a single string.
//
// Algorithm Outline:
//  1. Bind f(x,y) to the configured expression and e0 to f.
//  2. For each pivot n (1-indexed): bind xn and yn to the stored
//     coordinates, dn to eN-1(xn,yn), and eN to the update rule.
//  3. Close with a splot of the last error surface over [-1,1]².
//
// Errors: ErrPivotNil if any pivot coordinate is nil.
func Script(pivots []cross.Point, opts Options) (string, error) {
	var sb strings.Builder
	if err := emit(&sb, pivots, opts); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// Write emits the same script Script returns to w in a single write.
//
// Errors: ErrPivotNil for a malformed pivot, otherwise whatever the
// writer reports.
func Write(w io.Writer, pivots []cross.Point, opts Options) error {
	var sb strings.Builder
	if err := emit(&sb, pivots, opts); err != nil {
		return err
	}

	_, err := io.WriteString(w, sb.String())

	return err
}

// emit assembles the full script into sb.
func emit(sb *strings.Builder, pivots []cross.Point, opts Options) error {
	// Stage 1 - validate before writing anything.
	for i, p := range pivots {
		if p.X == nil || p.Y == nil {
			return fmt.Errorf("%w: pivot %d", ErrPivotNil, i)
		}
	}

	expr := opts.FunctionExpr
	if expr == "" {
		expr = DefaultFunctionExpr
	}

	// Stage 2 - target and base error function.
	fmt.Fprintf(sb, "f(x,y)=%s\n", expr)
	sb.WriteString("e0(x,y)=f(x,y)\n")

	// Stage 3 - one recurrence block per pivot, 1-indexed.
	for i, p := range pivots {
		n := i + 1
		fmt.Fprintf(sb, "x%d=%s\n", n, p.X.Text('g', -1))
		fmt.Fprintf(sb, "y%d=%s\n", n, p.Y.Text('g', -1))
		fmt.Fprintf(sb, "d%d=e%d(x%d,y%d)\n", n, i, n, n)
		fmt.Fprintf(sb, "e%d(x,y)=e%d(x,y)-e%d(x%d,y)*e%d(x,y%d)/d%d\n",
			n, i, i, n, i, n, n)
	}

	// Stage 4 - plot the deepest error surface that was actually built.
	fmt.Fprintf(sb, "splot [-1:1][-1:1] e%d(x,y)\n", len(pivots))

	return nil
}
