// SPDX-License-Identifier: MIT
// Package gnuplot: emission configuration.

package gnuplot

// DefaultFunctionExpr is the gnuplot right-hand side of f(x,y)= for the
// solver's built-in target. It is the same surface the solver samples:
// u = (x+1)/2, d = (y+1)/2, f = sin((1-u)*acos(d))/sqrt(1-d*d),
// spelled in gnuplot syntax.
const DefaultFunctionExpr = "sin((1-x)/2*acos((1+y)/2))/sqrt(1-((y+1)/2)**2)"

// Options configures script emission.
//
// The zero value is NOT usable directly; start from DefaultOptions and
// override fields as needed.
type Options struct {
	// FunctionExpr is the gnuplot expression bound to f(x,y). Callers
	// approximating a custom target supply the matching expression here;
	// an empty string falls back to DefaultFunctionExpr.
	FunctionExpr string
}

// DefaultOptions returns the canonical emission setup for the built-in
// target.
func DefaultOptions() Options {
	return Options{FunctionExpr: DefaultFunctionExpr}
}
