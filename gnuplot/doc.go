// Package gnuplot renders a selected pivot list as a self-contained
// gnuplot script that rebuilds the error-function recurrence
// symbolically.
//
// 🚀 Why a symbolic script?
//
//	The solver's coefficient matrix is an internal representation. The
//	same error functions can be written as a telescoping recurrence
//	over the pivots alone:
//	  e0(x,y) = f(x,y)
//	  eN(x,y) = eN-1(x,y) - eN-1(xN,y)*eN-1(x,yN)/dN,  dN = eN-1(xN,yN)
//	A plotting tool that understands algebraic function definitions can
//	therefore recompute every error surface from the script, with no
//	access to solver state.
//
// ✨ Key properties:
//   - consumes ONLY the pivot list; the coefficient matrix never leaks
//   - byte-deterministic output for a given pivot list and options
//   - numeric literals carry the full working precision (no rounding
//     below the stored pivot values)
//   - zero pivots is legal: the script defines f and e0 and plots e0
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/bicross/gnuplot"
//
//	script, err := gnuplot.Script(solver.Pivots(), gnuplot.DefaultOptions())
//	if err != nil { ... }
//	fmt.Print(script)
//
// Pipe the output straight into gnuplot, or write it with
// gnuplot.Write when streaming to a file or stdout.
package gnuplot
