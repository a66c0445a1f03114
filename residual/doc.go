// Package residual summarizes the error surface a solver has reached,
// sampled over its own candidate grid.
//
// 🚀 Why survey?
//
//	The solver only reports the residual at the points it pivots on.
//	A survey walks the full candidate grid, takes |e_k| at every node
//	pair and condenses the surface into a handful of numbers a log line
//	or a test can digest: worst point, where it sits, mean and spread.
//
// ✨ Key properties:
//   - reads the solver through its public accessors only
//   - after a completed run every sample is a cache hit, so a survey
//     never adds target evaluations
//   - float64 statistics; the survey is a diagnostic, not a proof
//
// ⚙️ Usage:
//
//	sum := residual.Survey(solver)
//	log.Info("converged", zap.Float64("max", sum.Max))
//
// Statistics are computed with gonum's floats and stat packages.
package residual
