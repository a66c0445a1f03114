// Package logging builds the zap loggers bicross components share.
//
// Logs default to stderr: stdout is reserved for the emitted gnuplot
// script, so the two streams stay separable in a pipeline
// (`bicross | gnuplot` with diagnostics still visible).
//
// Two profiles exist. Production encodes JSON at info level;
// development switches to a colored console encoder with stacktraces.
package logging
