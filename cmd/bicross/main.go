// Command bicross runs the greedy bivariate cross-approximation solver
// and prints a gnuplot script reconstructing the error-function
// recurrence to stdout. Diagnostics go to stderr, so the script can be
// piped straight into gnuplot.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/katalvlaran/bicross/cross"
	"github.com/katalvlaran/bicross/gnuplot"
	"github.com/katalvlaran/bicross/logging"
	"github.com/katalvlaran/bicross/residual"
)

func main() {
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run wires config, logger, solver, survey and emission; out receives
// the script.
func run(out io.Writer, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("bicross", flag.ContinueOnError)
	fs.IntVar(&cfg.GridSize, "grid-size", cfg.GridSize, "candidate grid density per axis (grid-size+1 nodes)")
	fs.IntVar(&cfg.Iters, "iters", cfg.Iters, "number of pivots to select")
	fs.UintVar(&cfg.Prec, "prec", cfg.Prec, "working precision in bits")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "parallel scan workers (1 = serial)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "minimum log level (debug, info, warn, error)")
	fs.BoolVar(&cfg.LogDev, "log-dev", cfg.LogDev, "console log encoder with stacktraces")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}

		return err
	}

	logger, err := logging.New(logging.Config{
		Level:       cfg.LogLevel,
		Development: cfg.LogDev,
	})
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	opts := cross.DefaultOptions()
	opts.GridSize = cfg.GridSize
	opts.Iters = cfg.Iters
	opts.Prec = cfg.Prec
	opts.Workers = cfg.Workers
	opts.Logger = logger

	solver, err := cross.New(opts)
	if err != nil {
		return err
	}

	logger.Info("solving",
		zap.Int("grid_size", cfg.GridSize),
		zap.Int("iters", cfg.Iters),
		zap.Uint("prec", cfg.Prec),
		zap.Int("workers", cfg.Workers))

	if err := solver.Run(); err != nil {
		if !errors.Is(err, cross.ErrDegeneratePivot) {
			return err
		}
		// Legitimate early stop: the target is already reproduced
		// exactly; emit what was selected.
		logger.Warn("degenerate pivot, stopping early",
			zap.Int("pivots", solver.PivotCount()))
	}

	sum := residual.Survey(solver)
	logger.Info("residual survey",
		zap.Int("samples", sum.Samples),
		zap.Float64("max", sum.Max),
		zap.Float64("max_at_x", sum.ArgMaxX),
		zap.Float64("max_at_y", sum.ArgMaxY),
		zap.Float64("mean", sum.Mean),
		zap.Float64("std", sum.Std))

	return gnuplot.Write(out, solver.Pivots(), gnuplot.DefaultOptions())
}
