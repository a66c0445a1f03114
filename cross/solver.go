package cross

import (
	"math/big"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Solver grows a cross approximation of the target function one pivot at
// a time. It owns the candidate grid, the evaluation cache, the
// coefficient matrix and the pivot list; together they represent the
// current error function
//
//	e_k(x, y) = f(x, y) + Σᵢ Σⱼ M[j][i]·f(xᵢ, y)·f(x, yⱼ),  i, j < k
//
// exactly, without ever materializing e_k pointwise.
//
// Not safe for concurrent use: drive Step/Run from one goroutine.
type Solver struct {
	opts   Options
	prec   uint
	grid   *Grid
	cache  *evalCache
	m      []*big.Float // Iters×Iters coefficients, row-major: m[j*Iters+i]
	pivots []Point
	log    *zap.Logger
}

// New validates opts and builds a ready-to-run Solver: grid nodes
// computed, coefficient matrix zeroed at its full Iters×Iters capacity,
// evaluation cache empty.
//
// Errors: ErrGridSize, ErrIterCount, ErrPrecision.
func New(opts Options) (*Solver, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if opts.Function == nil {
		opts.Function = DefaultTarget
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	grid, err := NewChebyshevGrid(opts.GridSize, opts.Prec)
	if err != nil {
		return nil, err
	}

	// The matrix never grows: capacity is a construction-time property.
	m := make([]*big.Float, opts.Iters*opts.Iters)
	for i := range m {
		m[i] = new(big.Float).SetPrec(opts.Prec)
	}

	return &Solver{
		opts:   opts,
		prec:   opts.Prec,
		grid:   grid,
		cache:  newEvalCache(opts.Function),
		m:      m,
		pivots: make([]Point, 0, opts.Iters),
		log:    opts.Logger,
	}, nil
}

// Step performs one pivot-selection iteration.
//
// Algorithm Outline:
//  1. Scan all (GridSize+1)² candidate pairs, y outer / x inner in grid
//     order, for the maximal |e_k|; on equal magnitude the later
//     candidate in scan order wins. Scan order and tie-break are part of
//     the public contract — they decide which pivot a run reproduces.
//  2. The winning value v* becomes the denominator d_k = 1/v*. A zero
//     v* means the surrogate already reproduces the target on every
//     candidate; return ErrDegeneratePivot before dividing.
//  3. Build the cross vectors over the live block, with the implicit f
//     slot at index k:
//     ekX[j] = Σᵢ M[j][i]·f(xᵢ, y*),  ekY[i] = Σⱼ M[j][i]·f(x*, yⱼ),
//     ekX[k] = ekY[k] = 1.
//  4. Rank-one update over 0..k: M[j][i] −= ekY[i]·ekX[j]·d_k. After the
//     update e_{k+1}(x*, y*) telescopes to zero.
//  5. Append (x*, y*) to the pivot list and log the iteration.
//
// Errors: ErrCapacity once the pivot list has reached Iters;
// ErrDegeneratePivot on a zero maximal residual (legitimate early
// termination — the caller decides whether that is success).
//
// Complexity: O(GridSize²·k²) cached lookups + O(k²) matrix updates.
func (s *Solver) Step() error {
	k := len(s.pivots)
	if k == s.opts.Iters {
		return ErrCapacity
	}
	start := time.Now()

	// Stage 1 - locate the maximal residual.
	bx, by, v := s.scan()

	// Stage 2 - degenerate pivot guard, checked before any division.
	if v.Sign() == 0 {
		return ErrDegeneratePivot
	}
	dk := new(big.Float).SetPrec(s.prec).SetInt64(1)
	dk.Quo(dk, v)

	// Stage 3 - cross vectors.
	ekX := make([]*big.Float, k+1)
	ekY := make([]*big.Float, k+1)
	for idx := 0; idx <= k; idx++ {
		ekX[idx] = new(big.Float).SetPrec(s.prec)
		ekY[idx] = new(big.Float).SetPrec(s.prec)
	}
	term := new(big.Float).SetPrec(s.prec)
	for i := 0; i < k; i++ {
		fxi := s.cache.eval(s.pivots[i].X, by)
		for j := 0; j < k; j++ {
			mji := s.m[j*s.opts.Iters+i]
			if mji.Sign() == 0 {
				continue // untouched capacity or cancelled entry
			}
			term.Mul(mji, fxi)
			ekX[j].Add(ekX[j], term)
			term.Mul(mji, s.cache.eval(bx, s.pivots[j].Y))
			ekY[i].Add(ekY[i], term)
		}
	}
	ekX[k].SetInt64(1)
	ekY[k].SetInt64(1)

	// Stage 4 - rank-one update of the live (k+1)×(k+1) block.
	for i := 0; i <= k; i++ {
		for j := 0; j <= k; j++ {
			term.Mul(ekY[i], ekX[j])
			term.Mul(term, dk)
			mji := s.m[j*s.opts.Iters+i]
			mji.Sub(mji, term)
		}
	}

	// Stage 5 - record the pivot.
	s.pivots = append(s.pivots, Point{X: bx, Y: by})

	xf, _ := bx.Float64()
	yf, _ := by.Float64()
	vf, _ := v.Float64()
	hits, misses := s.cache.stats()
	s.log.Info("pivot selected",
		zap.Int("iteration", k+1),
		zap.Float64("x", xf),
		zap.Float64("y", yf),
		zap.Float64("residual", vf),
		zap.Int("cache_entries", s.cache.size()),
		zap.Uint64("cache_hits", hits),
		zap.Uint64("cache_misses", misses),
		zap.Duration("elapsed", time.Since(start)),
	)

	return nil
}

// Run calls Step until the pivot budget is exhausted and returns the
// first error. A completed run returns nil; ErrDegeneratePivot is
// forwarded as-is so the caller can treat an early exact fit on its own
// terms.
func (s *Solver) Run() error {
	for len(s.pivots) < s.opts.Iters {
		if err := s.Step(); err != nil {
			return err
		}
	}

	return nil
}

// Residual evaluates the current error function e_k at (x, y). The
// result is freshly allocated and owned by the caller; target values it
// consumes are memoized.
func (s *Solver) Residual(x, y *big.Float) *big.Float {
	return s.residualAt(x, y)
}

// Target returns the memoized target value f(x, y) as a fresh copy.
// Each distinct coordinate pair evaluates the underlying function at
// most once per Solver lifetime.
func (s *Solver) Target(x, y *big.Float) *big.Float {
	return new(big.Float).Copy(s.cache.eval(x, y))
}

// PivotCount returns the number of pivots selected so far.
func (s *Solver) PivotCount() int { return len(s.pivots) }

// Pivots returns a deep copy of the pivot list in selection order.
func (s *Solver) Pivots() []Point {
	out := make([]Point, len(s.pivots))
	for i, p := range s.pivots {
		out[i] = Point{X: new(big.Float).Copy(p.X), Y: new(big.Float).Copy(p.Y)}
	}

	return out
}

// Coefficient returns a copy of M[row][col]: the weight of the
// f(x_col, y)·f(x, y_row) term of the error representation.
//
// Errors: ErrCoeffIndex outside the Iters×Iters capacity.
func (s *Solver) Coefficient(row, col int) (*big.Float, error) {
	if row < 0 || row >= s.opts.Iters || col < 0 || col >= s.opts.Iters {
		return nil, ErrCoeffIndex
	}

	return new(big.Float).Copy(s.m[row*s.opts.Iters+col]), nil
}

// Grid returns the candidate grid. Nodes are shared and read-only.
func (s *Solver) Grid() *Grid { return s.grid }

// Prec returns the working precision in bits.
func (s *Solver) Prec() uint { return s.prec }

// CacheStats reports the evaluation cache: distinct pairs evaluated,
// cumulative hits and cumulative misses.
func (s *Solver) CacheStats() (entries int, hits, misses uint64) {
	hits, misses = s.cache.stats()

	return s.cache.size(), hits, misses
}

// residualAt computes e_k(x, y) from the representation. Term order is
// fixed (i outer, j inner, f first) so identical inputs round
// identically; the invariant tests rebuild the same sum through the
// public accessors and expect bit equality.
func (s *Solver) residualAt(x, y *big.Float) *big.Float {
	ret := new(big.Float).SetPrec(s.prec).Set(s.cache.eval(x, y))
	k := len(s.pivots)
	if k == 0 {
		return ret
	}

	term := new(big.Float).SetPrec(s.prec)
	for i := 0; i < k; i++ {
		fxi := s.cache.eval(s.pivots[i].X, y)
		for j := 0; j < k; j++ {
			mji := s.m[j*s.opts.Iters+i]
			if mji.Sign() == 0 {
				continue
			}
			term.Mul(mji, fxi)
			term.Mul(term, s.cache.eval(x, s.pivots[j].Y))
			ret.Add(ret, term)
		}
	}

	return ret
}

// scanBest is one candidate in the (|residual|, scan index) order the
// scan maximizes; idx = −1 marks an empty slot.
type scanBest struct {
	res *big.Float
	abs *big.Float
	idx int
}

// scan locates the candidate pair with maximal |e_k| and returns its
// coordinates (shared grid nodes) and the residual value there.
func (s *Solver) scan() (x, y, res *big.Float) {
	var best scanBest
	if s.opts.Workers > 1 {
		best = s.scanParallel()
	} else {
		best = s.scanRows(0, 1)
	}
	n := s.grid.Len()

	return s.grid.nodes[best.idx%n], s.grid.nodes[best.idx/n], best.res
}

// scanRows walks rows first, first+stride, … in grid order and reduces
// to the local winner. Maximizing (|residual|, scan index)
// lexicographically reproduces the serial later-tie-wins rule no matter
// how rows are partitioned.
func (s *Solver) scanRows(first, stride int) scanBest {
	n := s.grid.Len()
	best := scanBest{idx: -1}
	for iy := first; iy < n; iy += stride {
		yNode := s.grid.nodes[iy]
		for ix := 0; ix < n; ix++ {
			res := s.residualAt(s.grid.nodes[ix], yNode)
			abs := new(big.Float).SetPrec(s.prec).Abs(res)
			idx := iy*n + ix
			if best.idx < 0 {
				best = scanBest{res: res, abs: abs, idx: idx}
				continue
			}
			if cmp := abs.Cmp(best.abs); cmp > 0 || (cmp == 0 && idx > best.idx) {
				best = scanBest{res: res, abs: abs, idx: idx}
			}
		}
	}

	return best
}

// scanParallel fans the row scan out across Workers goroutines and
// merges the local winners under the same lexicographic order, so the
// selected pivot is bit-identical to the serial scan.
func (s *Solver) scanParallel() scanBest {
	workers := s.opts.Workers
	if n := s.grid.Len(); workers > n {
		workers = n
	}

	locals := make([]scanBest, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			locals[w] = s.scanRows(w, workers)
		}(w)
	}
	wg.Wait()

	best := scanBest{idx: -1}
	for _, loc := range locals {
		if loc.idx < 0 {
			continue
		}
		if best.idx < 0 {
			best = loc
			continue
		}
		if cmp := loc.abs.Cmp(best.abs); cmp > 0 || (cmp == 0 && loc.idx > best.idx) {
			best = loc
		}
	}

	return best
}
