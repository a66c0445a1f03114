package residual

import (
	"math/big"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/bicross/cross"
)

// Surface is the slice of the solver a survey reads: the candidate grid
// and the current error function.
type Surface interface {
	Grid() *cross.Grid
	Residual(x, y *big.Float) *big.Float
}

// Summary condenses |e_k| sampled over the full candidate grid.
type Summary struct {
	// Samples is the number of grid pairs surveyed, (grid_size+1)².
	Samples int
	// Max is the largest |e_k| observed and ArgMaxX/ArgMaxY the node
	// pair it occurred at. Ties resolve to the first pair in scan
	// order (y outer, x inner).
	Max     float64
	ArgMaxX float64
	ArgMaxY float64
	// Mean and Std summarize the |e_k| distribution over the grid.
	Mean float64
	Std  float64
}

// Survey samples |e_k| at every candidate pair and summarizes the
// surface.
//
// Algorithm Outline:
//  1. Walk the grid in scan order and collect |e_k(x,y)| as float64.
//  2. Locate the maximum and its node pair.
//  3. Reduce mean and sample standard deviation.
//
// Complexity: O(n²) residual evaluations for n grid nodes per axis;
// after a completed run every target lookup inside them is memoized.
func Survey(s Surface) Summary {
	nodes := s.Grid().Nodes()
	n := len(nodes)

	vals := make([]float64, 0, n*n)
	for _, y := range nodes {
		for _, x := range nodes {
			r := s.Residual(x, y)
			r.Abs(r)
			v, _ := r.Float64()
			vals = append(vals, v)
		}
	}

	idx := floats.MaxIdx(vals)
	ax, _ := nodes[idx%n].Float64()
	ay, _ := nodes[idx/n].Float64()

	return Summary{
		Samples: len(vals),
		Max:     vals[idx],
		ArgMaxX: ax,
		ArgMaxY: ay,
		Mean:    stat.Mean(vals, nil),
		Std:     stat.StdDev(vals, nil),
	}
}
