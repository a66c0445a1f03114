package cross

import (
	"math/big"

	"github.com/katalvlaran/bicross/bignum"
)

// endpointScale pulls every node strictly inside (−1, 1). Without it the
// outermost Chebyshev nodes land on ±1, where the default target divides
// by sqrt(0). Parsed from the decimal literal at working precision, never
// through a float64 intermediary.
const endpointScale = "0.999999999999999"

// Grid is the shared candidate set for both axes:
//
//	node(i) = −cos(π·i/n) · 0.999999999999999,  i = 0..n
//
// Nodes are computed once at construction, strictly increasing, and never
// mutated afterwards; every consumer treats them as read-only.
type Grid struct {
	nodes []*big.Float
	prec  uint
}

// NewChebyshevGrid builds the n+1 perturbed Chebyshev nodes at the given
// precision.
//
// Errors: ErrGridSize for n < 1, ErrPrecision for an unsupported prec.
//
// Complexity: O(n) Cos evaluations.
func NewChebyshevGrid(n int, prec uint) (*Grid, error) {
	if n < 1 {
		return nil, ErrGridSize
	}
	if prec <= minPrec || prec > bignum.MaxPrec {
		return nil, ErrPrecision
	}

	scale, err := bignum.ParseFloat(endpointScale, prec)
	if err != nil {
		return nil, err
	}

	pi := bignum.Pi(prec)
	den := bignum.NewFloat(float64(n), prec)
	nodes := make([]*big.Float, n+1)
	for i := 0; i <= n; i++ {
		arg := bignum.NewFloat(float64(i), prec)
		arg.Mul(arg, pi)
		arg.Quo(arg, den)

		node := bignum.Cos(arg)
		node.Neg(node)
		node.Mul(node, scale)
		nodes[i] = node
	}

	return &Grid{nodes: nodes, prec: prec}, nil
}

// Len returns the node count, GridSize+1.
func (g *Grid) Len() int { return len(g.nodes) }

// Prec returns the precision the nodes were computed at.
func (g *Grid) Prec() uint { return g.prec }

// At returns node i. The returned value is shared and read-only.
func (g *Grid) At(i int) (*big.Float, error) {
	if i < 0 || i >= len(g.nodes) {
		return nil, ErrGridIndex
	}

	return g.nodes[i], nil
}

// Nodes returns a fresh slice of the node values. The values themselves
// are shared and read-only.
func (g *Grid) Nodes() []*big.Float {
	out := make([]*big.Float, len(g.nodes))
	copy(out, g.nodes)

	return out
}
