package cross_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/bicross/bignum"
	"github.com/katalvlaran/bicross/cross"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const gridPrec = 256

// TestNewChebyshevGrid_Validation verifies parameter rejection with the
// package sentinels.
func TestNewChebyshevGrid_Validation(t *testing.T) {
	_, err := cross.NewChebyshevGrid(0, gridPrec)
	assert.ErrorIs(t, err, cross.ErrGridSize, "n < 1 must be rejected")

	_, err = cross.NewChebyshevGrid(4, 53)
	assert.ErrorIs(t, err, cross.ErrPrecision, "float64-sized precision must be rejected")

	_, err = cross.NewChebyshevGrid(4, bignum.MaxPrec+1)
	assert.ErrorIs(t, err, cross.ErrPrecision, "precision beyond the π literal must be rejected")
}

// TestNewChebyshevGrid_NodeCount verifies the grid carries n+1 nodes.
func TestNewChebyshevGrid_NodeCount(t *testing.T) {
	g, err := cross.NewChebyshevGrid(33, gridPrec)
	require.NoError(t, err)
	assert.Equal(t, 34, g.Len(), "grid size n must yield n+1 nodes")
	assert.Equal(t, uint(gridPrec), g.Prec(), "grid must remember its precision")
}

// TestNewChebyshevGrid_OpenInterval verifies every node stays strictly
// inside (−1, 1) — the property that keeps the default target away from
// its domain boundary.
func TestNewChebyshevGrid_OpenInterval(t *testing.T) {
	g, err := cross.NewChebyshevGrid(33, gridPrec)
	require.NoError(t, err)

	one := bignum.NewFloat(1, gridPrec)
	negOne := bignum.NewFloat(-1, gridPrec)
	for i := 0; i < g.Len(); i++ {
		node, aerr := g.At(i)
		require.NoError(t, aerr)
		assert.Equal(t, -1, node.Cmp(one), "node %d must be < 1", i)
		assert.Equal(t, 1, node.Cmp(negOne), "node %d must be > −1", i)
	}
}

// TestNewChebyshevGrid_StrictlyIncreasing verifies nodes come out in
// ascending order, the order the scan contract is defined over.
func TestNewChebyshevGrid_StrictlyIncreasing(t *testing.T) {
	g, err := cross.NewChebyshevGrid(16, gridPrec)
	require.NoError(t, err)

	nodes := g.Nodes()
	for i := 1; i < len(nodes); i++ {
		assert.Equal(t, -1, nodes[i-1].Cmp(nodes[i]), "node %d must be below node %d", i-1, i)
	}
}

// TestNewChebyshevGrid_Endpoints verifies the outermost nodes are exactly
// ∓0.999999999999999: cos(0) is exact, and cos(π) rounds to −1 at any
// supported precision because its defect is quadratically small.
func TestNewChebyshevGrid_Endpoints(t *testing.T) {
	g, err := cross.NewChebyshevGrid(8, gridPrec)
	require.NoError(t, err)

	scale, err := bignum.ParseFloat("0.999999999999999", gridPrec)
	require.NoError(t, err)
	negScale := new(big.Float).SetPrec(gridPrec).Neg(scale)

	first, _ := g.At(0)
	last, _ := g.At(g.Len() - 1)
	assert.Zero(t, first.Cmp(negScale), "node 0 must equal −scale exactly")
	assert.Zero(t, last.Cmp(scale), "node n must equal +scale exactly")
}

// TestNewChebyshevGrid_SmallestGrid verifies the n = 1 two-node grid the
// minimal end-to-end scenario runs on.
func TestNewChebyshevGrid_SmallestGrid(t *testing.T) {
	g, err := cross.NewChebyshevGrid(1, gridPrec)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Len(), "n = 1 must yield exactly two nodes")
}

// TestGrid_At verifies bounds checking on the node indexer.
func TestGrid_At(t *testing.T) {
	g, err := cross.NewChebyshevGrid(4, gridPrec)
	require.NoError(t, err)

	_, err = g.At(-1)
	assert.ErrorIs(t, err, cross.ErrGridIndex, "negative index must be rejected")
	_, err = g.At(g.Len())
	assert.ErrorIs(t, err, cross.ErrGridIndex, "index past the last node must be rejected")
}

// TestGrid_NodesIsACopy verifies the accessor hands out a fresh slice, so
// callers cannot reorder the grid under the solver.
func TestGrid_NodesIsACopy(t *testing.T) {
	g, err := cross.NewChebyshevGrid(4, gridPrec)
	require.NoError(t, err)

	nodes := g.Nodes()
	orig, _ := g.At(0)
	want := new(big.Float).Copy(orig)

	nodes[0] = bignum.NewFloat(42, gridPrec)

	after, _ := g.At(0)
	assert.Zero(t, want.Cmp(after), "mutating the returned slice must not touch the grid")
}
