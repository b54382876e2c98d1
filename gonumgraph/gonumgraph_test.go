// SPDX-License-Identifier: MIT
package gonumgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/automorph/autom"
	"github.com/katalvlaran/automorph/gonumgraph"
)

func TestFromGraph_Nil(t *testing.T) {
	_, err := gonumgraph.FromGraph(nil)
	require.ErrorIs(t, err, gonumgraph.ErrNilGraph)
}

func TestFromGraph_UndirectedTriangle(t *testing.T) {
	src := simple.NewUndirectedGraph()
	src.SetEdge(simple.Edge{F: simple.Node(0), T: simple.Node(1)})
	src.SetEdge(simple.Edge{F: simple.Node(1), T: simple.Node(2)})
	src.SetEdge(simple.Edge{F: simple.Node(2), T: simple.Node(0)})

	g, err := gonumgraph.FromGraph(src)
	require.NoError(t, err)
	require.False(t, g.Directed())
	require.False(t, g.Weighted())
	require.Equal(t, 3, g.NumVertices())
	require.Equal(t, 3, g.NumEdges())

	a, err := autom.Compute(g)
	require.NoError(t, err)
	require.InDelta(t, 6.0, a.GroupSize(), 1e-9) // S_3
}

func TestFromGraph_SparseIDsRemap(t *testing.T) {
	src := simple.NewUndirectedGraph()
	src.SetEdge(simple.Edge{F: simple.Node(100), T: simple.Node(7)})
	src.SetEdge(simple.Edge{F: simple.Node(7), T: simple.Node(-3)})

	g, err := gonumgraph.FromGraph(src)
	require.NoError(t, err)
	require.Equal(t, 3, g.NumVertices())
	// Sorted IDs -3 < 7 < 100 become vertices 0, 1, 2; vertex 1 is the middle.
	require.True(t, g.HasEdge(0, 1))
	require.True(t, g.HasEdge(1, 2))
	require.False(t, g.HasEdge(0, 2))
}

func TestFromGraph_Directed(t *testing.T) {
	src := simple.NewDirectedGraph()
	src.SetEdge(simple.Edge{F: simple.Node(0), T: simple.Node(1)})
	src.SetEdge(simple.Edge{F: simple.Node(1), T: simple.Node(2)})
	src.SetEdge(simple.Edge{F: simple.Node(2), T: simple.Node(0)})

	g, err := gonumgraph.FromGraph(src)
	require.NoError(t, err)
	require.True(t, g.Directed())
	require.True(t, g.HasEdge(0, 1))
	require.False(t, g.HasEdge(1, 0))

	a, err := autom.Compute(g)
	require.NoError(t, err)
	require.InDelta(t, 3.0, a.GroupSize(), 1e-9) // rotations only
}

func TestFromGraph_WeightRanks(t *testing.T) {
	src := simple.NewWeightedUndirectedGraph(0, 0)
	src.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(0), T: simple.Node(1), W: 2.5})
	src.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(1), T: simple.Node(2), W: 0.5})
	src.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(2), T: simple.Node(0), W: 2.5})

	g, err := gonumgraph.FromGraph(src)
	require.NoError(t, err)
	require.True(t, g.Weighted())

	w01, ok := g.EdgeWeight(0, 1)
	require.True(t, ok)
	w12, ok := g.EdgeWeight(1, 2)
	require.True(t, ok)
	w02, ok := g.EdgeWeight(0, 2)
	require.True(t, ok)
	// 0.5 ranks 1, 2.5 ranks 2; equal floats share a rank.
	require.Equal(t, int64(2), w01)
	require.Equal(t, int64(1), w12)
	require.Equal(t, int64(2), w02)

	// Both heavy edges meet at vertex 0, so only 1 and 2 may swap.
	a, err := autom.Compute(g)
	require.NoError(t, err)
	require.InDelta(t, 2.0, a.GroupSize(), 1e-9) // swap vertices 1 and 2
}
