// File: encode/encode_test.go
package encode

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/automorph/core"
)

// testGraph builds the weighted, undirected 4-vertex fixture used across
// this file: weights [2 1 1 2], edges 0-1 (w5), 1-2 (w5), 2-3 (w7).
func testGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithWeighted())
	for _, w := range []int64{2, 1, 1, 2} {
		_, err := g.AddVertex(w)
		require.NoError(t, err)
	}
	require.NoError(t, g.AddEdge(0, 1, 5))
	require.NoError(t, g.AddEdge(1, 2, 5))
	require.NoError(t, g.AddEdge(2, 3, 7))

	return g
}

// TestColoring_GroupsByWeight verifies lab groups vertices by ascending
// weight and ptn terminates each class with a zero.
func TestColoring_GroupsByWeight(t *testing.T) {
	lab, ptn := Coloring(testGraph(t))

	require.Equal(t, []int{1, 2, 0, 3}, lab, "lab must sort by (weight, index)")
	require.Equal(t, []int{1, 0, 1, 0}, ptn, "ptn must close each weight class")
}

// TestColoring_Uniform verifies a single class over an unweighted graph.
func TestColoring_Uniform(t *testing.T) {
	g := core.NewGraph()
	g.AddVertices(3)
	lab, ptn := Coloring(g)

	require.Equal(t, []int{0, 1, 2}, lab)
	require.Equal(t, []int{1, 1, 0}, ptn)
}

// TestNewDense_BitsAndColors verifies mirrored bits and color ranks.
func TestNewDense_BitsAndColors(t *testing.T) {
	d := NewDense(testGraph(t))

	require.Equal(t, 4, d.N)
	require.Equal(t, 1, d.M)
	require.True(t, d.Bit(0, 1) && d.Bit(1, 0), "undirected edges must mirror")
	require.False(t, d.Bit(0, 2))
	// Weights 5 and 7 rank 1 and 2.
	require.Equal(t, int32(1), d.ArcColor(2, 1))
	require.Equal(t, int32(2), d.ArcColor(2, 3))
	require.Equal(t, int32(0), d.ArcColor(0, 3))
}

// TestNewDense_Directed verifies arcs are not mirrored in directed mode.
func TestNewDense_Directed(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	g.AddVertices(2)
	require.NoError(t, g.AddEdge(0, 1, 0))

	d := NewDense(g)
	require.True(t, d.Bit(0, 1))
	require.False(t, d.Bit(1, 0))
	require.Equal(t, int32(1), d.ArcColor(0, 1), "unweighted arcs share rank 1")
}

// TestNewDense_WideRow verifies multi-word rows address high vertex indices.
func TestNewDense_WideRow(t *testing.T) {
	g := core.NewGraph()
	g.AddVertices(130)
	require.NoError(t, g.AddEdge(0, 129, 0))

	d := NewDense(g)
	require.Equal(t, 3, d.M)
	require.True(t, d.Bit(0, 129))
	require.True(t, d.Bit(129, 0))
	require.False(t, d.Bit(0, 128))
}

// TestNewSparse_SegmentsSorted verifies CSR offsets, degrees, sorted
// segments and parallel colors.
func TestNewSparse_SegmentsSorted(t *testing.T) {
	s := NewSparse(testGraph(t))

	require.Equal(t, []int{0, 1, 3, 5}, s.V)
	require.Equal(t, []int{1, 2, 2, 1}, s.D)
	if diff := cmp.Diff([]int{1, 0, 2, 1, 3, 2}, s.E); diff != "" {
		t.Fatalf("neighbor array mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, []int32{1, 1, 1, 1, 2, 2}, s.Colors)

	require.Equal(t, int32(2), s.ArcColor(3, 2))
	require.Equal(t, int32(0), s.ArcColor(0, 3))
	require.Equal(t, []int{0, 2}, s.Neighbors(1))
}

// TestOrbits_Zeroed verifies the orbit buffer contract.
func TestOrbits_Zeroed(t *testing.T) {
	o := Orbits(5)
	require.Len(t, o, 5)
	for _, v := range o {
		require.Zero(t, v)
	}
}
