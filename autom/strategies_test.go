// File: autom/strategies_test.go
//
// The fixtures here mirror the classical small symmetry groups: a
// lone arc (trivial), its undirected form (Z2), triangles (Z3 and S3),
// colored variants that break symmetry, and oversized graphs that only
// the unlimited backends accept.
package autom

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/combin"

	"github.com/katalvlaran/automorph/core"
	"github.com/katalvlaran/automorph/dense"
	"github.com/katalvlaran/automorph/encode"
)

// edgeList builds a graph from an edge list, for terse fixtures.
func edgeList(t *testing.T, n int, directed bool, edges [][2]int) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(directed))
	g.AddVertices(n)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1], 0))
	}

	return g
}

// bruteForceOrder counts automorphisms by checking every permutation,
// the oracle the engines are measured against on small graphs.
func bruteForceOrder(g *core.Graph) int {
	n := g.NumVertices()
	weights := g.VertexWeights()
	order := 0
	for _, p := range combin.Permutations(n, n) {
		ok := true
		for v := 0; v < n && ok; v++ {
			if weights[p[v]] != weights[v] {
				ok = false
			}
		}
		for u := 0; u < n && ok; u++ {
			for v := 0; v < n && ok; v++ {
				uw, uok := g.EdgeWeight(u, v)
				pw, pok := g.EdgeWeight(p[u], p[v])
				if uok != pok || uw != pw {
					ok = false
				}
			}
		}
		if ok {
			order++
		}
	}

	return order
}

// TestCompute_SingleEdge follows one graph through the directedness and
// coloring changes that create and destroy its only symmetry.
func TestCompute_SingleEdge(t *testing.T) {
	directed := edgeList(t, 2, true, [][2]int{{0, 1}})
	a, err := Compute(directed)
	require.NoError(t, err)
	require.Equal(t, 1.0, a.GroupSizeBase)
	require.Equal(t, uint32(0), a.GroupSizeExp)

	undirected := edgeList(t, 2, false, [][2]int{{0, 1}})
	a, err = Compute(undirected)
	require.NoError(t, err)
	require.Equal(t, 2.0, a.GroupSizeBase)
	require.Equal(t, uint32(0), a.GroupSizeExp)

	colored := core.NewGraph(core.WithWeighted())
	colored.AddVertices(2)
	require.NoError(t, colored.SetVertexWeight(0, 2))
	require.NoError(t, colored.AddEdge(0, 1, 0))
	a, err = Compute(colored)
	require.NoError(t, err)
	require.Equal(t, 1.0, a.GroupSizeBase, "distinguished vertex weight breaks the swap")
}

// TestCompute_Triangle follows the triangle through the same changes.
func TestCompute_Triangle(t *testing.T) {
	edges := [][2]int{{0, 1}, {1, 2}, {2, 0}}

	a, err := Compute(edgeList(t, 3, true, edges))
	require.NoError(t, err)
	require.Equal(t, 3.0, a.GroupSizeBase, "directed triangle keeps only rotations")

	a, err = Compute(edgeList(t, 3, false, edges))
	require.NoError(t, err)
	require.Equal(t, 6.0, a.GroupSizeBase, "undirected triangle is fully symmetric")

	colored := core.NewGraph(core.WithWeighted())
	colored.AddVertices(3)
	require.NoError(t, colored.AddEdge(0, 1, 2))
	require.NoError(t, colored.AddEdge(1, 2, 1))
	require.NoError(t, colored.AddEdge(2, 0, 1))
	a, err = Compute(colored)
	require.NoError(t, err)
	require.Equal(t, 2.0, a.GroupSizeBase, "distinguished edge weight leaves one swap")
}

// TestBackends_AgreeOnInvariants verifies that GroupSize and NumOrbits
// are backend-independent invariants of the graph, that both stay in
// their documented ranges, and that a zero generator count appears
// exactly for the trivial group. NumGenerators itself may differ
// between backends and is deliberately not compared.
func TestBackends_AgreeOnInvariants(t *testing.T) {
	fixtures := map[string]*core.Graph{
		"path4":    edgeList(t, 4, false, [][2]int{{0, 1}, {1, 2}, {2, 3}}),
		"cycle5":   edgeList(t, 5, false, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}}),
		"k4":       edgeList(t, 4, false, [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}),
		"star5":    edgeList(t, 5, false, [][2]int{{0, 1}, {0, 2}, {0, 3}, {0, 4}}),
		"arc+iso":  edgeList(t, 3, true, [][2]int{{0, 1}}),
		"dicycle4": edgeList(t, 4, true, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}),
	}

	for name, g := range fixtures {
		t.Run(name, func(t *testing.T) {
			n := uint32(g.NumVertices())

			fromDense, err := Dense(g)
			require.NoError(t, err)
			fromSparse := Sparse(g)
			fromRefine := Refine(g)

			for _, a := range []Autom{fromDense, fromSparse, fromRefine} {
				require.GreaterOrEqual(t, a.GroupSize(), 1.0)
				require.GreaterOrEqual(t, a.NumOrbits, uint32(1))
				require.LessOrEqual(t, a.NumOrbits, n)
				if a.NumGenerators == 0 {
					require.Equal(t, 1.0, a.GroupSize())
					require.Equal(t, n, a.NumOrbits)
				}
			}

			require.Equal(t, fromDense.GroupSize(), fromSparse.GroupSize())
			require.Equal(t, fromDense.GroupSize(), fromRefine.GroupSize())
			require.Equal(t, fromDense.NumOrbits, fromSparse.NumOrbits)
			require.Equal(t, fromDense.NumOrbits, fromRefine.NumOrbits)
		})
	}
}

// TestBackends_MatchBruteForce cross-checks every backend against the
// permutation-enumeration oracle on small graphs.
func TestBackends_MatchBruteForce(t *testing.T) {
	weightedTriangle := core.NewGraph(core.WithWeighted())
	weightedTriangle.AddVertices(3)
	require.NoError(t, weightedTriangle.AddEdge(0, 1, 2))
	require.NoError(t, weightedTriangle.AddEdge(1, 2, 1))
	require.NoError(t, weightedTriangle.AddEdge(2, 0, 1))

	fixtures := map[string]*core.Graph{
		"path3":      edgeList(t, 3, false, [][2]int{{0, 1}, {1, 2}}),
		"cycle4":     edgeList(t, 4, false, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}),
		"ditriangle": edgeList(t, 3, true, [][2]int{{0, 1}, {1, 2}, {2, 0}}),
		"twinEdges":  edgeList(t, 4, false, [][2]int{{0, 1}, {2, 3}}),
		"wtriangle":  weightedTriangle,
	}

	for name, g := range fixtures {
		t.Run(name, func(t *testing.T) {
			want := float64(bruteForceOrder(g))

			a, err := Dense(g)
			require.NoError(t, err)
			require.Equal(t, want, a.GroupSize())
			require.Equal(t, want, Sparse(g).GroupSize())
			require.Equal(t, want, Refine(g).GroupSize())
		})
	}
}

// TestCompute_Idempotent verifies equal inputs give bitwise-equal
// summaries across repeated invocations.
func TestCompute_Idempotent(t *testing.T) {
	g := edgeList(t, 5, false, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}})

	first, err := Compute(g)
	require.NoError(t, err)
	second, err := Compute(g.Clone())
	require.NoError(t, err)
	require.True(t, first == second)
}

// TestDense_CapacityErrors drives both dense size-limit failures and
// confirms the unlimited backends accept the same graphs.
func TestDense_CapacityErrors(t *testing.T) {
	bigPath := func(n int) *core.Graph {
		g := core.NewGraph()
		g.AddVertices(n)
		for v := 0; v+1 < n; v++ {
			require.NoError(t, g.AddEdge(v, v+1, 0))
		}
		return g
	}

	wide := bigPath(dense.MaxSetwords*encode.WordSize + 1)
	_, err := Dense(wide)
	require.ErrorIs(t, err, ErrGraphTooWide)

	large := bigPath(dense.MaxN + 1)
	_, err = Compute(large)
	require.ErrorIs(t, err, ErrGraphTooLarge)
	require.False(t, errors.Is(err, ErrGraphTooWide))

	// The same graph is fine for the unlimited backends.
	require.Equal(t, 2.0, Sparse(large).GroupSize())
	require.Equal(t, 2.0, Refine(large).GroupSize())
}
