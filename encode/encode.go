// SPDX-License-Identifier: MIT

// Package encode builds the flat buffers the automorphism engines
// consume: the label/partition arrays describing the initial vertex
// coloring, the orbit output array, and two adjacency encodings — a
// dense bit-matrix (Dense) and compressed sparse rows (Sparse).
//
// Layout conventions (shared by every engine):
//   - lab holds the vertex indices grouped by color class, ascending by
//     vertex weight and, within a weight, by vertex index.
//   - ptn[i] is 1 while lab[i] and lab[i+1] share a color class and 0 at
//     the last position of each class.
//   - orbits[v] is filled by the engine with the smallest vertex index
//     in v's orbit.
//
// Edge weights are exported as dense color ranks: the distinct edge
// weights of the graph, ascending, are numbered 1..k, and 0 always
// means "no arc". Rank order preserves the weight order, which is all
// the engines observe.
//
// Determinism: all encodings are pure functions of the graph's state
// under its fixed vertex ordering.
package encode

import (
	"sort"

	"github.com/katalvlaran/automorph/core"
)

// Coloring returns label and partition arrays describing g's vertex
// weights: lab lists vertices sorted by weight, and ptn holds 1 while
// a color class continues and 0 at its last member. Vertices with
// equal weights form one color class.
//
// Complexity: O(V log V).
func Coloring(g *core.Graph) (lab, ptn []int) {
	n := g.NumVertices()
	weights := g.VertexWeights()

	lab = make([]int, n)
	for i := range lab {
		lab[i] = i
	}
	sort.SliceStable(lab, func(a, b int) bool {
		return weights[lab[a]] < weights[lab[b]]
	})

	ptn = make([]int, n)
	for i := 0; i < n; i++ {
		if i+1 < n && weights[lab[i+1]] == weights[lab[i]] {
			ptn[i] = 1
		}
	}

	return lab, ptn
}

// Orbits allocates a zero-initialized orbit output array for n vertices.
// Complexity: O(V).
func Orbits(n int) []int { return make([]int, n) }

// colorRanks maps each distinct edge weight of g to its 1-based rank in
// ascending weight order. Unweighted graphs collapse to a single rank.
// Complexity: O(E log E).
func colorRanks(g *core.Graph) map[int64]int32 {
	seen := make(map[int64]struct{})
	for _, e := range g.Edges() {
		seen[e.Weight] = struct{}{}
	}
	distinct := make([]int64, 0, len(seen))
	for w := range seen {
		distinct = append(distinct, w)
	}
	sort.Slice(distinct, func(a, b int) bool { return distinct[a] < distinct[b] })

	ranks := make(map[int64]int32, len(distinct))
	for i, w := range distinct {
		ranks[w] = int32(i + 1)
	}

	return ranks
}
