// SPDX-License-Identifier: MIT

// Package encode: compressed sparse row adjacency encoding.
//
// A Sparse encoding lists each vertex's out-arcs as one sorted segment
// of a shared neighbor array, the classic V/D/E sparse-graph layout.
// Undirected edges are mirrored into both endpoint segments, so the
// segment of u always lists every arc leaving u.

package encode

import (
	"sort"

	"github.com/katalvlaran/automorph/core"
)

// Sparse is the compressed sparse row encoding of a graph.
//
// The arcs of vertex u occupy E[V[u] : V[u]+D[u]], sorted ascending by
// target vertex, with Colors parallel to E carrying each arc's color
// rank. Unlike Dense, Colors is always populated (rank 1 throughout
// for unweighted graphs) since it costs O(E), not O(V²).
//
// Memory: O(V + E).
type Sparse struct {
	// N is the vertex count.
	N int
	// V[u] is the offset of u's arc segment in E.
	V []int
	// D[u] is the out-degree of u.
	D []int
	// E is the concatenated, per-vertex-sorted neighbor array.
	E []int
	// Colors[i] is the color rank of the arc E[i].
	Colors []int32
}

// arc is a neighbor with its color rank, used only during construction.
type arc struct {
	to   int
	rank int32
}

// NewSparse builds the sparse encoding of g.
// Complexity: O(V + E log E).
func NewSparse(g *core.Graph) *Sparse {
	n := g.NumVertices()
	adj := make([][]arc, n)
	ranks := colorRanks(g)
	for _, e := range g.Edges() {
		adj[e.From] = append(adj[e.From], arc{to: e.To, rank: ranks[e.Weight]})
		if !g.Directed() && e.From != e.To {
			adj[e.To] = append(adj[e.To], arc{to: e.From, rank: ranks[e.Weight]})
		}
	}

	s := &Sparse{
		N: n,
		V: make([]int, n),
		D: make([]int, n),
	}
	total := 0
	for u, as := range adj {
		sort.Slice(as, func(a, b int) bool { return as[a].to < as[b].to })
		s.V[u] = total
		s.D[u] = len(as)
		total += len(as)
	}
	s.E = make([]int, 0, total)
	s.Colors = make([]int32, 0, total)
	for _, as := range adj {
		for _, a := range as {
			s.E = append(s.E, a.to)
			s.Colors = append(s.Colors, a.rank)
		}
	}

	return s
}

// ArcColor returns the color rank of the arc u→v, or 0 if the arc does
// not exist.
// Complexity: O(log deg(u)) via binary search in u's segment.
func (s *Sparse) ArcColor(u, v int) int32 {
	lo, hi := s.V[u], s.V[u]+s.D[u]
	seg := s.E[lo:hi]
	i := sort.SearchInts(seg, v)
	if i < len(seg) && seg[i] == v {
		return s.Colors[lo+i]
	}

	return 0
}

// Neighbors returns the sorted out-neighbor segment of u. The returned
// slice aliases the encoding and must not be mutated.
// Complexity: O(1).
func (s *Sparse) Neighbors(u int) []int {
	return s.E[s.V[u] : s.V[u]+s.D[u]]
}
