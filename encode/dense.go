// SPDX-License-Identifier: MIT

// Package encode: dense bit-matrix adjacency encoding.
//
// A Dense encoding packs each vertex's out-arcs into M machine words of
// WordSize bits, the representation the dense engine scans with
// popcount pruning. Undirected edges are mirrored into both rows, so
// row u always lists every arc leaving u.

package encode

import "github.com/katalvlaran/automorph/core"

// WordSize is the number of adjacency bits held per set word.
const WordSize = 64

// Dense is the bit-matrix encoding of a graph.
//
// Rows[u][w] holds bits w*WordSize..w*WordSize+63 of row u; bit v of
// row u is set when the arc u→v exists. Colors, present only for
// weighted graphs, holds the color rank of each arc (0 = no arc);
// unweighted graphs leave Colors nil and every arc implicitly shares
// rank 1.
//
// Memory: O(V²/WordSize) words, plus O(V²) color cells when weighted.
type Dense struct {
	// N is the vertex count.
	N int
	// M is the number of set words per row: ceil(N / WordSize).
	M int
	// Rows is the N×M bit matrix.
	Rows [][]uint64
	// Colors is the N×N arc color table, nil for unweighted graphs.
	Colors [][]int32
}

// NewDense builds the dense encoding of g.
// Complexity: O(V²/WordSize + E); O(V²) additionally when weighted.
func NewDense(g *core.Graph) *Dense {
	n := g.NumVertices()
	m := (n + WordSize - 1) / WordSize
	d := &Dense{N: n, M: m, Rows: make([][]uint64, n)}
	for u := range d.Rows {
		d.Rows[u] = make([]uint64, m)
	}

	weighted := g.Weighted()
	if weighted {
		d.Colors = make([][]int32, n)
		for u := range d.Colors {
			d.Colors[u] = make([]int32, n)
		}
	}

	ranks := colorRanks(g)
	for _, e := range g.Edges() {
		d.setArc(e.From, e.To, ranks[e.Weight], weighted)
		if !g.Directed() && e.From != e.To {
			d.setArc(e.To, e.From, ranks[e.Weight], weighted)
		}
	}

	return d
}

// setArc records the arc u→v with the given color rank.
func (d *Dense) setArc(u, v int, rank int32, weighted bool) {
	d.Rows[u][v/WordSize] |= 1 << (uint(v) % WordSize)
	if weighted {
		d.Colors[u][v] = rank
	}
}

// Bit reports whether the arc u→v exists.
// Complexity: O(1).
func (d *Dense) Bit(u, v int) bool {
	return d.Rows[u][v/WordSize]&(1<<(uint(v)%WordSize)) != 0
}

// ArcColor returns the color rank of the arc u→v, or 0 if the arc does
// not exist.
// Complexity: O(1).
func (d *Dense) ArcColor(u, v int) int32 {
	if d.Colors != nil {
		return d.Colors[u][v]
	}
	if d.Bit(u, v) {
		return 1
	}

	return 0
}
