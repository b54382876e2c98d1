// SPDX-License-Identifier: MIT
//
// Package gonumgraph bridges gonum.org/v1/gonum/graph values into the
// index-addressed core.Graph model so symmetry detection can run on
// graphs assembled with the gonum ecosystem.
//
// Conversion contract (strict):
//   - Node identity: gonum node IDs are sorted ascending and remapped
//     to contiguous indices 0..n-1. The mapping is deterministic.
//   - Directedness: detected via a graph.Directed type assertion.
//   - Weights: if the source implements graph.Weighted, the distinct
//     edge weights are sorted ascending and replaced by their 1-based
//     ranks. Rank encoding preserves order and distinctness, which is
//     all the symmetry machinery observes; absolute magnitudes are
//     deliberately discarded.
//   - Self-loops are carried over verbatim.
package gonumgraph

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph"

	"github.com/katalvlaran/automorph/core"
)

// ErrNilGraph indicates a nil source passed to FromGraph.
var ErrNilGraph = errors.New("gonumgraph: nil source graph")

// FromGraph converts src into a core.Graph.
//
// Complexity: O(V log V + E log E) for the ID and weight rankings.
func FromGraph(src graph.Graph) (*core.Graph, error) {
	if src == nil {
		return nil, ErrNilGraph
	}

	_, directed := src.(graph.Directed)
	wsrc, weighted := src.(graph.Weighted)

	// Deterministic vertex numbering: sorted gonum IDs -> 0..n-1.
	var ids []int64
	for it := src.Nodes(); it.Next(); {
		ids = append(ids, it.Node().ID())
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	index := make(map[int64]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	type arc struct {
		u, v int
		w    float64
	}
	var arcs []arc
	for _, uid := range ids {
		for it := src.From(uid); it.Next(); {
			vid := it.Node().ID()
			if !directed && vid < uid {
				continue // undirected pairs visited once, from the low ID
			}
			var w float64
			if weighted {
				var ok bool
				if w, ok = wsrc.Weight(uid, vid); !ok {
					return nil, fmt.Errorf("gonumgraph: no weight for edge %d->%d", uid, vid)
				}
			}
			arcs = append(arcs, arc{u: index[uid], v: index[vid], w: w})
		}
	}

	// Rank-encode weights so float magnitudes become small int64 colors.
	var rank map[float64]int64
	if weighted {
		distinct := make([]float64, 0, len(arcs))
		seen := make(map[float64]bool, len(arcs))
		for _, a := range arcs {
			if !seen[a.w] {
				seen[a.w] = true
				distinct = append(distinct, a.w)
			}
		}
		sort.Float64s(distinct)
		rank = make(map[float64]int64, len(distinct))
		for i, w := range distinct {
			rank[w] = int64(i + 1)
		}
	}

	opts := []core.GraphOption{core.WithDirected(directed), core.WithLoops()}
	if weighted {
		opts = append(opts, core.WithWeighted())
	}
	g := core.NewGraph(opts...)
	g.AddVertices(len(ids))

	for _, a := range arcs {
		var w int64
		if weighted {
			w = rank[a.w]
		}
		if err := g.AddEdge(a.u, a.v, w); err != nil {
			return nil, fmt.Errorf("gonumgraph: add edge %d->%d: %w", a.u, a.v, err)
		}
	}

	return g, nil
}
