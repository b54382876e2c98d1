// File: methods_clone.go
// Role: cloning graph instances.
// Determinism:
//   - Clone preserves vertex indices, edge insertion order, and all flags,
//     so a clone is observably identical to its source.
// Concurrency:
//   - No mutation of the source graph; safe to call while the source is
//     otherwise idle.

package core

// Clone returns a deep copy of the Graph: configuration, vertex weights,
// edges, and the edge index.
//
// The automorphism strategies hold the graph for the duration of a call;
// callers that need to keep mutating a graph while a computation is in
// flight should pass a Clone instead.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	opts := []GraphOption{WithDirected(g.directed)}
	if g.weighted {
		opts = append(opts, WithWeighted())
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	clone := NewGraph(opts...)

	clone.vertexWeights = make([]int64, len(g.vertexWeights))
	copy(clone.vertexWeights, g.vertexWeights)

	clone.edges = make([]Edge, len(g.edges))
	copy(clone.edges, g.edges)

	for k, pos := range g.index {
		clone.index[k] = pos
	}

	return clone
}
