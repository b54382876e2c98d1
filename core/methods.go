// Package core: Graph method implementations.
//
// This file provides O(1) (amortized) operations for vertex and edge
// management on the Graph type defined in types.go. Edges are stored in
// an insertion-ordered slice with a map from endpoint pairs to slice
// positions, allowing constant-time existence and weight queries while
// preserving deterministic iteration.

package core

// AddVertex appends a new vertex with the given weight and returns its index.
// Returns ErrBadWeight if weight is non-zero on an unweighted graph.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(weight int64) (int, error) {
	if weight != 0 && !g.weighted {
		return 0, ErrBadWeight
	}
	g.vertexWeights = append(g.vertexWeights, weight)

	return len(g.vertexWeights) - 1, nil
}

// AddVertices appends n zero-weight vertices and returns the index of the
// first one. Convenient for topology factories that add weights later.
// Complexity: O(n).
func (g *Graph) AddVertices(n int) int {
	first := len(g.vertexWeights)
	g.vertexWeights = append(g.vertexWeights, make([]int64, n)...)

	return first
}

// SetVertexWeight assigns weight to vertex v.
// Returns ErrVertexNotFound if v is out of range,
// ErrBadWeight for a non-zero weight on an unweighted graph.
// Complexity: O(1).
func (g *Graph) SetVertexWeight(v int, weight int64) error {
	if v < 0 || v >= len(g.vertexWeights) {
		return ErrVertexNotFound
	}
	if weight != 0 && !g.weighted {
		return ErrBadWeight
	}
	g.vertexWeights[v] = weight

	return nil
}

// VertexWeight returns the weight of vertex v, or 0 if v is out of range.
// Complexity: O(1).
func (g *Graph) VertexWeight(v int) int64 {
	if v < 0 || v >= len(g.vertexWeights) {
		return 0
	}

	return g.vertexWeights[v]
}

// VertexWeights returns a copy of all vertex weights, indexed by vertex.
// Complexity: O(V).
func (g *Graph) VertexWeights() []int64 {
	out := make([]int64, len(g.vertexWeights))
	copy(out, g.vertexWeights)

	return out
}

// AddEdge inserts an edge from→to with the given weight.
// Returns ErrVertexNotFound if either endpoint is out of range,
// ErrBadWeight for a non-zero weight on an unweighted graph,
// ErrLoopNotAllowed for from==to without WithLoops,
// ErrDuplicateEdge if the endpoints are already connected
// (in either orientation, for undirected graphs).
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, weight int64) error {
	n := len(g.vertexWeights)
	if from < 0 || from >= n || to < 0 || to >= n {
		return ErrVertexNotFound
	}
	if weight != 0 && !g.weighted {
		return ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}
	k := g.key(from, to)
	if _, exists := g.index[k]; exists {
		return ErrDuplicateEdge
	}
	g.index[k] = len(g.edges)
	g.edges = append(g.edges, Edge{From: from, To: to, Weight: weight})

	return nil
}

// HasEdge reports whether an edge from→to exists. In undirected graphs
// orientation is ignored.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to int) bool {
	_, ok := g.index[g.key(from, to)]

	return ok
}

// EdgeWeight returns the weight of the edge from→to and whether it exists.
// Complexity: O(1).
func (g *Graph) EdgeWeight(from, to int) (int64, bool) {
	pos, ok := g.index[g.key(from, to)]
	if !ok {
		return 0, false
	}

	return g.edges[pos].Weight, true
}

// Edges returns a copy of all edges in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// NumVertices returns the number of vertices.
// Complexity: O(1).
func (g *Graph) NumVertices() int { return len(g.vertexWeights) }

// NumEdges returns the number of edges.
// Complexity: O(1).
func (g *Graph) NumEdges() int { return len(g.edges) }

// Directed reports whether edges are directed.
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether non-zero weights are allowed.
func (g *Graph) Weighted() bool { return g.weighted }

// Loops reports whether self-loops are allowed.
func (g *Graph) Loops() bool { return g.allowLoops }

// key builds the lookup key for an endpoint pair, normalizing to
// (min, max) in undirected mode.
func (g *Graph) key(from, to int) edgeKey {
	if !g.directed && from > to {
		from, to = to, from
	}

	return edgeKey{from: from, to: to}
}
