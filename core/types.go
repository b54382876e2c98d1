// Package core defines the central Graph type consumed by the
// automorphism engines: an index-addressed vertex set with totally
// ordered vertex weights, weighted directed or undirected edges, and
// deterministic iteration order.
//
// Vertices are dense integer indices 0..NumVertices()-1 so that the flat
// engine buffers (label, partition and orbit arrays) derive directly
// from vertex identity. Vertex weights act as colors: two vertices can
// be exchanged by an automorphism only when their weights are equal,
// and likewise an automorphism must carry every edge onto an edge of
// the same weight.
//
// Graphs are plain in-memory values and are not safe for concurrent
// mutation; use Clone to hand an isolated copy to another goroutine.
//
// This file declares Edge, Graph, GraphOption, sentinel errors, and
// the NewGraph constructor.
//
// Errors:
//
//	ErrVertexNotFound - referenced vertex index is out of range.
//	ErrBadWeight      - non-zero weight supplied to an unweighted graph.
//	ErrLoopNotAllowed - self-loop when loops are disabled.
//	ErrDuplicateEdge  - an edge between the endpoints already exists.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a vertex index
	// outside [0, NumVertices).
	ErrVertexNotFound = errors.New("core: vertex index out of range")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdge indicates a second edge was attempted between endpoints
	// that are already connected (parallel edges are never allowed).
	ErrDuplicateEdge = errors.New("core: duplicate edge")
)

// Edge represents a connection between two vertex indices.
//
// From and To are vertex indices in [0, NumVertices). In an undirected
// graph the pair is stored as given but addresses the same edge as its
// mirror (To, From). Weight is the edge color observed by the
// automorphism engines; it is always 0 on unweighted graphs.
type Edge struct {
	// From is the source vertex index.
	From int

	// To is the destination vertex index.
	To int

	// Weight is the edge weight (color class) of this edge.
	Weight int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness for all edges
// (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted allows non-zero vertex and edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// edgeKey addresses an edge by its endpoint pair. Undirected graphs
// normalize the pair to (min, max) before lookup so either orientation
// resolves to the same edge.
type edgeKey struct{ from, to int }

// Graph is the core in-memory graph data structure.
//
// It supports directed vs. undirected and weighted vs. unweighted modes
// plus optional self-loops. Parallel edges are never allowed: the flat
// encodings collapse them, so admitting them would silently change the
// symmetry being computed.
//
// Determinism: Edges() iterates in insertion order, and equal build
// sequences yield graphs with identical observable state.
type Graph struct {
	// Configuration flags
	directed   bool // directed edges
	weighted   bool // allow non-zero weights
	allowLoops bool // allow self-loops

	// Storage
	vertexWeights []int64         // vertex index → weight (color)
	edges         []Edge          // insertion order
	index         map[edgeKey]int // endpoint pair → position in edges
}

// NewGraph creates an empty Graph with the given options.
// By default a Graph is undirected, unweighted, and loop-free.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		index: make(map[edgeKey]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
