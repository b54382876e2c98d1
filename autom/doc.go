// Package autom computes automorphism-group summaries of graphs: the
// group's order as mantissa × 10^exponent, its orbit count, and the
// number of generators the backend reported.
//
// Three backend strategies share one contract:
//
//	Dense   - the dense-matrix engine; the default. The only strategy
//	          with recoverable failures: graphs beyond the engine's
//	          fixed capacity return ErrGraphTooWide or ErrGraphTooLarge,
//	          at which point callers can retry with Sparse or Refine.
//	Sparse  - the sparse/canonical engine; no size limits, no error
//	          channel.
//	Refine  - the refinement-based engine; no size limits, no error
//	          channel. Always configured in digraph mode regardless of
//	          the input graph's directedness, because its representation
//	          treats an undirected edge as a symmetric arc pair.
//
// Every strategy configures its engine the same way: no canonical
// labeling (only group statistics are wanted) and no default partition
// (the vertex-weight coloring built by the encoder is authoritative).
// Directedness is taken from the graph itself, except for Refine as
// noted above.
//
// The group order and orbit partition are invariants of the graph, so
// any two strategies agree on GroupSize and NumOrbits; the generator
// count is backend-dependent and only its consistency properties
// (NumGenerators == 0 exactly for a trivial group) are meaningful
// across backends.
//
// Strategies hold the graph for the duration of the call while the
// encoding is derived from it; callers that keep mutating a graph
// concurrently must pass a core.Clone. Each call is self-contained,
// blocking, and single-threaded — no state survives between
// invocations.
package autom
