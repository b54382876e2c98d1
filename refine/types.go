// Package refine implements the refinement-based automorphism engine:
// iterated color refinement drives the vertex partition toward an
// equitable one, and a backtracking search over the refined classes
// reports group order, orbits and generators through a statistics
// record mutated in place.
//
// The engine canonicalizes its input representation as directed: an
// undirected graph is expected to arrive with every edge mirrored into
// a symmetric arc pair, and callers configure Digraph=true regardless
// of the input graph's own nature. This is a representation choice of
// this engine, not a defect — refinement over arc multisets treats the
// two arcs of an undirected edge independently.
//
// Like the sparse engine it has no capacity limits and no recoverable
// failure modes: Stats.ErrStatus is always StatusOK on return.
package refine

// StatusOK is the only status this engine reports.
const StatusOK = 0

// maxRounds caps the refinement passes. Refinement is a pruning aid:
// any symmetry the bounded refinement fails to separate is resolved by
// the search itself, so the cap trades preprocessing time for search
// time without affecting results.
const maxRounds = 16

// Options configures a single engine invocation.
type Options struct {
	// GetCanon is reserved; only group statistics are produced.
	GetCanon bool

	// DefaultPtn discards the supplied coloring (single color class).
	DefaultPtn bool

	// Digraph declares that the encoding may contain asymmetric arcs.
	// This engine expects true; see the package comment.
	Digraph bool
}

// Stats is the engine's output record, populated in place by Run.
// The group order is approximately GroupSize1 * 10^GroupSize2.
type Stats struct {
	// GroupSize1 is the mantissa of the automorphism group order.
	GroupSize1 float64

	// GroupSize2 is the decimal exponent of the group order.
	GroupSize2 int

	// NumOrbits is the number of vertex orbits under the group action.
	NumOrbits int

	// NumGenerators is the number of generators found for the group.
	NumGenerators int

	// ErrStatus is always StatusOK; see the package comment.
	ErrStatus int
}
