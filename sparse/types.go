// Package sparse implements the sparse/canonical automorphism engine:
// a backtracking search for graph automorphisms over the compressed
// sparse row encoding, reporting group order, orbits and generators
// through a statistics record mutated in place.
//
// The engine has no capacity limits and, unlike the dense engine, no
// recoverable failure modes: on return Stats.ErrStatus is always
// StatusOK. The field exists to mirror the shared engine record
// layout, and callers above this layer treat any other value as a
// broken contract.
//
// Options semantics match the dense engine:
//
//	GetCanon   - reserved; only group statistics are produced.
//	DefaultPtn - discard the supplied lab/ptn coloring.
//	Digraph    - the encoding may contain asymmetric arcs; when false
//	             the engine assumes mirrored arcs and skips the
//	             reverse-adjacency machinery.
package sparse

// StatusOK is the only status this engine reports.
const StatusOK = 0

// Options configures a single engine invocation.
type Options struct {
	// GetCanon is reserved; only group statistics are produced.
	GetCanon bool

	// DefaultPtn discards the supplied coloring (single color class).
	DefaultPtn bool

	// Digraph declares that the encoding may contain asymmetric arcs.
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
