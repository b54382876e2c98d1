// Package dense implements the dense-matrix automorphism engine: a
// backtracking search for graph automorphisms over the bit-matrix
// encoding, reporting group order, orbits and generators through a
// statistics record mutated in place.
//
// The engine is a blocking, single-shot call with no shared state
// between invocations. It is the only engine with fixed capacity
// limits: graphs whose rows need more than MaxSetwords adjacency words,
// or with more than MaxN vertices, are rejected through
// Stats.ErrStatus rather than an error value, mirroring the foreign
// engine contract the adapter layer normalizes.
//
// Options semantics:
//
//	GetCanon   - reserved; this engine only produces group statistics
//	             and never emits a canonical labeling. Must be false.
//	DefaultPtn - discard the supplied lab/ptn coloring and treat all
//	             vertices as one color class.
//	Digraph    - the encoding may contain asymmetric arcs. When false
//	             the engine assumes every arc is mirrored and skips the
//	             reverse-arc machinery; passing a directed encoding
//	             with Digraph=false yields undefined results.
package dense

// WordSize is the adjacency bits per set word, fixed by the encoding.
const WordSize = 64

// Capacity limits of the dense engine.
const (
	// MaxSetwords caps the number of adjacency words per row.
	MaxSetwords = 64

	// MaxN caps the vertex count.
	MaxN = 8192
)

// Status codes reported via Stats.ErrStatus. Any other value is
// impossible by construction.
const (
	// StatusOK signals a successfully populated Stats record.
	StatusOK = 0

	// StatusMTooBig signals rows wider than MaxSetwords words.
	StatusMTooBig = 1

	// StatusNTooBig signals more than MaxN vertices.
	StatusNTooBig = 2
)

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
// On success the group order is approximately
// GroupSize1 * 10^GroupSize2.
type Stats struct {
	// GroupSize1 is the mantissa of the automorphism group order.
	GroupSize1 float64

	// GroupSize2 is the decimal exponent of the group order.
	GroupSize2 int

	// NumOrbits is the number of vertex orbits under the group action.
	NumOrbits int

	// NumGenerators is the number of generators found for the group.
	NumGenerators int

	// ErrStatus is StatusOK on success, or one of the capacity codes.
	ErrStatus int
}
