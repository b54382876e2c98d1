// Package autom: the canonical result type and the error taxonomy.

package autom

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dense strategy. Both mean "the graph
// exceeds a fixed capacity of the dense encoding"; the sparse and
// refinement strategies have no such limits and accept the same graph.
var (
	// ErrGraphTooWide indicates the dense encoding would need more
	// adjacency words per row than the dense engine supports.
	ErrGraphTooWide = errors.New("autom: graph too wide for dense encoding (M too big)")

	// ErrGraphTooLarge indicates the vertex count exceeds the dense
	// engine's absolute capacity.
	ErrGraphTooLarge = errors.New("autom: graph too large for dense encoding (N too big)")
)

// Autom is the normalized automorphism-group summary every backend
// converts into.
//
// The zero value is a valid placeholder for "not yet computed".
// Autom values are plain data: comparable with ==, ordered field-wise,
// created fresh per invocation, and never mutated after construction.
type Autom struct {
	// GroupSizeBase is the mantissa of the automorphism group's order.
	GroupSizeBase float64

	// GroupSizeExp is the decimal exponent: the order is approximately
	// GroupSizeBase * 10^GroupSizeExp. The split exists because group
	// orders grow super-exponentially in the vertex count and overflow
	// any fixed-width integer long before the graphs become
	// uninteresting.
	GroupSizeExp uint32

	// NumOrbits is the number of orbits of the vertex set under the
	// group action; always in [1, NumVertices] for a non-empty graph.
	NumOrbits uint32

	// NumGenerators is the number of generators the backend reported.
	// Generating sets are not canonical, so backends may legitimately
	// differ here; 0 always means the trivial group.
	NumGenerators uint32
}

// GroupSize returns the order of the automorphism group,
// GroupSizeBase * 10^GroupSizeExp.
func (a Autom) GroupSize() float64 {
	return a.GroupSizeBase * math.Pow(10, float64(a.GroupSizeExp))
}
