// Package autom: statistics-record adapters, one per backend.

package autom

import (
	"github.com/katalvlaran/automorph/dense"
	"github.com/katalvlaran/automorph/refine"
	"github.com/katalvlaran/automorph/sparse"
)

// fromStats is the single narrowing conversion behind every backend
// adapter: field renames plus int→uint32 narrowing. The narrowing is
// deliberately unvalidated — engines guarantee non-negative exponent,
// orbit and generator counts on success, and that contract lives here
// rather than in defensive checks.
func fromStats(grpsize1 float64, grpsize2, numOrbits, numGenerators int) Autom {
	return Autom{
		GroupSizeBase: grpsize1,
		GroupSizeExp:  uint32(grpsize2),
		NumOrbits:     uint32(numOrbits),
		NumGenerators: uint32(numGenerators),
	}
}

// automFromDense converts the dense engine's statistics record.
func automFromDense(s dense.Stats) Autom {
	return fromStats(s.GroupSize1, s.GroupSize2, s.NumOrbits, s.NumGenerators)
}

// automFromSparse converts the sparse engine's statistics record.
func automFromSparse(s sparse.Stats) Autom {
	return fromStats(s.GroupSize1, s.GroupSize2, s.NumOrbits, s.NumGenerators)
}

// automFromRefine converts the refinement engine's statistics record.
func automFromRefine(s refine.Stats) Autom {
	return fromStats(s.GroupSize1, s.GroupSize2, s.NumOrbits, s.NumGenerators)
}
