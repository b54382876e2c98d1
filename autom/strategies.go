// Package autom: the three backend invocation strategies and the
// default entry point.
//
// Each strategy follows the same sequence: build the vertex-weight
// coloring and the backend's encoding, zero an orbit buffer, invoke
// the engine (a blocking, single-shot call mutating the orbit buffer
// and a statistics record in place), classify the engine status, and
// adapt the statistics into an Autom.

package autom

import (
	"fmt"

	"github.com/katalvlaran/automorph/core"
	"github.com/katalvlaran/automorph/dense"
	"github.com/katalvlaran/automorph/encode"
	"github.com/katalvlaran/automorph/refine"
	"github.com/katalvlaran/automorph/sparse"
)

// Compute summarizes g's automorphism group using the default backend,
// the dense-matrix engine — the most general-purpose of the three and
// the only one whose capacity failures are reported explicitly rather
// than absent by contract. Callers hitting ErrGraphTooWide or
// ErrGraphTooLarge can retry the same graph with Sparse or Refine.
func Compute(g *core.Graph) (Autom, error) {
	return Dense(g)
}

// Dense summarizes g's automorphism group with the dense-matrix engine.
//
// Returns ErrGraphTooWide or ErrGraphTooLarge when g exceeds the dense
// encoding's fixed capacity; any other nonzero engine status is a
// broken engine contract and panics.
func Dense(g *core.Graph) (Autom, error) {
	opts := dense.Options{
		GetCanon:   false,
		DefaultPtn: false,
		Digraph:    g.Directed(),
	}
	lab, ptn := encode.Coloring(g)
	orbits := encode.Orbits(g.NumVertices())
	var stats dense.Stats
	dense.Run(encode.NewDense(g), lab, ptn, orbits, opts, &stats)

	switch stats.ErrStatus {
	case dense.StatusOK:
		return automFromDense(stats), nil
	case dense.StatusMTooBig:
		return Autom{}, ErrGraphTooWide
	case dense.StatusNTooBig:
		return Autom{}, ErrGraphTooLarge
	default:
		panic(fmt.Sprintf("autom: dense engine reported impossible status %d", stats.ErrStatus))
	}
}

// Sparse summarizes g's automorphism group with the sparse/canonical
// engine. The engine has no caller-visible failure modes; its status
// field is asserted zero purely as a contract guard.
func Sparse(g *core.Graph) Autom {
	opts := sparse.Options{
		GetCanon:   false,
		DefaultPtn: false,
		Digraph:    g.Directed(),
	}
	lab, ptn := encode.Coloring(g)
	orbits := encode.Orbits(g.NumVertices())
	var stats sparse.Stats
	sparse.Run(encode.NewSparse(g), lab, ptn, orbits, opts, &stats)

	if stats.ErrStatus != sparse.StatusOK {
		panic(fmt.Sprintf("autom: sparse engine reported impossible status %d", stats.ErrStatus))
	}

	return automFromSparse(stats)
}

// Refine summarizes g's automorphism group with the refinement-based
// engine.
//
// Digraph is pinned to true no matter what g reports: the engine's
// representation treats an undirected edge as a symmetric pair of
// arcs, so directed mode is the correct configuration for either kind
// of input. Like Sparse, the engine has no caller-visible failure
// modes and its status is asserted zero as a contract guard.
func Refine(g *core.Graph) Autom {
	opts := refine.Options{
		GetCanon:   false,
		DefaultPtn: false,
		Digraph:    true,
	}
	lab, ptn := encode.Coloring(g)
	orbits := encode.Orbits(g.NumVertices())
	var stats refine.Stats
	refine.Run(encode.NewSparse(g), lab, ptn, orbits, opts, &stats)

	if stats.ErrStatus != refine.StatusOK {
		panic(fmt.Sprintf("autom: refine engine reported impossible status %d", stats.ErrStatus))
	}

	return automFromRefine(stats)
}
