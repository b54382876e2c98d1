// SPDX-License-Identifier: MIT
//
// Package builder provides deterministic topology factories for
// assembling test and example graphs with known automorphism groups.
//
// Design contract (strict):
//   - One orchestrator: Build(gopts, cons...). Creates the graph and
//     runs the constructors in order.
//   - Constructors validate parameters early and return sentinel
//     errors; they never panic.
//   - Determinism: the same options and constructor order always yield
//     identical graphs — vertex indices are assigned in documented
//     order and edges are emitted in documented order, so downstream
//     encodings are reproducible bit for bit.
package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/automorph/core"
)

// Sentinel errors returned by the topology constructors.
var (
	// ErrTooFewVertices indicates a size below the topology's minimum.
	ErrTooFewVertices = errors.New("builder: too few vertices for topology")

	// ErrNilConstructor indicates a nil Constructor passed to Build.
	ErrNilConstructor = errors.New("builder: nil constructor")
)

// Constructor applies one deterministic topology to g. Implementations
// append their own vertices, so constructors compose into disjoint
// unions when chained.
type Constructor func(g *core.Graph) error

// Build creates a new core.Graph with the given graph options and
// applies all constructors in order. The first constructor error is
// wrapped with "Build: " and returned; no partial cleanup is attempted.
//
// Complexity: Σ cost of the constructors.
func Build(gopts []core.GraphOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: constructor %d: %w", i, ErrNilConstructor)
		}
		if err := fn(g); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return g, nil
}
