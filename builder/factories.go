// SPDX-License-Identifier: MIT
//
// factories.go — standard topology constructors.
//
// Every factory appends n fresh vertices to the graph it receives and
// connects only among them, so factories compose into disjoint unions.
// Vertex numbering and edge emission order are part of the contract.
package builder

import (
	"fmt"

	"github.com/katalvlaran/automorph/core"
)

// Path returns a constructor for the path graph P_n:
// vertices 0..n-1, edges (i, i+1). Requires n ≥ 2.
//
// Automorphism group: Z_2 (end-to-end reversal) for n ≥ 2.
func Path(n int) Constructor {
	return func(g *core.Graph) error {
		if n < 2 {
			return fmt.Errorf("Path(%d): %w", n, ErrTooFewVertices)
		}
		base := g.AddVertices(n)
		for i := 0; i < n-1; i++ {
			if err := g.AddEdge(base+i, base+i+1, 0); err != nil {
				return fmt.Errorf("Path(%d): %w", n, err)
			}
		}

		return nil
	}
}

// Cycle returns a constructor for the cycle graph C_n:
// vertices 0..n-1, edges (i, (i+1) mod n). Requires n ≥ 3.
//
// Automorphism group: the dihedral group D_n of order 2n
// (n in the directed case).
func Cycle(n int) Constructor {
	return func(g *core.Graph) error {
		if n < 3 {
			return fmt.Errorf("Cycle(%d): %w", n, ErrTooFewVertices)
		}
		base := g.AddVertices(n)
		for i := 0; i < n; i++ {
			if err := g.AddEdge(base+i, base+(i+1)%n, 0); err != nil {
				return fmt.Errorf("Cycle(%d): %w", n, err)
			}
		}

		return nil
	}
}

// Complete returns a constructor for the complete graph K_n:
// all unordered pairs connected. Requires n ≥ 1.
//
// Automorphism group: the full symmetric group S_n of order n!.
func Complete(n int) Constructor {
	return func(g *core.Graph) error {
		if n < 1 {
			return fmt.Errorf("Complete(%d): %w", n, ErrTooFewVertices)
		}
		base := g.AddVertices(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := g.AddEdge(base+i, base+j, 0); err != nil {
					return fmt.Errorf("Complete(%d): %w", n, err)
				}
			}
		}

		return nil
	}
}

// Star returns a constructor for the star graph S_n on n vertices:
// vertex 0 is the hub, vertices 1..n-1 are leaves. Requires n ≥ 2.
//
// Automorphism group: S_{n-1} permuting the leaves.
func Star(n int) Constructor {
	return func(g *core.Graph) error {
		if n < 2 {
			return fmt.Errorf("Star(%d): %w", n, ErrTooFewVertices)
		}
		base := g.AddVertices(n)
		for i := 1; i < n; i++ {
			if err := g.AddEdge(base, base+i, 0); err != nil {
				return fmt.Errorf("Star(%d): %w", n, err)
			}
		}

		return nil
	}
}

// CompleteBipartite returns a constructor for K_{a,b}: vertices
// 0..a-1 form the left side, a..a+b-1 the right side, every left
// vertex connected to every right vertex. Requires a ≥ 1 and b ≥ 1.
//
// Automorphism group: S_a × S_b, doubled when a == b (side swap).
func CompleteBipartite(a, b int) Constructor {
	return func(g *core.Graph) error {
		if a < 1 || b < 1 {
			return fmt.Errorf("CompleteBipartite(%d,%d): %w", a, b, ErrTooFewVertices)
		}
		base := g.AddVertices(a + b)
		for i := 0; i < a; i++ {
			for j := 0; j < b; j++ {
				if err := g.AddEdge(base+i, base+a+j, 0); err != nil {
					return fmt.Errorf("CompleteBipartite(%d,%d): %w", a, b, err)
				}
			}
		}

		return nil
	}
}
