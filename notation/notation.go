// SPDX-License-Identifier: MIT
//
// Package notation parses a compact edge-list expression into a
// core.Graph. The grammar is built once at init time with participle
// and reused for every Parse call.
//
// Expression syntax:
//
//	expr     := run ("," run)*
//	run      := vertex hop*
//	hop      := ("-" | ">") vertex (":" weight)?
//	vertex   := id ("=" weight)?
//
// Vertex IDs are 1-based; the largest ID mentioned fixes the vertex
// count, so "1-3" yields three vertices with vertex 2 isolated.
// "-" chains undirected edges, ">" directed arcs; an expression must
// use one arrow kind throughout. ":" attaches an edge weight and "="
// a vertex weight; mentioning either anywhere makes the graph
// weighted. Self-loops ("2>2") are legal.
//
// Examples:
//
//	"1-2-3-1"          triangle
//	"1>2>3>1"          directed 3-cycle
//	"1-2:5,2-3:7"      weighted path
//	"1=2-2=1"          edge with colored endpoints
package notation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"

	"github.com/katalvlaran/automorph/core"
)

// Sentinel errors returned by Parse.
var (
	// ErrMixedArrows indicates both "-" and ">" in one expression.
	ErrMixedArrows = errors.New("notation: mixed arrow kinds")

	// ErrBadVertexID indicates a vertex ID below 1.
	ErrBadVertexID = errors.New("notation: vertex ID must be positive")
)

type graphExpr struct {
	Runs []edgeRun `parser:"(@@ (\",\" @@)*)?"`
}

type edgeRun struct {
	Start vtx   `parser:"@@"`
	Hops  []hop `parser:"@@*"`
}

type hop struct {
	Arrow  string `parser:"@(\"-\" | \">\")"`
	End    vtx    `parser:"@@"`
	Weight *int64 `parser:"(\":\" @Int)?"`
}

type vtx struct {
	ID     int    `parser:"@Int"`
	Weight *int64 `parser:"(\"=\" @Int)?"`
}

var exprParser = participle.MustBuild[graphExpr]()

// Parse builds a core.Graph from expr. Duplicate edges are rejected
// with core.ErrDuplicateEdge.
//
// Complexity: O(len(expr)) parsing plus O(V + E) construction.
func Parse(expr string) (*core.Graph, error) {
	if strings.TrimSpace(expr) == "" {
		return core.NewGraph(core.WithLoops()), nil
	}
	ast, err := exprParser.ParseString("", expr)
	if err != nil {
		return nil, fmt.Errorf("notation: parse: %w", err)
	}

	// Survey pass: arrow kind, weight usage, vertex count.
	var undirected, directed, weighted bool
	maxID := 0
	note := func(v vtx) error {
		if v.ID < 1 {
			return fmt.Errorf("notation: vertex %d: %w", v.ID, ErrBadVertexID)
		}
		if v.ID > maxID {
			maxID = v.ID
		}
		if v.Weight != nil {
			weighted = true
		}

		return nil
	}
	for _, run := range ast.Runs {
		if err := note(run.Start); err != nil {
			return nil, err
		}
		for _, h := range run.Hops {
			if err := note(h.End); err != nil {
				return nil, err
			}
			if h.Weight != nil {
				weighted = true
			}
			if h.Arrow == ">" {
				directed = true
			} else {
				undirected = true
			}
		}
	}
	if directed && undirected {
		return nil, ErrMixedArrows
	}

	opts := []core.GraphOption{core.WithDirected(directed), core.WithLoops()}
	if weighted {
		opts = append(opts, core.WithWeighted())
	}
	g := core.NewGraph(opts...)
	g.AddVertices(maxID)

	setWeight := func(v vtx) error {
		if v.Weight == nil {
			return nil
		}

		return g.SetVertexWeight(v.ID-1, *v.Weight)
	}
	for _, run := range ast.Runs {
		if err := setWeight(run.Start); err != nil {
			return nil, fmt.Errorf("notation: vertex %d: %w", run.Start.ID, err)
		}
		from := run.Start.ID - 1
		for _, h := range run.Hops {
			if err := setWeight(h.End); err != nil {
				return nil, fmt.Errorf("notation: vertex %d: %w", h.End.ID, err)
			}
			var w int64
			if h.Weight != nil {
				w = *h.Weight
			}
			to := h.End.ID - 1
			if err := g.AddEdge(from, to, w); err != nil {
				return nil, fmt.Errorf("notation: edge %d%s%d: %w", from+1, h.Arrow, to+1, err)
			}
			from = to
		}
	}

	return g, nil
}
