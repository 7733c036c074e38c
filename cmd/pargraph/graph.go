package main

import (
	"fmt"

	"github.com/katalvlaran/pargraph/builder"
	"github.com/katalvlaran/pargraph/core"
	"github.com/katalvlaran/pargraph/internal/config"
)

// inputMatrix builds the configured graph as a weight matrix.
func inputMatrix(cfg *config.Config) (*core.Matrix, error) {
	g := cfg.Graph
	if !g.Explicit() {
		m := builder.RandomMatrix(g.Vertices, g.MaxWeight, g.Edges.Count, g.Directed, builder.WithSeed(cfg.Seed))
		if !m.Valid() {
			return nil, fmt.Errorf("generating graph: %w",
				builder.Validate(g.Vertices, g.MaxWeight, g.Edges.Count, g.Directed))
		}
		return m, nil
	}

	m := core.NewMatrix(g.Vertices)
	for i, e := range g.Edges.List {
		if err := m.AddEdge(e[0], e[1], e[2], g.IndexOffset, g.Directed); err != nil {
			return nil, fmt.Errorf("graph.edges[%d]: %w", i, err)
		}
	}
	return m, nil
}

// inputAdjacency builds the configured graph as symmetric adjacency lists.
// Directed inputs are folded: the pair {i,j} keeps the lighter of the two
// arcs.
func inputAdjacency(cfg *config.Config) (*core.Adjacency, error) {
	m, err := inputMatrix(cfg)
	if err != nil {
		return nil, err
	}
	if !cfg.Graph.Directed {
		return m.ToAdjacency(), nil
	}
	return symmetric(m), nil
}

func symmetric(m *core.Matrix) *core.Adjacency {
	n := m.Order()
	a := core.NewAdjacency(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			ij, _ := m.At(i, j)
			ji, _ := m.At(j, i)
			if w := min(ij, ji); core.IsFinite(w) {
				_ = a.AddEdge(i, j, w, 0, false)
			}
		}
	}
	return a
}
