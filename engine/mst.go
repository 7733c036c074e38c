// SPDX-License-Identifier: MIT
// Package: pargraph/engine

package engine

import (
	"fmt"

	"github.com/katalvlaran/pargraph/benchmark"
	"github.com/katalvlaran/pargraph/core"
	"github.com/katalvlaran/pargraph/prim_kruskal"
)

var mstTitles = map[string]string{
	prim_kruskal.MethodKruskal: "Minimum Spanning Tree (Kruskal)",
	prim_kruskal.MethodPrim:    "Minimum Spanning Tree (Prim)",
}

// MinimumSpanningTree runs Kruskal on a (or the algorithm selected with
// prim_kruskal.WithMethod) and returns the spanning forest as an undirected
// adjacency graph over the same vertices.
func (e *Engine) MinimumSpanningTree(a *core.Adjacency, opts ...prim_kruskal.Option) (*core.Adjacency, string, error) {
	if !a.Valid() {
		return nil, "", fmt.Errorf("MinimumSpanningTree: %w", ErrInvalidGraph)
	}
	mstOpts := prim_kruskal.DefaultOptions(opts...)
	title, ok := mstTitles[mstOpts.Method]
	if !ok {
		return nil, "", fmt.Errorf("MinimumSpanningTree: %q: %w", mstOpts.Method, prim_kruskal.ErrUnknownMethod)
	}
	n := a.Order()

	sw := benchmark.Start()
	edges := len(a.UndirectedEdges())
	var r benchmark.Report
	r.Title(title)
	r.Linef("Graph size: %d vertices", n)
	r.Linef("Number of edges: %d", edges)
	r.Line("Time complexity: O(E log E)")
	r.Blank()

	algo := benchmark.Start()
	res, err := prim_kruskal.Compute(a, mstOpts)
	var t benchmark.Timing
	t.Algorithm = since(algo)
	if err != nil {
		return nil, "", fmt.Errorf("MinimumSpanningTree: %w", err)
	}

	if e.detailed(n) {
		r.Line("Tree edges:")
		for _, te := range res.Edges {
			r.Linef("%d - %d (weight: %d)", te.From, te.To, te.Weight)
		}
		r.Blank()
	}
	r.Linef("Total weight: %d", res.TotalWeight)
	r.Linef("Edges in tree: %d of %d", len(res.Edges), max(n-1, 0))
	if res.Complete {
		r.Line("✓ Spanning tree is complete")
	} else {
		r.Line("⚠ Spanning tree is incomplete (graph is disconnected)")
	}
	r.Blank()
	t.Total = since(sw)

	r.Section("PERFORMANCE BENCHMARK")
	writeTimes(&r, t)
	r.Linef("Edges processed: %d", edges)
	r.Linef("Edges per second: %.0f", benchmark.Rate(float64(edges), t.Algorithm))

	e.logDone(mstOpts.Method, "sequential", n, 1, t)
	return res.Tree, r.String(), nil
}
