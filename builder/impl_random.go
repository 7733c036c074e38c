// SPDX-License-Identifier: MIT
// Package: pargraph/builder
//
// impl_random.go — random weighted graphs with an exact edge count.
//
// Model:
//   • Exactly edgeCount distinct edges, never self-loops.
//   • Undirected: unordered pairs {u,v}; directed: ordered pairs (u,v), u≠v.
//   • Weights uniform in [1, maxWeight].
//
// Strategy:
//   • Sparse requests (edgeCount ≤ MaxEdges/2): rejection sampling of random
//     endpoint pairs with an auxiliary set for O(1) existence checks.
//   • Dense requests: partial Fisher–Yates over all candidate pairs, so the
//     run time stays bounded even at edgeCount == MaxEdges.
//
// Determinism:
//   • Output depends only on (n, maxWeight, edgeCount, directed) and the RNG state.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/pargraph/core"
)

const (
	methodRandomMatrix    = "RandomMatrix"
	methodRandomAdjacency = "RandomAdjacency"
	minWeight             = 1
)

// MaxEdges returns the number of distinct non-loop edges on n vertices:
// n(n-1) when directed, n(n-1)/2 otherwise. Negative n yields 0.
func MaxEdges(n int, directed bool) int {
	if n < 2 {
		return 0
	}
	if directed {
		return n * (n - 1)
	}
	return n * (n - 1) / 2
}

// Validate reports why a generation request is infeasible, or nil.
func Validate(n, maxWeight, edgeCount int, directed bool) error {
	switch {
	case n < 0:
		return fmt.Errorf("n=%d: %w", n, ErrTooFewVertices)
	case maxWeight < minWeight || maxWeight >= core.Inf:
		return fmt.Errorf("maxWeight=%d: %w", maxWeight, ErrBadWeight)
	case edgeCount < 0:
		return fmt.Errorf("edgeCount=%d: %w", edgeCount, ErrBadEdgeCount)
	case edgeCount > MaxEdges(n, directed):
		return fmt.Errorf("edgeCount=%d > max=%d (n=%d, directed=%t): %w",
			edgeCount, MaxEdges(n, directed), n, directed, ErrTooManyEdges)
	}
	return nil
}

// RandomMatrix returns an n-vertex weight matrix with exactly edgeCount random
// edges, or an invalid matrix when Validate rejects the request.
// Complexity: expected O(n² + edgeCount).
func RandomMatrix(n, maxWeight, edgeCount int, directed bool, opts ...BuilderOption) *core.Matrix {
	if Validate(n, maxWeight, edgeCount, directed) != nil {
		return core.InvalidMatrix()
	}
	cfg := newBuilderConfig(opts...)
	m := core.NewMatrix(n)
	for _, e := range sampleEdges(n, maxWeight, edgeCount, directed, cfg.rng) {
		if err := m.AddEdge(e.From, e.To, e.Weight, 0, directed); err != nil {
			// unreachable: sampleEdges only yields in-range endpoints
			panic(fmt.Sprintf("%s: %v", methodRandomMatrix, err))
		}
	}

	return m
}

// RandomAdjacency returns an n-vertex adjacency graph with exactly edgeCount
// random edges, or an invalid graph when Validate rejects the request.
// Undirected edges appear in both endpoint lists.
// Complexity: expected O(n + edgeCount).
func RandomAdjacency(n, maxWeight, edgeCount int, directed bool, opts ...BuilderOption) *core.Adjacency {
	if Validate(n, maxWeight, edgeCount, directed) != nil {
		return core.InvalidAdjacency()
	}
	cfg := newBuilderConfig(opts...)
	a := core.NewAdjacency(n)
	for _, e := range sampleEdges(n, maxWeight, edgeCount, directed, cfg.rng) {
		if err := a.AddEdge(e.From, e.To, e.Weight, 0, directed); err != nil {
			panic(fmt.Sprintf("%s: %v", methodRandomAdjacency, err))
		}
	}

	return a
}

// pairKey packs an edge's endpoints; undirected pairs are normalized so that
// {u,v} and {v,u} collide.
func pairKey(u, v, n int, directed bool) int {
	if !directed && u > v {
		u, v = v, u
	}
	return u*n + v
}

// sampleEdges draws edgeCount distinct edges. Callers have validated the request.
func sampleEdges(n, maxWeight, edgeCount int, directed bool, rng *rand.Rand) []core.Edge {
	edges := make([]core.Edge, 0, edgeCount)
	if edgeCount == 0 {
		return edges
	}

	if 2*edgeCount > MaxEdges(n, directed) {
		// Dense: enumerate candidates then shuffle the prefix we keep.
		candidates := make([]core.Edge, 0, MaxEdges(n, directed))
		var u, v int
		for u = 0; u < n; u++ {
			for v = 0; v < n; v++ {
				if u == v || (!directed && v < u) {
					continue
				}
				candidates = append(candidates, core.Edge{From: u, To: v})
			}
		}
		for i := 0; i < edgeCount; i++ {
			j := i + rng.Intn(len(candidates)-i)
			candidates[i], candidates[j] = candidates[j], candidates[i]
			e := candidates[i]
			e.Weight = minWeight + rng.Intn(maxWeight)
			edges = append(edges, e)
		}
		return edges
	}

	seen := make(map[int]struct{}, edgeCount)
	for len(edges) < edgeCount {
		u := rng.Intn(n)
		v := rng.Intn(n)
		if u == v {
			continue
		}
		key := pairKey(u, v, n, directed)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		edges = append(edges, core.Edge{From: u, To: v, Weight: minWeight + rng.Intn(maxWeight)})
	}

	return edges
}
