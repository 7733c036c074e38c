// Package prim_kruskal defines configuration options, the MST result type and
// sentinel errors for MST computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"

	"github.com/katalvlaran/pargraph/core"
)

// ErrInvalidGraph indicates that the input adjacency graph is nil or invalid.
var ErrInvalidGraph = errors.New("prim_kruskal: MST requires a valid adjacency graph")

// ErrUnknownMethod indicates an MSTOptions.Method that is neither Kruskal nor Prim.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// Result is a minimum spanning forest.
//
// Fields:
//
//	Edges       — tree edges in the order they were accepted, each with From < To.
//	TotalWeight — sum of Edges weights.
//	Tree        — the same edges as an undirected *core.Adjacency over all n vertices.
//	Complete    — len(Edges) == n-1, i.e. the input was connected (trivially
//	              true for n <= 1).
type Result struct {
	Edges       []core.Edge
	TotalWeight int64
	Tree        *core.Adjacency
	Complete    bool
}

// newResult assembles a Result for an n-vertex input.
func newResult(n int, edges []core.Edge, total int64) *Result {
	tree := core.NewAdjacency(n)
	for _, e := range edges {
		// endpoints come from the input graph, so they are in range
		_ = tree.AddEdge(e.From, e.To, e.Weight, 0, false)
	}
	return &Result{
		Edges:       edges,
		TotalWeight: total,
		Tree:        tree,
		Complete:    n <= 1 || len(edges) == n-1,
	}
}

// MSTOptions configures which MST algorithm to run.
// Use DefaultOptions() to get a default setup (Kruskal).
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal.
func DefaultOptions(opts ...Option) MSTOptions {
	o := MSTOptions{Method: MethodKruskal}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Compute selects and runs the MST algorithm based on opts.Method.
func Compute(a *core.Adjacency, opts MSTOptions) (*Result, error) {
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(a)
	case MethodPrim:
		return Prim(a)
	default:
		return nil, ErrUnknownMethod
	}
}
