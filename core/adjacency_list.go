// SPDX-License-Identifier: MIT
// Package: core
//
// adjacency_list.go — per-vertex ordered neighbor lists.
//
// Contract:
//   - Lists keep insertion order; repeated AddEdge calls may create parallel arcs.
//   - Undirected insertion mirrors the arc except for self-loops.
//   - Out-of-range indices fail fast with ErrVertexOutOfRange and leave the graph untouched.
//   - Not safe for concurrent mutation; algorithms only read it.

package core

import (
	"fmt"
	"slices"
)

const methodAdjacencyAddEdge = "Adjacency.AddEdge"

// Adjacency is an adjacency-list graph (WeightedGraphAdjacency).
type Adjacency struct {
	lists [][]Neighbor
	valid bool
}

// NewAdjacency returns a valid graph with n isolated vertices.
// A negative n yields an invalid instance.
func NewAdjacency(n int) *Adjacency {
	if n < 0 {
		return InvalidAdjacency()
	}
	return &Adjacency{lists: make([][]Neighbor, n), valid: true}
}

// InvalidAdjacency returns an explicitly invalid instance.
func InvalidAdjacency() *Adjacency { return &Adjacency{} }

// Order returns the number of vertices (0 for invalid instances).
func (a *Adjacency) Order() int {
	if a == nil {
		return 0
	}
	return len(a.lists)
}

// Valid reports whether a was built by a constructor.
func (a *Adjacency) Valid() bool { return a != nil && a.valid }

// AddVertex appends one isolated vertex and returns its index.
func (a *Adjacency) AddVertex() (int, error) {
	if !a.Valid() {
		return 0, fmt.Errorf("Adjacency.AddVertex: %w", ErrInvalidGraph)
	}
	a.lists = append(a.lists, nil)

	return len(a.lists) - 1, nil
}

// AddEdge appends (to, weight) to from's list after subtracting indexOffset
// from both endpoints. When directed is false and from != to, the reciprocal
// arc is appended as well.
func (a *Adjacency) AddEdge(from, to, weight, indexOffset int, directed bool) error {
	if !a.Valid() {
		return fmt.Errorf("%s: %w", methodAdjacencyAddEdge, ErrInvalidGraph)
	}
	from -= indexOffset
	to -= indexOffset
	n := len(a.lists)
	if from < 0 || from >= n || to < 0 || to >= n {
		return fmt.Errorf("%s: (%d,%d) with n=%d: %w", methodAdjacencyAddEdge, from, to, n, ErrVertexOutOfRange)
	}
	a.lists[from] = append(a.lists[from], Neighbor{To: to, Weight: weight})
	if !directed && from != to {
		a.lists[to] = append(a.lists[to], Neighbor{To: from, Weight: weight})
	}

	return nil
}

// Neighbors returns v's list. The slice is shared with the graph and must be
// treated as read-only.
func (a *Adjacency) Neighbors(v int) []Neighbor { return a.lists[v] }

// Degree returns the number of arcs leaving v.
func (a *Adjacency) Degree(v int) int { return len(a.lists[v]) }

// HasEdge reports whether an arc from→to exists. O(deg(from)).
func (a *Adjacency) HasEdge(from, to int) bool {
	if !a.Valid() || from < 0 || from >= len(a.lists) {
		return false
	}
	for _, nb := range a.lists[from] {
		if nb.To == to {
			return true
		}
	}
	return false
}

// ArcCount returns the total length of all lists. For an undirected graph
// without self-loops this is twice the edge count.
func (a *Adjacency) ArcCount() int {
	var total int
	for _, l := range a.lists {
		total += len(l)
	}
	return total
}

// UndirectedEdges lists every arc u→v with u < v exactly once per arc, in
// vertex order and then list order. For symmetric lists this is the edge set
// of the undirected graph.
func (a *Adjacency) UndirectedEdges() []Edge {
	if !a.Valid() {
		return nil
	}
	edges := make([]Edge, 0, a.ArcCount()/2)
	for u, l := range a.lists {
		for _, nb := range l {
			if u < nb.To {
				edges = append(edges, Edge{From: u, To: nb.To, Weight: nb.Weight})
			}
		}
	}
	return edges
}

// Clone returns a deep copy.
func (a *Adjacency) Clone() *Adjacency {
	if !a.Valid() {
		return InvalidAdjacency()
	}
	lists := make([][]Neighbor, len(a.lists))
	for i, l := range a.lists {
		lists[i] = slices.Clone(l)
	}
	return &Adjacency{lists: lists, valid: true}
}

// ToAdjacency returns a deep copy of a.
func (a *Adjacency) ToAdjacency() *Adjacency { return a.Clone() }
