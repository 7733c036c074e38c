// SPDX-License-Identifier: MIT
// Package: pargraph/core
//
// types.go — sentinel errors, the Inf sentinel, Edge and the
// Representation contract.
//
// Errors:
//   • ErrNilGraph          - a nil *Matrix or *Adjacency was passed.
//   • ErrInvalidGraph      - the receiver is the zero value / explicitly invalid.
//   • ErrVertexOutOfRange  - a translated vertex index is outside [0, n).
//   • ErrNegativeOrder     - a constructor received n < 0.

package core

import (
	"errors"
	"math"
)

// Sentinel errors for graph construction and mutation.
var (
	// ErrNilGraph indicates that a nil graph pointer was supplied.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrInvalidGraph indicates an operation on an explicitly invalid graph
	// (zero value, or the result of an infeasible generation request).
	ErrInvalidGraph = errors.New("core: graph is invalid")

	// ErrVertexOutOfRange indicates that a vertex index, after applying the
	// caller's index offset, does not address a vertex of the graph.
	ErrVertexOutOfRange = errors.New("core: vertex index out of range")

	// ErrNegativeOrder indicates a negative vertex count.
	ErrNegativeOrder = errors.New("core: negative vertex count")
)

// Inf is the "no direct edge" sentinel. It is half of the largest int so that
// the sum of any two finite distances (each < Inf) never overflows.
const Inf = math.MaxInt / 2

// Edge is a weighted (From, To, Weight) triple with no identity beyond its fields.
type Edge struct {
	From   int
	To     int
	Weight int
}

// Neighbor is one entry of an adjacency list: the target vertex and the arc weight.
type Neighbor struct {
	To     int
	Weight int
}

// Representation is the conversion contract implemented by both graph forms.
// ToMatrix on a *Matrix and ToAdjacency on an *Adjacency return deep copies,
// so callers may always treat the returned value as their own.
type Representation interface {
	// Order returns the number of vertices.
	Order() int
	// Valid reports whether the instance carries the representation invariants.
	Valid() bool
	// ToMatrix converts (or copies) into the dense form.
	ToMatrix() *Matrix
	// ToAdjacency converts (or copies) into the adjacency-list form.
	ToAdjacency() *Adjacency
}

var (
	_ Representation = (*Matrix)(nil)
	_ Representation = (*Adjacency)(nil)
)

// IsFinite reports whether w denotes an existing edge / reachable distance.
func IsFinite(w int) bool { return w < Inf }
