// SPDX-License-Identifier: MIT
// Package: pargraph/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • RandomMatrix/RandomAdjacency never return errors: infeasible requests
//     yield an explicitly invalid graph (core.Matrix.Valid() == false).
//   • Validate exposes the reason as one of these sentinels; branch with errors.Is.

package builder

import "errors"

// ErrTooManyEdges indicates that the requested edge count exceeds MaxEdges(n, directed).
var ErrTooManyEdges = errors.New("builder: too many edges requested")

// ErrTooFewVertices indicates a negative vertex count.
var ErrTooFewVertices = errors.New("builder: vertex count must be >= 0")

// ErrBadWeight indicates maxWeight < 1; weights are drawn from [1, maxWeight].
var ErrBadWeight = errors.New("builder: max weight must be >= 1")

// ErrBadEdgeCount indicates a negative edge count.
var ErrBadEdgeCount = errors.New("builder: edge count must be >= 0")
