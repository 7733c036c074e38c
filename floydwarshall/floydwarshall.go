// SPDX-License-Identifier: MIT
// Package: pargraph/floydwarshall
//
// Purpose:
//   - Dense APSP with deterministic loop order over a flat row-major buffer.

package floydwarshall

import (
	"fmt"

	"github.com/katalvlaran/pargraph/core"
	"github.com/katalvlaran/pargraph/internal/parallel"
)

const (
	opSequential = "Sequential"
	opParallel   = "Parallel"
)

// relaxRows runs one k-pass over rows [lo,hi). rowK holds the values of row k
// for this pass. Only cells of rows [lo,hi) are written.
func relaxRows(data, rowK []int, n, k, lo, hi int) {
	var (
		i, j, baseI  int
		ik, kj, cand int
	)
	for i = lo; i < hi; i++ {
		baseI = i * n
		ik = data[baseI+k] // dist[i][k]; only this row's owner writes it
		if ik >= core.Inf {
			continue // i cannot reach k
		}
		for j = 0; j < n; j++ {
			kj = rowK[j]
			if kj >= core.Inf {
				continue
			}
			cand = ik + kj
			if cand < data[baseI+j] { // strict improvement only
				data[baseI+j] = cand
			}
		}
	}
}

// Sequential returns the all-pairs shortest-path distance matrix of m.
// Unreachable pairs keep core.Inf.
func Sequential(m *core.Matrix) (*core.Matrix, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%s: %w", opSequential, ErrInvalidGraph)
	}
	dist := m.Clone()
	n := dist.Order()
	data := dist.Data()
	for k := 0; k < n; k++ {
		// Row k is stable during pass k: dist[k][j] could only improve via
		// dist[k][k] + dist[k][j], and dist[k][k] == 0.
		relaxRows(data, data[k*n:(k+1)*n], n, k, 0, n)
	}

	return dist, nil
}

// Parallel is Sequential with each k-pass distributed over threads goroutines
// (threads <= 0 selects GOMAXPROCS). Passes are separated by a full join.
func Parallel(m *core.Matrix, threads int) (*core.Matrix, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%s: %w", opParallel, ErrInvalidGraph)
	}
	dist := m.Clone()
	n := dist.Order()
	data := dist.Data()
	rowK := make([]int, n)
	for k := 0; k < n; k++ {
		copy(rowK, data[k*n:(k+1)*n])
		parallel.For(n, threads, func(lo, hi, _ int) {
			relaxRows(data, rowK, n, k, lo, hi)
		})
	}

	return dist, nil
}
