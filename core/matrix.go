// SPDX-License-Identifier: MIT
// Package: core
//
// matrix.go — dense weighted adjacency matrix.
//
// Layout:
//   - Flat row-major []int buffer; cell (i,j) lives at data[i*n+j].
//   - Off-diagonal Inf means "no direct edge"; the diagonal is 0.
//
// Contract:
//   - NewMatrix(n) is the only way to obtain a valid instance.
//   - The zero value is invalid and every mutator rejects it.

package core

import (
	"fmt"
	"slices"
)

const (
	methodMatrixAddEdge = "Matrix.AddEdge"
	methodMatrixSet     = "Matrix.Set"
	methodMatrixAt      = "Matrix.At"
)

// Matrix is a dense n×n weight matrix (WeightedGraphMatrix).
type Matrix struct {
	n     int
	data  []int
	valid bool
}

// NewMatrix returns a valid n-vertex matrix with a zero diagonal and Inf
// everywhere else. A negative n yields an invalid instance.
// Complexity: O(n²) time and space.
func NewMatrix(n int) *Matrix {
	if n < 0 {
		return InvalidMatrix()
	}
	data := make([]int, n*n)
	for i := range data {
		data[i] = Inf
	}
	for i := 0; i < n; i++ {
		data[i*n+i] = 0
	}

	return &Matrix{n: n, data: data, valid: true}
}

// NewMatrixFromRows builds a valid matrix from a square slice of rows.
// Cells are copied verbatim; callers are expected to supply 0 on the diagonal
// and Inf for absent edges.
func NewMatrixFromRows(rows [][]int) (*Matrix, error) {
	n := len(rows)
	m := &Matrix{n: n, data: make([]int, n*n), valid: true}
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("NewMatrixFromRows: row %d has %d cells, want %d: %w",
				i, len(row), n, ErrVertexOutOfRange)
		}
		copy(m.data[i*n:(i+1)*n], row)
	}

	return m, nil
}

// InvalidMatrix returns an explicitly invalid instance, the value produced by
// infeasible generation requests.
func InvalidMatrix() *Matrix { return &Matrix{} }

// Order returns the number of vertices (0 for invalid instances).
func (m *Matrix) Order() int {
	if m == nil {
		return 0
	}
	return m.n
}

// Valid reports whether m was built by a constructor.
func (m *Matrix) Valid() bool { return m != nil && m.valid }

func (m *Matrix) check(method string, i, j int) error {
	if !m.Valid() {
		return fmt.Errorf("%s: %w", method, ErrInvalidGraph)
	}
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return fmt.Errorf("%s: (%d,%d) with n=%d: %w", method, i, j, m.n, ErrVertexOutOfRange)
	}

	return nil
}

// At returns the weight stored at (i,j).
func (m *Matrix) At(i, j int) (int, error) {
	if err := m.check(methodMatrixAt, i, j); err != nil {
		return 0, err
	}
	return m.data[i*m.n+j], nil
}

// Set stores w at (i,j). Use Inf to remove an edge.
func (m *Matrix) Set(i, j, w int) error {
	if err := m.check(methodMatrixSet, i, j); err != nil {
		return err
	}
	m.data[i*m.n+j] = w

	return nil
}

// Row returns a copy of row i. It panics if i is out of range, like slice indexing.
func (m *Matrix) Row(i int) []int {
	return slices.Clone(m.data[i*m.n : (i+1)*m.n])
}

// Rows returns the matrix as a freshly allocated [][]int.
func (m *Matrix) Rows() [][]int {
	out := make([][]int, m.n)
	for i := range out {
		out[i] = m.Row(i)
	}
	return out
}

// Data exposes the row-major backing buffer to in-module algorithms that
// relax in place. Callers must not retain it beyond the owning call.
func (m *Matrix) Data() []int { return m.data }

// AddEdge writes weight at (from-offset, to-offset) and, when directed is
// false, at the reciprocal cell as well. Indices are validated after the offset
// is applied; nothing is written on failure.
func (m *Matrix) AddEdge(from, to, weight, indexOffset int, directed bool) error {
	from -= indexOffset
	to -= indexOffset
	if err := m.check(methodMatrixAddEdge, from, to); err != nil {
		return err
	}
	m.data[from*m.n+to] = weight
	if !directed {
		m.data[to*m.n+from] = weight
	}

	return nil
}

// EdgeCount returns the number of finite off-diagonal cells (directed arcs).
func (m *Matrix) EdgeCount() int {
	if !m.Valid() {
		return 0
	}
	var count int
	for i := 0; i < m.n; i++ {
		base := i * m.n
		for j := 0; j < m.n; j++ {
			if i != j && IsFinite(m.data[base+j]) {
				count++
			}
		}
	}
	return count
}

// Clone returns a deep copy. Cloning an invalid matrix yields an invalid matrix.
func (m *Matrix) Clone() *Matrix {
	if !m.Valid() {
		return InvalidMatrix()
	}
	return &Matrix{n: m.n, data: slices.Clone(m.data), valid: true}
}

// Equal reports whether both matrices are valid, of the same order, and
// cell-for-cell identical.
func (m *Matrix) Equal(o *Matrix) bool {
	if !m.Valid() || !o.Valid() || m.n != o.n {
		return false
	}
	return slices.Equal(m.data, o.data)
}

// ToMatrix returns a deep copy of m.
func (m *Matrix) ToMatrix() *Matrix { return m.Clone() }
