// SPDX-License-Identifier: MIT
// Package: core
//
// conversions.go — Matrix ⇄ Adjacency.
//
// Self-loop policy (kept in one place):
//   - Matrix → Adjacency skips the diagonal, so the implicit zero self-distance
//     never turns into a spurious self-loop arc.
//   - Adjacency → Matrix skips self-loop arcs, so the diagonal stays 0.
//
// A simple matrix therefore survives Matrix → Adjacency → Matrix unchanged.

package core

// ToAdjacency emits every finite off-diagonal cell (i,j) as the directed arc
// i→j, scanning rows in order. Invalid input converts to an invalid graph.
// Complexity: O(n²).
func (m *Matrix) ToAdjacency() *Adjacency {
	if !m.Valid() {
		return InvalidAdjacency()
	}
	a := NewAdjacency(m.n)
	var i, j int
	for i = 0; i < m.n; i++ {
		base := i * m.n
		for j = 0; j < m.n; j++ {
			w := m.data[base+j]
			if i == j || !IsFinite(w) {
				continue
			}
			a.lists[i] = append(a.lists[i], Neighbor{To: j, Weight: w})
		}
	}

	return a
}

// ToMatrix writes every arc i→j into cell (i,j). Self-loop arcs are skipped;
// among parallel arcs the last one wins. Invalid input converts to an invalid
// matrix. Complexity: O(n² + arcs).
func (a *Adjacency) ToMatrix() *Matrix {
	if !a.Valid() {
		return InvalidMatrix()
	}
	n := len(a.lists)
	m := NewMatrix(n)
	for i, l := range a.lists {
		for _, nb := range l {
			if nb.To == i {
				continue
			}
			m.data[i*n+nb.To] = nb.Weight
		}
	}

	return m
}
