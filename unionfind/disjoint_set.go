// SPDX-License-Identifier: MIT
// Package: pargraph/unionfind
//
// disjoint_set.go — sequential union-find.

package unionfind

// DisjointSet is a single-goroutine union-find forest.
type DisjointSet struct {
	parent []int
	count  int
}

// New returns a forest of n singleton sets.
// Complexity: O(n).
func New(n int) *DisjointSet {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	return &DisjointSet{parent: parent, count: n}
}

// Len returns the number of elements.
func (d *DisjointSet) Len() int { return len(d.parent) }

// Count returns the number of disjoint sets.
func (d *DisjointSet) Count() int { return d.count }

// Find returns x's root and points every node on the walked path directly at it.
// Complexity: amortized near O(1).
func (d *DisjointSet) Find(x int) int {
	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}
	for d.parent[x] != root {
		next := d.parent[x]
		d.parent[x] = root
		x = next
	}

	return root
}

// Union merges the sets of x and y, linking the larger root under the smaller.
// It returns false when both were already in the same set.
func (d *DisjointSet) Union(x, y int) bool {
	rx, ry := d.Find(x), d.Find(y)
	if rx == ry {
		return false
	}
	if rx < ry {
		d.parent[ry] = rx
	} else {
		d.parent[rx] = ry
	}
	d.count--

	return true
}

// Connected reports whether x and y are in the same set.
func (d *DisjointSet) Connected(x, y int) bool { return d.Find(x) == d.Find(y) }

// Sets groups elements by root. Sets are ordered by their smallest element and
// members are ascending.
func (d *DisjointSet) Sets() [][]int {
	return groupByRoot(len(d.parent), d.Find)
}

// groupByRoot buckets [0,n) by root(v). Because roots are the smallest members,
// scanning v upward creates each bucket at its root and appends members in order.
func groupByRoot(n int, root func(int) int) [][]int {
	index := make([]int, n)
	for i := range index {
		index[i] = -1
	}
	var sets [][]int
	for v := 0; v < n; v++ {
		r := root(v)
		if index[r] < 0 {
			index[r] = len(sets)
			sets = append(sets, nil)
		}
		sets[index[r]] = append(sets[index[r]], v)
	}

	return sets
}
