// SPDX-License-Identifier: MIT
// Package: pargraph/unionfind
//
// concurrent.go — lock-free union-find.
//
// Invariants:
//   • parent[r] == r  ⇔  r is a root.
//   • A root only ever gets re-parented to a strictly smaller id, so parent
//     chains are acyclic and every walk terminates.
//   • Compression only shortens chains; it never changes which root a node
//     reaches, so concurrent readers see a consistent set membership.

package unionfind

import "sync/atomic"

// AtomicParents is a fixed-length parent array. Every element access goes
// through an atomic operation: Load, Store, or CompareAndSwap. Plain reads or
// writes of the elements are not permitted.
type AtomicParents struct {
	cells []atomic.Int64
}

// NewAtomicParents returns n cells each pointing at itself.
func NewAtomicParents(n int) *AtomicParents {
	p := &AtomicParents{cells: make([]atomic.Int64, n)}
	for i := range p.cells {
		p.cells[i].Store(int64(i))
	}
	return p
}

// Len returns the number of cells.
func (p *AtomicParents) Len() int { return len(p.cells) }

// Load atomically reads the parent of i.
func (p *AtomicParents) Load(i int) int { return int(p.cells[i].Load()) }

// Store atomically sets the parent of i.
func (p *AtomicParents) Store(i, parent int) { p.cells[i].Store(int64(parent)) }

// CompareAndSwap atomically sets the parent of i to new iff it is still old.
func (p *AtomicParents) CompareAndSwap(i, old, new int) bool {
	return p.cells[i].CompareAndSwap(int64(old), int64(new))
}

// Concurrent is a union-find forest safe for concurrent Find/Union.
type Concurrent struct {
	parent *AtomicParents
}

// NewConcurrent returns a forest of n singleton sets.
func NewConcurrent(n int) *Concurrent {
	return &Concurrent{parent: NewAtomicParents(n)}
}

// Len returns the number of elements.
func (c *Concurrent) Len() int { return c.parent.Len() }

// Find walks to u's root, halving the path as it goes: each visited node is
// CAS'd from its parent to its grandparent. A lost CAS is harmless because the
// winner also moved the node closer to the same root.
func (c *Concurrent) Find(u int) int {
	for {
		p := c.parent.Load(u)
		if p == u {
			return u
		}
		gp := c.parent.Load(p)
		if gp != p {
			c.parent.CompareAndSwap(u, p, gp)
		}
		u = gp
	}
}

// Union merges the sets of u and v and reports whether this call performed
// the merge. The larger root is redirected to the smaller one with a single
// CAS; if another goroutine re-parented that root first, both roots are
// resolved again and the attempt repeats.
func (c *Concurrent) Union(u, v int) bool {
	for {
		ru, rv := c.Find(u), c.Find(v)
		if ru == rv {
			return false
		}
		if ru < rv {
			ru, rv = rv, ru
		}
		if c.parent.CompareAndSwap(ru, ru, rv) {
			return true
		}
	}
}

// Connected reports whether u and v currently share a root. Under concurrent
// unions the answer may be stale by the time it is returned.
func (c *Concurrent) Connected(u, v int) bool {
	for {
		ru, rv := c.Find(u), c.Find(v)
		if ru == rv {
			return true
		}
		// ru is still a root: no union touched it between the two finds.
		if c.parent.Load(ru) == ru {
			return false
		}
	}
}

// Compress points v directly at its root and returns the root. Idempotent
// and safe to run for different v in parallel once unions have finished.
func (c *Concurrent) Compress(v int) int {
	r := c.Find(v)
	c.parent.Store(v, r)
	return r
}

// Parent returns the current parent of v (the root after Compress).
func (c *Concurrent) Parent(v int) int { return c.parent.Load(v) }

// Sets groups elements by root, ordered by smallest element, members ascending.
// It must not race with Union.
func (c *Concurrent) Sets() [][]int {
	return groupByRoot(c.Len(), c.Find)
}

// Snapshot copies the parent array.
func (c *Concurrent) Snapshot() []int {
	out := make([]int, c.Len())
	for i := range out {
		out[i] = c.parent.Load(i)
	}
	return out
}
