package dsu

import (
	"errors"
	"fmt"
)

// ErrNegativeSize indicates a negative element count.
var ErrNegativeSize = errors.New("dsu: size must be non-negative")

// DisjointSet partitions [0, n) into components.
// parent[i] == i marks a root; size is only meaningful at roots.
type DisjointSet struct {
	parent []int
	size   []int
	count  int
}

// New returns a DisjointSet in which every id is its own singleton component.
// Complexity: O(n).
func New(n int) (*DisjointSet, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeSize, n)
	}
	d := &DisjointSet{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := range d.parent {
		d.parent[i] = i
		d.size[i] = 1
	}
	return d, nil
}

// Len returns the number of elements.
func (d *DisjointSet) Len() int { return len(d.parent) }

// Count returns the number of components.
func (d *DisjointSet) Count() int { return d.count }

// Find returns the root of p's component.
// Iterative, with path halving: every visited node is re-pointed to its
// grandparent.
func (d *DisjointSet) Find(p int) int {
	d.check(p)
	for d.parent[p] != p {
		d.parent[p] = d.parent[d.parent[p]]
		p = d.parent[p]
	}
	return p
}

// Union merges the components of p and q.
// Returns false, and changes nothing, when they are already connected.
//
// Steps:
//  1. Find both roots; equal roots mean nothing to merge.
//  2. Hang the smaller tree under the larger root.
//  3. Update the surviving root's size and the component count.
func (d *DisjointSet) Union(p, q int) bool {
	// 1. Find both roots.
	rp, rq := d.Find(p), d.Find(q)
	if rp == rq {
		return false
	}
	// 2. Attach the smaller tree under the larger; ties keep p's root.
	if d.size[rp] < d.size[rq] {
		rp, rq = rq, rp
	}
	d.parent[rq] = rp
	// 3. Account for the merge.
	d.size[rp] += d.size[rq]
	d.count--
	return true
}

// Connected reports whether p and q share a component.
func (d *DisjointSet) Connected(p, q int) bool {
	return d.Find(p) == d.Find(q)
}

// Size returns the number of elements in p's component.
func (d *DisjointSet) Size(p int) int {
	return d.size[d.Find(p)]
}

func (d *DisjointSet) check(p int) {
	if p < 0 || p >= len(d.parent) {
		panic(fmt.Sprintf("dsu: id %d out of range [0, %d)", p, len(d.parent)))
	}
}
