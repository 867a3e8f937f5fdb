// Package dsu implements a fixed-size disjoint-set (union-find) forest over the
// elements 0..n-1, with full path compression and union by rank.
//
// Find is iterative: a first pass climbs to the root, a second pass relinks every
// visited element directly to it. Union attaches the lower-rank root under the
// higher-rank one; on a rank tie the root of v goes under the root of u and the
// rank of u's root grows by one. That tie-break is part of the contract, callers
// may rely on which element ends up as representative.
//
// A DisjointSet is not safe for concurrent use; build one per computation.
package dsu

import (
	"errors"
	"fmt"
)

// ErrOutOfRange indicates an element index outside [0, n).
var ErrOutOfRange = errors.New("dsu: element out of range")

// DisjointSet tracks a partition of 0..n-1 into disjoint components.
//
// Invariant: parent[v] == v iff v is the representative of its component.
// rank is only meaningful at roots and only grows on equal-rank unions.
type DisjointSet struct {
	parent []int
	rank   []int
	count  int // number of components
}

// New returns a DisjointSet of n singleton components.
// A negative n is treated as 0.
// Complexity: O(n).
func New(n int) *DisjointSet {
	if n < 0 {
		n = 0
	}
	d := &DisjointSet{
		parent: make([]int, n),
		rank:   make([]int, n),
		count:  n,
	}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// Len returns the size of the universe.
func (d *DisjointSet) Len() int { return len(d.parent) }

// Count returns the current number of components.
func (d *DisjointSet) Count() int { return d.count }

// Find returns the representative of v's component and compresses the path
// from v to it. Membership is never changed.
//
// Errors: ErrOutOfRange.
// Complexity: amortized O(α(n)).
func (d *DisjointSet) Find(v int) (int, error) {
	if err := d.check(v); err != nil {
		return 0, err
	}

	return d.find(v), nil
}

// Union merges the components of u and v.
// It reports false when they already shared a component.
//
// Errors: ErrOutOfRange.
// Complexity: amortized O(α(n)).
func (d *DisjointSet) Union(u, v int) (bool, error) {
	if err := d.check(u); err != nil {
		return false, err
	}
	if err := d.check(v); err != nil {
		return false, err
	}

	ru, rv := d.find(u), d.find(v)
	if ru == rv {
		return false, nil
	}
	switch {
	case d.rank[ru] > d.rank[rv]:
		d.parent[rv] = ru
	case d.rank[ru] < d.rank[rv]:
		d.parent[ru] = rv
	default:
		d.parent[rv] = ru
		d.rank[ru]++
	}
	d.count--

	return true, nil
}

// Connected reports whether u and v share a component.
//
// Errors: ErrOutOfRange.
func (d *DisjointSet) Connected(u, v int) (bool, error) {
	ru, err := d.Find(u)
	if err != nil {
		return false, err
	}
	rv, err := d.Find(v)
	if err != nil {
		return false, err
	}

	return ru == rv, nil
}

// find assumes v is in range.
func (d *DisjointSet) find(v int) int {
	root := v
	for d.parent[root] != root {
		root = d.parent[root]
	}
	for d.parent[v] != root {
		next := d.parent[v]
		d.parent[v] = root
		v = next
	}

	return root
}

func (d *DisjointSet) check(v int) error {
	if v < 0 || v >= len(d.parent) {
		return fmt.Errorf("element %d not in [0,%d): %w", v, len(d.parent), ErrOutOfRange)
	}

	return nil
}
