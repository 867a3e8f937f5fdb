// Package prim_kruskal provides an implementation of Prim’s Minimum Spanning Tree (MST) algorithm.
// It grows the MST from a root vertex using a min‐heap with lazy deletion.
package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/spantree/core"
)

// noPredecessor marks the seed entry of the heap.
const noPredecessor = -1

// Prim computes the minimum spanning tree of the component containing the root vertex
// (vertex 0 unless WithRoot is given) of the undirected graph described by adj.
//
// Error Conditions:
//   - ErrInvalidGraph           : if n < 0 or len(adj) != n.
//   - ErrRootOutOfRange         : if n > 0 and the root is outside [0, n).
//   - core.ErrVertexOutOfRange  : if an adjacency entry points outside [0, n).
//
// Steps:
//  1. Validate; n == 0 → empty MST.
//  2. Seed the heap with (weight 0, root, no predecessor).
//  3. While the heap is not empty:
//     a. Pop the cheapest entry.
//     b. If its vertex is already visited, drop it (stale entry).
//     c. Mark it visited; if it has a predecessor, accept (pred, vertex, weight).
//     d. Push every neighbor that is not yet visited. Duplicates are allowed.
//  4. Return the tree of the root's component; vertices outside it never appear.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(n int, adj [][]core.Neighbor, opts ...Option) ([]core.Edge, int64, error) {
	// 1. Validate input shape and root.
	root, err := validatePrim(n, adj, opts)
	if err != nil {
		return nil, 0, err
	}
	if n == 0 {
		return []core.Edge{}, 0, nil
	}

	var (
		visited     = make([]bool, n)
		mst         = make([]core.Edge, 0, n-1)
		totalWeight int64
	)

	// 2. Seed entry: weight 0, no predecessor.
	pq := &frontierPQ{{weight: 0, vertex: root, pred: noPredecessor}}
	heap.Init(pq)

	// 3. Main loop.
	for pq.Len() > 0 {
		it := heap.Pop(pq).(frontierItem)
		if visited[it.vertex] {
			continue
		}
		visited[it.vertex] = true
		if it.pred != noPredecessor {
			mst = append(mst, core.Edge{From: it.pred, To: it.vertex, Weight: it.weight})
			totalWeight += it.weight
		}

		for _, nb := range adj[it.vertex] {
			if nb.To < 0 || nb.To >= n {
				return nil, 0, fmt.Errorf("neighbor %d of vertex %d: %w", nb.To, it.vertex, core.ErrVertexOutOfRange)
			}
			if !visited[nb.To] {
				heap.Push(pq, frontierItem{weight: nb.Weight, vertex: nb.To, pred: it.vertex})
			}
		}
	}

	// 4. Tree of the root's component.
	return mst, totalWeight, nil
}

// validatePrim checks the shared Prim/PrimIndexed preconditions and resolves the root.
func validatePrim(n int, adj [][]core.Neighbor, opts []Option) (int, error) {
	if n < 0 || len(adj) != n {
		return 0, ErrInvalidGraph
	}
	o := buildOptions(opts)
	if n > 0 && (o.Root < 0 || o.Root >= n) {
		return 0, fmt.Errorf("root %d not in [0,%d): %w", o.Root, n, ErrRootOutOfRange)
	}

	return o.Root, nil
}

// frontierItem is a candidate edge pred→vertex of the given weight.
type frontierItem struct {
	weight int64
	vertex int
	pred   int
}

// frontierPQ implements heap.Interface for a min‐heap of frontierItem,
// ordered by weight, then vertex, then predecessor.
type frontierPQ []frontierItem

// Len returns the number of entries in the priority queue.
func (pq frontierPQ) Len() int { return len(pq) }

// Less orders by (weight, vertex, pred) ascending.
func (pq frontierPQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	if a.vertex != b.vertex {
		return a.vertex < b.vertex
	}

	return a.pred < b.pred
}

// Swap swaps elements at indices i and j.
func (pq frontierPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new frontierItem. Called by heap.Push.
func (pq *frontierPQ) Push(x interface{}) { *pq = append(*pq, x.(frontierItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *frontierPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]

	return it
}
