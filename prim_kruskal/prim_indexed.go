package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/rhartert/sparsesets"

	"github.com/katalvlaran/spantree/core"
)

// PrimIndexed has the same contract as Prim but keeps at most one heap entry per
// vertex: when a cheaper edge to a frontier vertex is found, its key is decreased
// in place (heap.Fix) instead of pushing a duplicate.
//
// For every frontier vertex the first cheapest edge discovered wins; a later edge of
// equal weight does not replace it. Equal keys pop in vertex order.
//
// Complexity: O(E log V) time, O(V) memory.
func PrimIndexed(n int, adj [][]core.Neighbor, opts ...Option) ([]core.Edge, int64, error) {
	root, err := validatePrim(n, adj, opts)
	if err != nil {
		return nil, 0, err
	}
	if n == 0 {
		return []core.Edge{}, 0, nil
	}

	var (
		visited     = sparsesets.New(n)
		pred        = make([]int, n)
		mst         = make([]core.Edge, 0, n-1)
		totalWeight int64
	)
	for v := range pred {
		pred[v] = noPredecessor
	}

	pq := newIndexedPQ(n)
	pq.update(root, 0)

	for pq.Len() > 0 {
		it := heap.Pop(pq).(*indexedItem)
		u, w := it.vertex, it.key

		visited.Insert(u)
		if pred[u] != noPredecessor {
			mst = append(mst, core.Edge{From: pred[u], To: u, Weight: w})
			totalWeight += w
		}

		for _, nb := range adj[u] {
			if nb.To < 0 || nb.To >= n {
				return nil, 0, fmt.Errorf("neighbor %d of vertex %d: %w", nb.To, u, core.ErrVertexOutOfRange)
			}
			if visited.Contains(nb.To) {
				continue
			}
			if pq.update(nb.To, nb.Weight) {
				pred[nb.To] = u
			}
		}
	}

	return mst, totalWeight, nil
}

// indexedItem is a frontier vertex with its current best key.
// index is its position in the heap, -1 once popped or before insertion.
type indexedItem struct {
	vertex int
	key    int64
	index  int
}

// indexedPQ implements heap.Interface for a min‐heap of *indexedItem ordered by
// (key, vertex), with items[v] locating vertex v for decrease-key.
type indexedPQ struct {
	heap  []*indexedItem
	items []*indexedItem
}

func newIndexedPQ(n int) *indexedPQ {
	return &indexedPQ{items: make([]*indexedItem, n)}
}

// update inserts v with key, or lowers v's key when key is strictly smaller.
// It reports whether the queue changed. Popped vertices are never reinserted.
func (pq *indexedPQ) update(v int, key int64) bool {
	it := pq.items[v]
	switch {
	case it == nil:
		it = &indexedItem{vertex: v, key: key, index: -1}
		pq.items[v] = it
		heap.Push(pq, it)
	case it.index < 0 || key >= it.key:
		return false
	default:
		it.key = key
		heap.Fix(pq, it.index)
	}

	return true
}

// Len returns the number of queued vertices.
func (pq *indexedPQ) Len() int { return len(pq.heap) }

// Less orders by (key, vertex) ascending.
func (pq *indexedPQ) Less(i, j int) bool {
	a, b := pq.heap[i], pq.heap[j]
	if a.key != b.key {
		return a.key < b.key
	}

	return a.vertex < b.vertex
}

// Swap swaps elements at indices i and j and keeps their index fields current.
func (pq *indexedPQ) Swap(i, j int) {
	pq.heap[i], pq.heap[j] = pq.heap[j], pq.heap[i]
	pq.heap[i].index = i
	pq.heap[j].index = j
}

// Push appends a new *indexedItem. Called by heap.Push.
func (pq *indexedPQ) Push(x interface{}) {
	it := x.(*indexedItem)
	it.index = len(pq.heap)
	pq.heap = append(pq.heap, it)
}

// Pop removes and returns the last element and marks it as popped. Called by heap.Pop.
func (pq *indexedPQ) Pop() interface{} {
	old := pq.heap
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	it.index = -1
	pq.heap = old[:n-1]

	return it
}
