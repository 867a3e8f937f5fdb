// Package prim_kruskal provides an implementation of Kruskal’s Minimum Spanning Tree algorithm.
// It consumes the flat edge list of an undirected graph and produces a minimum spanning forest.
package prim_kruskal

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/dsu"
)

// Kruskal computes a minimum spanning forest of the undirected graph with n vertices and
// the given edges (each undirected edge listed once). It uses a dsu.DisjointSet with
// path compression and union by rank.
//
// Error Conditions:
//   - ErrInvalidGraph   : if n < 0.
//   - dsu.ErrOutOfRange : if an edge endpoint is outside [0, n).
//
// Steps:
//  1. Validate n and every edge endpoint; then, if n <= 1, there is nothing to
//     connect → empty MST, weight 0.
//  2. Copy edges so the caller's slice is never reordered.
//  3. Stable-sort by ascending Weight (ties keep input order).
//  4. Scan sorted edges: if find(u) != find(v), union(u,v) and accept the edge.
//  5. Stop once n−1 edges are accepted or edges run out.
//     Fewer than n−1 accepted edges means the graph was disconnected: the result is
//     the spanning forest and is returned without error.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal(n int, edges []core.Edge) ([]core.Edge, int64, error) {
	// 1. Validate vertex count and endpoints.
	if n < 0 {
		return nil, 0, ErrInvalidGraph
	}
	for i, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return nil, 0, fmt.Errorf("edge #%d (%d,%d) with n=%d: %w", i, e.From, e.To, n, dsu.ErrOutOfRange)
		}
	}
	if n <= 1 {
		return []core.Edge{}, 0, nil
	}

	// 2-3. Sort a private copy by weight.
	sorted := make([]core.Edge, len(edges))
	copy(sorted, edges)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight < sorted[j].Weight
	})

	// 4. Build the forest.
	var (
		ds          = dsu.New(n)
		mst         = make([]core.Edge, 0, n-1)
		totalWeight int64
	)
	for _, e := range sorted {
		merged, err := ds.Union(e.From, e.To)
		if err != nil {
			return nil, 0, err
		}
		if !merged {
			// Endpoints already connected: the edge would close a cycle.
			continue
		}
		mst = append(mst, e)
		totalWeight += e.Weight

		// 5. A spanning tree is complete.
		if len(mst) == n-1 {
			break
		}
	}

	return mst, totalWeight, nil
}
