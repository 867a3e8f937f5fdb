// Package prim_kruskal computes Minimum Spanning Trees (MST) of undirected graphs with
// positive integer weights over the vertices 0..n-1.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E that
//     connects every vertex of V with no cycle and the smallest possible sum of weights.
//
//   - What if G is disconnected?
//     Kruskal returns a minimum spanning forest (one tree per component). Prim returns the
//     tree of the root's component only. Neither case is an error; use Spans to tell whether
//     a result covers all n vertices.
//
// Algorithms Provided
//
//   - Kruskal(n int, edges []core.Edge) ([]core.Edge, int64, error)
//
//   - Strategy: stable-sort the edges by weight, then accept an edge whenever its endpoints
//     are in different components of a dsu.DisjointSet. Stops after n−1 accepted edges.
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) space.
//
//   - Prim(n int, adj [][]core.Neighbor, opts ...Option) ([]core.Edge, int64, error)
//
//   - Strategy: grow one tree from the root (vertex 0 unless WithRoot is given) using a
//     binary min-heap of frontier entries. Stale entries are left in the heap and skipped
//     when popped (lazy deletion).
//
//   - Complexity: O(E log E) time, O(V + E) space.
//
//   - PrimIndexed(n int, adj [][]core.Neighbor, opts ...Option) ([]core.Edge, int64, error)
//
//   - Strategy: same contract as Prim, but the heap is indexed by vertex and supports
//     decrease-key, so it never holds more than V entries.
//
//   - Complexity: O(E log V) time, O(V) heap space.
//
// Determinism
//
//   - Kruskal breaks weight ties by input order (stable sort).
//   - Prim breaks weight ties by vertex id, then by predecessor id.
//   - PrimIndexed keeps, for every frontier vertex, the first cheapest edge discovered.
//
// Error Conditions
//
//   - ErrInvalidGraph     : negative n, nil graph, or adjacency length != n.
//   - ErrRootOutOfRange   : Prim root outside [0, n).
//   - ErrUnknownMethod    : ParseMethod got a name other than kruskal, prim or prim-indexed.
//   - dsu.ErrOutOfRange   : Kruskal edge endpoint outside [0, n).
//   - core.ErrVertexOutOfRange : Prim adjacency entry pointing outside [0, n).
//
// All algorithms are pure functions of their input: they never mutate the given slices and
// allocate their own union-find or heap per call, so concurrent calls are safe.
package prim_kruskal
