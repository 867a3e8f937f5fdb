// File: methods.go
// Role: edge insertion and read-only queries over the two graph views.
// Determinism:
//   - Edges() and Neighbors() return entries in insertion order.
// Concurrency:
//   - AddEdge under the write lock; every query under the read lock and returns a copy.

package core

import "fmt"

// AddEdge inserts the undirected edge {u, v} with weight w.
// The edge is appended once to the flat edge list and mirrored into both adjacency lists.
//
// Errors: ErrVertexOutOfRange, ErrLoopNotAllowed, ErrBadWeight.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, w int64) error {
	if err := g.checkVertex(u); err != nil {
		return err
	}
	if err := g.checkVertex(v); err != nil {
		return err
	}
	if u == v {
		return fmt.Errorf("edge (%d,%d): %w", u, v, ErrLoopNotAllowed)
	}
	if w <= 0 {
		return fmt.Errorf("edge (%d,%d) weight %d: %w", u, v, w, ErrBadWeight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.edges = append(g.edges, Edge{From: u, To: v, Weight: w})
	g.adjacency[u] = append(g.adjacency[u], Neighbor{To: v, Weight: w})
	g.adjacency[v] = append(g.adjacency[v], Neighbor{To: u, Weight: w})

	return nil
}

// Order returns the number of vertices.
func (g *Graph) Order() int { return g.n }

// Size returns the number of undirected edges.
func (g *Graph) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Edges returns a copy of the flat edge list in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Neighbors returns a copy of v's adjacency list.
// Complexity: O(deg(v)).
func (g *Graph) Neighbors(v int) ([]Neighbor, error) {
	if err := g.checkVertex(v); err != nil {
		return nil, err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Neighbor, len(g.adjacency[v]))
	copy(out, g.adjacency[v])

	return out, nil
}

// Adjacency returns a deep copy of every adjacency list, indexed by vertex.
// Complexity: O(V + E).
func (g *Graph) Adjacency() [][]Neighbor {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([][]Neighbor, g.n)
	for v, list := range g.adjacency {
		out[v] = make([]Neighbor, len(list))
		copy(out[v], list)
	}

	return out
}

// checkVertex reports ErrVertexOutOfRange when v is not in [0, n).
func (g *Graph) checkVertex(v int) error {
	if v < 0 || v >= g.n {
		return fmt.Errorf("vertex %d not in [0,%d): %w", v, g.n, ErrVertexOutOfRange)
	}

	return nil
}
