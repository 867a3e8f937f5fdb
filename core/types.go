// Package core defines the integer-indexed Graph, Edge and Neighbor types shared by
// every MST algorithm in this module.
//
// A Graph over n vertices holds two views of the same undirected edge set, both built
// once by AddEdge and read-only afterwards:
//
//	edges     - flat list of Edge in insertion order (consumed by Kruskal).
//	adjacency - per-vertex list of Neighbor in insertion order (consumed by Prim).
//
// Vertices are the integers 0..n-1 and carry no payload.
//
// Errors:
//
//	ErrNegativeOrder     - NewGraph called with n < 0.
//	ErrVertexOutOfRange  - vertex index outside [0, n).
//	ErrLoopNotAllowed    - self-loop (u == v).
//	ErrBadWeight         - weight <= 0 (zero means "no edge" in the matrix format).
//	ErrNonSquare         - FromMatrix input is not n×n.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeOrder indicates a negative vertex count.
	ErrNegativeOrder = errors.New("core: negative vertex count")

	// ErrVertexOutOfRange indicates an operation referenced a vertex outside [0, n).
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrBadWeight indicates a non-positive edge weight.
	ErrBadWeight = errors.New("core: edge weight must be positive")

	// ErrNonSquare indicates that a matrix passed to FromMatrix is not square.
	ErrNonSquare = errors.New("core: matrix is not square")
)

// Edge is an undirected weighted connection between two vertices.
// (From, To, Weight) and (To, From, Weight) denote the same edge.
type Edge struct {
	// From is the first endpoint, as given to AddEdge.
	From int

	// To is the second endpoint.
	To int

	// Weight is the cost of the edge, always > 0 inside a Graph.
	Weight int64
}

// Neighbor is one entry of a vertex adjacency list.
type Neighbor struct {
	// To is the adjacent vertex.
	To int

	// Weight is the weight of the connecting edge.
	Weight int64
}

// Graph is an undirected weighted graph over the vertices 0..n-1.
//
// mu guards edges and adjacency; the vertex count never changes after NewGraph.
type Graph struct {
	mu sync.RWMutex

	n         int          // vertex count
	edges     []Edge       // flat edge list, insertion order
	adjacency [][]Neighbor // adjacency[v] = neighbors of v, insertion order
}

// NewGraph creates a Graph with n isolated vertices.
// Complexity: O(n).
func NewGraph(n int) (*Graph, error) {
	if n < 0 {
		return nil, ErrNegativeOrder
	}

	return &Graph{
		n:         n,
		adjacency: make([][]Neighbor, n),
	}, nil
}
