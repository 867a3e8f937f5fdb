// File: matrix.go
// Role: conversion between Graph and a dense symmetric weight matrix.
// Contract:
//   - FromMatrix reads only the upper triangle (i < j); entries <= 0 mean "no edge".
//   - Edge order is i asc, then j asc, so the result is deterministic for a given matrix.
//   - Symmetry is NOT validated; the lower triangle is ignored.

package core

import "fmt"

// FromMatrix builds a Graph from an n×n weight matrix.
//
// Errors: ErrNonSquare when any row length differs from len(m).
// Complexity: O(n²).
func FromMatrix(m [][]int64) (*Graph, error) {
	n := len(m)
	for i, row := range m {
		if len(row) != n {
			return nil, fmt.Errorf("row %d has %d entries, want %d: %w", i, len(row), n, ErrNonSquare)
		}
	}

	g, err := NewGraph(n)
	if err != nil {
		return nil, err
	}

	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if m[i][j] <= 0 {
				continue
			}
			if err = g.AddEdge(i, j, m[i][j]); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// Matrix returns the symmetric n×n weight matrix of g with 0 for absent edges.
// When parallel edges exist between the same pair, the lighter weight is kept.
// Complexity: O(n² + E).
func (g *Graph) Matrix() [][]int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	m := make([][]int64, g.n)
	for i := range m {
		m[i] = make([]int64, g.n)
	}
	for _, e := range g.edges {
		cur := m[e.From][e.To]
		if cur != 0 && cur <= e.Weight {
			continue
		}
		m[e.From][e.To] = e.Weight
		m[e.To][e.From] = e.Weight
	}

	return m
}
