// SPDX-License-Identifier: MIT
// Package: builder
//
// api.go — public entry point.

package builder

import (
	"fmt"

	"github.com/katalvlaran/spantree/core"
)

// Constructor adds edges to g according to cfg. Implementations must not panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a graph of n isolated vertices and applies every constructor in order.
// Equal inputs (including the seed) always yield the same graph.
func BuildGraph(n int, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}
