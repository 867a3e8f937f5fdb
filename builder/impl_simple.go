// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_simple.go — deterministic topologies: Path, Cycle, Complete.

package builder

import (
	"fmt"

	"github.com/katalvlaran/spantree/core"
)

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodComplete = "Complete"

	minCycleVertices = 3
)

// Path connects i-1 to i for every i in 1..n-1.
func Path() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		for i := 1; i < g.Order(); i++ {
			if err := addWeighted(g, cfg, i-1, i); err != nil {
				return wrapf(methodPath, "AddEdge", err)
			}
		}

		return nil
	}
}

// Cycle is Path plus the closing edge (n-1, 0). Requires n ≥ 3.
func Cycle() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.Order()
		if n < minCycleVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleVertices, ErrTooFewVertices)
		}
		if err := Path()(g, cfg); err != nil {
			return err
		}
		if err := addWeighted(g, cfg, n-1, 0); err != nil {
			return wrapf(methodCycle, "AddEdge", err)
		}

		return nil
	}
}

// Complete connects every pair i<j.
func Complete() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.Order()
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addWeighted(g, cfg, i, j); err != nil {
					return wrapf(methodComplete, "AddEdge", err)
				}
			}
		}

		return nil
	}
}

// addWeighted adds {u,v} with a weight drawn from cfg.
func addWeighted(g *core.Graph, cfg builderConfig, u, v int) error {
	return g.AddEdge(u, v, cfg.weightFn(cfg.rng))
}
