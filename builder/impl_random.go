// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_random.go — stochastic topologies: RandomSparse, RandomConnected.
//
// Determinism:
//   - Stable trial order: for each i asc, j asc (j > i).
//   - Identical seeds give identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/spantree/core"
)

const (
	methodRandomSparse    = "RandomSparse"
	methodRandomConnected = "RandomConnected"

	probMin = 0.0
	probMax = 1.0
)

// RandomSparse includes every pair i<j independently with probability p.
// An RNG is required when 0 < p < 1.
func RandomSparse(p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkProbability(methodRandomSparse, p, cfg); err != nil {
			return err
		}

		n := g.Order()
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if !bernoulli(cfg, p) {
					continue
				}
				if err := addWeighted(g, cfg, i, j); err != nil {
					return wrapf(methodRandomSparse, fmt.Sprintf("AddEdge(%d,%d)", i, j), err)
				}
			}
		}

		return nil
	}
}

// RandomConnected produces a connected graph: vertex i (i ≥ 1) first attaches to a
// random earlier vertex, then every remaining pair i<j is added with probability p.
// No pair is connected twice. Always requires an RNG (the tree is random).
func RandomConnected(p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomConnected, ErrNeedRandSource)
		}
		if err := checkProbability(methodRandomConnected, p, cfg); err != nil {
			return err
		}

		n := g.Order()
		parent := make([]int, n)
		for v := 1; v < n; v++ {
			parent[v] = cfg.rng.Intn(v)
			if err := addWeighted(g, cfg, parent[v], v); err != nil {
				return wrapf(methodRandomConnected, "tree edge", err)
			}
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if parent[j] == i || !bernoulli(cfg, p) {
					continue
				}
				if err := addWeighted(g, cfg, i, j); err != nil {
					return wrapf(methodRandomConnected, fmt.Sprintf("AddEdge(%d,%d)", i, j), err)
				}
			}
		}

		return nil
	}
}

func checkProbability(method string, p float64, cfg builderConfig) error {
	if p < probMin || p > probMax {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w", method, p, probMin, probMax, ErrInvalidProbability)
	}
	if cfg.rng == nil && p > probMin && p < probMax {
		return fmt.Errorf("%s: rng is required: %w", method, ErrNeedRandSource)
	}

	return nil
}

// bernoulli returns true with probability p; p ∈ {0,1} never touches the RNG.
func bernoulli(cfg builderConfig, p float64) bool {
	switch p {
	case probMin:
		return false
	case probMax:
		return true
	}

	return cfg.rng.Float64() < p
}
