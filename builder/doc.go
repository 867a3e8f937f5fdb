// SPDX-License-Identifier: MIT
// Package builder generates deterministic test and benchmark graphs for the MST algorithms.
//
// A graph is produced by BuildGraph(n, opts, constructors...): it allocates n isolated
// vertices and applies each Constructor in order. Constructors:
//
//	Path()              0—1—…—(n-1)
//	Cycle()             Path plus (n-1)—0, n ≥ 3
//	Complete()          every pair i<j
//	RandomSparse(p)     every pair i<j independently with probability p
//	RandomConnected(p)  a uniform-ish random spanning tree plus every other pair with probability p
//
// Weights come from the configured weight function (constant 1 by default; see WithWeightRange).
// With a fixed WithSeed every constructor is fully reproducible: pairs are visited i asc, j asc.
package builder
