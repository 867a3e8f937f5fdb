// Package spantree computes Minimum Spanning Trees of undirected graphs with positive
// integer weights, and ships the tooling around them.
//
// Under the hood, everything is organized under these subpackages:
//
//	core/         — integer-indexed Graph, Edge and Neighbor types; matrix conversion
//	dsu/          — disjoint-set forest with path compression and union by rank
//	prim_kruskal/ — Kruskal, Prim (lazy heap) and PrimIndexed (decrease-key heap)
//	matrix/       — plain-text adjacency-matrix reader and writer
//	builder/      — deterministic random and regular graph generators
//	bench/        — wall-clock benchmark harness with CSV output
//	cmd/          — mst, mstbench and mstgen binaries
//
// Quick ASCII example:
//
//	0───1
//	│   │
//	3───2
//
// with weights 0–1=1, 1–2=2, 2–3=3, 3–0=4 has a spanning tree of cost 6.
package spantree
