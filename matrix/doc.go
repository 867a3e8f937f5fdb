// Package matrix reads and writes graphs in the plain-text adjacency-matrix format:
//
//	n
//	a00 a01 ... a0(n-1)
//	a10 a11 ... a1(n-1)
//	...
//
// The first line holds the vertex count n, followed by n rows of n whitespace-separated
// integers. An entry a_ij > 0 is an undirected edge of that weight between i and j; entries
// <= 0, including the diagonal, mean "no edge". Only the upper triangle (i < j) is consulted,
// so a non-symmetric matrix is accepted and its lower triangle silently ignored.
//
// Blank lines are skipped and anything after the n-th row is ignored.
//
// Write emits the symmetric matrix of a graph, so Read(Write(g)) yields the same edge set.
package matrix
