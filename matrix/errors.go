// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set for the text adjacency-matrix format.
// Every message is prefixed with "matrix: ..."; loaders wrap them with the
// offending line number, callers match with errors.Is.

package matrix

import "errors"

var (
	// ErrBadHeader indicates that the first line is not a single non-negative integer.
	ErrBadHeader = errors.New("matrix: invalid vertex count header")

	// ErrMissingRows indicates that the input ended before n rows were read.
	ErrMissingRows = errors.New("matrix: missing rows")

	// ErrNonSquare indicates a row whose entry count differs from n.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrBadEntry indicates an entry that is not a base-10 integer.
	ErrBadEntry = errors.New("matrix: invalid entry")

	// ErrGraphNil indicates that a nil *core.Graph was passed to Write.
	ErrGraphNil = errors.New("matrix: graph is nil")
)
