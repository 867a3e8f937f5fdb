// SPDX-License-Identifier: MIT

package matrix

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/spantree/core"
)

// maxLineBytes bounds a single row; 64 MiB fits n in the millions of one-digit entries.
const maxLineBytes = 64 << 20

// ReadFile opens path and parses it with Read.
func ReadFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// Read parses an adjacency-matrix description and builds the graph from its upper triangle.
//
// Errors (wrapped with the line number): ErrBadHeader, ErrMissingRows, ErrNonSquare, ErrBadEntry,
// or the underlying reader error.
// Complexity: O(n²).
func Read(r io.Reader) (*core.Graph, error) {
	m, err := ReadMatrix(r)
	if err != nil {
		return nil, err
	}

	return core.FromMatrix(m)
}

// ReadMatrix parses the raw n×n matrix without building a graph.
func ReadMatrix(r io.Reader) ([][]int64, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		line int
		n    = -1
		rows [][]int64
	)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}

		if n < 0 {
			v, err := strconv.Atoi(text)
			if err != nil || v < 0 {
				return nil, fmt.Errorf("line %d: %q: %w", line, text, ErrBadHeader)
			}
			n = v
			if n == 0 {
				break
			}
			continue
		}

		row, err := parseRow(text, n)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		rows = append(rows, row)
		if len(rows) == n {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	if n < 0 {
		return nil, fmt.Errorf("empty input: %w", ErrBadHeader)
	}
	if len(rows) < n {
		return nil, fmt.Errorf("got %d of %d rows: %w", len(rows), n, ErrMissingRows)
	}

	return rows, nil
}

func parseRow(text string, n int) ([]int64, error) {
	fields := strings.Fields(text)
	if len(fields) != n {
		return nil, fmt.Errorf("%d entries, want %d: %w", len(fields), n, ErrNonSquare)
	}

	row := make([]int64, n)
	for j, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("column %d: %q: %w", j, f, ErrBadEntry)
		}
		row[j] = v
	}

	return row, nil
}
