// SPDX-License-Identifier: MIT

package matrix

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/spantree/core"
)

// WriteFile writes g to path (created or truncated) in the adjacency-matrix format.
func WriteFile(path string, g *core.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = Write(f, g); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// Write emits the symmetric weight matrix of g: the vertex count, then one row per vertex.
//
// Errors: ErrGraphNil, or the underlying writer error.
// Complexity: O(n²).
func Write(w io.Writer, g *core.Graph) error {
	if g == nil {
		return ErrGraphNil
	}

	bw := bufio.NewWriter(w)
	m := g.Matrix()

	buf := strconv.AppendInt(nil, int64(len(m)), 10)
	buf = append(buf, '\n')
	if _, err := bw.Write(buf); err != nil {
		return err
	}
	for _, row := range m {
		buf = buf[:0]
		for j, v := range row {
			if j > 0 {
				buf = append(buf, ' ')
			}
			buf = strconv.AppendInt(buf, v, 10)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}

	return bw.Flush()
}
