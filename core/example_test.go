package core_test

import (
	"fmt"

	"github.com/katalvlaran/spantree/core"
)

// ExampleFromMatrix builds a graph from a symmetric weight matrix and lists both views.
func ExampleFromMatrix() {
	g, err := core.FromMatrix([][]int64{
		{0, 3, 1},
		{3, 0, 0},
		{1, 0, 0},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("edges:", g.Edges())
	nbs, _ := g.Neighbors(0)
	fmt.Println("neighbors of 0:", nbs)
	// Output:
	// edges: [{0 1 3} {0 2 1}]
	// neighbors of 0: [{1 3} {2 1}]
}
