package core

import "github.com/rhartert/sparsesets"

// Component returns the vertices reachable from v, in BFS discovery order starting with v.
//
// Errors: ErrVertexOutOfRange.
// Complexity: O(V + E).
func (g *Graph) Component(v int) ([]int, error) {
	if err := g.checkVertex(v); err != nil {
		return nil, err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	seen := sparsesets.New(g.n)
	seen.Insert(v)
	queue := []int{v}
	for head := 0; head < len(queue); head++ {
		for _, nb := range g.adjacency[queue[head]] {
			if seen.Contains(nb.To) {
				continue
			}
			seen.Insert(nb.To)
			queue = append(queue, nb.To)
		}
	}

	return queue, nil
}
