package core_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spantree/core"
)

// buildSquare returns the 4-cycle 0-1(1), 1-2(2), 2-3(3), 0-3(4).
func buildSquare(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 2))
	require.NoError(t, g.AddEdge(2, 3, 3))
	require.NoError(t, g.AddEdge(0, 3, 4))

	return g
}

func TestNewGraph_Negative(t *testing.T) {
	g, err := core.NewGraph(-1)
	assert.Nil(t, g)
	assert.ErrorIs(t, err, core.ErrNegativeOrder)
}

func TestNewGraph_Empty(t *testing.T) {
	g, err := core.NewGraph(0)
	require.NoError(t, err)
	assert.Zero(t, g.Order())
	assert.Zero(t, g.Size())
	assert.Empty(t, g.Edges())
	assert.Empty(t, g.Adjacency())
}

func TestAddEdge_Errors(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)

	tests := []struct {
		name    string
		u, v    int
		w       int64
		wantErr error
	}{
		{"negative endpoint", -1, 1, 1, core.ErrVertexOutOfRange},
		{"endpoint too large", 0, 3, 1, core.ErrVertexOutOfRange},
		{"self loop", 1, 1, 1, core.ErrLoopNotAllowed},
		{"zero weight", 0, 1, 0, core.ErrBadWeight},
		{"negative weight", 0, 1, -5, core.ErrBadWeight},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, g.AddEdge(tc.u, tc.v, tc.w), tc.wantErr)
		})
	}
	assert.Zero(t, g.Size(), "rejected edges must not be stored")
}

func TestAddEdge_BothViews(t *testing.T) {
	g := buildSquare(t)

	wantEdges := []core.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: 2},
		{From: 2, To: 3, Weight: 3},
		{From: 0, To: 3, Weight: 4},
	}
	if diff := cmp.Diff(wantEdges, g.Edges()); diff != "" {
		t.Errorf("Edges() mismatch (-want +got):\n%s", diff)
	}

	wantAdj := [][]core.Neighbor{
		{{To: 1, Weight: 1}, {To: 3, Weight: 4}},
		{{To: 0, Weight: 1}, {To: 2, Weight: 2}},
		{{To: 1, Weight: 2}, {To: 3, Weight: 3}},
		{{To: 2, Weight: 3}, {To: 0, Weight: 4}},
	}
	if diff := cmp.Diff(wantAdj, g.Adjacency()); diff != "" {
		t.Errorf("Adjacency() mismatch (-want +got):\n%s", diff)
	}
}

func TestQueries_ReturnCopies(t *testing.T) {
	g := buildSquare(t)

	edges := g.Edges()
	edges[0].Weight = 100
	assert.Equal(t, int64(1), g.Edges()[0].Weight)

	nbs, err := g.Neighbors(0)
	require.NoError(t, err)
	nbs[0].To = 2
	again, _ := g.Neighbors(0)
	assert.Equal(t, 1, again[0].To)

	adj := g.Adjacency()
	adj[1] = nil
	assert.Len(t, g.Adjacency()[1], 2)
}

func TestNeighbors_OutOfRange(t *testing.T) {
	g := buildSquare(t)
	_, err := g.Neighbors(4)
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)
}

func TestComponent(t *testing.T) {
	// Two components: {0,1,2} and {3,4}.
	g, err := core.NewGraph(5)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 2))
	require.NoError(t, g.AddEdge(1, 2, 2))
	require.NoError(t, g.AddEdge(3, 4, 7))

	got, err := g.Component(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, got)

	got, err = g.Component(4)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 3}, got)

	_, err = g.Component(5)
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)
}
