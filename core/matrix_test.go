package core_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spantree/core"
)

func TestFromMatrix_UpperTriangleOnly(t *testing.T) {
	// The lower triangle disagrees with the upper one and must be ignored;
	// the diagonal and non-positive entries mean "no edge".
	m := [][]int64{
		{9, 1, 0, 4},
		{7, 0, 2, -3},
		{0, 0, 0, 3},
		{0, 0, 0, 0},
	}
	g, err := core.FromMatrix(m)
	require.NoError(t, err)

	want := []core.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 0, To: 3, Weight: 4},
		{From: 1, To: 2, Weight: 2},
		{From: 2, To: 3, Weight: 3},
	}
	if diff := cmp.Diff(want, g.Edges()); diff != "" {
		t.Errorf("edges mismatch (-want +got):\n%s", diff)
	}
}

func TestFromMatrix_NonSquare(t *testing.T) {
	_, err := core.FromMatrix([][]int64{{0, 1}, {1}})
	assert.ErrorIs(t, err, core.ErrNonSquare)
}

func TestFromMatrix_AllZero(t *testing.T) {
	g, err := core.FromMatrix([][]int64{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}})
	require.NoError(t, err)
	assert.Equal(t, 3, g.Order())
	assert.Zero(t, g.Size())
}

func TestMatrix_RoundTrip(t *testing.T) {
	g := buildSquare(t)
	m := g.Matrix()

	want := [][]int64{
		{0, 1, 0, 4},
		{1, 0, 2, 0},
		{0, 2, 0, 3},
		{4, 0, 3, 0},
	}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Fatalf("Matrix() mismatch (-want +got):\n%s", diff)
	}

	back, err := core.FromMatrix(m)
	require.NoError(t, err)
	assert.ElementsMatch(t, g.Edges(), back.Edges())
}

func TestMatrix_ParallelEdgesKeepLighter(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 5))
	require.NoError(t, g.AddEdge(1, 0, 2))
	require.NoError(t, g.AddEdge(0, 1, 3))

	m := g.Matrix()
	assert.Equal(t, int64(2), m[0][1])
	assert.Equal(t, int64(2), m[1][0])
}
