package astar

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddEdgeSymmetric(t *testing.T) {
	g := NewGraph([]orb.Point{{0, 0}, {1, 0}, {2, 0}})

	require.NoError(t, g.AddEdge(0, 1, 2.5))

	assert.Equal(t, []Edge{{To: 1, Cost: 2.5}}, g.Edges[0])
	assert.Equal(t, []Edge{{To: 0, Cost: 2.5}}, g.Edges[1])
	assert.Empty(t, g.Edges[2])
	assert.Equal(t, 1, g.NumEdges())
	assert.Equal(t, 3, g.NumNodes())
}

func TestAddEdgeErrors(t *testing.T) {
	g := NewGraph([]orb.Point{{0, 0}, {1, 0}})

	t.Run("endpoint out of range", func(t *testing.T) {
		assert.ErrorIs(t, g.AddEdge(-1, 1, 1), ErrNodeOutOfRange)
		assert.ErrorIs(t, g.AddEdge(0, 2, 1), ErrNodeOutOfRange)
	})
	t.Run("self edge", func(t *testing.T) {
		assert.ErrorIs(t, g.AddEdge(1, 1, 1), ErrSelfEdge)
	})
	t.Run("negative weight", func(t *testing.T) {
		assert.ErrorIs(t, g.AddEdge(0, 1, -0.5), ErrNegativeWeight)
	})
	t.Run("nothing was inserted", func(t *testing.T) {
		assert.Zero(t, g.NumEdges())
	})
}

func TestValidate(t *testing.T) {
	valid := func(t *testing.T) *Graph {
		t.Helper()
		g := NewGraph([]orb.Point{{0, 0}, {1, 0}, {1, 1}})
		require.NoError(t, g.AddEdge(0, 1, 1))
		require.NoError(t, g.AddEdge(1, 2, 1))
		g.Goal = 2
		return g
	}

	t.Run("ok", func(t *testing.T) {
		assert.NoError(t, valid(t).Validate())
	})
	t.Run("empty", func(t *testing.T) {
		assert.ErrorIs(t, NewGraph(nil).Validate(), ErrEmptyGraph)
	})
	t.Run("start out of range", func(t *testing.T) {
		g := valid(t)
		g.Start = 5
		assert.ErrorIs(t, g.Validate(), ErrNodeOutOfRange)
	})
	t.Run("goal out of range", func(t *testing.T) {
		g := valid(t)
		g.Goal = -1
		assert.ErrorIs(t, g.Validate(), ErrNodeOutOfRange)
	})
	t.Run("adjacency size mismatch", func(t *testing.T) {
		g := valid(t)
		g.Edges = g.Edges[:2]
		assert.Error(t, g.Validate())
	})
	t.Run("endpoint out of range", func(t *testing.T) {
		g := valid(t)
		g.Edges[0] = append(g.Edges[0], Edge{To: 9, Cost: 1})
		assert.ErrorIs(t, g.Validate(), ErrNodeOutOfRange)
	})
	t.Run("negative weight", func(t *testing.T) {
		g := valid(t)
		g.Edges[1] = append(g.Edges[1], Edge{To: 2, Cost: -1})
		assert.ErrorIs(t, g.Validate(), ErrNegativeWeight)
	})
}
