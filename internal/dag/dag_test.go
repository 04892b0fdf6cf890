package dag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	g := New()
	require.NotNil(t, g)
	assert.Zero(t, g.Len())
}

func TestAddNode(t *testing.T) {
	g := New()

	g.AddNode("economy")
	assert.Equal(t, 1, g.Len())
	n, ok := g.nodes["economy"]
	require.True(t, ok)
	assert.Equal(t, "economy", n.id)
	assert.NotNil(t, n.deps)
	assert.NotNil(t, n.dependents)

	g.AddNode("economy") // idempotent
	assert.Equal(t, 1, g.Len())

	g.AddNode("energy")
	assert.Equal(t, 2, g.Len())
}

func TestAddEdge(t *testing.T) {
	t.Run("success case", func(t *testing.T) {
		g := New()
		g.AddNode("population")
		g.AddNode("economy")

		err := g.AddEdge("population", "economy") // economy depends on population
		require.NoError(t, err)

		deps, err := g.Dependencies("economy")
		require.NoError(t, err)
		assert.Equal(t, []string{"population"}, deps)

		dependents, err := g.Dependents("population")
		require.NoError(t, err)
		assert.Equal(t, []string{"economy"}, dependents)
	})

	t.Run("error cases", func(t *testing.T) {
		g := New()
		g.AddNode("economy")

		err := g.AddEdge("dne", "economy")
		assert.ErrorContains(t, err, "source node not found")

		err = g.AddEdge("economy", "dne")
		assert.ErrorContains(t, err, "destination node not found")

		err = g.AddEdge("economy", "economy")
		assert.ErrorContains(t, err, "self-referential edge")
	})
}
