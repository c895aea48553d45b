package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/stategraph/core"
	"github.com/katalvlaran/stategraph/dfs"
	"github.com/katalvlaran/stategraph/identity"
)

func TestFindCycle_Nil(t *testing.T) {
	c, ok := dfs.FindCycle[key](nil)
	assert.False(t, ok)
	assert.Nil(t, c)
	assert.False(t, dfs.HasCycle[key](nil))
}

func TestFindCycle_Acyclic(t *testing.T) {
	g := buildBinaryTree(3)
	_, ok := dfs.FindCycle(g)
	assert.False(t, ok)
	assert.False(t, dfs.HasCycle(g))
}

func TestFindCycle_RotatedToSmallest(t *testing.T) {
	g := core.NewGraph[key]()
	g.AddEdge(9, 7, 1)
	g.AddEdge(7, 8, 1)
	g.AddEdge(8, 5, 1)
	g.AddEdge(5, 7, 1)

	c, ok := dfs.FindCycle(g)
	assert.True(t, ok)
	assert.Equal(t, []identity.ID{5, 7, 8}, c)
	assert.True(t, dfs.HasCycle(g))
}

func TestFindCycle_SelfLoop(t *testing.T) {
	g := core.NewGraph[key]()
	g.AddEdge(1, 2, 1)
	g.AddEdge(3, 3, 1)

	c, ok := dfs.FindCycle(g)
	assert.True(t, ok)
	assert.Equal(t, []identity.ID{3}, c)
}

func TestHasCycle_GridScenario(t *testing.T) {
	g := core.NewGraph[key]()
	g.AddUndirectedEdge(0, 1, 1)
	assert.True(t, dfs.HasCycle(g), "two-way edge forms a 2-cycle")

	g.RemoveEdge(1, 0)
	assert.False(t, dfs.HasCycle(g))
}
