package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stategraph/bfs"
	"github.com/katalvlaran/stategraph/core"
	"github.com/katalvlaran/stategraph/identity"
)

type key = identity.Key

// buildSquare returns the undirected cycle 1–2–3–4–1.
func buildSquare() *core.Graph[key] {
	g := core.NewGraph[key]()
	g.AddUndirectedEdge(1, 2, 1)
	g.AddUndirectedEdge(2, 3, 1)
	g.AddUndirectedEdge(3, 4, 1)
	g.AddUndirectedEdge(4, 1, 1)

	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS[key](nil, 1)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := core.NewGraph[key]()
	_, err = bfs.BFS(g, 1)
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
	assert.Zero(t, g.VertexCount(), "start lookup must not create a vertex")

	g.AddVertex(1)
	_, err = bfs.BFS(g, 1, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_SingleVertex covers the trivial one-vertex graph.
func TestBFS_SingleVertex(t *testing.T) {
	g := core.NewGraph[key]()
	g.AddVertex(7)

	res, err := bfs.BFS(g, 7)
	require.NoError(t, err)
	assert.Equal(t, []identity.ID{7}, res.Order)
	assert.Equal(t, 0, res.Depth[7])
	assert.Empty(t, res.Parent)
}

// TestBFS_CycleLayers covers a cycle and checks depths per layer.
func TestBFS_CycleLayers(t *testing.T) {
	res, err := bfs.BFS(buildSquare(), 1)
	require.NoError(t, err)

	require.Len(t, res.Order, 4)
	assert.Equal(t, identity.ID(1), res.Order[0])
	assert.ElementsMatch(t, []identity.ID{2, 4}, res.Order[1:3])
	assert.Equal(t, identity.ID(3), res.Order[3])
	assert.Equal(t, map[identity.ID]int{1: 0, 2: 1, 4: 1, 3: 2}, res.Depth)
}

// TestBFS_DirectedReachability checks edges are followed only forwards.
func TestBFS_DirectedReachability(t *testing.T) {
	g := core.NewGraph[key]()
	g.AddEdge(1, 2, 1)
	g.AddEdge(3, 1, 1)
	g.AddEdge(2, 2, 1)

	res, err := bfs.BFS(g, 1)
	require.NoError(t, err)
	assert.Equal(t, []identity.ID{1, 2}, res.Order)
	assert.NotContains(t, res.Depth, identity.ID(3))
}

// TestBFS_SearchInfo checks the metadata left on the vertices.
func TestBFS_SearchInfo(t *testing.T) {
	g := buildSquare()
	g.AddVertex(9)
	v9, _ := g.FindVertex(9)
	v9.Search.Checked = true // stale state from an earlier search

	_, err := bfs.BFS(g, 1)
	require.NoError(t, err)

	v3, _ := g.FindVertex(3)
	assert.True(t, v3.Search.Checked)
	assert.False(t, v3.Search.InOpenList)
	assert.Equal(t, 2.0, v3.Search.G)
	assert.True(t, v3.Search.HasParent)
	assert.Contains(t, []identity.ID{2, 4}, v3.Search.Parent)

	v1, _ := g.FindVertex(1)
	assert.False(t, v1.Search.HasParent)
	assert.False(t, v9.Search.Checked, "unreached vertex is reset")
}

// TestBFS_MaxDepth ensures MaxDepth stops exploration.
func TestBFS_MaxDepth(t *testing.T) {
	g := core.NewGraph[key]()
	for i := key(0); i < 5; i++ {
		g.AddEdge(i, i+1, 1)
	}

	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []identity.ID{0, 1, 2}, res.Order)

	res, err = bfs.BFS(g, 0, bfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Len(t, res.Order, 6, "zero means no limit")
}

// TestBFS_FilterEdge prunes heavy edges.
func TestBFS_FilterEdge(t *testing.T) {
	g := core.NewGraph[key]()
	g.AddEdge(1, 2, 1)
	g.AddEdge(1, 3, 50)
	g.AddEdge(2, 3, 1)

	res, err := bfs.BFS(g, 1, bfs.WithFilterEdge(func(e core.Edge) bool { return e.Weight < 10 }))
	require.NoError(t, err)
	assert.Equal(t, []identity.ID{1, 2, 3}, res.Order)
	assert.Equal(t, 2, res.Depth[3])

	path, err := res.PathTo(3)
	require.NoError(t, err)
	assert.Equal(t, []identity.ID{1, 2, 3}, path)
}

// TestBFS_Hooks records the hook sequence.
func TestBFS_Hooks(t *testing.T) {
	g := core.NewGraph[key]()
	g.AddEdge(1, 2, 1)
	g.AddEdge(1, 3, 1)

	var enq, deq []identity.ID
	res, err := bfs.BFS(g, 1,
		bfs.WithOnEnqueue(func(id identity.ID, _ int) { enq = append(enq, id) }),
		bfs.WithOnDequeue(func(id identity.ID, _ int) { deq = append(deq, id) }),
	)
	require.NoError(t, err)
	assert.Equal(t, []identity.ID{1, 2, 3}, enq)
	assert.Equal(t, res.Order, deq)
}

// TestBFS_OnVisitError aborts and wraps the hook error.
func TestBFS_OnVisitError(t *testing.T) {
	stop := errors.New("stop")
	res, err := bfs.BFS(buildSquare(), 1, bfs.WithOnVisit(func(id identity.ID, _ int) error {
		if id == 3 {
			return stop
		}

		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.ErrorContains(t, err, "bfs: OnVisit error at 3")
	assert.Equal(t, identity.ID(3), res.Order[len(res.Order)-1])
}

// TestBFS_Cancelled returns the context error.
func TestBFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bfs.BFS(buildSquare(), 1, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestPathTo_Unreached reports ErrNoPath.
func TestPathTo_Unreached(t *testing.T) {
	g := core.NewGraph[key]()
	g.AddEdge(1, 2, 1)
	g.AddVertex(3)

	res, err := bfs.BFS(g, 1)
	require.NoError(t, err)

	_, err = res.PathTo(3)
	assert.ErrorIs(t, err, bfs.ErrNoPath)

	path, err := res.PathTo(1)
	require.NoError(t, err)
	assert.Equal(t, []identity.ID{1}, path)
}

// TestBFS_PointerStates runs over pointer-mode states and sees the
// caller's structs through the vertices.
func TestBFS_PointerStates(t *testing.T) {
	type room struct {
		identity.Key
		name string
	}
	hall, kitchen := &room{Key: 1, name: "hall"}, &room{Key: 2, name: "kitchen"}
	g := core.NewGraph[*room]()
	g.AddEdge(hall, kitchen, 1)

	res, err := bfs.BFS(g, hall)
	require.NoError(t, err)
	v, ok := g.VertexByID(res.Order[1])
	require.True(t, ok)
	assert.Same(t, kitchen, v.State())
}
