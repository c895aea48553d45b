// Package builder_test contains functional tests for all Constructor
// implementations, verifying topology, counts, idempotence and weights.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stategraph/builder"
	"github.com/katalvlaran/stategraph/core"
	"github.com/katalvlaran/stategraph/identity"
)

type key = identity.Key

// build is Build with the Keys factory.
func build(t *testing.T, bopts []builder.Option, cons ...builder.Constructor[key]) *core.Graph[key] {
	t.Helper()
	g, err := builder.Build(builder.Keys, nil, bopts, cons...)
	require.NoError(t, err)

	return g
}

// TestBuilders_Functional runs table-driven functional tests for each builder.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ctor        builder.Constructor[key]
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, g *core.Graph[key])
	}{
		{
			name:  "Cycle(5)",
			ctor:  builder.Cycle[key](5),
			wantV: 5, wantE: 5,
			sampleCheck: func(t *testing.T, g *core.Graph[key]) {
				for i := 0; i < 5; i++ {
					w, ok := g.Weight(identity.ID(i), identity.ID((i+1)%5))
					assert.True(t, ok, "Cycle: missing %d→%d", i, (i+1)%5)
					assert.Equal(t, builder.DefaultEdgeWeight, w)
				}
			},
		},
		{
			name:  "Path(4)",
			ctor:  builder.Path[key](4),
			wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph[key]) {
				assert.Equal(t, []core.Edge{
					{From: 0, To: 1, Weight: 1},
					{From: 1, To: 2, Weight: 1},
					{From: 2, To: 3, Weight: 1},
				}, g.Edges())
			},
		},
		{
			name:  "Star(5)",
			ctor:  builder.Star[key](5),
			wantV: 5, wantE: 4,
			sampleCheck: func(t *testing.T, g *core.Graph[key]) {
				in, out, ok := g.Degree(0)
				require.True(t, ok)
				assert.Zero(t, in)
				assert.Equal(t, 4, out)
			},
		},
		{
			name:  "Complete(4)",
			ctor:  builder.Complete[key](4),
			wantV: 4, wantE: 6,
			sampleCheck: func(t *testing.T, g *core.Graph[key]) {
				assert.True(t, g.HasEdge(0, 3))
				assert.False(t, g.HasEdge(3, 0), "forward arcs only")
			},
		},
		{
			name:  "Complete(1)",
			ctor:  builder.Complete[key](1),
			wantV: 1, wantE: 0,
		},
		{
			name:  "Grid(2,3)",
			ctor:  builder.Grid[key](2, 3),
			wantV: 6, wantE: 7, // 2*(3-1) right + (2-1)*3 bottom
			sampleCheck: func(t *testing.T, g *core.Graph[key]) {
				assert.True(t, g.HasEdge(key(builder.GridIndex(0, 0, 3)), key(builder.GridIndex(0, 1, 3))))
				assert.True(t, g.HasEdge(key(builder.GridIndex(0, 2, 3)), key(builder.GridIndex(1, 2, 3))))
				assert.False(t, g.HasEdge(2, 3), "no wrap between rows")
			},
		},
		{
			name:  "RandomSparse(4,1)",
			ctor:  builder.RandomSparse[key](4, 1),
			wantV: 4, wantE: 12,
		},
		{
			name:  "RandomSparse(4,0)",
			ctor:  builder.RandomSparse[key](4, 0),
			wantV: 4, wantE: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g := build(t, nil, tc.ctor)
			assert.Equal(t, tc.wantV, g.VertexCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, g)
			}
		})
	}
}

func TestBuilders_Undirected(t *testing.T) {
	g := build(t, []builder.Option{builder.WithUndirected()}, builder.Grid[key](3, 3))
	assert.Equal(t, 9, g.VertexCount())
	assert.Equal(t, 24, g.EdgeCount())
	assert.Len(t, g.UndirectedEdges(), 12)
	assert.Equal(t, 12, g.Stats().SymmetricPairs)

	k := build(t, []builder.Option{builder.WithUndirected()}, builder.Complete[key](4))
	assert.Equal(t, 12, k.EdgeCount())
}

func TestBuilders_ValidationErrors(t *testing.T) {
	cases := []struct {
		name string
		ctor builder.Constructor[key]
		want error
	}{
		{"Path(1)", builder.Path[key](1), builder.ErrTooFewVertices},
		{"Cycle(2)", builder.Cycle[key](2), builder.ErrTooFewVertices},
		{"Star(1)", builder.Star[key](1), builder.ErrTooFewVertices},
		{"Complete(0)", builder.Complete[key](0), builder.ErrTooFewVertices},
		{"Grid(0,3)", builder.Grid[key](0, 3), builder.ErrTooFewVertices},
		{"RandomSparse(0,0.5)", builder.RandomSparse[key](0, 0.5), builder.ErrTooFewVertices},
		{"RandomSparse(3,1.5)", builder.RandomSparse[key](3, 1.5), builder.ErrInvalidProbability},
		{"RandomSparse(3,0.5) no rng", builder.RandomSparse[key](3, 0.5), builder.ErrNeedRandSource},
		{"nil constructor", nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.Build(builder.Keys, nil, nil, tc.ctor)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorContains(t, err, "Build: ")
		})
	}

	_, err := builder.Build[key](nil, nil, nil, builder.Path[key](3))
	assert.ErrorIs(t, err, builder.ErrNilStateFn)
}

func TestBuilders_SeedDeterminism(t *testing.T) {
	opts := func() []builder.Option {
		return []builder.Option{builder.WithSeed(7), builder.WithWeightFn(builder.IntWeightFn(1, 9))}
	}
	a := build(t, opts(), builder.RandomSparse[key](20, 0.2))
	b := build(t, opts(), builder.RandomSparse[key](20, 0.2))
	assert.Equal(t, a.Edges(), b.Edges())
	assert.NotZero(t, a.EdgeCount())

	for _, e := range a.Edges() {
		assert.False(t, e.IsLoop())
		assert.GreaterOrEqual(t, e.Weight, 1.0)
		assert.LessOrEqual(t, e.Weight, 9.0)
	}
}

func TestBuilders_Composition(t *testing.T) {
	g := build(t, nil, builder.Path[key](3), builder.Star[key](3), builder.Path[key](3))
	assert.Equal(t, 3, g.VertexCount())
	// path 0→1→2 plus star 0→2 (0→1 already present)
	assert.Equal(t, 3, g.EdgeCount())
}

func TestBuilders_PointerStatesCalledOncePerIndex(t *testing.T) {
	type cell struct{ key }
	calls := 0
	factory := func(i int) *cell {
		calls++
		return &cell{key(i)}
	}

	g, err := builder.Build(factory, []core.GraphOption{core.WithCapacity(9)}, nil, builder.Grid[*cell](3, 3))
	require.NoError(t, err)
	assert.Equal(t, 9, calls)
	assert.Equal(t, 12, g.EdgeCount())
}

func TestApply_ExtendsExistingGraph(t *testing.T) {
	g := core.NewGraph[key]()
	g.AddEdge(100, 0, 5)

	require.NoError(t, builder.Apply(g, builder.Keys, nil, builder.Cycle[key](3)))
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 4, g.EdgeCount())

	assert.ErrorIs(t, builder.Apply[key](nil, builder.Keys, nil), builder.ErrConstructFailed)
	assert.ErrorIs(t, builder.Apply(g, nil, nil), builder.ErrNilStateFn)
	assert.ErrorIs(t, builder.Apply(g, builder.Keys, nil, builder.Path[key](0)), builder.ErrTooFewVertices)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.UniformWeightFn(5, 4) })
	assert.Panics(t, func() { builder.IntWeightFn(2, 1) })
}
