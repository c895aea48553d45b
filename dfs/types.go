// types.go defines types and options for depth-first search traversal,
// including cancellation, pre-/post-order hooks, depth limiting, edge filtering,
// full-graph (forest) traversal, and basic diagnostics.

package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/stategraph/core"
	"github.com/katalvlaran/stategraph/identity"
)

// VertexState represents the visitation state of a vertex during a colored walk.
// It maps onto core.SearchInfo: White = neither flag, Gray = InOpenList,
// Black = Checked.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is on the current walk stack.
	Black        // Black: the vertex and all its descendants have been fully explored.
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS or
	// TopologicalSort.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start state has no vertex
	// in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrCycleDetected indicates that a cycle was encountered during
	// TopologicalSort.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, start, opts...).
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked immediately upon discovering a vertex (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(id identity.ID) error

	// OnExit, if non-nil, is invoked after all descendants of a vertex have
	// been explored (post-order), before appending to Result.Order.
	OnExit func(id identity.ID) error

	// MaxDepth, if non-negative, limits discovery to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// FilterEdge, if non-nil, is called for each outgoing edge before it is
	// followed. Return false to skip the edge.
	FilterEdge func(e core.Edge) bool

	// FullTraversal, if true, restarts from every unvisited vertex in
	// ascending identity order, covering disconnected components.
	FullTraversal bool
}

// DefaultOptions returns Options with:
//   - Background context
//   - No pre-/post-order hooks
//   - No depth limit (MaxDepth = -1)
//   - No edge filtering
//   - Single-source traversal (FullTraversal = false)
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(id identity.ID) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit(fn func(id identity.ID) error) Option {
	return func(o *Options) {
		o.OnExit = fn
	}
}

// WithMaxDepth limits traversal depth to limit.
// A limit of 0 means only the start vertex is visited. Panics if limit < -1.
func WithMaxDepth(limit int) Option {
	if limit < -1 {
		panic("dfs: WithMaxDepth(limit<-1)")
	}

	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// WithFilterEdge installs an edge filter. Skipped edges are counted in
// Result.SkippedEdges.
func WithFilterEdge(fn func(e core.Edge) bool) Option {
	return func(o *Options) {
		o.FilterEdge = fn
	}
}

// WithFullTraversal enables forest traversal.
func WithFullTraversal() Option {
	return func(o *Options) {
		o.FullTraversal = true
	}
}

// Result captures the outcome of a depth-first traversal.
// The same parent and depth data is also left on each vertex's
// core.SearchInfo (Parent/HasParent, G) until the next search resets it.
type Result struct {
	// Order records vertices in the sequence they finished (post-order).
	Order []identity.ID

	// Depth maps each visited vertex to its distance (#edges) from its tree root.
	Depth map[identity.ID]int

	// Parent maps each vertex to the vertex from which it was first discovered.
	// Tree roots do not appear.
	Parent map[identity.ID]identity.ID

	// Visited flags which vertices were reached during the traversal.
	Visited map[identity.ID]bool

	// SkippedEdges reports how many edges FilterEdge rejected.
	SkippedEdges int
}
