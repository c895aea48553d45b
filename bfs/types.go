// Options, sentinel errors and the result type of the breadth-first walk.

package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/stategraph/core"
	"github.com/katalvlaran/stategraph/identity"
)

var (
	// ErrStartVertexNotFound is returned when the start state has no vertex.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by Result.PathTo for an unreached vertex.
	ErrNoPath = errors.New("bfs: no path")
)

// Option mutates Options. Invalid values do not panic: the violation is
// recorded and BFS returns it before touching the graph.
type Option func(*Options)

// Options is the resolved configuration of one BFS run.
type Options struct {
	// Ctx is polled once per dequeued vertex.
	Ctx context.Context

	// OnEnqueue sees a vertex the moment it enters the open list, with
	// its hop depth. SearchInfo.InOpenList is already set.
	OnEnqueue func(id identity.ID, depth int)

	// OnDequeue sees a vertex as it leaves the open list.
	OnDequeue func(id identity.ID, depth int)

	// OnVisit runs after the vertex is closed and appended to Order.
	// A non-nil error stops the walk and is returned wrapped.
	OnVisit func(id identity.ID, depth int) error

	// MaxDepth caps the hop depth of enqueued vertices; 0 means unbounded.
	MaxDepth int

	// FilterEdge decides per outgoing edge whether its destination may be
	// enqueued. The edge carries its weight.
	FilterEdge func(e core.Edge) bool

	err error
}

// DefaultOptions returns a background context, no-op hooks, no depth cap
// and a filter that accepts every edge.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		OnEnqueue:  func(identity.ID, int) {},
		OnDequeue:  func(identity.ID, int) {},
		OnVisit:    func(identity.ID, int) error { return nil },
		MaxDepth:   0,
		FilterEdge: func(core.Edge) bool { return true },
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue sets Options.OnEnqueue; nil keeps the no-op.
func WithOnEnqueue(fn func(id identity.ID, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue sets Options.OnDequeue; nil keeps the no-op.
func WithOnDequeue(fn func(id identity.ID, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit sets Options.OnVisit; nil keeps the no-op.
func WithOnVisit(fn func(id identity.ID, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth caps enqueueing at hop depth d: vertices at depth d are
// still visited, their successors are not. d == 0 removes the cap and a
// negative d makes BFS fail with ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)

			return
		}
		o.MaxDepth = d
	}
}

// WithFilterEdge sets Options.FilterEdge; nil keeps accept-all.
func WithFilterEdge(fn func(e core.Edge) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterEdge = fn
		}
	}
}

// Result mirrors what BFS leaves in SearchInfo, detached from the graph
// so it survives the next ResetVertices.
type Result struct {
	// Order lists closed vertices in dequeue order.
	Order []identity.ID

	// Depth holds the hop count of every enqueued vertex, including ones
	// still open when a hook aborted the walk.
	Depth map[identity.ID]int

	// Parent links each non-start vertex to the vertex that enqueued it.
	Parent map[identity.ID]identity.ID
}

// PathTo follows Parent links back from dest and returns the start → dest
// hop sequence. An unreached dest yields an error wrapping ErrNoPath.
func (r *Result) PathTo(dest identity.ID) ([]identity.ID, error) {
	depth, ok := r.Depth[dest]
	if !ok {
		return nil, fmt.Errorf("%w to %d", ErrNoPath, dest)
	}

	path := make([]identity.ID, depth+1)
	cur := dest
	for i := depth; i >= 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}

	return path, nil
}
