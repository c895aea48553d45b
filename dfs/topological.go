// TopologicalSort computes a linear ordering of vertices such that for
// every directed edge u→v, u appears before v in the ordering.
// If the graph contains a cycle, ErrCycleDetected is returned.
//
// Complexity:
//
//   - Time:   O(V + E) (each vertex and edge visited once)
//   - Memory: O(V)     (explicit stack and post-order list)

package dfs

import (
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/stategraph/core"
	"github.com/katalvlaran/stategraph/identity"
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

// topoOptions holds settings for TopologicalSort, currently only cancellation.
type topoOptions struct {
	ctx context.Context // allows cancellation; defaults to Background
}

// defaultTopoOptions returns the default options (Background context).
func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext returns a TopoOption that sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// topoSorter runs the three-colour walk. Colours live on core.SearchInfo:
// Gray is InOpenList, Black is Checked.
type topoSorter[S identity.Identifiable] struct {
	graph *core.Graph[S]
	opts  topoOptions
	order []identity.ID // post-order
	stack []frame
}

// cycleError carries the offending cycle while still matching ErrCycleDetected.
type cycleError struct {
	cycle []identity.ID
}

func (e *cycleError) Error() string {
	return fmt.Sprintf("%s: %v", ErrCycleDetected.Error(), e.cycle)
}

func (e *cycleError) Unwrap() error { return ErrCycleDetected }

// TopologicalSort computes a topological ordering of all vertices in g.
// Roots are tried in ascending identity order and edges in insertion
// order, so the result is deterministic.
//
// Errors:
//   - ErrGraphNil if g is nil.
//   - an error matching ErrCycleDetected (errors.Is) if a cycle exists; a
//     self-loop is a cycle.
//   - the context error if cancelled via WithCancelContext.
func TopologicalSort[S identity.Identifiable](g *core.Graph[S], options ...TopoOption) ([]identity.ID, error) {
	// 1. Validate graph pointer
	if g == nil {
		return nil, ErrGraphNil
	}
	// 2. Apply optional settings
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}
	// 3. Run the coloured walk from every White vertex
	sorter := &topoSorter[S]{
		graph: g,
		opts:  opts,
		order: make([]identity.ID, 0, g.VertexCount()),
	}
	if err := sorter.run(); err != nil {
		return nil, err
	}
	// 4. Reverse post-order to produce topological order
	slices.Reverse(sorter.order)

	return sorter.order, nil
}

// run resets metadata and visits every White vertex.
func (t *topoSorter[S]) run() error {
	t.graph.ResetVertices()
	for _, v := range t.graph.Vertices() {
		if colour(v) != White {
			continue
		}
		if err := t.visit(v); err != nil {
			return err
		}
	}

	return nil
}

// visit performs an explicit-stack walk from root, marking colours and
// reporting the first back edge as a cycle.
func (t *topoSorter[S]) visit(root *core.Vertex[S]) error {
	if err := t.push(root, nil); err != nil {
		return err
	}

	for len(t.stack) > 0 {
		top := &t.stack[len(t.stack)-1]

		if top.next == len(top.edges) {
			id := top.id
			t.stack = t.stack[:len(t.stack)-1]
			v, _ := t.graph.VertexByID(id)
			v.Search.InOpenList = false
			v.Search.Checked = true
			t.order = append(t.order, id)

			continue
		}

		e := top.edges[top.next]
		top.next++

		nv, ok := t.graph.VertexByID(e.To)
		if !ok {
			continue
		}
		switch colour(nv) {
		case Gray:
			return &cycleError{cycle: t.cycleTo(e.To)}
		case Black:
			continue
		}

		parent := top.id
		if err := t.push(nv, &parent); err != nil {
			return err
		}
	}

	return nil
}

// push colours v Gray and appends its frame.
func (t *topoSorter[S]) push(v *core.Vertex[S], parent *identity.ID) error {
	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}

	v.Search.InOpenList = true
	if parent != nil {
		v.Search.Parent, v.Search.HasParent = *parent, true
	}
	t.stack = append(t.stack, frame{id: v.ID(), edges: v.Edges()})

	return nil
}

// cycleTo returns the stack segment from head to the current top, rotated
// so the smallest identity comes first.
func (t *topoSorter[S]) cycleTo(head identity.ID) []identity.ID {
	i := slices.IndexFunc(t.stack, func(f frame) bool { return f.id == head })
	cycle := make([]identity.ID, 0, len(t.stack)-i)
	for _, f := range t.stack[i:] {
		cycle = append(cycle, f.id)
	}

	return canonical(cycle)
}

// colour maps SearchInfo flags onto White/Gray/Black.
func colour[S identity.Identifiable](v *core.Vertex[S]) int {
	switch {
	case v.Search.Checked:
		return Black
	case v.Search.InOpenList:
		return Gray
	default:
		return White
	}
}
