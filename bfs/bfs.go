// Queue-driven walker behind BFS. Edge weights reach FilterEdge but never
// affect the visit order.

package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/stategraph/core"
	"github.com/katalvlaran/stategraph/identity"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem[S identity.Identifiable] struct {
	v     *core.Vertex[S]
	depth int
}

// walker encapsulates mutable BFS state.
type walker[S identity.Identifiable] struct {
	graph *core.Graph[S]
	opts  Options
	ctx   context.Context
	queue []queueItem[S]
	res   *Result
}

// BFS runs breadth-first search on g starting from the vertex of start,
// applying any number of functional Options.
//
// The graph's search metadata is reset at entry. Enqueued vertices get
// SearchInfo.InOpenList, visited ones Checked; G holds the depth and
// Parent/HasParent the tree predecessor.
//
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any user-supplied hook error.
func BFS[S identity.Identifiable](g *core.Graph[S], start S, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start vertex
	root, ok := g.FindVertex(start)
	if !ok {
		return nil, ErrStartVertexNotFound
	}

	// Prepare walker
	g.ResetVertices()
	n := g.VertexCount()
	w := &walker[S]{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem[S], 0, n),
		res: &Result{
			Order:  make([]identity.ID, 0, n),
			Depth:  make(map[identity.ID]int, n),
			Parent: make(map[identity.ID]identity.ID, n),
		},
	}

	// Seed queue with start vertex (no parent)
	w.enqueue(root, 0, nil)

	return w.res, w.loop()
}

// enqueue marks v open at depth d, calls OnEnqueue, records its parent,
// and adds it to the queue.
func (w *walker[S]) enqueue(v *core.Vertex[S], d int, parent *identity.ID) {
	id := v.ID()
	v.Search.InOpenList = true
	v.Search.G = float64(d)
	w.res.Depth[id] = d
	if parent != nil {
		v.Search.Parent, v.Search.HasParent = *parent, true
		w.res.Parent[id] = *parent
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem[S]{v: v, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[S]) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.expand(item)
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker[S]) dequeue() queueItem[S] {
	item := w.queue[0]
	w.queue = w.queue[1:]
	item.v.Search.InOpenList = false
	w.opts.OnDequeue(item.v.ID(), item.depth)

	return item
}

// visit closes the vertex, records it in Order and calls OnVisit.
func (w *walker[S]) visit(item queueItem[S]) error {
	id := item.v.ID()
	item.v.Search.Checked = true
	w.res.Order = append(w.res.Order, id)
	if err := w.opts.OnVisit(id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", id, err)
	}

	return nil
}

// expand applies filtering and MaxDepth to the outgoing edges of item
// and enqueues every destination not seen yet.
func (w *walker[S]) expand(item queueItem[S]) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	parent := item.v.ID()
	for e := range item.v.OutEdges() {
		if !w.opts.FilterEdge(e) {
			continue
		}
		if _, seen := w.res.Depth[e.To]; seen {
			continue
		}
		nv, ok := w.graph.VertexByID(e.To)
		if !ok {
			continue
		}
		w.enqueue(nv, nextDepth, &parent)
	}
}
