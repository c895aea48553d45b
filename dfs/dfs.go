// dfs.go implements depth-first search (single-source and forest) on core.Graph.
//
// Key features:
//   - DFS(g, start, opts...): traverse from a root or full forest via WithFullTraversal
//   - Hooks: OnVisit (pre-order) & OnExit (post-order) with error aborts
//   - Limits: MaxDepth, FilterEdge, SkippedEdges diagnostic count
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Time:   O(V + E) for traversal, plus overhead of hooks and filters.
//   - Memory: O(V) for the explicit stack and result maps.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if start has no vertex (single-source mode).
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnExit.

package dfs

import (
	"fmt"

	"github.com/katalvlaran/stategraph/core"
	"github.com/katalvlaran/stategraph/identity"
)

// frame is one entry of the explicit walk stack.
type frame struct {
	id    identity.ID
	depth int
	edges []core.Edge
	next  int
}

// walker encapsulates state during DFS.
type walker[S identity.Identifiable] struct {
	graph *core.Graph[S]
	opts  Options
	res   *Result
	stack []frame
}

// DFS performs depth-first search on g from the vertex of start.
//
// With WithFullTraversal the walk covers every component: start is used as
// the first root when it has a vertex, then every unvisited vertex in
// ascending identity order.
//
// The graph's search metadata is reset once at entry; afterwards each
// visited vertex has SearchInfo.Checked set, G equal to its depth and
// Parent/HasParent naming its tree predecessor.
func DFS[S identity.Identifiable](g *core.Graph[S], start S, opts ...Option) (*Result, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Resolve start
	root, found := g.FindVertex(start)
	if !dopts.FullTraversal && !found {
		return nil, ErrStartVertexNotFound
	}

	// 4. Initialize result and metadata
	g.ResetVertices()
	n := g.VertexCount()
	res := &Result{
		Order:   make([]identity.ID, 0, n),
		Depth:   make(map[identity.ID]int, n),
		Parent:  make(map[identity.ID]identity.ID, n),
		Visited: make(map[identity.ID]bool, n),
	}
	w := &walker[S]{graph: g, opts: dopts, res: res}

	// 5. Traverse: single tree, then the rest of the forest if requested
	if found {
		if err := w.walk(root); err != nil {
			return res, err
		}
	}
	if dopts.FullTraversal {
		for _, v := range g.Vertices() {
			if v.Search.Checked {
				continue
			}
			if err := w.walk(v); err != nil {
				return res, err
			}
		}
	}

	return res, nil
}

// walk explores the tree rooted at root with an explicit stack.
func (w *walker[S]) walk(root *core.Vertex[S]) error {
	if err := w.discover(root, 0, nil); err != nil {
		return err
	}

	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]

		if top.next == len(top.edges) {
			// post-order
			id := top.id
			w.stack = w.stack[:len(w.stack)-1]
			if w.opts.OnExit != nil {
				if err := w.opts.OnExit(id); err != nil {
					w.res.Order = nil

					return fmt.Errorf("dfs: OnExit hook for %d: %w", id, err)
				}
			}
			w.res.Order = append(w.res.Order, id)

			continue
		}

		e := top.edges[top.next]
		top.next++

		if w.opts.FilterEdge != nil && !w.opts.FilterEdge(e) {
			w.res.SkippedEdges++
			continue
		}

		nv, ok := w.graph.VertexByID(e.To)
		if !ok || nv.Search.Checked {
			continue
		}
		if w.opts.MaxDepth >= 0 && top.depth+1 > w.opts.MaxDepth {
			continue
		}

		parent := top.id
		if err := w.discover(nv, top.depth+1, &parent); err != nil {
			return err
		}
	}

	return nil
}

// discover marks v visited, runs the pre-order hook and pushes its frame.
func (w *walker[S]) discover(v *core.Vertex[S], depth int, parent *identity.ID) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	id := v.ID()
	v.Search.Checked = true
	v.Search.G = float64(depth)
	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	if parent != nil {
		v.Search.Parent, v.Search.HasParent = *parent, true
		w.res.Parent[id] = *parent
	}

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook for %d: %w", id, err)
		}
	}

	w.stack = append(w.stack, frame{id: id, depth: depth, edges: v.Edges()})

	return nil
}
