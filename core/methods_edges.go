// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Edges/EdgeCount,
//       the undirected convenience layer and predicate-based removal.
// Determinism:
//   - Edges() walks sources in ascending identity, each source's edges in
//     insertion order.
//   - UndirectedEdges() keeps the first edge of every reverse pair in the
//     same walk order.
package core

import (
	"github.com/katalvlaran/stategraph/identity"
)

// AddEdge connects src to dst with weight w, creating either vertex on
// demand. It reports whether a new edge was stored.
//
// Implementation:
//   - Stage 1: GetOrCreateVertex for both endpoints (may create two vertices).
//   - Stage 2: If src already holds an edge to dst, stop: the first writer
//     wins and the weight is not updated.
//   - Stage 3: Append the edge to src and record src in dst's back-references.
//
// Complexity:
//   - Time O(out-degree(src)) for the duplicate scan, Space O(1) amortized.
func (g *Graph[S]) AddEdge(src, dst S, w float64) bool {
	sv := g.GetOrCreateVertex(src)
	dv := g.GetOrCreateVertex(dst)

	return g.link(sv, dv, w)
}

// link stores sv→dv unless the ordered pair already exists.
func (g *Graph[S]) link(sv, dv *Vertex[S], w float64) bool {
	if sv.HasEdgeTo(dv.id) {
		return false
	}

	sv.edges = append(sv.edges, Edge{From: sv.id, To: dv.id, Weight: w})
	dv.associate(sv.id)
	g.edgeCount++

	return true
}

// RemoveEdge deletes the edge src→dst. Neither vertex is created: if either
// is unknown, or no such edge exists, it returns false.
//
// The destination's back-reference to src is pruned in the same call, so
// the back-reference set always equals the set of true predecessors.
//
// Complexity: O(out-degree(src)).
func (g *Graph[S]) RemoveEdge(src, dst S) bool {
	return g.RemoveEdgeByID(identity.Of(src), identity.Of(dst))
}

// RemoveEdgeByID deletes the edge from→to by identity.
func (g *Graph[S]) RemoveEdgeByID(from, to identity.ID) bool {
	sv, ok := g.vertices[from]
	if !ok {
		return false
	}
	dv, ok := g.vertices[to]
	if !ok {
		return false
	}

	return g.unlink(sv, dv)
}

// unlink drops sv→dv and the matching back-reference.
func (g *Graph[S]) unlink(sv, dv *Vertex[S]) bool {
	i := sv.edgeIndex(dv.id)
	if i < 0 {
		return false
	}

	sv.dropEdgeAt(i)
	dv.dissociate(sv.id)
	g.edgeCount--

	return true
}

// HasEdge reports whether the edge src→dst exists. Never creates vertices.
func (g *Graph[S]) HasEdge(src, dst S) bool {
	sv, ok := g.vertices[identity.Of(src)]
	if !ok {
		return false
	}

	return sv.HasEdgeTo(identity.Of(dst))
}

// AddUndirectedEdge stores a→b and b→a with the same weight. Each direction
// follows AddEdge rules independently: an already present direction keeps
// its original weight.
func (g *Graph[S]) AddUndirectedEdge(a, b S, w float64) {
	av := g.GetOrCreateVertex(a)
	bv := g.GetOrCreateVertex(b)
	g.link(av, bv, w)
	g.link(bv, av, w)
}

// RemoveUndirectedEdge removes both a→b and b→a. It returns true when at
// least one direction existed and was removed.
func (g *Graph[S]) RemoveUndirectedEdge(a, b S) bool {
	ab := g.RemoveEdge(a, b)
	ba := g.RemoveEdge(b, a)

	return ab || ba
}

// Edges returns every stored directed edge, one entry per edge, without
// de-duplication.
// Complexity: O(V + E).
func (g *Graph[S]) Edges() []Edge {
	out := make([]Edge, 0, g.edgeCount)
	g.order.Scan(func(id identity.ID) bool {
		out = append(out, g.vertices[id].edges...)
		return true
	})

	return out
}

// reverseKey identifies an edge for undirected de-duplication.
type reverseKey struct {
	from, to identity.ID
	weight   float64
}

// UndirectedEdges is Edges with every edge and its logical reverse (same
// endpoints swapped, same weight) reported once.
//
// Implementation:
//   - Stage 1: Walk edges in Edges() order.
//   - Stage 2: Skip an edge when its reverse key was already reported.
//   - Stage 3: Otherwise report it and remember its own key.
//
// Behavior highlights:
//   - Membership equals the quadratic "compare against every reported
//     edge" rule; a visited-key set brings it to linear time.
//   - a→b and b→a with different weights are both reported.
//   - Self-loops are always reported (at most one exists per vertex).
//
// Complexity:
//   - Time O(V + E), Space O(E).
func (g *Graph[S]) UndirectedEdges() []Edge {
	out := make([]Edge, 0, g.edgeCount)
	seen := make(map[reverseKey]struct{}, g.edgeCount)
	g.order.Scan(func(id identity.ID) bool {
		for _, e := range g.vertices[id].edges {
			if _, dup := seen[reverseKey{from: e.To, to: e.From, weight: e.Weight}]; dup {
				continue
			}
			seen[reverseKey{from: e.From, to: e.To, weight: e.Weight}] = struct{}{}
			out = append(out, e)
		}
		return true
	})

	return out
}

// EdgeCount returns the number of stored directed edges.
// Complexity: O(1).
func (g *Graph[S]) EdgeCount() int { return g.edgeCount }

// RemoveEdgesFunc removes every edge for which pred returns true and
// reports how many were removed. Back-references are pruned alongside.
//
// Contract:
//   - pred must not mutate the graph.
//
// Complexity: O(V + E).
func (g *Graph[S]) RemoveEdgesFunc(pred func(Edge) bool) int {
	removed := 0
	for _, v := range g.vertices {
		kept := v.edges[:0]
		for _, e := range v.edges {
			if !pred(e) {
				kept = append(kept, e)
				continue
			}
			if dv, ok := g.vertices[e.To]; ok {
				dv.dissociate(v.id)
			}
			removed++
		}
		v.edges = kept
	}
	g.edgeCount -= removed

	if removed > 0 {
		g.log.Debug("edges filtered", "removed", removed, "edges", g.edgeCount)
	}

	return removed
}
