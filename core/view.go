// File: view.go
// Role: Non-mutating graph views (subgraphs built from a vertex predicate).
// Determinism:
//   - Views are built in ascending identity order; edge order per vertex
//     follows the source graph.

package core

import "github.com/katalvlaran/stategraph/identity"

// Subgraph returns a new Graph induced by the vertices for which keep
// returns true: it holds those vertices and every edge whose endpoints are
// both kept. The source graph is not mutated.
//
// Complexity: O(V log V + E).
func Subgraph[S identity.Identifiable](g *Graph[S], keep func(*Vertex[S]) bool) *Graph[S] {
	out := newGraphWithConfig[S](g.cfg)

	g.order.Scan(func(id identity.ID) bool {
		v := g.vertices[id]
		if keep(v) {
			out.vertices[id] = newVertex(id, v.state, g.cfg.edgeCapacity)
			out.order.Insert(id)
		}
		return true
	})

	out.order.Scan(func(id identity.ID) bool {
		sv := out.vertices[id]
		for _, e := range g.vertices[id].edges {
			if dv, ok := out.vertices[e.To]; ok {
				out.link(sv, dv, e.Weight)
			}
		}
		return true
	})

	return out
}

// Reversed returns a new Graph with every edge direction flipped. Vertex
// states are shared by assignment as in Clone.
//
// Complexity: O(V log V + E).
func Reversed[S identity.Identifiable](g *Graph[S]) *Graph[S] {
	out := g.CloneEmpty()
	g.order.Scan(func(id identity.ID) bool {
		for _, e := range g.vertices[id].edges {
			out.link(out.vertices[e.To], out.vertices[e.From], e.Weight)
		}
		return true
	})

	return out
}
