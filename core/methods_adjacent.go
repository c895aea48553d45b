// File: methods_adjacent.go
// Role: Neighborhood queries and the live iteration facade.
// Determinism:
//   - All() and IDs() yield vertices in ascending identity order.
//   - AdjacencyList() neighbor lists are sorted ascending.
package core

import (
	"iter"
	"slices"

	"github.com/katalvlaran/stategraph/identity"
)

// All returns a forward-only sequence over the graph's vertices.
//
// The sequence is live, not a snapshot: each range reads the container as
// it is at that moment, and ranging again restarts from the smallest
// identity. Adding or removing vertices or edges while ranging is not
// allowed; use Vertices() when the loop body mutates the graph.
func (g *Graph[S]) All() iter.Seq[*Vertex[S]] {
	return func(yield func(*Vertex[S]) bool) {
		g.order.Scan(func(id identity.ID) bool {
			return yield(g.vertices[id])
		})
	}
}

// IDs is All restricted to identities.
func (g *Graph[S]) IDs() iter.Seq[identity.ID] {
	return func(yield func(identity.ID) bool) {
		g.order.Scan(yield)
	}
}

// Neighbors returns the destinations of the outgoing edges of s in
// insertion order. ok is false when s is unknown.
func (g *Graph[S]) Neighbors(s S) (ids []identity.ID, ok bool) {
	v, found := g.vertices[identity.Of(s)]
	if !found {
		return nil, false
	}

	return v.Neighbors(), true
}

// AdjacencyList returns a map from each vertex identity to its sorted
// out-neighbor identities. Vertices without outgoing edges map to an empty
// slice, so the key set equals the vertex set.
// Complexity: O(V + E log d).
func (g *Graph[S]) AdjacencyList() map[identity.ID][]identity.ID {
	out := make(map[identity.ID][]identity.ID, len(g.vertices))
	for id, v := range g.vertices {
		nbrs := v.Neighbors()
		slices.Sort(nbrs)
		out[id] = nbrs
	}

	return out
}
