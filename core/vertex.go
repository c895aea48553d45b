// SPDX-License-Identifier: MIT
//
// File: vertex.go
// Role: Vertex accessors and the per-vertex bookkeeping helpers used by Graph.
// Determinism:
//   - Edges()/OutEdges()/Neighbors() follow edge insertion order.
//   - Associated() is sorted ascending.

package core

import (
	"iter"
	"slices"

	"github.com/katalvlaran/stategraph/identity"
)

// newVertex allocates a detached vertex for state s.
func newVertex[S identity.Identifiable](id identity.ID, s S, edgeCap int) *Vertex[S] {
	v := &Vertex[S]{id: id, state: s}
	if edgeCap > 0 {
		v.edges = make([]Edge, 0, edgeCap)
	}

	return v
}

// ID returns the vertex identity.
func (v *Vertex[S]) ID() identity.ID { return v.id }

// State returns the payload: a copy for value states, the caller's
// pointer or handle for reference states.
func (v *Vertex[S]) State() S { return v.state }

// Edges returns a copy of the outgoing edges in insertion order.
// Complexity: O(out-degree).
func (v *Vertex[S]) Edges() []Edge { return slices.Clone(v.edges) }

// OutEdges ranges over the outgoing edges without copying.
// The vertex must not be mutated while the sequence is consumed.
func (v *Vertex[S]) OutEdges() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for _, e := range v.edges {
			if !yield(e) {
				return
			}
		}
	}
}

// Neighbors returns the destination identities of the outgoing edges.
func (v *Vertex[S]) Neighbors() []identity.ID {
	out := make([]identity.ID, len(v.edges))
	for i, e := range v.edges {
		out[i] = e.To
	}

	return out
}

// OutDegree returns the number of outgoing edges.
func (v *Vertex[S]) OutDegree() int { return len(v.edges) }

// InDegree returns the number of vertices holding an edge into v.
func (v *Vertex[S]) InDegree() int { return len(v.associated) }

// Associated returns the identities of vertices with an edge into v,
// sorted ascending. It exists for diagnostics; consumers should walk
// outgoing edges instead.
func (v *Vertex[S]) Associated() []identity.ID {
	out := make([]identity.ID, 0, len(v.associated))
	for id := range v.associated {
		out = append(out, id)
	}
	slices.Sort(out)

	return out
}

// HasEdgeTo reports whether v holds an edge to the vertex with identity id.
// Complexity: O(out-degree) linear scan.
func (v *Vertex[S]) HasEdgeTo(id identity.ID) bool {
	return v.edgeIndex(id) >= 0
}

// EdgeTo returns the edge from v to id, if present.
func (v *Vertex[S]) EdgeTo(id identity.ID) (Edge, bool) {
	if i := v.edgeIndex(id); i >= 0 {
		return v.edges[i], true
	}

	return Edge{}, false
}

// ClearSearch resets the search metadata; topology is untouched.
func (v *Vertex[S]) ClearSearch() { v.Search.Reset() }

// edgeIndex returns the position of the edge to id, or -1.
func (v *Vertex[S]) edgeIndex(id identity.ID) int {
	for i := range v.edges {
		if v.edges[i].To == id {
			return i
		}
	}

	return -1
}

// dropEdgeAt removes the edge at position i preserving order.
func (v *Vertex[S]) dropEdgeAt(i int) {
	v.edges = slices.Delete(v.edges, i, i+1)
}

// associate records src as holding an edge into v.
func (v *Vertex[S]) associate(src identity.ID) {
	if v.associated == nil {
		v.associated = make(map[identity.ID]struct{})
	}
	v.associated[src] = struct{}{}
}

// dissociate forgets src; a missing entry is a no-op.
func (v *Vertex[S]) dissociate(src identity.ID) {
	delete(v.associated, src)
}
