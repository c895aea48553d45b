// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns vertices in ascending identity order.
//
// Ownership:
//   - The identity map is the only owner of a Vertex. A removed vertex is
//     detached (no edges, no back-references) before it is released.
package core

import (
	"github.com/katalvlaran/stategraph/identity"
)

// GetOrCreateVertex returns the vertex for s, creating it if absent.
//
// Implementation:
//   - Stage 1: Resolve the identity of s through identity.Of.
//   - Stage 2: Return the existing vertex on a hit.
//   - Stage 3: Otherwise allocate a vertex holding s and register it in the
//     identity map and the ordered index.
//
// Behavior highlights:
//   - Idempotent: repeated calls with states of equal identity return the
//     same *Vertex, and the first stored state is kept.
//
// Complexity:
//   - Time O(1) amortized for the lookup, O(log V) for a new insert into
//     the ordered index. Space O(1).
func (g *Graph[S]) GetOrCreateVertex(s S) *Vertex[S] {
	id := identity.Of(s)
	if v, ok := g.vertices[id]; ok {
		return v
	}

	v := newVertex(id, s, g.cfg.edgeCapacity)
	g.vertices[id] = v
	g.order.Insert(id)

	return v
}

// AddVertex guarantees a vertex for s exists without adding an edge.
// It is the creation path of GetOrCreateVertex and shares its semantics.
func (g *Graph[S]) AddVertex(s S) *Vertex[S] {
	return g.GetOrCreateVertex(s)
}

// FindVertex looks s up without creating it.
// Complexity: O(1).
func (g *Graph[S]) FindVertex(s S) (*Vertex[S], bool) {
	return g.VertexByID(identity.Of(s))
}

// VertexByID looks a vertex up by identity.
// Complexity: O(1).
func (g *Graph[S]) VertexByID(id identity.ID) (*Vertex[S], bool) {
	v, ok := g.vertices[id]

	return v, ok
}

// HasVertex reports whether a vertex with the identity of s exists.
func (g *Graph[S]) HasVertex(s S) bool {
	_, ok := g.vertices[identity.Of(s)]

	return ok
}

// HasVertexID reports whether a vertex with identity id exists.
func (g *Graph[S]) HasVertexID(id identity.ID) bool {
	_, ok := g.vertices[id]

	return ok
}

// RemoveVertex deletes the vertex of s and every edge touching it.
// It returns false (and changes nothing) when s is unknown.
func (g *Graph[S]) RemoveVertex(s S) bool {
	return g.RemoveVertexByID(identity.Of(s))
}

// RemoveVertexByID deletes the vertex with identity id and every edge
// touching it.
//
// Implementation:
//   - Stage 1: Strict lookup; unknown identity → false.
//   - Stage 2: detach: for every source in the back-reference set, drop its
//     edge into the vertex; for every outgoing edge, drop the vertex from
//     the destination's back-reference set.
//   - Stage 3: Erase the identity from the map and the ordered index.
//
// Behavior highlights:
//   - After return no remaining vertex holds an edge to id and no
//     back-reference names id.
//   - A caller still holding the *Vertex sees it empty (no edges).
//
// Complexity:
//   - Time O(Σ out-degree(src) over sources + out-degree(v) + log V).
func (g *Graph[S]) RemoveVertexByID(id identity.ID) bool {
	v, ok := g.vertices[id]
	if !ok {
		return false
	}

	in, out := g.detach(v)
	delete(g.vertices, id)
	g.order.Delete(id)

	g.log.Debug("vertex removed", "id", id, "edges_in", in, "edges_out", out)

	return true
}

// detach removes every edge incident to v, keeping the back-reference
// invariant on both sides, and returns how many incoming and outgoing
// edges were dropped. A self-loop counts once, as outgoing.
func (g *Graph[S]) detach(v *Vertex[S]) (in, out int) {
	for src := range v.associated {
		if src == v.id {
			continue
		}
		sv, ok := g.vertices[src]
		if !ok {
			continue
		}
		if i := sv.edgeIndex(v.id); i >= 0 {
			sv.dropEdgeAt(i)
			in++
		}
	}

	for _, e := range v.edges {
		if e.To != v.id {
			if dv, ok := g.vertices[e.To]; ok {
				dv.dissociate(v.id)
			}
		}
		out++
	}

	g.edgeCount -= in + out
	v.edges = nil
	v.associated = nil

	return in, out
}

// Vertices returns a snapshot of all vertices in ascending identity order.
// Complexity: O(V).
func (g *Graph[S]) Vertices() []*Vertex[S] {
	out := make([]*Vertex[S], 0, len(g.vertices))
	g.order.Scan(func(id identity.ID) bool {
		out = append(out, g.vertices[id])
		return true
	})

	return out
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph[S]) VertexCount() int { return len(g.vertices) }

// Degree returns the in- and out-degree of the vertex of s.
// ok is false when s is unknown.
// Complexity: O(1); the back-reference set makes the in-degree exact
// without scanning the edge catalog.
func (g *Graph[S]) Degree(s S) (in, out int, ok bool) {
	v, found := g.vertices[identity.Of(s)]
	if !found {
		return 0, 0, false
	}

	return v.InDegree(), v.OutDegree(), true
}

// ResetVertices clears the search metadata of every vertex.
//
// It is the hook search collaborators call once per run; general callers
// have no reason to use it. Topology is never changed.
// Complexity: O(V).
func (g *Graph[S]) ResetVertices() {
	for _, v := range g.vertices {
		v.ClearSearch()
	}
}
