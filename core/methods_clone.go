// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Ownership:
//   - Clones own fresh Vertex values; states are copied by assignment, so a
//     pointer or identity.Ref state is shared with the source graph.
//   - Search metadata is not copied.

package core

import (
	"maps"
	"slices"

	"github.com/katalvlaran/stategraph/identity"
)

// CloneEmpty returns a new Graph with the same configuration and vertices
// but no edges.
// Complexity: O(V log V).
func (g *Graph[S]) CloneEmpty() *Graph[S] {
	clone := newGraphWithConfig[S](g.cfg)
	g.order.Scan(func(id identity.ID) bool {
		v := g.vertices[id]
		clone.vertices[id] = newVertex(id, v.state, g.cfg.edgeCapacity)
		clone.order.Insert(id)
		return true
	})

	return clone
}

// Clone returns a deep copy of the topology: vertices, edges and
// back-references. Mutating the clone never affects g.
// Complexity: O(V log V + E).
func (g *Graph[S]) Clone() *Graph[S] {
	clone := newGraphWithConfig[S](g.cfg)
	g.order.Scan(func(id identity.ID) bool {
		v := g.vertices[id]
		nv := &Vertex[S]{
			id:         id,
			state:      v.state,
			edges:      slices.Clone(v.edges),
			associated: maps.Clone(v.associated),
		}
		clone.vertices[id] = nv
		clone.order.Insert(id)
		return true
	})
	clone.edgeCount = g.edgeCount

	return clone
}

// Clear releases every vertex and edge. The graph stays usable and keeps
// its configuration. *Vertex values obtained before Clear must not be used
// afterwards.
// Complexity: O(1) plus garbage collection of the old tables.
func (g *Graph[S]) Clear() {
	g.log.Debug("graph cleared", "vertices", len(g.vertices), "edges", g.edgeCount)

	g.vertices = make(map[identity.ID]*Vertex[S], g.cfg.capacity)
	g.order = btreeIDSet{}
	g.edgeCount = 0
}
