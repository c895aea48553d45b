// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic read-only summaries on top of the core types.
// Policy:
//   - No mutation here.
//   - Every exported function documents its complexity.

package core

import "github.com/katalvlaran/stategraph/identity"

// GraphStats is a read-only snapshot of catalog sizes.
type GraphStats struct {
	// VertexCount is the number of owned vertices.
	VertexCount int

	// EdgeCount is the number of stored directed edges.
	EdgeCount int

	// SelfLoops counts edges whose endpoints coincide.
	SelfLoops int

	// SymmetricPairs counts unordered pairs {a,b}, a≠b, stored in both
	// directions regardless of weight.
	SymmetricPairs int

	// Isolated counts vertices with neither incoming nor outgoing edges.
	Isolated int
}

// Stats produces a snapshot of sizes and simple topology counters.
//
// Implementation:
//   - Stage 1: Copy vertex and edge counts (O(1)).
//   - Stage 2: Walk every vertex's outgoing edges once, counting loops and
//     pairs whose reverse exists (counted on the smaller endpoint only).
//
// Complexity:
//   - Time O(V + Σ out-degree²) in the worst case because reverse checks scan
//     the destination's edges; O(V + E) for bounded degree. Space O(1).
func (g *Graph[S]) Stats() GraphStats {
	stats := GraphStats{
		VertexCount: len(g.vertices),
		EdgeCount:   g.edgeCount,
	}

	for id, v := range g.vertices {
		if len(v.edges) == 0 && len(v.associated) == 0 {
			stats.Isolated++
		}
		for _, e := range v.edges {
			switch {
			case e.To == id:
				stats.SelfLoops++
			case id < e.To && g.vertices[e.To].HasEdgeTo(id):
				stats.SymmetricPairs++
			}
		}
	}

	return stats
}

// Endpoints resolves both vertices of e. ok is false when either endpoint
// is not owned by g, which only happens for edges taken from another graph
// or kept across Clear.
func (g *Graph[S]) Endpoints(e Edge) (from, to *Vertex[S], ok bool) {
	from, okFrom := g.vertices[e.From]
	to, okTo := g.vertices[e.To]
	if !okFrom || !okTo {
		return nil, nil, false
	}

	return from, to, true
}

// Weight returns the weight of the edge from→to.
func (g *Graph[S]) Weight(from, to identity.ID) (float64, bool) {
	v, ok := g.vertices[from]
	if !ok {
		return 0, false
	}
	e, ok := v.EdgeTo(to)

	return e.Weight, ok
}
