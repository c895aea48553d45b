// Package stategraph is an embeddable, generic graph container for search
// algorithms (A*, Dijkstra, BFS/DFS) that operate over user-defined states.
//
// The container stores vertices keyed by a stable identity derived from
// each state and directed weighted edges between them. It keeps the
// topology consistent under removal: deleting a vertex removes every edge
// that touches it, in both directions.
//
// Subpackages:
//
//	identity/ ID type, Identifiable contract, Key and Ref helpers
//	core/     Graph[S], Vertex[S], Edge, SearchInfo, views and stats
//	bfs/      breadth-first search writing into SearchInfo
//	dfs/      depth-first search, topological sort, cycle detection
//	builder/  deterministic topology constructors (path, grid, random…)
//
// One Graph type serves three representation modes, selected by the state
// type parameter:
//
//	core.NewGraph[Cell]()                // value states, copied in
//	core.NewGraph[*Cell]()               // pointer states, shared with caller
//	core.NewGraph[identity.Ref[Cell]]()  // handle states, indirection kept explicit
//
// Quick example:
//
//	g := core.NewGraph[identity.Key]()
//	g.AddUndirectedEdge(1, 2, 1)
//	g.AddEdge(2, 3, 2.5)
//	g.RemoveVertex(2) // 1 and 3 remain, no edges
//
// A Graph is not safe for concurrent mutation; callers serialize access.
package stategraph
