// Package core provides the generic in-memory graph container that backs
// search algorithms over application-defined state spaces.
//
// A Graph[S] owns one Vertex per identity. States are any type S that
// implements identity.Identifiable; the graph never interprets them beyond
// their UniqueID. Edges are directed, weighted and non-owning: an Edge
// names its endpoints by identity and is resolved through the graph when
// needed, so removing a vertex can never leave a dangling endpoint.
//
// Structure:
//
//	Graph[S]
//	  vertices   map[ID]*Vertex[S]   exclusive owner, O(1) lookup
//	  order      btree.Set[ID]       ascending identities, deterministic enumeration
//	Vertex[S]
//	  state      S                   value copy, pointer or identity.Ref
//	  edges      []Edge              outgoing, insertion order
//	  associated set of ID           sources holding an edge into this vertex
//	  Search     SearchInfo          scratch metadata owned by search collaborators
//
// Invariants kept by every mutating method:
//
//   - One vertex per identity.
//   - For each edge S→D stored on S, D's associated set contains S.
//   - No stored edge names a vertex the graph no longer owns.
//   - At most one edge per ordered pair; AddEdge on an existing pair is a
//     no-op and the first weight wins.
//
// Undirected edges are a convenience: AddUndirectedEdge stores two
// directed edges and UndirectedEdges reports each (a→b, b→a) pair with
// equal weights once.
//
// Core methods:
//
//	// Vertex lifecycle
//	GetOrCreateVertex(s S) *Vertex[S]        // O(1) amortized
//	AddVertex(s S) *Vertex[S]                // alias of the creation path
//	FindVertex(s S) (*Vertex[S], bool)       // O(1), never creates
//	VertexByID(id ID) (*Vertex[S], bool)     // O(1)
//	RemoveVertex(s S) bool                   // O(in·out-degree) cascade
//
//	// Edge lifecycle
//	AddEdge(src, dst S, w float64) bool      // O(out-degree)
//	RemoveEdge(src, dst S) bool              // O(out-degree)
//	AddUndirectedEdge / RemoveUndirectedEdge
//
//	// Enumeration
//	Vertices() []*Vertex[S]                  // ascending ID
//	Edges() []Edge                           // per vertex, ascending source ID
//	UndirectedEdges() []Edge                 // reverse pairs collapsed
//	All() iter.Seq[*Vertex[S]]               // live, restartable
//
//	// Maintenance
//	Clear(), ResetVertices(), RemoveEdgesFunc(pred), Clone(), Subgraph(keep)
//
// Concurrency: a Graph is not safe for concurrent use. Mutating it from
// several goroutines, or while ranging over All/IDs, is a caller error.
//
// Not-found conditions are reported with a bool result, never a panic or
// an error; the package has no I/O and therefore no transient failures.
package core
