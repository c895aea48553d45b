// types.go defines the central Graph, Vertex and Edge types, the
// per-vertex search metadata, graph options and the NewGraph constructor.

package core

import (
	"log/slog"
	"strconv"

	"github.com/tidwall/btree"

	"github.com/katalvlaran/stategraph/identity"
)

// Edge is a directed, weighted connection between two vertices.
//
// Edges are plain values: they do not own their endpoints and carry only
// the endpoint identities. Resolve an endpoint with Graph.VertexByID.
type Edge struct {
	// From is the identity of the source vertex.
	From identity.ID

	// To is the identity of the destination vertex.
	To identity.ID

	// Weight is the transition cost; any sign is accepted.
	Weight float64
}

// Same reports whether e and o describe the same directed connection.
// Weight is ignored: the graph keeps at most one edge per ordered pair.
func (e Edge) Same(o Edge) bool {
	return e.From == o.From && e.To == o.To
}

// ReverseOf reports whether e is the logical reverse of o: endpoints
// swapped and the same weight. UndirectedEdges collapses such pairs.
func (e Edge) ReverseOf(o Edge) bool {
	return e.From == o.To && e.To == o.From && e.Weight == o.Weight
}

// Reverse returns the edge with endpoints swapped.
func (e Edge) Reverse() Edge {
	return Edge{From: e.To, To: e.From, Weight: e.Weight}
}

// IsLoop reports whether the edge starts and ends at the same vertex.
func (e Edge) IsLoop() bool { return e.From == e.To }

// String renders the edge as "from->to (w)".
func (e Edge) String() string {
	buf := make([]byte, 0, 48)
	buf = strconv.AppendUint(buf, e.From, 10)
	buf = append(buf, "->"...)
	buf = strconv.AppendUint(buf, e.To, 10)
	buf = append(buf, " ("...)
	buf = strconv.AppendFloat(buf, e.Weight, 'g', -1, 64)
	buf = append(buf, ')')

	return string(buf)
}

// SearchInfo is per-vertex scratch state owned by search collaborators
// (A*, Dijkstra, the bfs and dfs packages). The graph never reads it; it only
// resets it through Graph.ResetVertices. The zero value is the reset state.
type SearchInfo struct {
	// Checked marks a vertex whose search result is final (closed set).
	Checked bool

	// InOpenList marks a vertex currently queued for expansion.
	InOpenList bool

	// Parent is the predecessor on the current search tree; valid only
	// when HasParent is true.
	Parent    identity.ID
	HasParent bool

	// G is the cost so far, H the heuristic estimate and F their sum.
	G, H, F float64
}

// Reset returns the metadata to its initial state.
func (s *SearchInfo) Reset() { *s = SearchInfo{} }

// Vertex is a node owned by exactly one Graph.
//
// It wraps the caller's state, the outgoing edges, and the set of
// vertices that hold an edge into it. The back-reference set is internal
// bookkeeping that keeps removals safe; it is not part of the topology
// reported to consumers.
type Vertex[S identity.Identifiable] struct {
	id    identity.ID
	state S

	// edges holds outgoing edges in insertion order.
	edges []Edge

	// associated holds the identities of vertices with an edge into this one.
	associated map[identity.ID]struct{}

	// Search is mutable metadata for search algorithms.
	Search SearchInfo
}

// GraphOption configures a Graph before creation.
type GraphOption func(c *graphConfig)

// graphConfig holds construction-time settings shared by every Graph[S].
type graphConfig struct {
	logger       *slog.Logger
	capacity     int
	edgeCapacity int
}

// WithLogger routes the graph's structural debug records to l.
// Panics on nil.
func WithLogger(l *slog.Logger) GraphOption {
	if l == nil {
		panic("core: WithLogger(nil)")
	}

	return func(c *graphConfig) { c.logger = l }
}

// WithCapacity pre-sizes the vertex table for n vertices.
// Panics if n is negative.
func WithCapacity(n int) GraphOption {
	if n < 0 {
		panic("core: WithCapacity(n<0)")
	}

	return func(c *graphConfig) { c.capacity = n }
}

// WithEdgeCapacity sets the initial capacity of each new vertex's
// outgoing edge list. Panics if n is negative.
func WithEdgeCapacity(n int) GraphOption {
	if n < 0 {
		panic("core: WithEdgeCapacity(n<0)")
	}

	return func(c *graphConfig) { c.edgeCapacity = n }
}

// Graph is an identity-keyed container of vertices and directed edges.
//
// vertices is the exclusive owner of every Vertex; order mirrors its key
// set in ascending order so enumeration is deterministic. edgeCount is the
// number of stored directed edges.
type Graph[S identity.Identifiable] struct {
	cfg graphConfig
	log *slog.Logger

	vertices  map[identity.ID]*Vertex[S]
	order     btreeIDSet
	edgeCount int
}

// btreeIDSet is the ordered identity index kept alongside the vertex map.
type btreeIDSet = btree.Set[identity.ID]

// NewGraph creates an empty Graph. Without options the graph is silent
// (discarding logger) and unsized.
// Complexity: O(len(opts)).
func NewGraph[S identity.Identifiable](opts ...GraphOption) *Graph[S] {
	cfg := graphConfig{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&cfg)
	}

	return newGraphWithConfig[S](cfg)
}

// newGraphWithConfig is the shared constructor used by NewGraph, Clone and
// the views so derived graphs inherit the source configuration.
func newGraphWithConfig[S identity.Identifiable](cfg graphConfig) *Graph[S] {
	return &Graph[S]{
		cfg:      cfg,
		log:      cfg.logger,
		vertices: make(map[identity.ID]*Vertex[S], cfg.capacity),
	}
}
