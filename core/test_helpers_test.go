// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.
//
// Purpose:
//   - Provide one state type reachable in all three representation modes.
//   - Provide the 3×3 grid edge list used by the scenario and mode tests.
//   - Provide order-insensitive edge comparison helpers.

package core_test

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/stategraph/core"
	"github.com/katalvlaran/stategraph/identity"
)

// testState is a value-receiver state: usable by value, by pointer and
// through identity.Ref.
type testState struct {
	id    identity.ID
	label string
}

func (s testState) UniqueID() identity.ID { return s.id }

// newStates allocates n caller-owned states with identities 0..n-1.
func newStates(n int) []*testState {
	out := make([]*testState, n)
	for i := range out {
		out[i] = &testState{id: identity.ID(i)}
	}

	return out
}

// Common identities used across core tests.
const (
	IDA identity.ID = 1
	IDB identity.ID = 2
	IDC identity.ID = 3
	IDD identity.ID = 4
	IDX identity.ID = 99
)

// Common weights used across core tests (avoid magic numbers in test bodies).
const (
	WeightHalf  = 0.5
	Weight1     = 1.0
	Weight2     = 2.0
	WeightMinus = -3.25
)

// gridEdge is one directed edge of the 3×3 grid fixture.
type gridEdge struct {
	from, to int
	w        float64
}

// gridEdges is the directed edge list over cells 0..8 of a 3×3 grid.
// Cell 6 is never referenced.
var gridEdges = []gridEdge{
	{0, 1, 1.0}, {0, 3, 1.5},
	{1, 0, 2.0}, {1, 4, 2.5}, {1, 2, 1.0},
	{2, 1, 1.5}, {2, 5, 2.0},
	{3, 0, 2.5}, {3, 4, 2.5},
	{4, 1, 2.5}, {4, 3, 2.5}, {4, 5, 2.5},
	{5, 2, 2.5}, {5, 4, 2.5}, {5, 8, 2.5},
	{7, 4, 2.5}, {7, 8, 2.5},
	{8, 5, 2.5}, {8, 7, 2.5},
}

const (
	gridCells         = 9
	gridVertices      = 8 // cell 6 is unused
	gridCenter        = 4
	gridCenterTouches = 7 // 1→4, 3→4, 5→4, 7→4, 4→1, 4→3, 4→5
)

// buildValueGrid builds the grid fixture with value states.
func buildValueGrid(nodes []*testState) *core.Graph[testState] {
	g := core.NewGraph[testState]()
	for _, e := range gridEdges {
		g.AddEdge(*nodes[e.from], *nodes[e.to], e.w)
	}

	return g
}

// buildPointerGrid builds the grid fixture with pointer states.
func buildPointerGrid(nodes []*testState) *core.Graph[*testState] {
	g := core.NewGraph[*testState]()
	for _, e := range gridEdges {
		g.AddEdge(nodes[e.from], nodes[e.to], e.w)
	}

	return g
}

// buildRefGrid builds the grid fixture with reference states.
func buildRefGrid(nodes []*testState) *core.Graph[identity.Ref[testState]] {
	g := core.NewGraph[identity.Ref[testState]]()
	for _, e := range gridEdges {
		g.AddEdge(identity.RefTo(nodes[e.from]), identity.RefTo(nodes[e.to]), e.w)
	}

	return g
}

// edgeLess orders edges by (From, To, Weight) for multiset comparison.
func edgeLess(a, b core.Edge) bool {
	return compareEdges(a, b) < 0
}

func compareEdges(a, b core.Edge) int {
	if c := cmp.Compare(a.From, b.From); c != 0 {
		return c
	}
	if c := cmp.Compare(a.To, b.To); c != 0 {
		return c
	}

	return cmp.Compare(a.Weight, b.Weight)
}

// sortedEdges returns a sorted copy of es.
func sortedEdges(es []core.Edge) []core.Edge {
	out := slices.Clone(es)
	slices.SortFunc(out, compareEdges)

	return out
}

// vertexIDs extracts identities from a vertex slice.
func vertexIDs[S identity.Identifiable](vs []*core.Vertex[S]) []identity.ID {
	out := make([]identity.ID, len(vs))
	for i, v := range vs {
		out[i] = v.ID()
	}

	return out
}

// touches reports whether any edge has id as an endpoint.
func touches(es []core.Edge, id identity.ID) bool {
	return slices.ContainsFunc(es, func(e core.Edge) bool { return e.From == id || e.To == id })
}
