// Cycle queries built on the coloured walk used by TopologicalSort.
//
// FindCycle reports one directed cycle, rotated to start at its smallest
// identity; HasCycle only reports existence. A self-loop is a cycle of
// length one. Edge weights are ignored.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)

package dfs

import (
	"errors"
	"slices"

	"github.com/katalvlaran/stategraph/core"
	"github.com/katalvlaran/stategraph/identity"
)

// FindCycle returns the first directed cycle met by a walk over roots in
// ascending identity order. ok is false for an acyclic or nil graph.
func FindCycle[S identity.Identifiable](g *core.Graph[S]) (cycle []identity.ID, ok bool) {
	if g == nil {
		return nil, false
	}

	sorter := &topoSorter[S]{graph: g, opts: defaultTopoOptions()}
	var ce *cycleError
	if err := sorter.run(); errors.As(err, &ce) {
		return ce.cycle, true
	}

	return nil, false
}

// HasCycle reports whether g contains a directed cycle.
func HasCycle[S identity.Identifiable](g *core.Graph[S]) bool {
	_, ok := FindCycle(g)

	return ok
}

// canonical rotates c in place so its smallest identity comes first.
func canonical(c []identity.ID) []identity.ID {
	if len(c) < 2 {
		return c
	}
	i := slices.Index(c, slices.Min(c))
	slices.Reverse(c[:i])
	slices.Reverse(c[i:])
	slices.Reverse(c)

	return c
}
