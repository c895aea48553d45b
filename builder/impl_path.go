// SPDX-License-Identifier: MIT
// Package: stategraph/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds states 0..n-1 in ascending index order.
//   - Emits arcs (i-1) → i for i=1..n-1 in increasing order.
//
// Complexity:
//   - Time: O(n) vertices + O(n-1) edges.
//   - Space: O(n) for the materialized states.

package builder

import (
	"fmt"

	"github.com/katalvlaran/stategraph/core"
	"github.com/katalvlaran/stategraph/identity"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path[S identity.Identifiable](n int) Constructor[S] {
	return func(g *core.Graph[S], cfg Config[S]) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		states := addStates(g, cfg, n)
		for i := 1; i < n; i++ {
			cfg.Connect(g, states[i-1], states[i])
		}

		return nil
	}
}

// addStates materializes states 0..n-1 and ensures each has a vertex, in
// ascending index order.
func addStates[S identity.Identifiable](g *core.Graph[S], cfg Config[S], n int) []S {
	states := cfg.States(n)
	for _, s := range states {
		g.AddVertex(s)
	}

	return states
}
