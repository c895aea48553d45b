// SPDX-License-Identifier: MIT
// Package: stategraph/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices). K_1 is a single isolated vertex.
//   - Emits arcs i → j for every i < j in (i asc, j asc) order: a
//     transitive tournament. WithUndirected yields the full K_n.
//   - No self-loops.
//
// Complexity: O(n) vertices + O(n²) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/stategraph/core"
	"github.com/katalvlaran/stategraph/identity"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete[S identity.Identifiable](n int) Constructor[S] {
	return func(g *core.Graph[S], cfg Config[S]) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		states := addStates(g, cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				cfg.Connect(g, states[i], states[j])
			}
		}

		return nil
	}
}
