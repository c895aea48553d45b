// SPDX-License-Identifier: MIT
// Package: stategraph/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Emits arcs i → (i+1) mod n for i=0..n-1, the closing arc last.
//
// Complexity: O(n) time; O(n) space for the materialized states.

package builder

import (
	"fmt"

	"github.com/katalvlaran/stategraph/core"
	"github.com/katalvlaran/stategraph/identity"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds a simple cycle C_n.
func Cycle[S identity.Identifiable](n int) Constructor[S] {
	return func(g *core.Graph[S], cfg Config[S]) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		states := addStates(g, cfg, n)
		for i := 0; i < n; i++ {
			cfg.Connect(g, states[i], states[(i+1)%n])
		}

		return nil
	}
}
