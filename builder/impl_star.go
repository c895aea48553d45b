// SPDX-License-Identifier: MIT
// Package: stategraph/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Index 0 is the center; indices 1..n-1 are leaves.
//   - Emits arcs center → leaf in ascending leaf order.
//
// Complexity: O(n) time; O(n) space for the materialized states.

package builder

import (
	"fmt"

	"github.com/katalvlaran/stategraph/core"
	"github.com/katalvlaran/stategraph/identity"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
	starCenter   = 0
)

// Star returns a Constructor that builds a star with center index 0 and
// n-1 leaves.
func Star[S identity.Identifiable](n int) Constructor[S] {
	return func(g *core.Graph[S], cfg Config[S]) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		states := addStates(g, cfg, n)
		for i := 1; i < n; i++ {
			cfg.Connect(g, states[starCenter], states[i])
		}

		return nil
	}
}
