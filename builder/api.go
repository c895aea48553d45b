// SPDX-License-Identifier: MIT
// Package: stategraph/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: Build(stateFn, gopts, bopts, cons...). Creates g,
//     resolves cfg, runs cons in order.
//   - Topology factories live in impl_*.go.
//   - Determinism: same inputs, options, seed and constructor order give
//     identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/stategraph/core"
	"github.com/katalvlaran/stategraph/identity"
)

// Constructor applies a deterministic graph mutation using the resolved
// Config. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Obtain states only through cfg (State/States) so index i always maps
//     to the same identity within one Build.
//   - Preserve determinism for the same config and call order.
type Constructor[S identity.Identifiable] func(g *core.Graph[S], cfg Config[S]) error

// Build creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
//
// stateFn maps a vertex index to its state. Constructors share one index
// space, so composing Path(3) and Star(3) overlays them on vertices 0..2.
//
// Errors:
//   - ErrNilStateFn if stateFn is nil.
//   - ErrConstructFailed (wrapped) for a nil constructor.
//   - Constructor errors wrapped as "Build: %w"; no partial cleanup.
//
// Complexity: O(len(bopts)) plus the cost of each constructor.
func Build[S identity.Identifiable](
	stateFn func(int) S,
	gopts []core.GraphOption,
	bopts []Option,
	cons ...Constructor[S],
) (*core.Graph[S], error) {
	if stateFn == nil {
		return nil, ErrNilStateFn
	}

	g := core.NewGraph[S](gopts...)
	cfg := newConfig(stateFn, bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return g, nil
}

// Apply runs constructors against an existing graph, e.g. to extend a
// graph that already carries caller-added vertices.
func Apply[S identity.Identifiable](g *core.Graph[S], stateFn func(int) S, bopts []Option, cons ...Constructor[S]) error {
	if g == nil {
		return fmt.Errorf("Apply: nil graph: %w", ErrConstructFailed)
	}
	if stateFn == nil {
		return ErrNilStateFn
	}

	cfg := newConfig(stateFn, bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Apply: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("Apply: %w", err)
		}
	}

	return nil
}

// Keys is a ready state factory mapping index i to identity.Key(i).
func Keys(i int) identity.Key { return identity.Key(i) }
