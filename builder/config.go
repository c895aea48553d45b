// SPDX-License-Identifier: MIT
// Package: stategraph/builder
//
// config.go - resolved configuration passed to every Constructor.
//
// Design:
//   - Config is the single source of truth for all builder knobs.
//   - Defaults are deterministic and documented; no globals.
//   - Options apply in order (later overrides earlier).
//
// Deterministic defaults:
//   - rng        = nil (pure/deterministic unless seeded)
//   - weightFn   = DefaultWeightFn
//   - undirected = false (forward arcs only)

package builder

import (
	"math/rand/v2"

	"github.com/katalvlaran/stategraph/core"
	"github.com/katalvlaran/stategraph/identity"
)

// settings aggregates the state-independent knobs set by Option.
type settings struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Weight generator for edges.
	weightFn WeightFn
	// Emit the reverse arc of every forward arc.
	undirected bool
}

// Config is the resolved configuration for one Build call. It is passed by
// value to constructors.
type Config[S identity.Identifiable] struct {
	stateFn func(int) S
	settings
}

// newConfig constructs a Config with deterministic defaults and applies all
// options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newConfig[S identity.Identifiable](stateFn func(int) S, opts ...Option) Config[S] {
	cfg := Config[S]{
		stateFn: stateFn,
		settings: settings{
			weightFn: DefaultWeightFn,
		},
	}
	for _, opt := range opts {
		opt(&cfg.settings)
	}

	return cfg
}

// State returns the state for index i.
func (c Config[S]) State(i int) S { return c.stateFn(i) }

// States materializes the states for indices 0..n-1 once, so a state
// factory that allocates (pointer or reference modes) is called exactly
// once per index within a constructor.
func (c Config[S]) States(n int) []S {
	out := make([]S, n)
	for i := range out {
		out[i] = c.stateFn(i)
	}

	return out
}

// Weight draws the next edge weight.
func (c Config[S]) Weight() float64 { return c.weightFn(c.rng) }

// Rand returns the configured RNG, or nil.
func (c Config[S]) Rand() *rand.Rand { return c.rng }

// Undirected reports whether reverse arcs are emitted.
func (c Config[S]) Undirected() bool { return c.undirected }

// Connect adds u→v with one drawn weight and, in undirected mode, v→u with
// the same weight. Existing arcs keep their weight (core first-writer-wins).
func (c Config[S]) Connect(g *core.Graph[S], u, v S) {
	w := c.Weight()
	if c.undirected {
		g.AddUndirectedEdge(u, v, w)
		return
	}
	g.AddEdge(u, v, w)
}
