// SPDX-License-Identifier: MIT
// Package: stategraph/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   - Options are functional and state-independent, so one option list
//     serves every state type.
//   - Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand/v2"
)

// Option customizes a build by mutating the settings before construction.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*settings)

// WithRand provides an explicit RNG for stochastic builders and weights.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *settings) {
		c.rng = r
	}
}

// WithSeed creates a PCG-backed *rand.Rand with the given seed.
// Use this in tests and examples to lock outcomes.
func WithSeed(seed uint64) Option {
	return func(c *settings) {
		c.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *settings) {
		c.weightFn = fn
	}
}

// WithUndirected makes every constructor emit both directions of each arc
// with the same weight.
func WithUndirected() Option {
	return func(c *settings) {
		c.undirected = true
	}
}
