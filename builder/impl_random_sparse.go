// SPDX-License-Identifier: MIT
// Package: stategraph/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - An RNG is required when 0 < p < 1 (else ErrNeedRandSource); p ∈ {0,1}
//     is deterministic without one.
//   - Trials every ordered pair (i,j), i≠j, in (i asc, j asc) order. In
//     undirected mode only pairs i<j are tried and both arcs are emitted.
//   - No self-loops.
//
// Complexity:
//   - Time: O(n) vertices + O(n²) Bernoulli trials.
//   - Space: O(n) for the materialized states.
//
// Determinism:
//   - Fixed trial order gives identical graphs for a fixed seed.

package builder

import (
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/stategraph/core"
	"github.com/katalvlaran/stategraph/identity"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples an Erdős–Rényi-like graph
// over n vertices with independent edge probability p.
func RandomSparse[S identity.Identifiable](n int, p float64) Constructor[S] {
	return func(g *core.Graph[S], cfg Config[S]) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		rng := cfg.Rand()
		if rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		states := addStates(g, cfg, n)
		for i := 0; i < n; i++ {
			j0 := 0
			if cfg.Undirected() {
				j0 = i + 1
			}
			for j := j0; j < n; j++ {
				if i == j {
					continue
				}
				if trial(rng, p) {
					cfg.Connect(g, states[i], states[j])
				}
			}
		}

		return nil
	}
}

// trial reports one Bernoulli(p) outcome; p ∈ {0,1} never touches rng.
func trial(rng *rand.Rand, p float64) bool {
	switch p {
	case probMin:
		return false
	case probMax:
		return true
	default:
		return rng.Float64() < p
	}
}
