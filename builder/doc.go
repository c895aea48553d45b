// Package builder provides deterministic topology constructors for
// core.Graph of any state type, in a functional-options style.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – Build:        new graph + constructors applied in order.
//     – Apply:        constructors applied to an existing graph.
//     – Constructor:  func(g *core.Graph[S], cfg Config[S]) error.
//   - State factory: func(int) S maps a vertex index to its state; Keys
//     is the ready-made factory for identity.Key.
//   - Topologies: Path, Cycle, Star, Complete, Grid, RandomSparse.
//   - Edge-weight distributions (WeightFn implementations):
//     – DefaultWeightFn:  constant DefaultEdgeWeight.
//     – ConstantWeightFn: fixed user-provided value.
//     – UniformWeightFn:  uniform ∼U[min,max).
//     – IntWeightFn:      integers ∼U{min..max}.
//   - Options: WithSeed, WithRand, WithWeightFn, WithUndirected and the
//     weight shorthands.
//
// Guarantees:
//
//   - Idempotent composition: re-running a constructor over the same index
//     space never duplicates vertices or edges (core first-writer-wins).
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Sentinel runtime errors for invalid build parameters, wrapped with the
//     method tag ("Grid: ...: %w").
//   - Documented complexity per constructor.
package builder
