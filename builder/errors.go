// SPDX-License-Identifier: MIT
// Package: stategraph/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables (package-level) are exposed.
//   - Callers branch with errors.Is(err, ErrX).
//   - Implementations attach context with `%w`, prefixed by the method tag.
//   - Constructors never panic; validation panics are confined to option
//     constructors (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (n, rows, cols)
// is smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires an RNG
// (WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrNilStateFn indicates Build was called without a state factory.
var ErrNilStateFn = errors.New("builder: state function is nil")

// ErrConstructFailed indicates that construction could not proceed, e.g.
// a nil Constructor in the list.
var ErrConstructFailed = errors.New("builder: construction failed")

// Priority when several validations fail:
//   - ErrTooFewVertices first (n, rows, cols).
//   - ErrInvalidProbability next.
//   - ErrNeedRandSource last.
