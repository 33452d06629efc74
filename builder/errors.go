// SPDX-License-Identifier: MIT
// Package: socialnet/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with %w ("Cycle: n=2 < min=3: ...").

package builder

import "errors"

// ErrTooFewUsers indicates a size parameter below the constructor minimum.
var ErrTooFewUsers = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the network rejected a mutation the
// constructor could not skip (e.g. a nil constructor or an unregistrable name).
var ErrConstructFailed = errors.New("builder: construction failed")
