// SPDX-License-Identifier: MIT

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the family minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates an edge probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a nil target graph.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownPredefined indicates that Predefined received an unregistered name.
var ErrUnknownPredefined = errors.New("builder: unknown predefined graph")
