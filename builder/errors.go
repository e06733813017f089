// Package builder: sentinel errors.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with
//     errors.Is, never by comparing strings.
//   - Constructors attach context via %w wrapping and never panic.
package builder

import "errors"

// ErrNilGraph indicates that Build received a nil target graph.
var ErrNilGraph = errors.New("builder: graph is nil")

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is
// below the minimum required by the requested topology.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor was invoked
// without an RNG; set WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrOptionViolation indicates that a WithX option received a
// meaningless value (nil function, empty scheme).
var ErrOptionViolation = errors.New("builder: invalid option value")

// ErrNilConstructor indicates a nil Constructor was passed to Build.
var ErrNilConstructor = errors.New("builder: nil constructor")
