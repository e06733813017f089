// Package builder: functional options.
//
// Options mutate a config before construction begins. Invalid values
// are recorded and surfaced as ErrOptionViolation from Build, so a bad
// option never panics and never silently degrades.
package builder

import (
	"fmt"
	"math/rand"
)

// Option customizes constructor behavior.
type Option func(*config)

// WithIDScheme sets the deterministic vertex ID generator.
// A nil function surfaces as ErrOptionViolation.
func WithIDScheme(fn IDFn) Option {
	return func(c *config) {
		if fn == nil {
			c.err = fmt.Errorf("%w: WithIDScheme(nil)", ErrOptionViolation)
			return
		}
		c.idFn = fn
	}
}

// WithSeed attaches a deterministically seeded RNG; required by the
// stochastic constructors and used by WithRandomWeights.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand attaches an explicit RNG. Prefer WithSeed for reproducible
// runs. A nil RNG surfaces as ErrOptionViolation.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		if r == nil {
			c.err = fmt.Errorf("%w: WithRand(nil)", ErrOptionViolation)
			return
		}
		c.rng = r
	}
}

// WithWeightFn makes every emitted edge carry a weight attribute drawn
// from fn. The function receives the configured RNG (possibly nil).
// A nil function surfaces as ErrOptionViolation.
func WithWeightFn(fn func(*rand.Rand) float64) Option {
	return func(c *config) {
		if fn == nil {
			c.err = fmt.Errorf("%w: WithWeightFn(nil)", ErrOptionViolation)
			return
		}
		c.weightFn = fn
	}
}

// WithConstWeight makes every emitted edge carry the given constant
// weight attribute.
func WithConstWeight(w float64) Option {
	return func(c *config) {
		c.weightFn = func(*rand.Rand) float64 { return w }
	}
}

// WithWeightKey stores weights under the given attribute key instead of
// "weight". An empty key surfaces as ErrOptionViolation.
func WithWeightKey(key string) Option {
	return func(c *config) {
		if key == "" {
			c.err = fmt.Errorf("%w: WithWeightKey(\"\")", ErrOptionViolation)
			return
		}
		c.weightKey = key
	}
}

// WithPartitionPrefix sets the bipartite side labels. Empty values mean
// "use defaults" ("L"/"R"), not an error.
func WithPartitionPrefix(left, right string) Option {
	return func(c *config) {
		c.leftPrefix, c.rightPrefix = left, right
	}
}
