// Package builder: internal configuration and deterministic defaults.
//
// config is the single source of truth for all builder knobs. Defaults
// are deterministic; later options override earlier ones.
package builder

import "math/rand"

// Deterministic defaults.
const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
	defaultWeightKey   = "weight"
)

// config aggregates all knobs used by constructors. It is passed by
// value, so constructors cannot leak state into each other.
type config struct {
	// Vertex ID strategy: index to identifier.
	idFn IDFn

	// RNG for stochastic constructors; nil means no randomness available.
	rng *rand.Rand

	// Weight generator; nil means edges carry no weight attribute.
	weightFn func(*rand.Rand) float64

	// Attribute key the weight is stored under.
	weightKey string

	// Bipartite side prefixes.
	leftPrefix  string
	rightPrefix string

	// First option violation, surfaced by Build.
	err error
}

// newConfig applies options over deterministic defaults, last wins.
func newConfig(opts ...Option) config {
	cfg := config{
		idFn:        DefaultIDFn,
		weightKey:   defaultWeightKey,
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}

	return cfg
}
