// Package builder provides deterministic topology constructors for all
// graph variants: fixtures for tests, benchmarks, and examples that are
// identical on every run.
//
// # What
//
//   - Build(g, opts, cons...) applies one or more Constructor closures
//     to a caller-provided graph of any variant.
//   - Factories: Path, Cycle, Star, Wheel, Complete, CompleteBipartite,
//     Grid, RandomSparse.
//
// # Determinism
//
// Every factory documents its node ID scheme and edge emission order.
// Stochastic factories (RandomSparse) require a seeded RNG via WithSeed
// or WithRand and consume draws in a fixed order, so a fixed seed fixes
// the graph. Combined with insertion-order iteration in the graph core,
// this makes golden tests stable.
//
// # Options
//
//   - WithIDScheme(fn): node labels (DefaultIDFn, PrefixIDFn,
//     ExcelColumnIDFn).
//   - WithSeed(s) / WithRand(r): RNG for stochastic constructors.
//   - WithWeightFn(fn) / WithConstWeight(w): attach weight attributes
//     to every emitted edge; WithWeightKey changes the attribute name.
//   - WithPartitionPrefix(l, r): bipartite side labels.
//
// # Usage
//
//	g := core.NewGraph[string]()
//	err := builder.Build(g, nil,
//		builder.Cycle(5),
//		builder.Star(4),
//	)
//
// # Errors
//
// Constructors validate early and return sentinels (ErrTooFewVertices,
// ErrInvalidProbability, ErrNeedRandSource); invalid option values
// surface as ErrOptionViolation from Build. Nothing panics.
package builder
