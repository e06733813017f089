// Package builder: the public entry point.
//
// Design contract:
//   - One orchestrator: Build(g, opts, cons...). Resolves the config
//     once and applies all constructors in order against g.
//   - All factories return a Constructor closure, implemented one per
//     impl_*.go file.
//   - Determinism: the same target variant, options, and constructor
//     order always produce identical graphs.
//   - Safety: constructors validate early, return sentinel errors, and
//     never panic.
package builder

import (
	"fmt"

	"github.com/graphland/graphland/core"
)

// Constructor applies one deterministic topology to the target graph
// using the resolved config. Implementations must validate parameters
// before touching g and must emit nodes and edges in a stable,
// documented order.
type Constructor func(g core.Interface[string], cfg config) error

// Build resolves the configuration from opts and applies all
// constructors to g in order. The first error aborts; no partial
// cleanup is attempted.
//
// The target may be any variant: directed variants receive forward
// arcs (Path, Cycle, Grid) or arcs in both directions (Complete),
// as documented per factory.
func Build(g core.Interface[string], opts []Option, cons ...Constructor) error {
	cfg := newConfig(opts...)
	if cfg.err != nil {
		return fmt.Errorf("Build: %w", cfg.err)
	}
	if g == nil {
		return fmt.Errorf("Build: %w", ErrNilGraph)
	}

	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Build: constructor %d: %w", i, ErrNilConstructor)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("Build: %w", err)
		}
	}

	return nil
}

// edgeAttrs renders the per-edge attribute list for cfg: empty when no
// weight policy is configured, otherwise one Attrs dict holding a fresh
// draw from the weight function.
func edgeAttrs(cfg config) []core.Attrs {
	if cfg.weightFn == nil {
		return nil
	}

	return []core.Attrs{{cfg.weightKey: cfg.weightFn(cfg.rng)}}
}
