// Package dijkstra: configuration options, sentinel errors, and the
// result type for the shortest-path computation.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// DefaultWeightKey is the edge attribute read as the edge cost.
const DefaultWeightKey = "weight"

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrSourceNotFound indicates that the source node does not exist in
	// the provided graph.
	ErrSourceNotFound = errors.New("dijkstra: source node not found")

	// ErrNegativeWeight indicates that a negative edge weight was
	// detected; Dijkstra requires non-negative costs.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative
	// value, which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero
	// or a negative value, which would make every edge impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrNoPath is returned by Result.PathTo for unreachable destinations.
	ErrNoPath = errors.New("dijkstra: no path to destination")
)

// Options configures the behavior of the Dijkstra algorithm.
type Options struct {
	// WeightKey names the edge attribute holding the cost.
	// Defaults to DefaultWeightKey.
	WeightKey string

	// DefaultWeight is the cost of an edge missing the weight attribute
	// (or holding a non-numeric value). Defaults to 1, so an unweighted
	// graph degrades to hop counting.
	DefaultWeight float64

	// ReturnPath, if true, records the predecessor map so Result.PathTo
	// can reconstruct routes. Off by default to save memory.
	ReturnPath bool

	// MaxDistance caps exploration: nodes whose distance would exceed it
	// are not explored. Must be ≥ 0. Default is +Inf (no cap).
	MaxDistance float64

	// InfEdgeThreshold treats edges with weight ≥ the threshold as
	// impassable walls. Must be > 0. Default is +Inf (no walls).
	InfEdgeThreshold float64

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// DefaultOptions returns Options with sensible defaults: weight
// attribute "weight" defaulting to 1, no predecessor map, no distance
// cap, no impassable edges.
func DefaultOptions() Options {
	return Options{
		WeightKey:        DefaultWeightKey,
		DefaultWeight:    1,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

// WithWeightKey reads edge costs from the given attribute instead of
// DefaultWeightKey.
func WithWeightKey(key string) Option {
	return func(o *Options) {
		if key != "" {
			o.WeightKey = key
		}
	}
}

// WithDefaultWeight sets the cost used for edges missing the weight
// attribute.
func WithDefaultWeight(w float64) Option {
	return func(o *Options) {
		o.DefaultWeight = w
	}
}

// WithReturnPath enables the predecessor map in the result, making
// Result.PathTo usable.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold. Nodes whose
// shortest distance would exceed it are not explored.
// Negative values surface as ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: %v", ErrBadMaxDistance, max)
			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats edges with weight ≥ threshold as
// non-traversable. Zero or negative values surface as
// ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			o.err = fmt.Errorf("%w: %v", ErrBadInfThreshold, threshold)
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// Result holds the outcome of a Dijkstra run.
type Result[N comparable] struct {
	// Dist maps each reachable node to its minimum cost from the source.
	// Unreachable nodes have no entry.
	Dist map[N]float64

	// Prev maps each reached node (except the source) to its predecessor
	// on a shortest path. Nil unless WithReturnPath was set.
	Prev map[N]N
}

// PathTo reconstructs a shortest path from the source to dest.
// Requires WithReturnPath; returns ErrNoPath if dest was not reached.
func (r *Result[N]) PathTo(dest N) ([]N, error) {
	if r.Prev == nil {
		return nil, errors.New("dijkstra: PathTo requires WithReturnPath")
	}
	if _, ok := r.Dist[dest]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrNoPath, dest)
	}
	path := []N{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Prev[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
