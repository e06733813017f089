// Package dfs: topological sort over directed graph variants.
//
// TopologicalSort computes a linear ordering of nodes such that for
// every arc u→v, u appears before v. A cycle yields ErrCycleDetected.
//
// Complexity:
//
//   - Time:   O(V + E) (each node and arc visited once)
//   - Memory: O(V)     (recursion stack and state map)
package dfs

import (
	"context"
	"fmt"

	"github.com/graphland/graphland/core"
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

// topoOptions holds settings for TopologicalSort, currently only
// cancellation.
type topoOptions struct {
	ctx context.Context
}

// WithCancelContext returns a TopoOption that sets the cancellation
// context. Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter[N comparable] struct {
	graph core.Interface[N]
	opts  topoOptions
	state map[N]int // White, Gray, Black
	order []N       // recorded post-order sequence
}

// TopologicalSort computes a topological ordering of all nodes in g.
// Returns ErrGraphNil for a nil graph, ErrUndirected for an undirected
// variant, and ErrCycleDetected when a back-arc is found. Node order is
// driven by insertion order, so the result is deterministic.
func TopologicalSort[N comparable](g core.Interface[N], options ...TopoOption) ([]N, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.IsDirected() {
		return nil, ErrUndirected
	}
	opts := topoOptions{ctx: context.Background()}
	for _, opt := range options {
		opt(&opts)
	}

	nodes := g.Nodes().List()
	sorter := &topoSorter[N]{
		graph: g,
		opts:  opts,
		state: make(map[N]int, len(nodes)),
		order: make([]N, 0, len(nodes)),
	}
	// Drive DFS from every unvisited node.
	for _, v := range nodes {
		if sorter.state[v] == White {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}
	// Reverse post-order to produce topological order.
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

// visit performs a DFS from node, marking states and detecting cycles.
func (t *topoSorter[N]) visit(node N) error {
	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}
	// A Gray node on the path means a back-arc.
	if t.state[node] == Gray {
		return fmt.Errorf("%w: at %v", ErrCycleDetected, node)
	}
	if t.state[node] == Black {
		return nil
	}
	t.state[node] = Gray

	row, err := t.graph.Neighbors(node)
	if err != nil {
		return fmt.Errorf("dfs: neighbors of %v: %w", node, err)
	}
	for _, nbr := range row.List() {
		if err = t.visit(nbr); err != nil {
			return err
		}
	}

	t.state[node] = Black
	t.order = append(t.order, node)

	return nil
}
