// Package bfs provides breadth-first search over any core graph
// variant, returning unweighted shortest-path distances, parent links,
// and visit order.
//
// BFS explores nodes in increasing distance from a start node, with
// optional hooks, depth limiting, and neighbor filtering. Neighbor
// iteration follows the graph's insertion order, so the visit order is
// deterministic for a given construction sequence.
package bfs

import (
	"context"
	"fmt"

	"github.com/graphland/graphland/core"
)

// queueItem pairs a node with its BFS depth.
type queueItem[N comparable] struct {
	node  N
	depth int
}

// walker encapsulates mutable BFS state.
type walker[N comparable] struct {
	graph   core.Interface[N]
	opts    Options[N]
	ctx     context.Context
	queue   []queueItem[N]
	visited map[N]bool
	res     *Result[N]
}

// BFS runs breadth-first search on g starting from start, applying any
// number of functional Options. On directed variants only outgoing arcs
// are followed. Returns ErrGraphNil or ErrStartNotFound for invalid
// input, ErrOptionViolation for bad options, or any user-supplied hook
// error. Complexity: O(V + E).
func BFS[N comparable](g core.Interface[N], start N, opts ...Option[N]) (*Result[N], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions[N]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start node
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartNotFound, start)
	}

	// Prepare walker
	n := g.NodeCount()
	w := &walker[N]{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem[N], 0, n),
		visited: make(map[N]bool, n),
		res: &Result[N]{
			Order:  make([]N, 0, n),
			Depth:  make(map[N]int, n),
			Parent: make(map[N]N, n),
		},
	}

	// Seed queue with the start node (no parent entry)
	w.visited[start] = true
	w.res.Depth[start] = 0
	w.opts.OnEnqueue(start, 0)
	w.queue = append(w.queue, queueItem[N]{node: start})

	// Main loop
	return w.res, w.loop()
}

// enqueue marks node visited at depth d, records its parent, calls
// OnEnqueue, and adds it to the queue.
func (w *walker[N]) enqueue(node N, d int, parent N) {
	w.visited[node] = true
	w.res.Depth[node] = d
	w.res.Parent[node] = parent
	w.opts.OnEnqueue(node, d)
	w.queue = append(w.queue, queueItem[N]{node: node, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[N]) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker[N]) dequeue() queueItem[N] {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.node, item.depth)
	return item
}

// visit records the node in Order and calls OnVisit.
func (w *walker[N]) visit(item queueItem[N]) error {
	w.res.Order = append(w.res.Order, item.node)
	if err := w.opts.OnVisit(item.node, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.node, err)
	}
	return nil
}

// enqueueNeighbors walks the node's adjacency row in insertion order,
// applies filtering and MaxDepth, and enqueues each unseen neighbor.
func (w *walker[N]) enqueueNeighbors(item queueItem[N]) error {
	row, err := w.graph.Neighbors(item.node)
	if err != nil {
		// node removed mid-traversal; the contract leaves that undefined
		return fmt.Errorf("bfs: neighbors of %v: %w", item.node, err)
	}
	for _, nbr := range row.List() {
		// cancellation check inside neighbor iteration
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		if !w.opts.FilterNeighbor(item.node, nbr) {
			continue
		}
		nextDepth := item.depth + 1
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}

		// first time seen?
		if !w.visited[nbr] {
			w.enqueue(nbr, nextDepth, item.node)
		}
	}
	return nil
}
