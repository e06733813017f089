// Package dijkstra: the single-source shortest-path computation itself.
//
// Complexity:
//
//   - Time:  O((V + E) log V): V heap extractions, up to E pushes.
//   - Space: O(V + E) for the distance/predecessor maps and heap entries.
package dijkstra

import (
	"fmt"

	"github.com/emirpasic/gods/trees/binaryheap"

	"github.com/graphland/graphland/core"
)

// item is one (node, distance) heap entry.
type item[N comparable] struct {
	node N
	dist float64
}

// Dijkstra computes shortest distances from source to all reachable
// nodes of g. On directed variants only outgoing arcs are relaxed.
//
// Validation order: options, nil graph, source membership, then an
// upfront O(E) scan that fails fast on any negative weight.
func Dijkstra[N comparable](g core.Interface[N], source N, opts ...Option) (*Result[N], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(source) {
		return nil, fmt.Errorf("%w: %v", ErrSourceNotFound, source)
	}

	// Pre-scan all edges to detect negative weights.
	for e := range g.Edges().All() {
		if w := e.Attrs.Float(cfg.WeightKey, cfg.DefaultWeight); w < 0 {
			return nil, fmt.Errorf("%w: edge %v→%v weight=%v", ErrNegativeWeight, e.U, e.V, w)
		}
	}

	r := &runner[N]{
		g:    g,
		opts: cfg,
		res:  &Result[N]{Dist: make(map[N]float64, g.NodeCount())},
		pq: binaryheap.NewWith(func(a, b interface{}) int {
			da, db := a.(*item[N]).dist, b.(*item[N]).dist
			switch {
			case da < db:
				return -1
			case da > db:
				return 1
			default:
				return 0
			}
		}),
		visited: make(map[N]bool, g.NodeCount()),
	}
	if cfg.ReturnPath {
		r.res.Prev = make(map[N]N, g.NodeCount())
	}

	r.res.Dist[source] = 0
	r.pq.Push(&item[N]{node: source})

	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// runner holds the mutable state of a single Dijkstra execution.
type runner[N comparable] struct {
	g       core.Interface[N]
	opts    Options
	res     *Result[N]
	pq      *binaryheap.Heap
	visited map[N]bool
}

// process repeatedly extracts the minimum-distance node and relaxes its
// outgoing edges. Terminates when the heap empties or the minimum
// distance exceeds MaxDistance.
func (r *runner[N]) process() error {
	for {
		raw, ok := r.pq.Pop()
		if !ok {
			return nil
		}
		it := raw.(*item[N])

		// Stale lazy-decrease-key entry.
		if r.visited[it.node] {
			continue
		}
		// Beyond the cap nothing closer remains in the heap.
		if it.dist > r.opts.MaxDistance {
			return nil
		}
		r.visited[it.node] = true

		if err := r.relax(it.node); err != nil {
			return err
		}
	}
}

// relax attempts to improve the distance of every neighbor of u.
func (r *runner[N]) relax(u N) error {
	row, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %v: %w", u, err)
	}

	base := r.res.Dist[u]
	for v, data := range row.All() {
		w := data.Float(r.opts.WeightKey, r.opts.DefaultWeight)

		// Impassable wall.
		if w >= r.opts.InfEdgeThreshold {
			continue
		}
		// Defensive re-check; the pre-scan already rejected these.
		if w < 0 {
			return fmt.Errorf("%w: edge %v→%v weight=%v", ErrNegativeWeight, u, v, w)
		}

		newDist := base + w
		if newDist > r.opts.MaxDistance {
			continue
		}
		cur, seen := r.res.Dist[v]
		if seen && newDist >= cur {
			continue
		}

		r.res.Dist[v] = newDist
		if r.res.Prev != nil {
			r.res.Prev[v] = u
		}
		r.pq.Push(&item[N]{node: v, dist: newDist})
	}

	return nil
}
