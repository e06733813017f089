// Package dfs: cycle detection for directed and undirected variants.
//
// DetectCycles enumerates simple cycles using depth-first search with
// three-color marking and back-edge detection. Self-loops appear as
// [v v]; trivial undirected 2-cycles (retraversing one edge) are never
// reported, while directed 2-cycles u→v→u are. Each cycle is reduced to
// its canonical minimal rotation (Booth's algorithm, forward or
// reversed) and the final list is sorted for deterministic output.
// Parallel edges of a multigraph are not distinguished: a node pair
// contributes at most one cycle edge.
//
// Complexity:
//
//   - Time:   O(V + E + C·L)   (C=#cycles, L=avg cycle length)
//   - Memory: O(V + L_max)     (recursion stack + state map + cycle storage)
package dfs

import (
	"fmt"
	"sort"

	"github.com/graphland/graphland/core"
)

// cycleFinder carries the shared state of one DetectCycles run.
type cycleFinder[N comparable] struct {
	graph  core.Interface[N]
	state  map[N]int
	path   []N
	seen   map[string]struct{}
	cycles [][]N
}

// DetectCycles inspects graph g for simple cycles.
// Returns (true, cycles, nil) if any cycles are found; (false, nil, nil)
// for a cycle-free or nil graph. A neighbor-fetch failure aborts with an
// error.
func DetectCycles[N comparable](g core.Interface[N]) (bool, [][]N, error) {
	if g == nil {
		return false, nil, nil
	}

	nodes := g.Nodes().List()
	f := &cycleFinder[N]{
		graph: g,
		state: make(map[N]int, len(nodes)),
		path:  make([]N, 0, len(nodes)),
		seen:  make(map[string]struct{}, len(nodes)),
	}

	// Launch DFS from each unvisited node.
	for _, v := range nodes {
		if f.state[v] == White {
			if err := f.visit(v, v, true); err != nil {
				return false, nil, fmt.Errorf("dfs: DetectCycles: %w", err)
			}
		}
	}

	// Sort cycles by their comma-joined signature for deterministic output.
	sort.Slice(f.cycles, func(i, j int) bool {
		return joinSig(f.cycles[i]) < joinSig(f.cycles[j])
	})

	if len(f.cycles) == 0 {
		return false, nil, nil
	}

	return true, f.cycles, nil
}

// visit performs recursive DFS from node, tracking the parent to skip
// trivial back-edges, and records any Gray→Gray back-edge as a cycle.
func (f *cycleFinder[N]) visit(node, parent N, root bool) error {
	f.state[node] = Gray
	f.path = append(f.path, node)

	row, err := f.graph.Neighbors(node)
	if err != nil {
		return fmt.Errorf("neighbors of %v: %w", node, err)
	}

	for _, nbr := range row.List() {
		// Trivial backtrack on undirected variants (the self-loop case
		// nbr == node must still fall through).
		if !f.graph.IsDirected() && !root && nbr == parent && nbr != node {
			continue
		}

		switch f.state[nbr] {
		case White:
			if err = f.visit(nbr, node, false); err != nil {
				return err
			}
		case Gray:
			// Back-edge: the segment path[idx:] closes a cycle at nbr.
			idx := indexOf(f.path, nbr)
			segLen := len(f.path) - idx

			// A 2-segment on an undirected graph is the same edge twice.
			if segLen == 2 && !f.graph.IsDirected() {
				continue
			}
			f.record(idx)
		}
	}

	// Backtrack: pop node and mark it fully explored.
	f.path = f.path[:len(f.path)-1]
	f.state[node] = Black

	return nil
}

// record extracts the cycle starting at path[idx], canonicalizes it, and
// appends it if its signature is new.
func (f *cycleFinder[N]) record(idx int) {
	seq := append([]N(nil), f.path[idx:]...)
	seq = append(seq, f.path[idx]) // close the loop

	sig, canon := canonical(seq)
	if _, exists := f.seen[sig]; !exists {
		f.seen[sig] = struct{}{}
		f.cycles = append(f.cycles, canon)
	}
}

// canonical computes the lexicographically minimal rotation of cycle and
// of its reversal, picks the smaller, and returns its signature together
// with the closed canonical cycle [v0, v1, ..., v0].
func canonical[N comparable](cycle []N) (string, []N) {
	n := len(cycle) - 1
	base := cycle[:n] // drop the duplicated closing element

	rotF := rotate(base, minimalRotationIndex(base))
	rev := reverseOf(base)
	rotB := rotate(rev, minimalRotationIndex(rev))

	picker := rotF
	if compareKeys(sigKeys(rotB), sigKeys(rotF)) < 0 {
		picker = rotB
	}

	closed := append(append([]N(nil), picker...), picker[0])

	return joinSig(closed), closed
}
