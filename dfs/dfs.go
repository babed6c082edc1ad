// Package dfs implements depth-first search (single-source and forest) over a
// molecular adjacency.
//
// Key features:
//   - DFS(g, start, opts...): traverse from one atom or, with WithFullTraversal, every component
//   - Hooks: OnVisit (pre-order) & OnExit (post-order) with error aborts
//   - Deterministic neighbor order via WithNeighborOrder
//   - Back-edge (ring closure) reporting for undirected graphs
//
// Complexity:
//
//   - Time:   O(V + E·log d) with neighbor ordering (d = max degree), O(V + E) otherwise.
//   - Memory: O(V) for recursion stack and per-atom slices.
package dfs

import (
	"fmt"
	"sort"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph Graph
	opts  DFSOptions
	state []int
	res   *DFSResult
}

// DFS performs depth-first search on g. Without WithFullTraversal it starts
// only from start; with it, start is ignored and every atom is covered.
func DFS(g Graph, start int, opts ...Option) (*DFSResult, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	n := g.NumAtoms()
	// 3. Single-source mode: verify start
	if !dopts.FullTraversal && (start < 0 || start >= n) {
		return nil, fmt.Errorf("%w: %d", ErrStartNotFound, start)
	}

	// 4. Initialize result
	res := &DFSResult{
		Preorder: make([]int, 0, n),
		Order:    make([]int, 0, n),
		Depth:    make([]int, n),
		Parent:   make([]int, n),
		Visited:  make([]bool, n),
	}
	for i := 0; i < n; i++ {
		res.Depth[i] = -1
		res.Parent[i] = -1
	}
	w := &dfsWalker{graph: g, opts: dopts, state: make([]int, n), res: res}

	// 5. Traverse: forest or single tree
	if dopts.FullTraversal {
		for v := 0; v < n; v++ {
			if w.state[v] == White {
				if err := w.traverse(v, -1, 0); err != nil {
					return res, err
				}
			}
		}
		return res, nil
	}
	if err := w.traverse(start, -1, 0); err != nil {
		return res, err
	}

	return res, nil
}

// traverse visits atom idx reached from parent at the given depth.
func (w *dfsWalker) traverse(idx, parent, depth int) error {
	// 1. Mark Gray and record discovery
	w.state[idx] = Gray
	w.res.Visited[idx] = true
	w.res.Depth[idx] = depth
	w.res.Parent[idx] = parent
	w.res.Preorder = append(w.res.Preorder, idx)

	// 2. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(idx); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", idx, err)
		}
	}

	// 3. Fetch and order neighbors
	nbs := w.graph.Neighbors(idx)
	if w.opts.NeighborLess != nil {
		sort.SliceStable(nbs, func(i, j int) bool { return w.opts.NeighborLess(nbs[i], nbs[j]) })
	}

	// 4. Explore: White -> recurse, Gray (not the parent) -> ring closure
	for _, nb := range nbs {
		switch w.state[nb] {
		case White:
			if err := w.traverse(nb, idx, depth+1); err != nil {
				return err
			}
		case Gray:
			if nb != parent {
				w.res.BackEdges = append(w.res.BackEdges, BackEdge{From: idx, To: nb})
			}
		}
	}

	// 5. Post-order hook
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(idx); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %d: %w", idx, err)
		}
	}

	// 6. Record finish order
	w.state[idx] = Black
	w.res.Order = append(w.res.Order, idx)

	return nil
}
