// Package bfs provides breadth-first search over a molecular adjacency,
// returning bond-count distances, parent links, and visit order, plus
// connected-component (fragment) enumeration.
package bfs

import "fmt"

// walker encapsulates mutable BFS state.
type walker struct {
	graph Graph
	opts  BFSOptions
	queue []int
	res   *BFSResult
}

// BFS runs breadth-first search on g starting from start.
// Returns ErrGraphNil or ErrStartNotFound for invalid input,
// ErrOptionViolation for bad options, or any hook error.
func BFS(g Graph, start int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	n := g.NumAtoms()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d", ErrStartNotFound, start)
	}

	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]int, 0, n),
		res: &BFSResult{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = -1
		w.res.Parent[i] = -1
	}

	w.enqueue(start, 0, -1)

	return w.res, w.loop()
}

// enqueue marks idx reached at depth d from parent.
func (w *walker) enqueue(idx, d, parent int) {
	w.res.Depth[idx] = d
	w.res.Parent[idx] = parent
	w.queue = append(w.queue, idx)
}

// loop processes the queue until empty or a hook error.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		idx := w.queue[0]
		w.queue = w.queue[1:]
		d := w.res.Depth[idx]

		w.res.Order = append(w.res.Order, idx)
		if err := w.opts.OnVisit(idx, d); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", idx, err)
		}

		next := d + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, nb := range w.graph.Neighbors(idx) {
			if !w.opts.FilterNeighbor(idx, nb) {
				continue
			}
			if w.res.Depth[nb] == -1 {
				w.enqueue(nb, next, idx)
			}
		}
	}

	return nil
}

// Components returns the connected components of g. Each component lists its
// atoms in ascending order; components are ordered by their smallest atom.
func Components(g Graph) [][]int {
	if g == nil {
		return nil
	}
	n := g.NumAtoms()
	seen := make([]bool, n)
	var out [][]int
	for s := 0; s < n; s++ {
		if seen[s] {
			continue
		}
		res, err := BFS(g, s)
		if err != nil {
			continue
		}
		comp := make([]int, 0, len(res.Order))
		for i, d := range res.Depth {
			if d >= 0 {
				seen[i] = true
				comp = append(comp, i)
			}
		}
		out = append(out, comp)
	}

	return out
}
