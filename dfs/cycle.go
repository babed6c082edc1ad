// Package dfs also provides ring perception helpers for undirected molecular
// graphs: ring-bond detection via bridge finding (Tarjan low-link) and the
// cycle rank (number of independent rings).
//
// Complexity:
//
//   - RingBonds / RingAtoms: Time O(V + E), Memory O(V)
//   - CycleRank:             Time O(V + E), Memory O(V)
package dfs

// AtomPair is an unordered atom pair with Lo < Hi.
type AtomPair struct {
	Lo, Hi int
}

// NewAtomPair orders a and b.
func NewAtomPair(a, b int) AtomPair {
	if a > b {
		a, b = b, a
	}
	return AtomPair{Lo: a, Hi: b}
}

// RingBonds returns the set of bonds that lie on at least one cycle, i.e.
// every bond that is not a bridge.
func RingBonds(g Graph) map[AtomPair]bool {
	if g == nil {
		return nil
	}
	n := g.NumAtoms()
	disc := make([]int, n)
	low := make([]int, n)
	for i := range disc {
		disc[i] = -1
	}
	bridges := make(map[AtomPair]bool)
	timer := 0

	var visit func(u, parent int)
	visit = func(u, parent int) {
		disc[u] = timer
		low[u] = timer
		timer++
		for _, v := range g.Neighbors(u) {
			if v == parent {
				continue
			}
			if disc[v] == -1 {
				visit(v, u)
				low[u] = min(low[u], low[v])
				if low[v] > disc[u] {
					bridges[NewAtomPair(u, v)] = true
				}
			} else {
				low[u] = min(low[u], disc[v])
			}
		}
	}
	for u := 0; u < n; u++ {
		if disc[u] == -1 {
			visit(u, -1)
		}
	}

	ring := make(map[AtomPair]bool)
	for u := 0; u < n; u++ {
		for _, v := range g.Neighbors(u) {
			p := NewAtomPair(u, v)
			if !bridges[p] {
				ring[p] = true
			}
		}
	}

	return ring
}

// RingAtoms flags every atom incident to a ring bond.
func RingAtoms(g Graph) []bool {
	if g == nil {
		return nil
	}
	out := make([]bool, g.NumAtoms())
	for p := range RingBonds(g) {
		out[p.Lo] = true
		out[p.Hi] = true
	}

	return out
}

// CycleRank returns E - V + C, the number of independent rings.
func CycleRank(g Graph) int {
	if g == nil {
		return 0
	}
	n := g.NumAtoms()
	edges := 0
	for u := 0; u < n; u++ {
		edges += len(g.Neighbors(u))
	}
	edges /= 2

	res, err := DFS(g, 0, WithFullTraversal())
	if err != nil {
		return 0
	}
	components := 0
	for _, p := range res.Parent {
		if p == -1 {
			components++
		}
	}

	return edges - n + components
}
