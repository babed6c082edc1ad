// File: methods_clone.go
// Role: Deep cloning of molecular graphs.
// Determinism:
//   - Clone preserves atom and bond indices, the cache contents and the stale flag.
// AI-HINT (file):
//   - Clone is a deep copy: no Atom or Bond pointer is shared with the source.

package molgraph

// Clone returns a deep copy of the Graph: atoms (including cached valences),
// bonds and adjacency. The generation counter restarts at zero on the clone,
// since no reference into the clone exists yet.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	clone := NewGraph(WithCapacity(len(g.atoms), len(g.bonds)))
	for _, a := range g.atoms {
		cp := *a
		clone.atoms = append(clone.atoms, &cp)
	}
	for _, b := range g.bonds {
		cp := *b
		clone.bonds = append(clone.bonds, &cp)
	}
	for _, adj := range g.adjacency {
		row := make([]int, len(adj))
		copy(row, adj)
		clone.adjacency = append(clone.adjacency, row)
	}
	clone.stale = g.stale

	return clone
}
