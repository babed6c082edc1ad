// File: methods_atoms.go
// Role: Atom lifecycle & queries.
//
// Determinism:
//   - Atom indices are dense and follow insertion order; RemoveAtom shifts
//     every later index down by one.
//
// AI-Hints (file):
//   - AddAtom/RemoveAtom bump Generation(); positional references taken before
//     the call must be re-resolved.

package molgraph

import "fmt"

// AddAtom appends a copy of a and returns its index.
//
// Behavior highlights:
//   - The property cache of the new atom is empty; the graph is marked stale.
//   - Generation is incremented.
//
// Complexity:
//   - Time O(1) amortized.
func (g *Graph) AddAtom(a Atom) int {
	a.cached = false
	a.explicitValence, a.implicitValence = 0, 0
	g.atoms = append(g.atoms, &a)
	g.adjacency = append(g.adjacency, nil)
	g.generation++
	g.stale = true

	return len(g.atoms) - 1
}

// NumAtoms returns the number of atoms stored in the graph.
func (g *Graph) NumAtoms() int { return len(g.atoms) }

// Atom returns the live atom at idx. Mutating the returned atom bypasses
// cache bookkeeping; call MarkStale or UpdatePropertyCache afterwards.
//
// Errors:
//   - ErrAtomNotFound if idx is out of range.
//
// Complexity:
//   - Time O(1).
func (g *Graph) Atom(idx int) (*Atom, error) {
	if idx < 0 || idx >= len(g.atoms) {
		return nil, fmt.Errorf("%w: index %d, have %d atoms", ErrAtomNotFound, idx, len(g.atoms))
	}

	return g.atoms[idx], nil
}

// Atoms returns the live atoms in index order. The slice itself is a copy.
func (g *Graph) Atoms() []*Atom {
	out := make([]*Atom, len(g.atoms))
	copy(out, g.atoms)

	return out
}

// Neighbors returns the atom indices bonded to idx, in bond insertion order.
// An out-of-range idx yields nil.
func (g *Graph) Neighbors(idx int) []int {
	if idx < 0 || idx >= len(g.adjacency) {
		return nil
	}
	out := make([]int, 0, len(g.adjacency[idx]))
	for _, bi := range g.adjacency[idx] {
		out = append(out, g.bonds[bi].Other(idx))
	}

	return out
}

// Degree returns the number of bonds incident to idx (0 if out of range).
func (g *Graph) Degree(idx int) int {
	if idx < 0 || idx >= len(g.adjacency) {
		return 0
	}

	return len(g.adjacency[idx])
}

// RemoveAtom deletes atom idx and every incident bond, shifting later atom
// indices down by one.
//
// Implementation:
//   - Stage 1: Validate idx.
//   - Stage 2: Drop incident bonds and renumber bond endpoints.
//   - Stage 3: Drop the atom and rebuild adjacency.
//
// Errors:
//   - ErrAtomNotFound if idx is out of range.
//
// Complexity:
//   - Time O(V + E).
func (g *Graph) RemoveAtom(idx int) error {
	if idx < 0 || idx >= len(g.atoms) {
		return fmt.Errorf("%w: index %d, have %d atoms", ErrAtomNotFound, idx, len(g.atoms))
	}

	kept := g.bonds[:0]
	for _, b := range g.bonds {
		if b.Begin == idx || b.End == idx {
			continue
		}
		if b.Begin > idx {
			b.Begin--
		}
		if b.End > idx {
			b.End--
		}
		kept = append(kept, b)
	}
	for i := len(kept); i < len(g.bonds); i++ {
		g.bonds[i] = nil
	}
	g.bonds = kept

	copy(g.atoms[idx:], g.atoms[idx+1:])
	g.atoms[len(g.atoms)-1] = nil
	g.atoms = g.atoms[:len(g.atoms)-1]

	g.rebuildAdjacency()
	g.generation++
	g.stale = true

	return nil
}

// Generation returns the structural generation counter.
func (g *Graph) Generation() uint64 { return g.generation }

// Stale reports whether a mutation happened since the last cache update.
func (g *Graph) Stale() bool { return g.stale }

// MarkStale flags the property cache as out of date.
func (g *Graph) MarkStale() { g.stale = true }

// rebuildAdjacency recomputes adjacency from the bond list.
func (g *Graph) rebuildAdjacency() {
	g.adjacency = make([][]int, len(g.atoms))
	for bi, b := range g.bonds {
		g.adjacency[b.Begin] = append(g.adjacency[b.Begin], bi)
		g.adjacency[b.End] = append(g.adjacency[b.End], bi)
	}
}
