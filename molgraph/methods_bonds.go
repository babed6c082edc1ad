// File: methods_bonds.go
// Role: Bond lifecycle & queries.
//
// Determinism:
//   - Bond indices are dense and follow insertion order; RemoveBond shifts
//     later bond indices down by one. Atom indices are unaffected.

package molgraph

import "fmt"

// AddBond connects atoms a and b with a bond of type t and returns the bond index.
//
// Errors:
//   - ErrAtomNotFound if either endpoint is out of range.
//   - ErrSelfBond if a == b.
//   - ErrBadBondType if t is not supported.
//   - ErrDuplicateBond if a and b are already bonded.
//
// Complexity:
//   - Time O(deg(a)).
func (g *Graph) AddBond(a, b int, t BondType) (int, error) {
	if a < 0 || a >= len(g.atoms) || b < 0 || b >= len(g.atoms) {
		return -1, fmt.Errorf("%w: bond %d-%d, have %d atoms", ErrAtomNotFound, a, b, len(g.atoms))
	}
	if a == b {
		return -1, fmt.Errorf("%w: atom %d", ErrSelfBond, a)
	}
	if !t.IsValid() {
		return -1, fmt.Errorf("%w: %d", ErrBadBondType, t)
	}
	if g.BondBetween(a, b) >= 0 {
		return -1, fmt.Errorf("%w: %d-%d", ErrDuplicateBond, a, b)
	}

	g.bonds = append(g.bonds, &Bond{Begin: a, End: b, Type: t})
	bi := len(g.bonds) - 1
	g.adjacency[a] = append(g.adjacency[a], bi)
	g.adjacency[b] = append(g.adjacency[b], bi)
	g.stale = true

	return bi, nil
}

// NumBonds returns the number of bonds.
func (g *Graph) NumBonds() int { return len(g.bonds) }

// Bond returns the live bond at index bi.
func (g *Graph) Bond(bi int) (*Bond, error) {
	if bi < 0 || bi >= len(g.bonds) {
		return nil, fmt.Errorf("%w: index %d, have %d bonds", ErrBondNotFound, bi, len(g.bonds))
	}

	return g.bonds[bi], nil
}

// Bonds returns the live bonds in index order. The slice itself is a copy.
func (g *Graph) Bonds() []*Bond {
	out := make([]*Bond, len(g.bonds))
	copy(out, g.bonds)

	return out
}

// AtomBonds returns the live bonds incident to atom idx in insertion order.
func (g *Graph) AtomBonds(idx int) []*Bond {
	if idx < 0 || idx >= len(g.adjacency) {
		return nil
	}
	out := make([]*Bond, 0, len(g.adjacency[idx]))
	for _, bi := range g.adjacency[idx] {
		out = append(out, g.bonds[bi])
	}

	return out
}

// BondBetween returns the index of the bond joining a and b, or -1.
func (g *Graph) BondBetween(a, b int) int {
	if a < 0 || a >= len(g.adjacency) {
		return -1
	}
	for _, bi := range g.adjacency[a] {
		if g.bonds[bi].Other(a) == b {
			return bi
		}
	}

	return -1
}

// RemoveBond deletes the bond joining a and b.
//
// Errors:
//   - ErrBondNotFound if no such bond exists.
//
// Complexity:
//   - Time O(V + E) (adjacency rebuild).
func (g *Graph) RemoveBond(a, b int) error {
	bi := g.BondBetween(a, b)
	if bi < 0 {
		return fmt.Errorf("%w: %d-%d", ErrBondNotFound, a, b)
	}
	copy(g.bonds[bi:], g.bonds[bi+1:])
	g.bonds[len(g.bonds)-1] = nil
	g.bonds = g.bonds[:len(g.bonds)-1]
	g.rebuildAdjacency()
	g.stale = true

	return nil
}
