// File: hydrogens.go
// Role: Folding explicit hydrogen atoms into their heavy-atom neighbors.

package sanitize

import "github.com/katalvlaran/molbridge/molgraph"

// RemoveHs deletes ordinary hydrogen atoms (no isotope, charge or map class,
// exactly one bond, to a non-hydrogen) and records them on the neighbor:
// bracket neighbors (NoImplicit) get NumExplicitHs incremented, others
// recover the hydrogen as an implicit one on the next cache update.
// It returns the number of atoms removed.
//
// Complexity:
//   - Time O(H·(V + E)).
func RemoveHs(g *molgraph.Graph) int {
	removed := 0
	for i := g.NumAtoms() - 1; i >= 0; i-- {
		a, err := g.Atom(i)
		if err != nil || !removableH(g, i, a) {
			continue
		}
		nb := g.Neighbors(i)[0]
		heavy, err := g.Atom(nb)
		if err != nil {
			continue
		}
		if heavy.NoImplicit {
			heavy.NumExplicitHs++
		}
		if err = g.RemoveAtom(i); err == nil {
			removed++
		}
	}

	return removed
}

func removableH(g *molgraph.Graph, idx int, a *molgraph.Atom) bool {
	if a.AtomicNum != 1 || a.Isotope != 0 || a.FormalCharge != 0 || a.MapNum != 0 || a.NumExplicitHs != 0 {
		return false
	}
	nbs := g.Neighbors(idx)
	if len(nbs) != 1 {
		return false
	}
	other, err := g.Atom(nbs[0])
	if err != nil || other.AtomicNum == 1 {
		return false
	}
	bi := g.BondBetween(idx, nbs[0])
	b, err := g.Bond(bi)

	return err == nil && b.Type == molgraph.BondSingle
}
