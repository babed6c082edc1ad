// File: hybridization.go
// Role: Bond-pattern based hybridization assignment.

package sanitize

import (
	"github.com/katalvlaran/molbridge/molgraph"
	"github.com/katalvlaran/molbridge/periodic"
)

// AssignHybridization sets every atom's Hybridization from its bonding:
//
//	dummy atom                      -> UNSPECIFIED
//	hydrogen, or no neighbors/Hs    -> S
//	triple bond or two double bonds -> SP
//	double or aromatic bond         -> SP2
//	unchecked element, 5/6/7+ pairs -> SP3D / SP3D2 / OTHER
//	otherwise                       -> SP3
//
// It reads the property cache, so the cache should be current.
func AssignHybridization(g *molgraph.Graph) {
	for i, a := range g.Atoms() {
		a.Hybridization = hybridizationOf(g, i, a)
	}
}

func hybridizationOf(g *molgraph.Graph, idx int, a *molgraph.Atom) molgraph.Hybridization {
	if a.AtomicNum == 0 {
		return molgraph.HybridUnspecified
	}
	deg := g.Degree(idx)
	if a.AtomicNum == 1 || deg+a.TotalNumHs() == 0 {
		return molgraph.HybridS
	}

	var doubles, triples, aromatic int
	for _, b := range g.AtomBonds(idx) {
		switch b.Type {
		case molgraph.BondDouble:
			doubles++
		case molgraph.BondTriple, molgraph.BondQuadruple:
			triples++
		case molgraph.BondAromatic:
			aromatic++
		}
	}
	switch {
	case triples > 0 || doubles >= 2:
		return molgraph.HybridSP
	case doubles == 1 || aromatic > 0:
		return molgraph.HybridSP2
	}

	if periodic.DefaultValence(a.AtomicNum) == periodic.AnyValence {
		switch pairs := deg + a.TotalNumHs(); {
		case pairs == 5:
			return molgraph.HybridSP3D
		case pairs == 6:
			return molgraph.HybridSP3D2
		case pairs > 6:
			return molgraph.HybridOther
		}
	}

	return molgraph.HybridSP3
}
