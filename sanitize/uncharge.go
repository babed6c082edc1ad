// File: uncharge.go
// Role: Neutralizing charged sites by moving hydrogens.
//
// Rules:
//  1. A positive atom carrying hydrogens loses one H per unit of charge
//     ([NH4+] -> N, C[NH3+] -> CN).
//  2. Positive charge on atoms without hydrogens stays (quaternary
//     ammonium, nitro N, metal cations) and must remain balanced.
//  3. Negative atoms gain one H per unit of charge, in atom order, until
//     only the charge needed to balance step 2 is left ([O-] next to a
//     nitro [N+] stays; [Cl-] next to [Na+] stays).
//
// Neutralized atoms get an explicit hydrogen count and NoImplicit, so the
// result does not depend on how the input stored its hydrogens.
// Determinism:
//   - Atoms are visited in index order.

package sanitize

import (
	"github.com/katalvlaran/molbridge/molgraph"
	"github.com/katalvlaran/molbridge/periodic"
)

// Uncharge neutralizes g in place and returns the number of atoms whose
// charge changed. The property cache is current on return.
//
// Complexity:
//   - Time O(V + E).
func Uncharge(g *molgraph.Graph) (int, error) {
	if err := g.UpdatePropertyCache(false); err != nil {
		return 0, err
	}

	changed := 0
	kept := 0 // positive charge that cannot be removed
	negative := 0
	for _, a := range g.Atoms() {
		switch {
		case a.FormalCharge > 0:
			hs := a.TotalNumHs()
			units := min(a.FormalCharge, hs)
			if units > 0 {
				setHs(a, hs-units)
				a.FormalCharge -= units
				changed++
			}
			kept += a.FormalCharge
		case a.FormalCharge < 0:
			negative -= a.FormalCharge
		}
	}

	need := negative - kept
	for _, a := range g.Atoms() {
		if need <= 0 {
			break
		}
		if a.FormalCharge >= 0 || periodic.DefaultValence(a.AtomicNum) == periodic.AnyValence {
			continue
		}
		units := min(-a.FormalCharge, need)
		setHs(a, a.TotalNumHs()+units)
		a.FormalCharge += units
		need -= units
		changed++
	}

	if changed == 0 {
		return 0, nil
	}
	g.MarkStale()
	if err := g.UpdatePropertyCache(false); err != nil {
		return changed, err
	}

	return changed, nil
}

func setHs(a *molgraph.Atom, n int) {
	a.NumExplicitHs = n
	a.NoImplicit = true
}
