// File: cache.go
// Role: Per-atom property cache (explicit valence, implicit hydrogens).
//
// Model:
//   - Bond contributions: single/aromatic 1, double 2, triple 3, quadruple 4.
//   - An aromatic atom with at least one aromatic bond that still has a free
//     valence unit is a "double-bond candidate": it receives one extra unit,
//     standing for the double bond it gets in a Kekulé structure.
//   - Allowed valences come from periodic.EffectiveValenceList (charge-shifted).
//   - Atoms with NoImplicit never get implicit hydrogens.
//
// Staleness:
//   - Mutations never recompute the cache. Readers see the last computed
//     values until UpdatePropertyCache runs.

package molgraph

import (
	"fmt"

	"github.com/katalvlaran/molbridge/periodic"
)

// ValenceError describes an atom whose explicit valence exceeds the maximum
// permitted for its element and charge.
type ValenceError struct {
	Atom      int
	AtomicNum int
	Valence   int
}

// Error mirrors the engine's valence message.
func (e *ValenceError) Error() string {
	sym, err := periodic.Symbol(e.AtomicNum)
	if err != nil {
		sym = "?"
	}
	return fmt.Sprintf("Explicit valence for atom # %d %s, %d, is greater than permitted", e.Atom, sym, e.Valence)
}

// Unwrap exposes ErrValence to errors.Is.
func (e *ValenceError) Unwrap() error { return ErrValence }

// ExplicitValence returns the cached explicit valence (bonds + stored Hs).
func (a *Atom) ExplicitValence() int { return a.explicitValence }

// ImplicitValence returns the cached number of implicit hydrogens.
func (a *Atom) ImplicitValence() int { return a.implicitValence }

// TotalValence returns explicit plus implicit valence.
func (a *Atom) TotalValence() int { return a.explicitValence + a.implicitValence }

// TotalNumHs returns stored plus implicit hydrogens.
func (a *Atom) TotalNumHs() int { return a.NumExplicitHs + a.implicitValence }

// CacheValid reports whether the cache was computed at least once.
func (a *Atom) CacheValid() bool { return a.cached }

// UpdatePropertyCache recomputes the cache of every atom.
//
// Behavior highlights:
//   - strict=false never fails; an over-valent atom gets zero implicit Hs.
//   - strict=true still recomputes every atom but returns the first
//     *ValenceError encountered (index order). Nothing is rolled back.
//   - Clears the stale flag.
//
// Complexity:
//   - Time O(V + E).
func (g *Graph) UpdatePropertyCache(strict bool) error {
	var first error
	for i := range g.atoms {
		if err := g.UpdateAtomCache(i, strict); err != nil && first == nil {
			first = err
		}
	}
	g.stale = false

	return first
}

// UpdateAtomCache recomputes the cache of a single atom.
// The cache is stored even when strict validation fails.
//
// Errors:
//   - ErrAtomNotFound for a bad index.
//   - *ValenceError (wraps ErrValence) when strict and over-valent.
func (g *Graph) UpdateAtomCache(idx int, strict bool) error {
	a, err := g.Atom(idx)
	if err != nil {
		return err
	}
	expl, impl, verr := g.valence(idx)
	a.explicitValence, a.implicitValence, a.cached = expl, impl, true
	if strict && verr != nil {
		return verr
	}

	return nil
}

// ValenceProblem checks atom idx without touching its cache.
// It returns nil when the atom is within its permitted valence.
func (g *Graph) ValenceProblem(idx int) *ValenceError {
	if idx < 0 || idx >= len(g.atoms) {
		return nil
	}
	_, _, verr := g.valence(idx)

	return verr
}

// BondValenceSum returns the summed bond contributions of atom idx and
// whether at least one incident bond is aromatic.
func (g *Graph) BondValenceSum(idx int) (sum int, aromatic bool) {
	if idx < 0 || idx >= len(g.adjacency) {
		return 0, false
	}
	for _, bi := range g.adjacency[idx] {
		t := g.bonds[bi].Type
		sum += t.ValenceContrib()
		if t == BondAromatic {
			aromatic = true
		}
	}

	return sum, aromatic
}

// IsDoubleBondCandidate reports whether aromatic atom idx takes a double
// bond in a Kekulé structure.
func (g *Graph) IsDoubleBondCandidate(idx int) bool {
	if idx < 0 || idx >= len(g.atoms) {
		return false
	}
	sum, arom := g.BondValenceSum(idx)

	return doubleBondCandidate(g.atoms[idx], sum, arom)
}

// InferredHs returns the hydrogen count a reader infers for an atom that
// stores no hydrogens of its own, given its bond sum.
func InferredHs(atomicNum, charge int, aromatic bool, bondSum int, aromaticBond bool) int {
	a := &Atom{AtomicNum: atomicNum, FormalCharge: charge, IsAromatic: aromatic}
	_, impl, _ := valenceOf(a, bondSum, aromaticBond)

	return impl
}

func (g *Graph) valence(idx int) (expl, impl int, verr *ValenceError) {
	sum, arom := g.BondValenceSum(idx)
	a := g.atoms[idx]
	expl, impl, over := valenceOf(a, sum, arom)
	if over {
		verr = &ValenceError{Atom: idx, AtomicNum: a.AtomicNum, Valence: expl}
	}

	return expl, impl, verr
}

// valenceOf computes explicit and implicit valence for a with the given
// bond sum; over reports a violation of the maximum allowed valence.
func valenceOf(a *Atom, bondSum int, aromaticBond bool) (expl, impl int, over bool) {
	expl = bondSum + a.NumExplicitHs
	if doubleBondCandidate(a, bondSum, aromaticBond) {
		expl++
	}
	allowed := periodic.EffectiveValenceList(a.AtomicNum, a.FormalCharge)
	if len(allowed) == 0 || allowed[0] == periodic.AnyValence {
		return expl, 0, false
	}
	if expl > allowed[len(allowed)-1] {
		return expl, 0, true
	}
	if a.NoImplicit {
		return expl, 0, false
	}
	for _, v := range allowed {
		if v >= expl {
			return expl, v - expl, false
		}
	}

	return expl, 0, false
}

func doubleBondCandidate(a *Atom, bondSum int, aromaticBond bool) bool {
	if !a.IsAromatic || !aromaticBond {
		return false
	}
	used := bondSum + a.NumExplicitHs
	allowed := periodic.EffectiveValenceList(a.AtomicNum, a.FormalCharge)
	if len(allowed) == 0 || allowed[0] == periodic.AnyValence {
		return false
	}
	for _, v := range allowed {
		if v >= used {
			return v-used >= 1
		}
	}

	return false
}
