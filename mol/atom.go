// File: atom.go
// Role: Non-owning atom references and the hybridization enumeration.
//
// An *Atom remembers its molecule's generation. Adding or removing atoms
// bumps the generation and invalidates every outstanding reference: getters
// then panic with ErrStaleAtom, setters return it.

package mol

import (
	"fmt"

	"fortio.org/safecast"

	"github.com/katalvlaran/molbridge/molgraph"
	"github.com/katalvlaran/molbridge/periodic"
)

// BondType is the bond order enumeration.
type BondType = molgraph.BondType

// Bond orders.
const (
	BondSingle    = molgraph.BondSingle
	BondDouble    = molgraph.BondDouble
	BondTriple    = molgraph.BondTriple
	BondQuadruple = molgraph.BondQuadruple
	BondAromatic  = molgraph.BondAromatic
)

// Hybridization is the closed hybridization enumeration; its integer values
// are the engine's raw encoding.
type Hybridization = molgraph.Hybridization

// Hybridization states.
const (
	HybridUnspecified = molgraph.HybridUnspecified // 0
	HybridS           = molgraph.HybridS           // 1
	HybridSP          = molgraph.HybridSP          // 2
	HybridSP2         = molgraph.HybridSP2         // 3
	HybridSP3         = molgraph.HybridSP3         // 4
	HybridSP2D        = molgraph.HybridSP2D        // 5
	HybridSP3D        = molgraph.HybridSP3D        // 6
	HybridSP3D2       = molgraph.HybridSP3D2       // 7
	HybridOther       = molgraph.HybridOther       // 8
)

// HybridizationFromRaw decodes a raw engine value.
func HybridizationFromRaw(raw int) (Hybridization, error) {
	v, err := safecast.Conv[int32](raw)
	if err != nil {
		return HybridUnspecified, fmt.Errorf("%w: hybridization %d: %v", ErrValue, raw, err)
	}
	h := Hybridization(v)
	if !h.IsValid() {
		return HybridUnspecified, fmt.Errorf("%w: hybridization %d", ErrValue, raw)
	}

	return h, nil
}

// Atom is a live view of one atom of a molecule.
type Atom struct {
	m   *Mol
	idx int
	gen uint64
}

// Valid reports whether the reference still addresses the same atom.
func (a *Atom) Valid() bool {
	return a.m != nil && a.m.g.Generation() == a.gen && a.idx < a.m.g.NumAtoms()
}

func (a *Atom) raw() *molgraph.Atom {
	if !a.Valid() {
		panic(fmt.Errorf("%w: atom %d", ErrStaleAtom, a.idx))
	}
	at, err := a.m.g.Atom(a.idx)
	if err != nil {
		panic(err)
	}

	return at
}

// writable resolves the atom for a setter.
func (a *Atom) writable() (*molgraph.Atom, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: atom %d", ErrStaleAtom, a.idx)
	}

	return a.m.g.Atom(a.idx)
}

// Index is the atom's position in its molecule.
func (a *Atom) Index() int { return a.idx }

// Symbol is the element symbol ("*" for the dummy atom).
func (a *Atom) Symbol() string {
	sym, err := periodic.Symbol(a.raw().AtomicNum)
	if err != nil {
		return "*"
	}
	return sym
}

// IsAromatic reports whether the atom belongs to an aromatic system.
func (a *Atom) IsAromatic() bool { return a.raw().IsAromatic }

// AtomicNum is the element number (0 for the dummy atom).
func (a *Atom) AtomicNum() int { return a.raw().AtomicNum }

// FormalCharge is the integer formal charge.
func (a *Atom) FormalCharge() int { return a.raw().FormalCharge }

// Isotope is the mass number, 0 when unspecified.
func (a *Atom) Isotope() int { return a.raw().Isotope }

// NumExplicitHs is the hydrogen count stored on the atom itself.
func (a *Atom) NumExplicitHs() int { return a.raw().NumExplicitHs }

// NoImplicit reports whether implicit hydrogens are disabled (bracket atoms).
func (a *Atom) NoImplicit() bool { return a.raw().NoImplicit }

// Degree is the number of bonds on the atom.
func (a *Atom) Degree() int {
	a.raw()
	return a.m.g.Degree(a.idx)
}

// Hybridization is the state assigned by sanitization or SetHybridization.
func (a *Atom) Hybridization() Hybridization { return a.raw().Hybridization }

// TotalNumHs is stored plus implicit hydrogens, from the property cache.
func (a *Atom) TotalNumHs() int { return a.raw().TotalNumHs() }

// TotalValence is explicit plus implicit valence, from the property cache.
func (a *Atom) TotalValence() int { return a.raw().TotalValence() }

// SetFormalCharge sets the charge. Derived values keep their old contents
// until the molecule's property cache is updated.
func (a *Atom) SetFormalCharge(q int) error {
	at, err := a.writable()
	if err != nil {
		return err
	}
	at.FormalCharge = q
	a.m.g.MarkStale()

	return nil
}

// SetNumExplicitHs sets the stored hydrogen count. Like SetFormalCharge it
// leaves the property cache for the caller to update.
func (a *Atom) SetNumExplicitHs(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: explicit H count %d", ErrValue, n)
	}
	at, err := a.writable()
	if err != nil {
		return err
	}
	at.NumExplicitHs = n
	a.m.g.MarkStale()

	return nil
}

// SetHybridization overrides the hybridization state.
func (a *Atom) SetHybridization(h Hybridization) error {
	if !h.IsValid() {
		return fmt.Errorf("%w: hybridization %d", ErrValue, h)
	}
	at, err := a.writable()
	if err != nil {
		return err
	}
	at.Hybridization = h

	return nil
}
