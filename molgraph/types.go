// Package molgraph defines the molecular Graph, Atom and Bond types of the
// engine, plus the per-atom property cache (explicit/implicit valence).
//
// This file declares Atom, Bond, BondType, Hybridization, Graph, GraphOption,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrAtomNotFound    - atom index out of range.
//	ErrBondNotFound    - no bond between the requested atoms / bond index out of range.
//	ErrSelfBond        - bond from an atom to itself.
//	ErrDuplicateBond   - a bond between the two atoms already exists.
//	ErrBadBondType     - bond type outside the supported set.
//	ErrValence         - explicit valence above the allowed maximum (strict cache update).
package molgraph

import "errors"

// Sentinel errors for molgraph operations.
var (
	// ErrAtomNotFound indicates an atom index outside [0, NumAtoms).
	ErrAtomNotFound = errors.New("molgraph: atom not found")

	// ErrBondNotFound indicates a missing bond.
	ErrBondNotFound = errors.New("molgraph: bond not found")

	// ErrSelfBond indicates an attempt to bond an atom to itself.
	ErrSelfBond = errors.New("molgraph: self-bond not allowed")

	// ErrDuplicateBond indicates a second bond between the same atom pair.
	ErrDuplicateBond = errors.New("molgraph: duplicate bond")

	// ErrBadBondType indicates an unsupported bond type.
	ErrBadBondType = errors.New("molgraph: unsupported bond type")

	// ErrValence indicates an explicit valence greater than permitted.
	ErrValence = errors.New("molgraph: valence exceeds permitted maximum")
)

// BondType uses the raw integer encoding of the engine's bond enumeration.
type BondType uint8

// Supported bond types. Values match the engine encoding (AROMATIC = 12).
const (
	BondUnspecified BondType = 0
	BondSingle      BondType = 1
	BondDouble      BondType = 2
	BondTriple      BondType = 3
	BondQuadruple   BondType = 4
	BondAromatic    BondType = 12
)

// String returns the engine name of the bond type.
func (t BondType) String() string {
	switch t {
	case BondUnspecified:
		return "UNSPECIFIED"
	case BondSingle:
		return "SINGLE"
	case BondDouble:
		return "DOUBLE"
	case BondTriple:
		return "TRIPLE"
	case BondQuadruple:
		return "QUADRUPLE"
	case BondAromatic:
		return "AROMATIC"
	default:
		return "UNKNOWN"
	}
}

// IsValid reports whether t is one of the supported bond types.
func (t BondType) IsValid() bool {
	switch t {
	case BondUnspecified, BondSingle, BondDouble, BondTriple, BondQuadruple, BondAromatic:
		return true
	default:
		return false
	}
}

// ValenceContrib is the contribution of one bond of type t to its atoms'
// valence. Aromatic bonds count as single here; the extra pi electron is
// accounted per atom (see IsDoubleBondCandidate).
func (t BondType) ValenceContrib() int {
	switch t {
	case BondSingle, BondAromatic:
		return 1
	case BondDouble:
		return 2
	case BondTriple:
		return 3
	case BondQuadruple:
		return 4
	default:
		return 0
	}
}

// Hybridization is the orbital hybridization state of an atom. The integer
// encoding is identical to the engine's enumeration.
type Hybridization int32

// Hybridization states in engine order.
const (
	HybridUnspecified Hybridization = iota
	HybridS
	HybridSP
	HybridSP2
	HybridSP3
	HybridSP2D
	HybridSP3D
	HybridSP3D2
	HybridOther
)

var hybridNames = [...]string{
	"UNSPECIFIED", "S", "SP", "SP2", "SP3", "SP2D", "SP3D", "SP3D2", "OTHER",
}

// String returns the engine name of the state.
func (h Hybridization) String() string {
	if !h.IsValid() {
		return "UNKNOWN"
	}
	return hybridNames[h]
}

// IsValid reports whether h is inside the closed enumeration.
func (h Hybridization) IsValid() bool {
	return h >= HybridUnspecified && h <= HybridOther
}

// Atom is a node of the molecular graph.
//
// Exported fields are the primary (user-settable) properties; the cached
// valence fields are derived and refreshed by UpdatePropertyCache.
type Atom struct {
	// AtomicNum is the element (0 for the dummy atom "*").
	AtomicNum int

	// Isotope is the mass number, 0 when unspecified.
	Isotope int

	// FormalCharge is the integer formal charge.
	FormalCharge int

	// NumExplicitHs is the number of hydrogens stored on the atom itself.
	NumExplicitHs int

	// NoImplicit disables implicit hydrogen inference (bracket atoms).
	NoImplicit bool

	// IsAromatic marks the atom as part of an aromatic system.
	IsAromatic bool

	// Hybridization is assigned by sanitization or set by the caller.
	Hybridization Hybridization

	// MapNum is the atom-map class, 0 when absent.
	MapNum int

	// ChiralTag keeps the parsed tetrahedral mark (0 none, 1 "@", 2 "@@").
	ChiralTag int

	explicitValence int
	implicitValence int
	cached          bool
}

// Bond is an undirected edge between atoms Begin and End (Begin < End is not required).
type Bond struct {
	Begin int
	End   int
	Type  BondType
}

// Other returns the partner of atom idx on b.
func (b *Bond) Other(idx int) int {
	if b.Begin == idx {
		return b.End
	}
	return b.Begin
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity preallocates room for the given number of atoms and bonds.
func WithCapacity(atoms, bonds int) GraphOption {
	return func(g *Graph) {
		g.atoms = make([]*Atom, 0, atoms)
		g.bonds = make([]*Bond, 0, bonds)
		g.adjacency = make([][]int, 0, atoms)
	}
}

// Graph is the in-memory molecular graph.
//
// Atoms and bonds are addressed by dense zero-based indices. adjacency[i]
// lists the bond indices incident to atom i in insertion order.
// generation increments on every atom insertion or removal, so holders of
// positional atom references can detect that indices may have moved.
// stale is set by any mutation that invalidates the property cache.
//
// Graph performs no internal locking: a Graph must not be mutated
// concurrently. Clone produces an independent Graph.
type Graph struct {
	atoms     []*Atom
	bonds     []*Bond
	adjacency [][]int

	generation uint64
	stale      bool
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
