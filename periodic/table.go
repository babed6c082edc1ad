// File: table.go
// Role: Static element catalog (symbols, atomic numbers, allowed valences).
// Determinism:
//   - The table is immutable after package initialization.
// Concurrency:
//   - Read-only; safe for concurrent use.

package periodic

import "errors"

// MaxAtomicNumber is the highest atomic number known to the table.
const MaxAtomicNumber = 118

// AnyValence marks elements whose valence is not checked (metals, noble-gas compounds aside).
const AnyValence = -1

// ErrUnknownElement indicates a symbol or atomic number outside the table.
var ErrUnknownElement = errors.New("periodic: unknown element")

// symbols is indexed by atomic number; index 0 is the dummy atom "*".
var symbols = [MaxAtomicNumber + 1]string{
	"*",
	"H", "He",
	"Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar",
	"K", "Ca", "Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br", "Kr",
	"Rb", "Sr", "Y", "Zr", "Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd",
	"In", "Sn", "Sb", "Te", "I", "Xe",
	"Cs", "Ba", "La", "Ce", "Pr", "Nd", "Pm", "Sm", "Eu", "Gd", "Tb", "Dy",
	"Ho", "Er", "Tm", "Yb", "Lu", "Hf", "Ta", "W", "Re", "Os", "Ir", "Pt",
	"Au", "Hg", "Tl", "Pb", "Bi", "Po", "At", "Rn",
	"Fr", "Ra", "Ac", "Th", "Pa", "U", "Np", "Pu", "Am", "Cm", "Bk", "Cf",
	"Es", "Fm", "Md", "No", "Lr", "Rf", "Db", "Sg", "Bh", "Hs", "Mt", "Ds",
	"Rg", "Cn", "Nh", "Fl", "Mc", "Lv", "Ts", "Og",
}

// valences lists the allowed valences (ascending) for main-group elements.
// Elements missing from this map accept any valence.
var valences = map[int][]int{
	1:  {1},
	2:  {0},
	3:  {1},
	4:  {2},
	5:  {3},
	6:  {4},
	7:  {3},
	8:  {2},
	9:  {1},
	10: {0},
	11: {1},
	12: {2},
	13: {3, 6},
	14: {4, 6},
	15: {3, 5, 7},
	16: {2, 4, 6},
	17: {1},
	18: {0},
	19: {1},
	20: {2},
	31: {3},
	32: {4},
	33: {3, 5, 7},
	34: {2, 4, 6},
	35: {1},
	36: {0, 2},
	37: {1},
	38: {2},
	49: {3},
	50: {2, 4},
	51: {3, 5, 7},
	52: {2, 4, 6},
	53: {1, 3, 5},
	54: {0, 2, 4, 6},
	55: {1},
	56: {2},
	81: {1, 3},
	82: {2, 4},
	83: {3, 5, 7},
	84: {2, 4, 6},
	85: {1, 3, 5, 7},
	86: {0},
	87: {1},
	88: {2},
}

var numbers = func() map[string]int {
	m := make(map[string]int, len(symbols))
	for z, s := range symbols {
		m[s] = z
	}
	return m
}()

// Symbol returns the element symbol for atomicNum ("*" for 0).
func Symbol(atomicNum int) (string, error) {
	if atomicNum < 0 || atomicNum > MaxAtomicNumber {
		return "", ErrUnknownElement
	}
	return symbols[atomicNum], nil
}

// AtomicNumber resolves a case-sensitive element symbol.
func AtomicNumber(symbol string) (int, error) {
	z, ok := numbers[symbol]
	if !ok {
		return 0, ErrUnknownElement
	}
	return z, nil
}

// ValenceList returns a copy of the allowed valences of atomicNum.
// Unchecked elements (and the dummy atom) yield []int{AnyValence}.
// An atomic number outside the table yields nil.
func ValenceList(atomicNum int) []int {
	if atomicNum < 0 || atomicNum > MaxAtomicNumber {
		return nil
	}
	vs, ok := valences[atomicNum]
	if !ok {
		return []int{AnyValence}
	}
	out := make([]int, len(vs))
	copy(out, vs)
	return out
}

// DefaultValence is the smallest allowed valence, or AnyValence.
func DefaultValence(atomicNum int) int {
	vs, ok := valences[atomicNum]
	if !ok {
		return AnyValence
	}
	return vs[0]
}

// EffectiveValenceList applies the isoelectronic rule for charged atoms:
// an atom with charge q takes the valences of element (atomicNum - q).
// Unchecked elements stay unchecked; a shift outside the table leaves only {0}.
func EffectiveValenceList(atomicNum, charge int) []int {
	if _, checked := valences[atomicNum]; !checked {
		return []int{AnyValence}
	}
	if charge == 0 {
		return ValenceList(atomicNum)
	}
	z := atomicNum - charge
	if z < 0 || z > MaxAtomicNumber {
		return []int{0}
	}
	if _, checked := valences[z]; !checked {
		return []int{0}
	}
	return ValenceList(z)
}
