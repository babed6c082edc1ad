// File: mol.go
// Role: Molecule handle: construction, copy, serialization, diagnostics and
// the property-cache hook.
// Concurrency:
//   - No internal locking. A *Mol must not be mutated from several goroutines
//     at once; Copy gives an independent molecule for another goroutine.

package mol

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/molbridge/bfs"
	"github.com/katalvlaran/molbridge/dfs"
	"github.com/katalvlaran/molbridge/molfile"
	"github.com/katalvlaran/molbridge/molgraph"
	"github.com/katalvlaran/molbridge/periodic"
	"github.com/katalvlaran/molbridge/sanitize"
	"github.com/katalvlaran/molbridge/smiles"
)

// Mol is a handle to one molecular graph. Handles never share a graph.
// The zero Mol is an empty molecule; parsed molecules come from
// FromSmiles, FromSmilesWithParams, FromMolBlock or Copy.
type Mol struct {
	g *molgraph.Graph
}

// graph returns the engine graph, creating an empty one for the zero Mol.
func (m *Mol) graph() *molgraph.Graph {
	if m.g == nil {
		m.g = molgraph.NewGraph()
	}

	return m.g
}

// FromSmiles parses text with default parameters.
func FromSmiles(text string) (*Mol, error) {
	return FromSmilesWithParams(text, nil)
}

// FromSmilesWithParams parses text. A nil params means NewParserParams().
//
// Errors:
//   - *ParseError (wraps ErrParse) for malformed text or, when sanitizing,
//     a rejected molecule; Problem then holds the first problem found.
func FromSmilesWithParams(text string, params *ParserParams) (*Mol, error) {
	if params == nil {
		params = NewParserParams()
	}
	g, err := smiles.Parse(text)
	if err != nil {
		return nil, &ParseError{Input: text, Reason: err.Error(), Err: err}
	}

	return build(text, g, params.sanitize, params.removeHs)
}

// FromMolBlock parses an MDL V2000 block.
func FromMolBlock(block string, params MolBlockParams) (*Mol, error) {
	g, _, err := molfile.Read(block, molfile.WithStrictParsing(params.StrictParsing))
	if err != nil {
		return nil, &ParseError{Input: block, Reason: err.Error(), Err: err}
	}

	return build(block, g, params.Sanitize, params.RemoveHs)
}

func build(input string, g *molgraph.Graph, sanitizeOn, removeHs bool) (*Mol, error) {
	if !sanitizeOn {
		if err := g.UpdatePropertyCache(false); err != nil {
			return nil, &ParseError{Input: input, Reason: err.Error(), Err: err}
		}
		return &Mol{g: g}, nil
	}
	if removeHs {
		sanitize.RemoveHs(g)
	}
	if err := sanitize.Sanitize(g); err != nil {
		pe := &ParseError{Input: input, Reason: err.Error(), Err: err}
		var p *sanitize.Problem
		if errors.As(err, &p) {
			pe.Problem = fromEngine(p)
		}
		return nil, pe
	}

	return &Mol{g: g}, nil
}

// Copy returns a deep copy: atoms, bonds, cached properties and the
// needs-refresh state. Edits on either handle never reach the other.
func (m *Mol) Copy() *Mol {
	return &Mol{g: m.graph().Clone()}
}

// ToSmiles returns the canonical SMILES of the current graph. The same graph
// state always gives the same text. A molecule awaiting refresh is written
// as if refreshed non-strictly; m is not modified.
func (m *Mol) ToSmiles() string {
	return smiles.Write(m.graph())
}

// ToMolBlock renders the molecule as an MDL V2000 block.
func (m *Mol) ToMolBlock() (string, error) {
	return molfile.Write(m.graph(), "")
}

// String renders the handle as Mol("<smiles>").
func (m *Mol) String() string {
	return fmt.Sprintf("Mol(%q)", m.ToSmiles())
}

// NumAtoms counts graph atoms when onlyExplicit is true; otherwise the
// hydrogens carried by each atom (implicit and stored) are added.
// Hydrogen counts come from the property cache as last computed.
func (m *Mol) NumAtoms(onlyExplicit bool) int {
	n := m.graph().NumAtoms()
	if onlyExplicit {
		return n
	}
	for _, a := range m.graph().Atoms() {
		n += a.TotalNumHs()
	}

	return n
}

// NumBonds counts graph bonds.
func (m *Mol) NumBonds() int { return m.graph().NumBonds() }

// Atom returns a reference to the atom at idx. Only graph atoms are
// addressable: the bound is NumAtoms(true), not NumAtoms(false), because
// implicit hydrogens have no atom of their own.
//
// Errors:
//   - *IndexError (wraps ErrAtomIndex) unless 0 <= idx < NumAtoms(true).
func (m *Mol) Atom(idx int) (*Atom, error) {
	if n := m.graph().NumAtoms(); idx < 0 || idx >= n {
		return nil, &IndexError{Index: idx, NumAtoms: n}
	}

	return &Atom{m: m, idx: idx, gen: m.graph().Generation()}, nil
}

// DetectProblems lists every structural problem in discovery order.
// It never fails and never modifies m; a clean molecule gives nil.
func (m *Mol) DetectProblems() []Problem {
	found := sanitize.Detect(m.graph())
	if len(found) == 0 {
		return nil
	}
	out := make([]Problem, 0, len(found))
	for _, p := range found {
		out = append(out, fromEngine(p))
	}

	return out
}

// UpdatePropertyCache recomputes derived atom properties (valences, implicit
// hydrogens). With strict, an over-valent atom fails the call with a
// *RefreshError (wraps ErrRefresh); every atom is still recomputed and the
// graph is left as is. Without strict it never fails.
func (m *Mol) UpdatePropertyCache(strict bool) error {
	err := m.graph().UpdatePropertyCache(strict)
	if err == nil {
		return nil
	}
	var verr *molgraph.ValenceError
	if errors.As(err, &verr) {
		return &RefreshError{Problem: fromEngine(&sanitize.Problem{
			Type:    sanitize.TypeAtomValence,
			Message: verr.Error(),
			Atoms:   []int{verr.Atom},
		})}
	}

	return &RefreshError{Problem: &MolProblem{tag: sanitize.TypeMolSanitizing, msg: err.Error()}}
}

// NeedsRefresh reports whether an edit happened since the last cache update.
func (m *Mol) NeedsRefresh() bool { return m.graph().Stale() }

// Sanitize runs the full engine sanitization (valence, aromaticity,
// Kekulé check, hybridization) on m in place.
func (m *Mol) Sanitize() error {
	err := sanitize.Sanitize(m.graph())
	if err == nil {
		return nil
	}
	var p *sanitize.Problem
	if errors.As(err, &p) {
		return &SanitizeError{Problem: fromEngine(p)}
	}

	return &SanitizeError{Problem: &MolProblem{tag: sanitize.TypeMolSanitizing, msg: err.Error()}}
}

// AddAtom appends a neutral atom of the given element and returns its index.
// Existing Atom references become stale.
func (m *Mol) AddAtom(atomicNum int) (int, error) {
	if _, err := periodic.Symbol(atomicNum); err != nil {
		return -1, fmt.Errorf("%w: atomic number %d: %v", ErrValue, atomicNum, err)
	}

	return m.graph().AddAtom(molgraph.Atom{AtomicNum: atomicNum}), nil
}

// AddBond joins atoms a and b and returns the bond index.
func (m *Mol) AddBond(a, b int, t BondType) (int, error) {
	bi, err := m.graph().AddBond(a, b, t)
	if err != nil {
		return -1, fmt.Errorf("%w: %v", ErrBond, err)
	}

	return bi, nil
}

// RemoveAtom deletes atom idx and its bonds; higher indices shift down.
// Existing Atom references become stale.
func (m *Mol) RemoveAtom(idx int) error {
	if n := m.graph().NumAtoms(); idx < 0 || idx >= n {
		return &IndexError{Index: idx, NumAtoms: n}
	}

	return m.graph().RemoveAtom(idx)
}

// RemoveBond deletes the bond between a and b.
func (m *Mol) RemoveBond(a, b int) error {
	if err := m.graph().RemoveBond(a, b); err != nil {
		return fmt.Errorf("%w: %v", ErrBond, err)
	}

	return nil
}

// Fragments returns the atom indices of each connected fragment.
func (m *Mol) Fragments() [][]int {
	return bfs.Components(m.graph())
}

// NumRings returns the number of independent rings (cycle rank).
func (m *Mol) NumRings() int {
	return dfs.CycleRank(m.graph())
}

// FragmentParent returns a copy of the largest fragment of m; m is not
// modified. Fragments are compared by atom count including hydrogens, then
// by heavy-atom count, then by the smaller canonical SMILES. A molecule
// without atoms yields an empty copy.
func (m *Mol) FragmentParent() (*Mol, error) {
	frags := m.Fragments()
	if len(frags) <= 1 {
		return m.Copy(), nil
	}

	var best *Mol
	bestAll, bestHeavy, bestSmiles := -1, -1, ""
	for _, frag := range frags {
		all, heavy := len(frag), 0
		for _, idx := range frag {
			a, err := m.graph().Atom(idx)
			if err != nil {
				return nil, err
			}
			all += a.TotalNumHs()
			if a.AtomicNum != 1 {
				heavy++
			}
		}
		if all < bestAll || (all == bestAll && heavy < bestHeavy) {
			continue
		}
		sub, err := m.keep(frag)
		if err != nil {
			return nil, err
		}
		smi := sub.ToSmiles()
		if all == bestAll && heavy == bestHeavy && smi >= bestSmiles {
			continue
		}
		best, bestAll, bestHeavy, bestSmiles = sub, all, heavy, smi
	}

	return best, nil
}

// keep returns a copy of m restricted to the given atoms of one fragment.
func (m *Mol) keep(atoms []int) (*Mol, error) {
	in := make(map[int]bool, len(atoms))
	for _, idx := range atoms {
		in[idx] = true
	}
	out := m.Copy()
	for i := out.g.NumAtoms() - 1; i >= 0; i-- {
		if in[i] {
			continue
		}
		if err := out.g.RemoveAtom(i); err != nil {
			return nil, err
		}
	}
	if err := out.g.UpdatePropertyCache(false); err != nil {
		return nil, err
	}

	return out, nil
}

// Uncharge returns a neutralized copy of m; m is not modified.
// Charged atoms carrying hydrogens give them up, and negative atoms take
// hydrogens, except charge that balances cations without hydrogens
// (quaternary ammonium, nitro, metal ions) is kept.
func (m *Mol) Uncharge() (*Mol, error) {
	out := m.Copy()
	if _, err := sanitize.Uncharge(out.g); err != nil {
		return nil, &RefreshError{Problem: &MolProblem{tag: sanitize.TypeMolSanitizing, msg: err.Error()}}
	}

	return out, nil
}
