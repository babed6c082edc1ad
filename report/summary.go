// File: summary.go
// Role: Serializable views of molecules and their diagnostics.
// Determinism:
//   - Views are built from one handle in atom-index and discovery order.

package report

import (
	"errors"

	"github.com/katalvlaran/molbridge/mol"
)

// AtomView is one row of an atom table.
type AtomView struct {
	Index         int    `json:"index" yaml:"index" msgpack:"index"`
	Symbol        string `json:"symbol" yaml:"symbol" msgpack:"symbol"`
	Aromatic      bool   `json:"aromatic" yaml:"aromatic" msgpack:"aromatic"`
	AtomicNum     int    `json:"atomic_num" yaml:"atomic_num" msgpack:"atomic_num"`
	FormalCharge  int    `json:"formal_charge" yaml:"formal_charge" msgpack:"formal_charge"`
	TotalHs       int    `json:"total_hs" yaml:"total_hs" msgpack:"total_hs"`
	TotalValence  int    `json:"total_valence" yaml:"total_valence" msgpack:"total_valence"`
	Hybridization string `json:"hybridization" yaml:"hybridization" msgpack:"hybridization"`
}

// ProblemView is one diagnostic record. Atom is set only for atom-scoped tags.
type ProblemView struct {
	Type    string `json:"type" yaml:"type" msgpack:"type"`
	Message string `json:"message" yaml:"message" msgpack:"message"`
	Atom    *int   `json:"atom,omitempty" yaml:"atom,omitempty" msgpack:"atom,omitempty"`
	Atoms   []int  `json:"atoms,omitempty" yaml:"atoms,omitempty" msgpack:"atoms,omitempty"`
}

// Summary describes one input line: either a parsed molecule or the error.
type Summary struct {
	Input     string        `json:"input" yaml:"input" msgpack:"input"`
	Smiles    string        `json:"smiles,omitempty" yaml:"smiles,omitempty" msgpack:"smiles,omitempty"`
	NumAtoms  int           `json:"num_atoms" yaml:"num_atoms" msgpack:"num_atoms"`
	NumAllHs  int           `json:"num_atoms_with_hs" yaml:"num_atoms_with_hs" msgpack:"num_atoms_with_hs"`
	NumBonds  int           `json:"num_bonds" yaml:"num_bonds" msgpack:"num_bonds"`
	NumRings  int           `json:"num_rings" yaml:"num_rings" msgpack:"num_rings"`
	Fragments int           `json:"fragments" yaml:"fragments" msgpack:"fragments"`
	Problems  []ProblemView `json:"problems,omitempty" yaml:"problems,omitempty" msgpack:"problems,omitempty"`
	Atoms     []AtomView    `json:"atoms,omitempty" yaml:"atoms,omitempty" msgpack:"atoms,omitempty"`
	Error     string        `json:"error,omitempty" yaml:"error,omitempty" msgpack:"error,omitempty"`
}

// OK reports whether the input parsed and has no problems.
func (s Summary) OK() bool { return s.Error == "" && len(s.Problems) == 0 }

// Summarize builds the view of m. withAtoms adds the per-atom table.
func Summarize(input string, m *mol.Mol, withAtoms bool) Summary {
	s := Summary{
		Input:     input,
		Smiles:    m.ToSmiles(),
		NumAtoms:  m.NumAtoms(true),
		NumAllHs:  m.NumAtoms(false),
		NumBonds:  m.NumBonds(),
		NumRings:  m.NumRings(),
		Fragments: len(m.Fragments()),
		Problems:  Problems(m.DetectProblems()),
	}
	if withAtoms {
		s.Atoms = Atoms(m)
	}

	return s
}

// Failure builds the view of an input that could not be parsed.
func Failure(input string, err error) Summary {
	s := Summary{Input: input, Error: err.Error()}
	var pe *mol.ParseError
	if errors.As(err, &pe) && pe.Problem != nil {
		s.Problems = Problems([]mol.Problem{pe.Problem})
	}

	return s
}

// Problems converts diagnostic records, keeping their order.
func Problems(ps []mol.Problem) []ProblemView {
	if len(ps) == 0 {
		return nil
	}
	out := make([]ProblemView, 0, len(ps))
	for _, p := range ps {
		v := ProblemView{Type: p.Type(), Message: p.Message()}
		switch rec := p.(type) {
		case *mol.AtomProblem:
			idx := rec.AtomIndex()
			v.Atom = &idx
		case *mol.KekulizeProblem:
			v.Atoms = rec.Atoms()
		}
		out = append(out, v)
	}

	return out
}

// Atoms lists every atom of m.
func Atoms(m *mol.Mol) []AtomView {
	n := m.NumAtoms(true)
	out := make([]AtomView, 0, n)
	for i := 0; i < n; i++ {
		a, err := m.Atom(i)
		if err != nil {
			break
		}
		out = append(out, AtomView{
			Index:         i,
			Symbol:        a.Symbol(),
			Aromatic:      a.IsAromatic(),
			AtomicNum:     a.AtomicNum(),
			FormalCharge:  a.FormalCharge(),
			TotalHs:       a.TotalNumHs(),
			TotalValence:  a.TotalValence(),
			Hybridization: a.Hybridization().String(),
		})
	}

	return out
}
