// File: problem.go
// Role: Closed set of diagnostic record variants.
//
// Only *AtomProblem exposes an atom index; the other variants have no such
// accessor, so a type switch is the only way to reach it.

package mol

import (
	"strings"

	"fortio.org/safecast"

	"github.com/katalvlaran/molbridge/sanitize"
)

// Diagnostic tags, verbatim from the engine.
const (
	TagAtomValence  = sanitize.TypeAtomValence
	TagAtomKekulize = sanitize.TypeAtomKekulize
	TagKekulize     = sanitize.TypeKekulize
)

// Problem is one diagnostic record. Implementations are *AtomProblem,
// *KekulizeProblem and *MolProblem. Records are values: later edits of the
// molecule do not change them, though an atom index may then point elsewhere.
type Problem interface {
	// Type is the engine tag, e.g. "AtomValenceException".
	Type() string

	// Message is the engine's text.
	Message() string

	problem()
}

// AtomProblem is a problem scoped to one atom.
type AtomProblem struct {
	tag  string
	msg  string
	atom uint32
}

func (p *AtomProblem) Type() string    { return p.tag }
func (p *AtomProblem) Message() string { return p.msg }
func (*AtomProblem) problem()          {}

// AtomIndex is the positional index of the offending atom at detection time.
func (p *AtomProblem) AtomIndex() int { return int(p.atom) }

// KekulizeProblem reports aromatic atoms that admit no Kekulé structure.
type KekulizeProblem struct {
	msg   string
	atoms []uint32
}

func (p *KekulizeProblem) Type() string    { return TagKekulize }
func (p *KekulizeProblem) Message() string { return p.msg }
func (*KekulizeProblem) problem()          {}

// Atoms returns the unkekulized atom indices in ascending order.
func (p *KekulizeProblem) Atoms() []int {
	out := make([]int, len(p.atoms))
	for i, a := range p.atoms {
		out[i] = int(a)
	}
	return out
}

// MolProblem is any other molecule-level problem.
type MolProblem struct {
	tag string
	msg string
}

func (p *MolProblem) Type() string    { return p.tag }
func (p *MolProblem) Message() string { return p.msg }
func (*MolProblem) problem()          {}

// Problems lets a list of records travel as one error.
type Problems []Problem

// Error joins the messages in order.
func (ps Problems) Error() string {
	msgs := make([]string, len(ps))
	for i, p := range ps {
		msgs[i] = p.Type() + ": " + p.Message()
	}
	return strings.Join(msgs, "; ")
}

// fromEngine converts an engine problem into its variant.
func fromEngine(p *sanitize.Problem) Problem {
	switch {
	case p.AtomScoped():
		idx, err := safecast.Conv[uint32](p.Atoms[0])
		if err != nil {
			break
		}
		return &AtomProblem{tag: p.Type, msg: p.Message, atom: idx}
	case p.Type == sanitize.TypeKekulize:
		atoms := make([]uint32, 0, len(p.Atoms))
		for _, a := range p.Atoms {
			idx, err := safecast.Conv[uint32](a)
			if err != nil {
				return &MolProblem{tag: p.Type, msg: p.Message}
			}
			atoms = append(atoms, idx)
		}
		return &KekulizeProblem{msg: p.Message, atoms: atoms}
	}

	return &MolProblem{tag: p.Type, msg: p.Message}
}
