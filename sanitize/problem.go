// File: problem.go
// Role: Engine-side problem record shared by Sanitize and Detect.
// Policy:
//   - Type strings are the engine's category names and are never rewritten.
//   - Atoms holds the indices the problem refers to; atom-scoped types carry exactly one.

package sanitize

import (
	"errors"
	"fmt"
)

// Problem categories reported by the engine.
const (
	TypeAtomValence   = "AtomValenceException"
	TypeAtomKekulize  = "AtomKekulizeException"
	TypeKekulize      = "KekulizeException"
	TypeMolSanitizing = "MolSanitizeException"
)

// ErrSanitize is the sentinel wrapped by every *Problem used as an error.
var ErrSanitize = errors.New("sanitize: molecule failed sanitization")

// Problem is one structural problem found in a molecule.
type Problem struct {
	// Type is the engine category (see the Type* constants).
	Type string

	// Message is the human-readable engine message.
	Message string

	// Atoms lists the atom indices involved, in ascending order.
	Atoms []int
}

// AtomScoped reports whether the problem belongs to a single atom.
func (p *Problem) AtomScoped() bool {
	switch p.Type {
	case TypeAtomValence, TypeAtomKekulize:
		return len(p.Atoms) == 1
	default:
		return false
	}
}

// Error returns the engine message.
func (p *Problem) Error() string { return p.Message }

// Unwrap exposes ErrSanitize to errors.Is.
func (p *Problem) Unwrap() error { return ErrSanitize }

func valenceProblem(atom int, msg string) *Problem {
	return &Problem{Type: TypeAtomValence, Message: msg, Atoms: []int{atom}}
}

func nonRingAromaticProblem(atom int) *Problem {
	return &Problem{
		Type:    TypeAtomKekulize,
		Message: fmt.Sprintf("non-ring atom %d marked aromatic", atom),
		Atoms:   []int{atom},
	}
}
