// File: sanitize.go
// Role: Sanitization pipeline and non-failing problem detection.
//
// Pipeline (Sanitize):
//   - Stage 1: strict property-cache update (valence check).
//   - Stage 2: aromatic atoms must be ring atoms.
//   - Stage 3: aromatic systems must admit a Kekulé structure.
//   - Stage 4: hybridization assignment.
//
// Detect runs stages 1-3 on a clone and reports every problem instead of the first.

package sanitize

import (
	"errors"

	"github.com/katalvlaran/molbridge/dfs"
	"github.com/katalvlaran/molbridge/molgraph"
)

// Sanitize validates g and assigns derived properties. It stops at the first
// problem, which is returned as a *Problem (wrapping ErrSanitize). The graph
// keeps whatever state it reached; nothing is rolled back.
//
// Complexity:
//   - Time O(V + E) plus the Kekulé search.
func Sanitize(g *molgraph.Graph) error {
	if err := g.UpdatePropertyCache(true); err != nil {
		return asProblem(err)
	}

	ring := dfs.RingAtoms(g)
	for i, a := range g.Atoms() {
		if a.IsAromatic && !ring[i] {
			return nonRingAromaticProblem(i)
		}
	}

	if p := kekulizeProblem(g); p != nil {
		return p
	}

	AssignHybridization(g)

	return nil
}

// Detect returns every problem found in g, in discovery order: valence
// problems by atom index, then non-ring aromatic atoms, then Kekulé failures.
// g itself is not modified. A clean molecule yields nil.
func Detect(g *molgraph.Graph) []*Problem {
	work := g.Clone()
	var out []*Problem

	for i := 0; i < work.NumAtoms(); i++ {
		if verr := work.ValenceProblem(i); verr != nil {
			out = append(out, valenceProblem(i, verr.Error()))
		}
	}
	_ = work.UpdatePropertyCache(false)

	ring := dfs.RingAtoms(work)
	for i, a := range work.Atoms() {
		if a.IsAromatic && !ring[i] {
			out = append(out, nonRingAromaticProblem(i))
		}
	}

	if p := kekulizeProblem(work); p != nil {
		out = append(out, p)
	}

	return out
}

// asProblem converts a cache-update error into a Problem.
func asProblem(err error) *Problem {
	var verr *molgraph.ValenceError
	if errors.As(err, &verr) {
		return valenceProblem(verr.Atom, verr.Error())
	}

	return &Problem{Type: TypeMolSanitizing, Message: err.Error()}
}
