// File: kekulize.go
// Role: Kekulé feasibility check for aromatic systems.
//
// Model:
//   - Every aromatic double-bond candidate (see molgraph.Graph.IsDoubleBondCandidate)
//     must be paired with exactly one neighboring candidate over an aromatic bond.
//   - Feasibility is a perfect-matching search per connected candidate system,
//     using backtracking with a most-constrained-first choice.

package sanitize

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/molbridge/molgraph"
)

// maxKekulizeSteps bounds the backtracking search for one aromatic system.
const maxKekulizeSteps = 1 << 20

// kekulizeProblem returns nil when every aromatic system admits a Kekulé
// structure, otherwise a KekulizeException listing the atoms of the
// systems that failed.
func kekulizeProblem(g *molgraph.Graph) *Problem {
	n := g.NumAtoms()
	cand := make([]bool, n)
	for i := 0; i < n; i++ {
		cand[i] = g.IsDoubleBondCandidate(i)
	}

	// candidate adjacency over aromatic bonds
	adj := make([][]int, n)
	for _, b := range g.Bonds() {
		if b.Type != molgraph.BondAromatic || !cand[b.Begin] || !cand[b.End] {
			continue
		}
		adj[b.Begin] = append(adj[b.Begin], b.End)
		adj[b.End] = append(adj[b.End], b.Begin)
	}

	seen := make([]bool, n)
	var failed []int
	for s := 0; s < n; s++ {
		if !cand[s] || seen[s] {
			continue
		}
		system := collect(s, adj, seen)
		if !perfectMatching(system, adj) {
			failed = append(failed, system...)
		}
	}
	if len(failed) == 0 {
		return nil
	}
	sort.Ints(failed)

	parts := make([]string, len(failed))
	for i, a := range failed {
		parts[i] = strconv.Itoa(a)
	}

	return &Problem{
		Type:    TypeKekulize,
		Message: fmt.Sprintf("Can't kekulize mol.  Unkekulized atoms: %s", strings.Join(parts, " ")),
		Atoms:   failed,
	}
}

// collect gathers the connected candidate system containing s.
func collect(s int, adj [][]int, seen []bool) []int {
	seen[s] = true
	system := []int{s}
	for i := 0; i < len(system); i++ {
		for _, nb := range adj[system[i]] {
			if !seen[nb] {
				seen[nb] = true
				system = append(system, nb)
			}
		}
	}

	return system
}

// perfectMatching reports whether the atoms of system can be paired along adj.
func perfectMatching(system []int, adj [][]int) bool {
	if len(system)%2 != 0 {
		return false
	}
	mate := make(map[int]int, len(system))
	steps := 0

	var solve func() bool
	solve = func() bool {
		steps++
		if steps > maxKekulizeSteps {
			return false
		}
		// most constrained unmatched atom first
		pick, best := -1, -1
		for _, a := range system {
			if _, ok := mate[a]; ok {
				continue
			}
			free := 0
			for _, nb := range adj[a] {
				if _, ok := mate[nb]; !ok {
					free++
				}
			}
			if pick == -1 || free < best {
				pick, best = a, free
			}
		}
		if pick == -1 {
			return true
		}
		if best == 0 {
			return false
		}
		for _, nb := range adj[pick] {
			if _, ok := mate[nb]; ok {
				continue
			}
			mate[pick], mate[nb] = nb, pick
			if solve() {
				return true
			}
			delete(mate, pick)
			delete(mate, nb)
		}

		return false
	}

	return solve()
}
