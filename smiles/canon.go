// File: canon.go
// Role: Canonical atom ranking for SMILES output.
//
// Algorithm:
//   - Rank atoms by an invariant tuple (degree, element, isotope, charge,
//     total Hs, aromaticity, ring membership, atom class).
//   - Refine: re-rank by (rank, sorted neighbor (rank, bond) codes) until the
//     number of classes stops growing.
//   - Break remaining ties by promoting the lowest-index atom of the lowest
//     tied class, then refine again.
// Determinism:
//   - Ranks depend only on the graph; tied atoms are graph-symmetric after refinement.

package smiles

import (
	"slices"
	"sort"

	"github.com/katalvlaran/molbridge/dfs"
	"github.com/katalvlaran/molbridge/molgraph"
)

// CanonicalRanks returns a permutation rank[i] in [0, n) for every atom of g.
// The property cache of g should be current.
//
// Complexity:
//   - Time O(n² · d log d) in the worst case (one refinement per tie break).
func CanonicalRanks(g *molgraph.Graph) []int {
	n := g.NumAtoms()
	if n == 0 {
		return nil
	}
	ring := dfs.RingAtoms(g)

	keys := make([][]int, n)
	for i, a := range g.Atoms() {
		keys[i] = []int{
			g.Degree(i), a.AtomicNum, a.Isotope, a.FormalCharge,
			a.TotalNumHs(), boolInt(a.IsAromatic), boolInt(ring[i]), a.MapNum,
		}
	}
	ranks, classes := denseRank(keys)
	ranks, classes = refine(g, ranks, classes)

	for classes < n {
		pick := tieBreaker(ranks)
		for i := range keys {
			keys[i] = keys[i][:0]
			tied := 0
			if ranks[i] == ranks[pick] && i != pick {
				tied = 1
			}
			keys[i] = append(keys[i], ranks[i], tied)
		}
		ranks, classes = denseRank(keys)
		ranks, classes = refine(g, ranks, classes)
	}

	return ranks
}

// refine splits classes by neighborhood until stable.
func refine(g *molgraph.Graph, ranks []int, classes int) ([]int, int) {
	n := len(ranks)
	keys := make([][]int, n)
	for {
		for i := 0; i < n; i++ {
			key := append(keys[i][:0], ranks[i])
			var codes []int
			for _, b := range g.AtomBonds(i) {
				codes = append(codes, ranks[b.Other(i)]*16+int(b.Type))
			}
			sort.Ints(codes)
			keys[i] = append(key, codes...)
		}
		next, count := denseRank(keys)
		if count == classes {
			return next, count
		}
		ranks, classes = next, count
	}
}

// tieBreaker returns the lowest-index atom in the lowest-ranked shared class.
func tieBreaker(ranks []int) int {
	size := make(map[int]int, len(ranks))
	for _, r := range ranks {
		size[r]++
	}
	pick, best := -1, -1
	for i, r := range ranks {
		if size[r] < 2 {
			continue
		}
		if pick == -1 || r < best {
			pick, best = i, r
		}
	}

	return pick
}

// denseRank maps equal keys to equal ranks 0..k-1 in lexicographic key order.
func denseRank(keys [][]int) ([]int, int) {
	order := make([]int, len(keys))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return slices.Compare(keys[order[a]], keys[order[b]]) < 0
	})

	ranks := make([]int, len(keys))
	rank := 0
	for k, idx := range order {
		if k > 0 && slices.Compare(keys[order[k-1]], keys[idx]) != 0 {
			rank++
		}
		ranks[idx] = rank
	}

	return ranks, rank + 1
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
